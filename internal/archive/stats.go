package archive

import (
	"context"
	"os"
)

// Stats holds archive statistics.
type Stats struct {
	DBPath            string    `json:"db_path"`
	DBSizeBytes       int64     `json:"db_size_bytes"`
	TotalCalculations int       `json:"total_calculations"`
	Sessions          int       `json:"sessions"`
	Operations        []OpStats `json:"operations"`
}

// OpStats holds per-operation counts.
type OpStats struct {
	Op    string `json:"operation"`
	Count int    `json:"count"`
}

// Stats returns archive statistics.
func (s *Store) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM calculations`).Scan(&st.TotalCalculations)
	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT session) FROM calculations`).Scan(&st.Sessions)

	rows, err := s.db.QueryContext(ctx, `
		SELECT op, COUNT(*) as cnt
		FROM calculations
		GROUP BY op
		ORDER BY cnt DESC, op`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o OpStats
		if err := rows.Scan(&o.Op, &o.Count); err != nil {
			return nil, err
		}
		st.Operations = append(st.Operations, o)
	}
	return st, rows.Err()
}
