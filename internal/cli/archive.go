package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/calc-session/internal/archive"
)

func init() {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Query the durable calculation archive",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List archived calculations, newest first",
		Run:   runArchiveList,
	}
	listCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show")
	listCmd.Flags().StringP("session", "s", "", "Filter by session id")
	listCmd.Flags().StringP("op", "o", "", "Filter by operation name")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show archive statistics",
		Run:   runArchiveStats,
	}

	cmd.AddCommand(listCmd, statsCmd)
	RootCmd.AddCommand(cmd)
}

func runArchiveList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	session, _ := cmd.Flags().GetString("session")
	op, _ := cmd.Flags().GetString("op")

	cfg := loadConfig()
	store, err := openArchive(cfg)
	if err != nil {
		exitErr("open archive", err)
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), archive.ListParams{
		Session: session,
		Op:      op,
		Limit:   limit,
	})
	if err != nil {
		exitErr("archive list", err)
	}

	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}

func runArchiveStats(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store, err := openArchive(cfg)
	if err != nil {
		exitErr("open archive", err)
	}
	defer store.Close()

	stats, err := store.Stats(cmd.Context(), archivePath(cfg))
	if err != nil {
		exitErr("archive stats", err)
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
}
