package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/calc-session/internal/persist"
	"github.com/rcliao/calc-session/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the saved history file",
		Long:  "Print the calculations stored in the history CSV, oldest first.",
		Run:   runHistory,
	}

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	seq, err := persist.Load(cfg.HistoryPath())
	if err != nil {
		exitErr("history", err)
	}
	if len(seq) == 0 {
		fmt.Println(ui.Warnf("(no history yet)"))
		return
	}
	for i, c := range seq {
		fmt.Printf("  %d. %s(%v, %v) = %v  [%s]\n",
			i+1, c.Op, c.A, c.B, c.Result, c.Timestamp.Format("2006-01-02 15:04:05"))
	}
}
