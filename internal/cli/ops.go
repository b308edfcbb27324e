package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/calc-session/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List the supported operations",
		Run:   runOps,
	}

	RootCmd.AddCommand(cmd)
}

func runOps(cmd *cobra.Command, args []string) {
	for _, op := range model.Ops {
		fmt.Printf("  %-12s - %s\n", string(op), model.Descriptions[op])
	}
}
