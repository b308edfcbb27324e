package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/calc-session/internal/model"
	"github.com/rcliao/calc-session/internal/ui"
	"github.com/rcliao/calc-session/internal/validate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "eval <operation> <a> <b>",
		Short: "Evaluate one operation and exit",
		Long:  "Evaluate a single named operation on two operands. The result is logged, autosaved, and archived like any REPL calculation.",
		Args:  cobra.ExactArgs(3),
		Run:   runEval,
	}

	RootCmd.AddCommand(cmd)
}

func runEval(cmd *cobra.Command, args []string) {
	op, err := model.ParseOp(args[0])
	if err != nil {
		exitErr("eval", err)
	}

	cfg := loadConfig()
	a, b, err := validate.Operands(op, args[1], args[2], cfg.MaxInputValue)
	if err != nil {
		exitErr("eval", err)
	}

	calc, cleanup := newCalculator(cfg)
	defer cleanup()

	result, err := calc.Perform(op, a, b)
	if err != nil {
		exitErr("eval", err)
	}
	fmt.Println(ui.Successf("Result: %v", result.Result))
}
