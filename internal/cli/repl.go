package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/calc-session/internal/calcerr"
	"github.com/rcliao/calc-session/internal/engine"
	"github.com/rcliao/calc-session/internal/model"
	"github.com/rcliao/calc-session/internal/ui"
	"github.com/rcliao/calc-session/internal/validate"
)

// controlCommands are the non-arithmetic REPL verbs.
var controlCommands = map[string]string{
	"history": "Display calculation history",
	"undo":    "Undo the last operation",
	"redo":    "Redo a previously undone operation",
	"clear":   "Clear the history and reset",
	"save":    "Save calculation history to CSV",
	"load":    "Load calculation history from CSV",
	"help":    "Show available commands",
	"exit":    "Exit the calculator",
}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calculator session",
		Long:  "Interactive session with undo/redo over the in-memory history. Type 'help' inside the session for the command list.",
		Run:   runRepl,
	}

	RootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	calc, cleanup := newCalculator(cfg)
	defer cleanup()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Header.Render("=== calc-session ==="))
	fmt.Fprintln(out, "Type 'help' to see available commands. Type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, ui.Prompt.Render(">>> "))
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nGoodbye!")
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if done := dispatch(out, calc, cfg.HistoryPath(), strings.ToLower(parts[0]), parts[1:]); done {
			return
		}
	}
}

// dispatch executes one REPL command. Returns true when the session ends.
func dispatch(out io.Writer, calc *engine.Calculator, historyPath, name string, args []string) bool {
	switch name {
	case "exit":
		fmt.Fprintln(out, ui.Header.Render("Goodbye!"))
		return true
	case "help":
		printHelp(out)
	case "history":
		entries := calc.Entries()
		if len(entries) == 0 {
			fmt.Fprintln(out, ui.Warnf("(no history yet)"))
			break
		}
		fmt.Fprintln(out, ui.Infof("Calculation History:"))
		for i, entry := range entries {
			fmt.Fprintf(out, "  %d. %s\n", i+1, entry)
		}
	case "clear":
		calc.ClearHistory()
		fmt.Fprintln(out, ui.Infof("History cleared."))
	case "undo":
		if err := calc.Undo(); err != nil {
			fmt.Fprintln(out, ui.Errorf("%v", err))
			break
		}
		fmt.Fprintln(out, ui.Warnf("Undid last operation."))
	case "redo":
		if err := calc.Redo(); err != nil {
			fmt.Fprintln(out, ui.Errorf("%v", err))
			break
		}
		fmt.Fprintln(out, ui.Warnf("Redid last operation."))
	case "save":
		if err := calc.SaveHistory(historyPath); err != nil {
			fmt.Fprintln(out, ui.Errorf("%v", err))
			break
		}
		fmt.Fprintln(out, ui.Infof("History saved to %s", historyPath))
	case "load":
		if err := calc.LoadHistory(historyPath); err != nil {
			fmt.Fprintln(out, ui.Errorf("%v", err))
			break
		}
		fmt.Fprintln(out, ui.Infof("History loaded from %s (%d entries)", historyPath, len(calc.History())))
	default:
		runOperation(out, calc, name, args)
	}
	return false
}

func runOperation(out io.Writer, calc *engine.Calculator, name string, args []string) {
	op, err := model.ParseOp(name)
	if err != nil {
		fmt.Fprintln(out, ui.Errorf("Unknown command %q. Type 'help' for a list of commands.", name))
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(out, ui.Errorf("%s requires exactly two numbers", op))
		return
	}

	a, b, err := validate.Operands(op, args[0], args[1], calc.Config().MaxInputValue)
	if err != nil {
		fmt.Fprintln(out, ui.Errorf("%v", err))
		return
	}

	result, err := calc.Perform(op, a, b)
	if err != nil {
		var valErr *calcerr.ValidationError
		var opErr *calcerr.OperationError
		if errors.As(err, &valErr) || errors.As(err, &opErr) {
			fmt.Fprintln(out, ui.Errorf("%v", err))
			return
		}
		fmt.Fprintln(out, ui.Errorf("unexpected error: %v", err))
		return
	}
	if op == model.OpPercent {
		fmt.Fprintln(out, ui.Successf("Result: %v%%", result.Result))
		return
	}
	fmt.Fprintln(out, ui.Successf("Result: %v", result.Result))
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, ui.Header.Render("Available Commands:"))
	for _, op := range model.Ops {
		fmt.Fprintf(out, "  %-12s - %s\n", string(op), model.Descriptions[op])
	}
	names := make([]string, 0, len(controlCommands))
	for name := range controlCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-12s - %s\n", name, controlCommands[name])
	}
}
