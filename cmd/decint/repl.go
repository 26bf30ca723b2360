package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"decint/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive calculator",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eval, err := newEvaluator(cfg)
	if err != nil {
		return err
	}

	group := cfg.Output.GroupDigits
	model := ui.NewReplModel(func(src string) (string, error) {
		v, err := eval.Eval(src)
		if err != nil {
			return "", err
		}
		return renderResult(v, group), nil
	})

	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("repl failed: %w", err)
	}
	return nil
}
