package main

import (
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"decint/internal/calc"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr...",
	Short: "Evaluate one or more integer expressions",
	Long:  `Eval computes each expression with arbitrary precision; multiple expressions are evaluated in parallel and printed in argument order`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().Bool("group", false, "group printed digits in threes")
}

func runEval(cmd *cobra.Command, args []string) error {
	group, err := cmd.Flags().GetBool("group")
	if err != nil {
		return fmt.Errorf("failed to get group flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	group = group || cfg.Output.GroupDigits
	useColor := colorEnabled(cmd, cfg)
	maxDigits, err := cfg.MaxRandomDigitsInt()
	if err != nil {
		return err
	}

	results := make([]string, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each worker gets its own entropy source; the evaluator
			// consumes it sequentially.
			e := &calc.Evaluator{
				Rand:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
				MaxRandomDigits: maxDigits,
			}
			v, err := e.Eval(src)
			if err != nil {
				return fmt.Errorf("%q: %w", src, err)
			}
			results[i] = renderResult(v, group)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		printResult(useColor, r)
	}
	return nil
}
