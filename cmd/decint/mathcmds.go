package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"decint/internal/bignum"
	"decint/internal/cache"
)

var factorialCmd = &cobra.Command{
	Use:   "factorial [flags] N",
	Short: "Compute N! for a non-negative integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCached(cmd, "factorial", args[0], bignum.Factorial)
	},
}

var primeCmd = &cobra.Command{
	Use:   "prime [flags] N",
	Short: "Find the smallest prime strictly greater than N",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCached(cmd, "nextprime", args[0], bignum.NextPrime)
	},
}

func init() {
	for _, c := range []*cobra.Command{factorialCmd, primeCmd} {
		c.Flags().Bool("no-cache", false, "do not read or write the result cache")
		c.Flags().Bool("group", false, "group printed digits in threes")
	}
}

// runCached evaluates op on a single parsed operand, consulting the
// disk cache unless disabled. Cache failures degrade to recomputation.
func runCached(cmd *cobra.Command, op, literal string, fn func(bignum.Int) (bignum.Int, error)) error {
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
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

	operand, err := bignum.Parse(literal)
	if err != nil {
		return err
	}

	var store *cache.Cache
	if !noCache {
		// A nil cache is inert, so an unusable cache dir just means
		// recomputation.
		store, _ = cache.Open("decint")
	}

	if result, ok, cacheErr := store.Get(op, operand); cacheErr == nil && ok {
		printResult(useColor, renderResult(result, group))
		return nil
	}

	result, err := fn(operand)
	if err != nil {
		return err
	}
	if putErr := store.Put(op, operand, result); putErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to cache result: %v\n", putErr)
	}

	printResult(useColor, renderResult(result, group))
	return nil
}
