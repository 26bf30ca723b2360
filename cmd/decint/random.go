package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"decint/internal/bignum"
)

var randomCmd = &cobra.Command{
	Use:   "random [flags]",
	Short: "Generate a non-negative random integer",
	Long:  `Random draws a non-negative integer with the requested digit count, or with a digit count bounded by the manifest's max-random-digits when none is given`,
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

func init() {
	randomCmd.Flags().Int("digits", bignum.DigitsAny, "exact digit count (default: draw one from the configured bound)")
	randomCmd.Flags().Uint64("seed", 0, "seed for reproducible output (0: random seed)")
}

func runRandom(cmd *cobra.Command, args []string) error {
	digits, err := cmd.Flags().GetInt("digits")
	if err != nil {
		return fmt.Errorf("failed to get digits flag: %w", err)
	}
	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return fmt.Errorf("failed to get seed flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	useColor := colorEnabled(cmd, cfg)

	if seed == 0 {
		seed = rand.Uint64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var v bignum.Int
	if digits == bignum.DigitsAny {
		maxDigits, err := cfg.MaxRandomDigitsInt()
		if err != nil {
			return err
		}
		v, err = bignum.RandomMax(rnd, maxDigits)
		if err != nil {
			return err
		}
	} else {
		v, err = bignum.Random(rnd, digits)
		if err != nil {
			return err
		}
	}

	printResult(useColor, v.String())
	return nil
}
