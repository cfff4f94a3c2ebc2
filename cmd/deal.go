package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle the deck and show the dealt board",
	Long: `Deal shuffles the variant's deck and deals it into stacks using the
configured pattern. The seed is printed so the same board can be dealt again
with --seed.

Examples:
  patience deal
  patience deal --seed 42
  patience deal --pattern descending --stacks 6`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		b, seed, err := dealBoard(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Seed: %d\n\n", seed)
		return printBoard(out, b, cfg)
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
	addLayoutFlags(dealCmd)
}
