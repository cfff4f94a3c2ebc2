package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/patience/internal/board"
)

// moveCmd represents the move command
var moveCmd = &cobra.Command{
	Use:   "move [move...]",
	Short: "Deal a board and apply moves to it",
	Long: `Move deals a board the same way deal does, then applies each move in
order and shows the result. A move is either

  i FROM TO          move the top card of stack FROM onto stack TO
  s ROW START TO     move cards START..top of stack ROW onto stack TO

Fields may be separated by spaces, commas or colons. Stacks and positions
count from zero; position zero is the bottom card.

With --branch every move produces a new board and the dealt board is shown
unchanged above the result.

Examples:
  patience move --seed 42 "i 3 0" "s 1 2 5"
  patience move --seed 42 --branch i:3:0`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves := make([]board.Move, 0, len(args))
		for _, arg := range args {
			mv, err := board.ParseMove(arg)
			if err != nil {
				return err
			}
			moves = append(moves, mv)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dealt, seed, err := dealBoard(cfg)
		if err != nil {
			return err
		}

		branch, _ := cmd.Flags().GetBool("branch")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Seed: %d\n\n", seed)

		current := dealt
		for i, mv := range moves {
			if branch {
				next, err := current.NextBoard(mv)
				if err != nil {
					return fmt.Errorf("move %d (%v): %w", i+1, mv, err)
				}
				current = next
				fmt.Fprintf(out, "%d. %v: branched\n", i+1, mv)
				logger.Debug("branched board", zap.Stringer("move", mv))
				continue
			}

			res, err := current.ApplyMove(mv)
			if err != nil {
				return fmt.Errorf("move %d (%v): %w", i+1, mv, err)
			}
			fmt.Fprintf(out, "%d. %v: %v\n", i+1, mv, res)
			logger.Debug("applied move",
				zap.Stringer("move", mv),
				zap.Int("moved", res.Moved),
				zap.Bool("noop", res.NoOp),
			)
		}
		fmt.Fprintln(out)

		if branch {
			fmt.Fprintln(out, "Dealt:")
			if err := printBoard(out, dealt, cfg); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nResult:")
		}
		return printBoard(out, current, cfg)
	},
}

func init() {
	RootCmd.AddCommand(moveCmd)
	addLayoutFlags(moveCmd)
	moveCmd.Flags().BoolP("branch", "b", false, "derive new boards instead of changing the dealt one")
}
