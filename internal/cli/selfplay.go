package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jaminalder/tttai/internal/domain"
)

func newSelfPlayCmd() *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the AI play a full game against itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return selfPlay(cmd.OutOrStdout(), render)
		},
	}

	cmd.Flags().BoolVarP(&render, "render", "r", false, "draw each board as a grid")
	return cmd
}

// selfPlay uses a single AI for both sides by swapping marks after every
// move, and prints the board with real marks after each turn.
func selfPlay(w io.Writer, render bool) error {
	ai, err := domain.NewAI(domain.O)
	if err != nil {
		return err
	}

	b := domain.NewBoard()
	player := domain.X
	for turn := 1; ; turn++ {
		move, err := ai.NextMove(b)
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		if err := b.MakeMove(ai.Mark(), move); err != nil {
			return err
		}

		// the AI always sees itself as o; relabel for display
		shown := b
		if player == domain.X {
			shown.SwapMarks()
		}
		if render {
			_, err = fmt.Fprintf(w, "turn %d: %s plays %d\n%s\n", turn, player, move, shown.Render())
		} else {
			_, err = fmt.Fprintf(w, "%d %s %d %q\n", turn, player, move, shown.String())
		}
		if err != nil {
			return err
		}

		if b.IsWinner(ai.Mark()) {
			_, err := fmt.Fprintf(w, "%s wins\n", player)
			return err
		}
		if b.IsFull() {
			_, err := fmt.Fprintln(w, "draw")
			return err
		}

		b.SwapMarks()
		player = player.Other()
	}
}
