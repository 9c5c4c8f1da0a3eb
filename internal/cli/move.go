package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaminalder/tttai/internal/app"
	"github.com/jaminalder/tttai/internal/domain"
)

func newMoveCmd() *cobra.Command {
	var (
		mark   domain.Cell
		render bool
	)

	cmd := &cobra.Command{
		Use:   "move <board>",
		Short: "Print the board after the AI's move",
		Example: `  ttt move "xo o   x "
  ttt move --mark x "oo x     "`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Challenge(args[0], mark)
			if err != nil {
				return err
			}
			if render {
				b, err := domain.ParseBoard(out)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), b.Render())
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%q\n", out)
			return err
		},
	}

	markFlag(cmd.Flags(), &mark, domain.DefaultMark, "mark the AI plays")
	cmd.Flags().BoolVarP(&render, "render", "r", false, "draw the board as a grid")
	return cmd
}
