package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaminalder/tttai/internal/config"
)

// rootFlags holds the flags shared by every subcommand.
type rootFlags struct {
	configPath string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ttt",
		Short: "Tic-tac-toe AI",
		Long: `ttt plays tic-tac-toe against you.

Boards are written as 9 characters, x, o and space, row by row from the
top left. "xo o   x " is:

  x|o|
  -+-+-
  o| |
  -+-+-
   |x|`,
		SilenceUsage: true,
	}

	flags := &rootFlags{}
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file (env: TTT_*)")

	rootCmd.AddCommand(newServeCmd(flags))
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newSelfPlayCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(flags *rootFlags) (*config.Config, *slog.Logger, error) {
	conf, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}
	return conf, newLogger(conf, os.Stderr), nil
}

func newLogger(conf *config.Config, w io.Writer) *slog.Logger {
	// Load has already validated the level
	level, _ := conf.Level()
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
