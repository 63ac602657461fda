package root

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"habitkeep/internal/ui"
)

const Version = "0.1.0"

var (
	logLevel string
	logger   zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "hk",
	Short:         "Habitkeep — local-first habit tracker",
	Long:          "Habitkeep tracks recurring and one-off habits in a single JSON file:\nmark them complete, see what is due on a date, and analyze streaks.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if env := os.Getenv("HABITKEEP_LOG_LEVEL"); env != "" && !cmd.Flags().Changed("log-level") {
			logLevel = env
		}
		lvl, err := zerolog.ParseLevel(strings.ToLower(logLevel))
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			With().
			Timestamp().
			Logger().
			Level(lvl)
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newAddCmd(),
		newRemoveCmd(),
		newDoneCmd(),
		newLogCmd(),
		newUnlogCmd(),
		newEditCmd(),
		newListCmd(),
		newDueCmd(),
		newStatsCmd(),
		newSeedCmd(),
		newResetCmd(),
		newMenuCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
