// Package cmd provides Cobra CLI commands for nowbar.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/nowbar/internal/config"
	"github.com/bnema/nowbar/internal/logging"
	"github.com/bnema/nowbar/internal/ui"
)

// BuildInfo carries the version stamped in at link time.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

var (
	buildInfo BuildInfo

	rootCmd = &cobra.Command{
		Use:   "nowbar",
		Short: "A floating mini-player panel for your desktop",
		Long: `Nowbar - a small floating companion panel for the system media player.

A GTK4 panel showing album art, playback controls, lyrics and the upcoming
queue. The window can be dragged freely, flung to a screen corner with
inertia, or flicked against a screen edge where it hides, leaving a sliver
that peeks out on hover.

Run 'nowbar' to launch the panel, or explore the subcommands for
configuration management.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager()
			if err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			if err := manager.Load(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := manager.Watch(); err != nil {
				return fmt.Errorf("watch config: %w", err)
			}

			cfg := manager.Get()
			logger := logging.New(logging.Config{
				Level:      logging.ParseLevel(cfg.Logging.Level),
				Format:     cfg.Logging.Format,
				TimeFormat: logging.DefaultConfig().TimeFormat,
			})
			ctx := logging.WithContext(cmd.Context(), logger)

			app := ui.NewApp(manager)
			if code := app.Run(ctx, []string{"nowbar"}); code != 0 {
				return fmt.Errorf("GTK application exited with code %d", code)
			}
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}
