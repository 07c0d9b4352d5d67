package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sndkit/audiotui/internal/config"
	"github.com/sndkit/audiotui/internal/logger"
)

type rootFlags struct {
	logLevel string
	palettes []string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "audiotui",
		Short:         "audiotui is a themeable terminal widget kit for audio front-ends",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringArrayVar(&flags.palettes, "palette", nil, "Additional palette file to load (repeatable)")

	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadPalettes registers user palette files before any theme lookup runs.
func loadPalettes(flags *rootFlags, log *logger.Logger) error {
	for _, path := range flags.palettes {
		name, err := config.RegisterPaletteFile(path)
		if err != nil {
			return fmt.Errorf("load palette: %w", err)
		}
		log.WithFields(map[string]any{"theme": name, "path": path}).Info("palette registered")
	}
	return nil
}
