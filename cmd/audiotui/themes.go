package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sndkit/audiotui/internal/logger"
	"github.com/sndkit/audiotui/internal/theme"
)

func newThemesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List registered themes with color swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: true})
			if err != nil {
				return err
			}
			if err := loadPalettes(flags, log); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range theme.Names() {
				t, err := theme.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-28s %s  feel: %s\n", name, swatch(t.Look), t.Feel.Name())
			}
			return nil
		},
	}

	return cmd
}

// swatch renders a small strip of a Look's signature colors.
func swatch(look theme.Look) string {
	colors := []lipgloss.Color{
		look.Surfaces().Primary,
		look.Brand().Primary,
		look.Brand().Accent,
		look.Meters().Low,
		look.Meters().Clip,
	}
	s := ""
	for _, c := range colors {
		s += lipgloss.NewStyle().Background(c).Render("  ")
	}
	return s
}
