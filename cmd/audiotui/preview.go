package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sndkit/audiotui/internal/logger"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "preview [theme]",
		Short: "Render the widget gallery once with the given theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: true})
			if err != nil {
				return err
			}
			if err := loadPalettes(flags, log); err != nil {
				return err
			}

			name := "audioui"
			if len(args) == 1 {
				name = args[0]
			}

			if width == 0 {
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					width = w
				}
			}

			view, err := renderGallery(name, width, false)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Render width (defaults to terminal width)")

	return cmd
}
