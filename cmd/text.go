package cmd

import (
	"fmt"

	"treedump/pkg/exclude"
	"treedump/pkg/render"

	"github.com/spf13/cobra"
)

func newTextCommand(app *application) *cobra.Command {
	var output string

	textCmd := &cobra.Command{
		Use:   "text [root]",
		Short: "Write an indented listing of folder and file names",
		Long: `Walk root (default: ".") and write one line per directory followed by one line
per file it contains, indented four spaces per level. Content is never read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			if output == "" {
				output = app.configuration.Text.Output
			}

			written, err := render.RunText(render.Arguments{
				Root:       root,
				Output:     output,
				Exclusions: exclude.TextDefaults(),
			}, app.logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Folder structure saved to '%s'\n", written)
			return nil
		},
	}

	textCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default "+render.DefaultTextOutput+")")
	return textCmd
}
