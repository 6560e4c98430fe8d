package cmd

import (
	"fmt"
	"os"

	"treedump/pkg/exclude"
	"treedump/pkg/render"

	"github.com/spf13/cobra"
)

func newHTMLCommand(app *application) *cobra.Command {
	var output string

	htmlCmd := &cobra.Command{
		Use:   "html [root]",
		Short: "Write the tree with inlined file contents as an HTML document",
		Long: `Walk root (default: the current directory) in sorted order and write a single
HTML document listing every folder and file, with the escaped contents of each file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			if len(args) == 1 {
				root = args[0]
			}
			if output == "" {
				output = app.configuration.HTML.Output
			}

			written, err := render.RunHTML(render.Arguments{
				Root:       root,
				Output:     output,
				Exclusions: exclude.HTMLDefaults(),
			}, app.logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "HTML file generated: %s\n", written)
			return nil
		},
	}

	htmlCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default "+render.DefaultHTMLOutput+")")
	return htmlCmd
}
