package cmd

import (
	"fmt"

	"treedump/pkg/config"
	"treedump/pkg/logging"
	"treedump/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// application carries state shared by the subcommands of a single invocation.
type application struct {
	logger        *zap.Logger
	configuration config.Configuration
	configPath    string
	debug         bool
}

// NewRootCommand builds the treedump command tree around the given logger.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &application{logger: logger, configuration: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "treedump",
		Short: "treedump renders a directory tree as HTML or plain text",
		Long: `treedump walks a directory tree and writes either an HTML document with the
contents of every file inlined (html) or an indented listing of names (text).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare()
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "Path to a configuration file (default ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVar(&app.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newHTMLCommand(app),
		newTextCommand(app),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute builds the root command and runs it with the process arguments.
func Execute(logger *zap.Logger) error {
	return NewRootCommand(logger).Execute()
}

// prepare loads the configuration file and switches to debug logging when requested.
func (app *application) prepare() error {
	configuration, err := config.Load(config.LoadOptions{ExplicitFilePath: app.configPath})
	if err != nil {
		app.logger.Error("Failed to load configuration", zap.String("config", app.configPath), zap.Error(err))
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.configuration = configuration

	if app.debug || configuration.Debug {
		debugLogger, err := logging.Setup(true, "treedump", version.Get().Version)
		if err != nil {
			app.logger.Warn("Failed to enable debug logging", zap.Error(err))
		} else {
			app.logger = debugLogger
		}
	}
	app.logger.Debug("Loaded configuration",
		zap.String("htmlOutput", configuration.HTML.Output),
		zap.String("textOutput", configuration.Text.Output))
	return nil
}
