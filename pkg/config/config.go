// Package config loads optional treedump settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".treedump.yaml"

const (
	keyDebug      = "debug"
	keyHTMLOutput = "html.output"
	keyTextOutput = "text.output"

	defaultHTMLOutput = "project_code.html"
	defaultTextOutput = "folder_structure.txt"
)

// LoadOptions controls how the configuration file is discovered.
type LoadOptions struct {
	WorkingDirectory string // Defaults to the process working directory.
	ExplicitFilePath string // When set, the file must exist.
}

// Configuration holds settings that can be read from the configuration file.
type Configuration struct {
	Debug bool                `mapstructure:"debug"`
	HTML  OutputConfiguration `mapstructure:"html"`
	Text  OutputConfiguration `mapstructure:"text"`
}

// OutputConfiguration configures where a renderer writes its document.
type OutputConfiguration struct {
	Output string `mapstructure:"output"`
}

// Default returns the built-in configuration.
func Default() Configuration {
	return Configuration{
		HTML: OutputConfiguration{Output: defaultHTMLOutput},
		Text: OutputConfiguration{Output: defaultTextOutput},
	}
}

// Load reads the configuration file, falling back to Default for missing keys.
// A missing default file is not an error; a missing explicit file is.
func Load(options LoadOptions) (Configuration, error) {
	path, explicit, err := resolvePath(options)
	if err != nil {
		return Configuration{}, err
	}

	reader := viper.New()
	reader.SetDefault(keyDebug, false)
	reader.SetDefault(keyHTMLOutput, defaultHTMLOutput)
	reader.SetDefault(keyTextOutput, defaultTextOutput)

	info, statErr := os.Stat(path)
	switch {
	case statErr == nil && info.IsDir():
		return Configuration{}, fmt.Errorf("configuration path %s is a directory", path)
	case statErr == nil:
		reader.SetConfigFile(path)
		reader.SetConfigType("yaml")
		if readErr := reader.ReadInConfig(); readErr != nil {
			return Configuration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
		}
	case os.IsNotExist(statErr) && !explicit:
	default:
		return Configuration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}

	var configuration Configuration
	if decodeErr := reader.Unmarshal(&configuration); decodeErr != nil {
		return Configuration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return configuration, nil
}

func resolvePath(options LoadOptions) (string, bool, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return "", false, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	if options.ExplicitFilePath == "" {
		return filepath.Join(workingDirectory, FileName), false, nil
	}
	if filepath.IsAbs(options.ExplicitFilePath) {
		return options.ExplicitFilePath, true, nil
	}
	return filepath.Join(workingDirectory, options.ExplicitFilePath), true, nil
}
