// Package render walks a directory tree and writes it out either as an HTML
// document with inlined file contents or as a plain-text name listing.
package render

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// RunHTML renders args.Root as HTML and writes the document to args.Output in one write.
// It returns the absolute path of the written file.
func RunHTML(args Arguments, logger *zap.Logger) (string, error) {
	startTime := time.Now()

	root, err := filepath.Abs(args.Root)
	if err != nil {
		logger.Error("Failed to resolve root path", zap.String("root", args.Root), zap.Error(err))
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	output, err := filepath.Abs(args.Output)
	if err != nil {
		logger.Error("Failed to resolve output path", zap.String("output", args.Output), zap.Error(err))
		return "", fmt.Errorf("failed to get absolute output path: %w", err)
	}
	logger.Info("Starting HTML rendering", zap.String("root", root), zap.String("outputFile", output))

	document, err := RenderHTML(root, args.Exclusions, logger)
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	if err := ensureDirectory(filepath.Dir(output), logger); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeToFile(output, []byte(document), 0o644, logger); err != nil {
		return "", fmt.Errorf("failed to write HTML document: %w", err)
	}

	logger.Info("HTML rendering completed",
		zap.String("outputFile", output),
		zap.Int("sizeBytes", len(document)),
		zap.Duration("elapsed", time.Since(startTime)))
	return output, nil
}

// RunText streams the text tree of args.Root into args.Output.
// It returns the absolute path of the written file.
func RunText(args Arguments, logger *zap.Logger) (string, error) {
	startTime := time.Now()

	output, err := filepath.Abs(args.Output)
	if err != nil {
		logger.Error("Failed to resolve output path", zap.String("output", args.Output), zap.Error(err))
		return "", fmt.Errorf("failed to get absolute output path: %w", err)
	}
	logger.Info("Starting text tree rendering", zap.String("root", args.Root), zap.String("outputFile", output))

	if err := ensureDirectory(filepath.Dir(output), logger); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile, err := os.Create(output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", output), zap.Error(err))
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	writer := bufio.NewWriter(outFile)
	if err := WriteTextTree(writer, args.Root, args.Exclusions, logger); err != nil {
		_ = outFile.Close()
		return "", fmt.Errorf("failed to write text tree: %w", err)
	}
	if err := writer.Flush(); err != nil {
		_ = outFile.Close()
		logger.Error("Failed to flush output file", zap.String("file", output), zap.Error(err))
		return "", fmt.Errorf("failed to flush output: %w", err)
	}
	if err := outFile.Close(); err != nil {
		logger.Error("Failed to close output file", zap.String("file", output), zap.Error(err))
		return "", fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Info("Text tree rendering completed",
		zap.String("outputFile", output),
		zap.Duration("elapsed", time.Since(startTime)))
	return output, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
