package render

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"treedump/pkg/exclude"

	"go.uber.org/zap"
)

// WriteTextTree streams an indented listing of root to w: each directory
// as "name/", followed by the files it directly contains one level deeper,
// followed by its subdirectories. Folders excluded by set are pruned.
func WriteTextTree(w io.Writer, root string, set exclude.Set, logger *zap.Logger) error {
	logger.Debug("Writing text tree", zap.String("root", root), zap.Int("exclusions", set.Len()))
	if err := writeTextDirectory(w, root, root, set, logger); err != nil {
		logger.Error("Failed to write text tree", zap.String("root", root), zap.Error(err))
		return err
	}
	return nil
}

func writeTextDirectory(w io.Writer, root, directory string, set exclude.Set, logger *zap.Logger) error {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return fmt.Errorf("failed to read directory '%s': %w", directory, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	level := textLevel(root, directory)
	if _, err := fmt.Fprintf(w, "%s%s/\n", textIndent(level), filepath.Base(directory)); err != nil {
		return fmt.Errorf("failed to write directory line: %w", err)
	}

	var subdirectories []string
	for _, entry := range entries {
		entryPath := filepath.Join(directory, entry.Name())
		if entry.IsDir() {
			if set.Excludes(entry.Name()) {
				logger.Debug("Skipping excluded directory", zap.String("directory", entryPath))
				continue
			}
			subdirectories = append(subdirectories, entryPath)
			continue
		}
		if isSymlinkToDirectory(entryPath, entry) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", textIndent(level+1), entry.Name()); err != nil {
			return fmt.Errorf("failed to write file line: %w", err)
		}
	}

	for _, subdirectory := range subdirectories {
		if err := writeTextDirectory(w, root, subdirectory, set, logger); err != nil {
			return err
		}
	}
	return nil
}

// textLevel counts the path separators between root and directory; the root
// itself is level 0 and its direct children level 1.
func textLevel(root, directory string) int {
	relPath, err := filepath.Rel(root, directory)
	if err != nil || relPath == "." {
		return 0
	}
	return strings.Count(relPath, string(os.PathSeparator)) + 1
}

func textIndent(level int) string {
	return strings.Repeat(" ", TextIndentWidth*level)
}

func isSymlinkToDirectory(entryPath string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(entryPath)
	return err == nil && info.IsDir()
}
