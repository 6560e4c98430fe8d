package render

import (
	"fmt"
	"html"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"treedump/pkg/exclude"

	"go.uber.org/zap"
)

const htmlPrologue = `<html><head><meta charset="utf-8"><style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .folder { font-weight: bold; margin-top: 10px; }
        .file { margin-left: 20px; color: blue; font-weight: bold; }
        .content { margin-left: 40px; white-space: pre-wrap; font-family: monospace; color: black; border-left: 2px solid #ddd; padding-left: 10px; }
    </style></head><body><h1>Project Files</h1>`

const htmlEpilogue = "</body></html>"

// RenderHTML traverses root and returns the complete HTML document.
func RenderHTML(root string, set exclude.Set, logger *zap.Logger) (string, error) {
	fragments, err := CollectFragments(root, set, logger)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(fragments)+2)
	parts = append(parts, htmlPrologue)
	for _, fragment := range fragments {
		parts = append(parts, RenderFragment(fragment))
	}
	parts = append(parts, htmlEpilogue)
	return strings.Join(parts, "\n"), nil
}

// CollectFragments walks root depth-first in sorted order and returns the
// folder, file and content fragments for every entry not excluded by set.
func CollectFragments(root string, set exclude.Set, logger *zap.Logger) ([]Fragment, error) {
	logger.Debug("Collecting fragments", zap.String("root", root), zap.Int("exclusions", set.Len()))
	fragments, err := collectDirectory(root, 0, set, logger)
	if err != nil {
		logger.Error("Failed to collect fragments", zap.String("root", root), zap.Error(err))
		return nil, err
	}
	logger.Debug("Collected fragments", zap.Int("fragmentCount", len(fragments)))
	return fragments, nil
}

// collectDirectory returns the fragments of one directory's subtree.
func collectDirectory(directory string, depth int, set exclude.Set, logger *zap.Logger) ([]Fragment, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory '%s': %w", directory, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var fragments []Fragment
	for _, entry := range entries {
		name := entry.Name()
		if set.Excludes(name) {
			logger.Debug("Skipping excluded entry", zap.String("name", name), zap.Int("depth", depth))
			continue
		}

		entryPath := filepath.Join(directory, name)
		if isDirectory(entryPath, entry) {
			fragments = append(fragments, Fragment{Kind: FragmentFolder, Name: name, Depth: depth})
			subtree, err := collectDirectory(entryPath, depth+1, set, logger)
			if err != nil {
				return nil, err
			}
			fragments = append(fragments, subtree...)
			continue
		}

		fragments = append(fragments,
			Fragment{Kind: FragmentFile, Name: name, Depth: depth},
			Fragment{Kind: FragmentContent, Name: name, Depth: depth, Result: ReadTextFile(entryPath, logger)},
		)
	}
	return fragments, nil
}

// isDirectory classifies an entry, resolving symlinks to their target.
// A dangling link is treated as a file.
func isDirectory(entryPath string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(entryPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// RenderFragment returns the escaped HTML for a single fragment.
func RenderFragment(fragment Fragment) string {
	indent := fragment.Depth * IndentUnitPx
	switch fragment.Kind {
	case FragmentFolder:
		return fmt.Sprintf(`<div class="folder" style="margin-left: %dpx;">📁 %s</div>`, indent, html.EscapeString(fragment.Name))
	case FragmentFile:
		return fmt.Sprintf(`<div class="file" style="margin-left: %dpx;">📄 %s</div>`, indent, html.EscapeString(fragment.Name))
	case FragmentContent:
		body := fragment.Result.Content
		if !fragment.Result.OK() {
			body = fmt.Sprintf("[Error reading file: %v]", fragment.Result.Err)
		}
		return fmt.Sprintf(`<div class="content" style="margin-left: %dpx;">%s</div>`, indent+ContentOffsetPx, html.EscapeString(body))
	default:
		return ""
	}
}
