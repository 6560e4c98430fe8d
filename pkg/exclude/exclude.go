// Package exclude decides which directory entries a traversal skips.
package exclude

import (
	"sort"
	"strings"
)

// ZipSuffix is the archive suffix skipped by the HTML preset.
const ZipSuffix = ".zip"

// Set is an immutable collection of excluded base names and name suffixes.
// The zero value excludes nothing.
type Set struct {
	names    map[string]struct{} // Exact, case-sensitive base names.
	suffixes []string            // Literal suffixes matched against base names.
}

// New builds a Set from exact names and literal suffixes. Empty strings are dropped.
func New(names []string, suffixes []string) Set {
	s := Set{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name == "" {
			continue
		}
		s.names[name] = struct{}{}
	}
	for _, suffix := range suffixes {
		if suffix == "" {
			continue
		}
		s.suffixes = append(s.suffixes, suffix)
	}
	return s
}

// HTMLDefaults returns the set used by the HTML renderer: generated folders,
// lock and runtime files, and zip archives.
func HTMLDefaults() Set {
	files := []string{"package-lock.json", ".gitignore", "webpack-runtime.js", "trace"}
	folders := []string{
		"node_modules", ".git", ".astro", ".vscode", ".DS_Store", "cache", "app",
		"static", "server", "build", ".next", "docs", "dist", "public",
	}
	return New(append(folders, files...), []string{ZipSuffix})
}

// TextDefaults returns the folder names pruned by the text renderer.
func TextDefaults() Set {
	return New([]string{"node_modules", ".git", ".vscode", ".astro", "z-zip", ".next"}, nil)
}

// Excludes reports whether a base name is excluded, either by exact match or by suffix.
// It must be called with a base name, not a path.
func (s Set) Excludes(name string) bool {
	if _, ok := s.names[name]; ok {
		return true
	}
	for _, suffix := range s.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Names returns the exact names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suffixes returns a copy of the configured suffixes.
func (s Set) Suffixes() []string {
	return append([]string(nil), s.suffixes...)
}

// Len is the number of exact names plus suffixes.
func (s Set) Len() int {
	return len(s.names) + len(s.suffixes)
}
