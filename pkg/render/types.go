package render

import "treedump/pkg/exclude"

// Arguments holds the options for a single rendering run.
type Arguments struct {
	Root       string      // Directory to traverse.
	Output     string      // Destination file for the rendered document.
	Exclusions exclude.Set // Names and suffixes skipped during traversal.
}

// FragmentKind identifies what a Fragment renders as.
type FragmentKind int

const (
	FragmentFolder  FragmentKind = iota // Folder marker line.
	FragmentFile                        // File marker line.
	FragmentContent                     // Content block following a file marker.
)

// Fragment is one unit of the HTML document, in traversal order.
type Fragment struct {
	Kind   FragmentKind
	Name   string     // Base name for folder and file markers.
	Depth  int        // Nesting level; 0 for direct children of the root.
	Result ReadResult // Populated for FragmentContent only.
}

// ReadResult is the outcome of reading one file as text.
// Exactly one of Content or Err is meaningful.
type ReadResult struct {
	Content string
	Err     error
}

// OK reports whether the file was read successfully.
func (r ReadResult) OK() bool {
	return r.Err == nil
}

// Constants
const (
	DefaultHTMLOutput = "project_code.html"    // HTML document file name.
	DefaultTextOutput = "folder_structure.txt" // Text tree file name.

	IndentUnitPx    = 20 // Pixels of left margin per HTML depth level.
	ContentOffsetPx = 40 // Extra left margin of a content block relative to its file marker.
	TextIndentWidth = 4  // Spaces per text depth level.
)
