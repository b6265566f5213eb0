package concat

// Defaults reproduce the original workflow: a project root holding a
// src/ and a tests/ directory of TypeScript files, flattened into
// classes.txt at the root.
const (
	DefaultSourceDir = "src"
	DefaultTestDir   = "tests"
	DefaultOutput    = "classes.txt"
	DefaultPattern   = "*.ts"
)

// Arguments holds the configuration options for the concatenation process.
type Arguments struct {
	Root      string // Root directory; source, test, and output paths are resolved against it.
	SourceDir string // Source subdirectory name under the root.
	TestDir   string // Test subdirectory name under the root.
	Output    string // Destination path for the combined output file, relative to the root.
	Pattern   string // Glob pattern matched against file names; non-recursive.
}

// DefaultArguments returns Arguments populated with the standard layout
// rooted at the given directory.
func DefaultArguments(root string) *Arguments {
	return &Arguments{
		Root:      root,
		SourceDir: DefaultSourceDir,
		TestDir:   DefaultTestDir,
		Output:    DefaultOutput,
		Pattern:   DefaultPattern,
	}
}
