package ports

// FileSystem is the minimal set of primitives the generator and the project
// config store need. Paths are slash or OS separated and may be relative to the
// process working directory. Implementations must return errors satisfying
// errors.Is(err, fs.ErrNotExist) for missing files.
type FileSystem interface {
	Exists(path string) (bool, error)
	MkdirAll(path string) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	// Glob returns the paths matching pattern, sorted lexically.
	Glob(pattern string) ([]string, error)
}
