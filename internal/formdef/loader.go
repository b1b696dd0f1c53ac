package formdef

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader is the interface for form definition loaders.
type Loader interface {
	// Load reads a form from the loader's source.
	Load() (*Form, error)
	// LoadFrom reads a form from a specific path.
	LoadFrom(path string) (*Form, error)
}

// FileSystem abstracts file reads so loaders can be tested against an
// in-memory tree.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem on the real file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) { return os.Open(name) }

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// DefaultFS returns the OS-backed file system.
func DefaultFS() FileSystem { return OSFS{} }

// ParseError reports a syntactically invalid form file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// YAMLLoader loads form definitions from YAML files.
type YAMLLoader struct {
	fs   FileSystem
	path string
}

// NewYAMLLoader creates a YAML loader for the given path.
func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{fs: DefaultFS(), path: path}
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem, path string) *YAMLLoader {
	return &YAMLLoader{fs: fs, path: path}
}

// Load reads the form from the configured path.
func (l *YAMLLoader) Load() (*Form, error) { return l.LoadFrom(l.path) }

// LoadFrom reads a form from a specific path.
func (l *YAMLLoader) LoadFrom(path string) (*Form, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading form file %s: %w", path, err)
	}
	return l.parse(path, data)
}

// LoadFromReader reads a form from an io.Reader.
func (l *YAMLLoader) LoadFromReader(r io.Reader) (*Form, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading form: %w", err)
	}
	return l.parse("<reader>", data)
}

func (l *YAMLLoader) parse(source string, data []byte) (*Form, error) {
	var form Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &form, nil
}

// TOMLLoader loads form definitions from TOML files.
type TOMLLoader struct {
	fs   FileSystem
	path string
}

// NewTOMLLoader creates a TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{fs: DefaultFS(), path: path}
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{fs: fs, path: path}
}

// Load reads the form from the configured path.
func (l *TOMLLoader) Load() (*Form, error) { return l.LoadFrom(l.path) }

// LoadFrom reads a form from a specific path.
func (l *TOMLLoader) LoadFrom(path string) (*Form, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading form file %s: %w", path, err)
	}
	return l.parse(path, data)
}

// LoadFromReader reads a form from an io.Reader.
func (l *TOMLLoader) LoadFromReader(r io.Reader) (*Form, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading form: %w", err)
	}
	return l.parse("<reader>", data)
}

func (l *TOMLLoader) parse(source string, data []byte) (*Form, error) {
	var form Form
	if err := toml.Unmarshal(data, &form); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &form, nil
}

// ForPath returns the loader matching the file's extension.
func ForPath(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLLoader(path), nil
	case ".toml":
		return NewTOMLLoader(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Compile-time interface checks.
var (
	_ Loader = (*YAMLLoader)(nil)
	_ Loader = (*TOMLLoader)(nil)
)
