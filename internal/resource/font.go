// Package resource owns named engine resources. Fonts are the only resource
// kind the lifecycle manager consults during teardown.
package resource

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrNotFound is returned when a named resource was never loaded.
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate is returned when a name is already taken.
	ErrDuplicate = errors.New("resource name already loaded")
)

// Face is an open font handle.
type Face interface {
	Size() int
	Close() error
}

// Loader opens font faces.
type Loader interface {
	Open(path string, size int) (Face, error)
}

// Font is a loaded face registered under a name.
type Font struct {
	Name string
	Path string
	Size int
	Face Face
}

// Fonts is the named font store. Insertion order is kept so UnloadAll
// releases fonts in the order they were loaded.
type Fonts struct {
	loader Loader
	fonts  []*Font
	logger *log.Logger
}

// NewFonts creates an empty store.
func NewFonts(loader Loader, logger *log.Logger) *Fonts {
	if loader == nil {
		loader = FileLoader{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Fonts{
		loader: loader,
		fonts:  make([]*Font, 0, 4),
		logger: logger,
	}
}

// Load opens the font at path and stores it under name.
func (f *Fonts) Load(path string, size int, name string) error {
	if f.find(name) >= 0 {
		f.logger.Warn("font already loaded", "name", name)
		return fmt.Errorf("resource: font %q: %w", name, ErrDuplicate)
	}

	face, err := f.loader.Open(path, size)
	if err != nil {
		f.logger.Warn("failed to load font", "path", path, "error", err)
		return fmt.Errorf("resource: load font %s: %w", path, err)
	}

	f.fonts = append(f.fonts, &Font{Name: name, Path: path, Size: size, Face: face})
	return nil
}

// Get returns the font stored under name. A missing name is logged as a
// warning and reported as ErrNotFound.
func (f *Fonts) Get(name string) (*Font, error) {
	if i := f.find(name); i >= 0 {
		return f.fonts[i], nil
	}
	f.logger.Warn("failed to find font", "name", name)
	return nil, fmt.Errorf("resource: font %q: %w", name, ErrNotFound)
}

// Has reports whether name is loaded, without logging a miss.
func (f *Fonts) Has(name string) bool {
	return f.find(name) >= 0
}

// Unload closes and removes one font.
func (f *Fonts) Unload(name string) error {
	i := f.find(name)
	if i < 0 {
		f.logger.Warn("attempted to unload non-existent font", "name", name)
		return fmt.Errorf("resource: font %q: %w", name, ErrNotFound)
	}

	font := f.fonts[i]
	f.fonts = append(f.fonts[:i], f.fonts[i+1:]...)
	if err := font.Face.Close(); err != nil {
		return fmt.Errorf("resource: close font %q: %w", name, err)
	}
	return nil
}

// UnloadAll closes every stored font, then releases the store itself.
// Close errors are collected; every font is attempted.
func (f *Fonts) UnloadAll() error {
	var errs []error
	for _, font := range f.fonts {
		if err := font.Face.Close(); err != nil {
			errs = append(errs, fmt.Errorf("resource: close font %q: %w", font.Name, err))
		}
	}
	f.fonts = nil
	return errors.Join(errs...)
}

// Len returns the number of loaded fonts.
func (f *Fonts) Len() int {
	return len(f.fonts)
}

// Names returns the loaded font names in load order.
func (f *Fonts) Names() []string {
	names := make([]string, len(f.fonts))
	for i, font := range f.fonts {
		names[i] = font.Name
	}
	return names
}

func (f *Fonts) find(name string) int {
	for i, font := range f.fonts {
		if font.Name == name {
			return i
		}
	}
	return -1
}

// BuiltinPrefix marks font paths served from memory instead of disk.
const BuiltinPrefix = "builtin:"

// FileLoader opens font files from disk and keeps the file handle until the
// face is closed. Paths starting with BuiltinPrefix need no file.
type FileLoader struct{}

// Open implements Loader.
func (FileLoader) Open(path string, size int) (Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %d", size)
	}
	if strings.HasPrefix(path, BuiltinPrefix) {
		return &memFace{name: strings.TrimPrefix(path, BuiltinPrefix), size: size}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &fileFace{file: file, size: size}, nil
}

type fileFace struct {
	file *os.File
	size int
}

func (f *fileFace) Size() int { return f.size }

func (f *fileFace) Close() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

type memFace struct {
	name string
	size int
}

func (m *memFace) Size() int    { return m.size }
func (m *memFace) Close() error { return nil }
