// Package resource implements the text and image resource loaders (C3, C4):
// a two-pass text-file loader producing (data, line_count), a non-allocating
// tokenizer over string views, and an image decoder that flips pixels
// vertically for GPU origin-at-bottom-left.
package resource

import (
	"os"
	"path/filepath"

	"github.com/omerfuyar/shuildgo/shuilderr"
)

// Root resolves relative resource paths to <executable-directory>/resources/<relative>,
// matching spec §4.3/§6.
type Root struct {
	dir string
}

// NewRoot resolves the resources directory relative to the running
// executable. Falls back to the working directory if the executable path
// cannot be determined.
func NewRoot() *Root {
	exe, err := os.Executable()
	base := "."
	if err == nil {
		base = filepath.Dir(exe)
	}
	return &Root{dir: filepath.Join(base, "resources")}
}

// NewRootAt pins the resource root to an explicit directory, used by tests.
func NewRootAt(dir string) *Root {
	return &Root{dir: dir}
}

// Resolve joins a relative path under the resource root.
func (r *Root) Resolve(relative string) string {
	return filepath.Join(r.dir, filepath.FromSlash(relative))
}

// Open opens a resource file for reading, wrapping failures as shuilderr.FileOpen.
func (r *Root) Open(relative string) (*os.File, error) {
	path := r.Resolve(relative)
	f, err := os.Open(path)
	if err != nil {
		return nil, shuilderr.New(shuilderr.FileOpen, "resource.Open "+path, err)
	}
	return f, nil
}
