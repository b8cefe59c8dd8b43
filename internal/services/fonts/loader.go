package fonts

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// ErrUnavailable marks every failure to load the watermark font. Callers
// check for it with errors.Is.
var ErrUnavailable = errors.New("watermark font is not available")

// Loader resolves the watermark font lazily and caches the result. A failed
// attempt leaves the cache empty, so the next call tries again.
type Loader struct {
	path string

	mu       sync.Mutex
	resource *Resource
}

// NewLoader builds a loader for the font file at path. An empty path selects
// the bundled Go Regular face.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Ensure returns the cached font resource, loading it on first use.
func (l *Loader) Ensure() (*Resource, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.resource != nil {
		return l.resource, nil
	}

	data, err := l.read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resource, err := NewResource(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	l.resource = resource
	return resource, nil
}

func (l *Loader) read() ([]byte, error) {
	if l.path == "" {
		return goregular.TTF, nil
	}
	return os.ReadFile(l.path)
}
