package asset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/exvacuum/ebiten-meltysynth/pkg/fileutil"
)

// AssetLoader is the seam the engine's asset system loads MIDI data through.
type AssetLoader interface {
	// Load reads the entire byte source into a MidiAudio asset.
	Load(r io.Reader) (*MidiAudio, error)
	// Extensions lists the file extensions routed to this loader.
	Extensions() []string
}

// Registry maps file extensions to asset loaders. Registration happens once
// at plugin setup; lookups may come from any asset-loading goroutine.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]AssetLoader
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]AssetLoader)}
}

// Register routes every extension the loader declares to it. Later
// registrations win on conflicting extensions.
func (r *Registry) Register(l AssetLoader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range l.Extensions() {
		r.loaders[strings.ToLower(ext)] = l
	}
}

// LoaderFor returns the loader registered for the path's extension.
func (r *Registry) LoaderFor(path string) (AssetLoader, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.loaders[ext]
	return l, ok
}

// LoadFile resolves path against fsys (or the OS file system when fsys is
// nil), routes it to the loader registered for its extension, and returns
// the loaded asset. Read failures surface as the loader's read error and
// produce no asset.
func (r *Registry) LoadFile(fsys fileutil.FileSystem, path string) (*MidiAudio, error) {
	l, ok := r.LoaderFor(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, path)
	}

	var (
		f   io.ReadCloser
		err error
	)
	if fsys != nil {
		f, err = fsys.Open(path)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
	}
	defer f.Close()

	return l.Load(f)
}
