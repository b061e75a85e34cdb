package soundfont

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/sinshu/go-meltysynth/meltysynth"
)

// Handle is a shared, read-only view over the parsed SoundFont bank(s).
// Any number of concurrently decoding streams may hold the same Handle;
// none of them may mutate it.
type Handle struct {
	banks []*meltysynth.SoundFont
	names []string
}

// Len returns the number of parsed banks.
func (h *Handle) Len() int {
	return len(h.banks)
}

// Default returns the first parsed bank.
func (h *Handle) Default() *meltysynth.SoundFont {
	return h.banks[0]
}

// Bank returns the i-th parsed bank, in the order the sources were listed
// in the Config. ok is false when i is out of range.
func (h *Handle) Bank(i int) (sf *meltysynth.SoundFont, ok bool) {
	if i < 0 || i >= len(h.banks) {
		return nil, false
	}
	return h.banks[i], true
}

// Names returns the source labels of the parsed banks.
func (h *Handle) Names() []string {
	out := make([]string, len(h.names))
	copy(out, h.names)
	return out
}

// Provider parses SoundFont banks once at startup and hands out shared
// read-only access for the rest of the application's lifetime.
//
// Initialize must complete before the first Get. That ordering is the
// caller's responsibility (plugin build runs before any decode); the lock
// here only makes the state transition itself safe.
type Provider struct {
	mu     sync.RWMutex
	handle *Handle
}

// NewProvider creates an uninitialized Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Initialize parses every source in cfg into an in-memory bank. It fails if
// cfg lists no sources, a source cannot be read, or its data is not a valid
// SoundFont. A failed Initialize leaves the provider uninitialized; a second
// successful call is rejected with ErrAlreadyInitialized.
func (p *Provider) Initialize(cfg Config) error {
	if len(cfg.Sources) == 0 {
		return ErrNoSource
	}

	banks := make([]*meltysynth.SoundFont, 0, len(cfg.Sources))
	names := make([]string, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		data, err := src.read()
		if err != nil {
			return err
		}
		sf, err := meltysynth.NewSoundFont(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSoundFontInvalid, src.label(), err)
		}
		banks = append(banks, sf)
		names = append(names, src.label())
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle != nil {
		return ErrAlreadyInitialized
	}
	p.handle = &Handle{banks: banks, names: names}
	return nil
}

// Initialized reports whether Initialize has completed successfully.
func (p *Provider) Initialized() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.handle != nil
}

// Get returns the shared read-only handle to the parsed bank(s).
// It fails with ErrNotInitialized before Initialize has completed.
func (p *Provider) Get() (*Handle, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.handle == nil {
		return nil, ErrNotInitialized
	}
	return p.handle, nil
}

// defaultProvider is the process-wide provider used by the plugin layer,
// mirroring the engine-wide shared bank the plugin configuration owns.
var defaultProvider = NewProvider()

// Default returns the process-wide Provider.
func Default() *Provider {
	return defaultProvider
}
