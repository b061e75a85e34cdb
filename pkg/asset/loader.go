package asset

import (
	"errors"
	"fmt"
	"io"
)

// Asset-loading errors.
var (
	// ErrReadFailed is returned when the asset byte source cannot be read.
	ErrReadFailed = errors.New("failed to read MIDI asset")

	// ErrUnknownExtension is returned when no loader is registered for a
	// file's extension.
	ErrUnknownExtension = errors.New("no loader registered for extension")
)

// Loader loads MIDI file bytes into a MidiAudio asset.
//
// Load copies the entire byte source and performs no MIDI validation;
// malformed data is detected at decode time, where the synthesizer parses
// the file. A read failure therefore means an I/O problem, never a format
// problem.
type Loader struct{}

// Load reads r to the end and wraps the bytes as a MidiAudio asset.
func (Loader) Load(r io.Reader) (*MidiAudio, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return &MidiAudio{data: data}, nil
}

// Extensions returns the file extensions routed to this loader.
func (Loader) Extensions() []string {
	return []string{"mid", "midi"}
}
