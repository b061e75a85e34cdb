// Package soundfont holds the parsed SoundFont bank(s) used for MIDI
// synthesis. Banks are parsed once at startup via go-meltysynth and handed
// out as shared, read-only handles for the lifetime of the process.
package soundfont

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/exvacuum/ebiten-meltysynth/pkg/fileutil"
)

// SoundFont-related errors.
var (
	// ErrNoSource is returned when a Config carries no SoundFont source.
	ErrNoSource = errors.New("at least one SoundFont source is required")

	// ErrSoundFontNotFound is returned when a SoundFont source cannot be read.
	ErrSoundFontNotFound = errors.New("SoundFont source not found")

	// ErrSoundFontInvalid is returned when SoundFont data fails parsing.
	ErrSoundFontInvalid = errors.New("invalid SoundFont data")

	// ErrNotInitialized is returned by Get before Initialize has completed.
	ErrNotInitialized = errors.New("SoundFont provider not initialized")

	// ErrAlreadyInitialized is returned when Initialize is called twice.
	ErrAlreadyInitialized = errors.New("SoundFont provider already initialized")
)

// Source describes one SoundFont byte source. Exactly one of Data, Reader or
// Path should be set; they are consulted in that order.
type Source struct {
	// Data supplies the SoundFont bytes directly (e.g. from go:embed).
	Data []byte

	// Reader supplies the SoundFont bytes as a stream. Consumed once.
	Reader io.Reader

	// Path is the location of a .sf2 file. It is resolved through FS when
	// set and through the OS file system otherwise.
	Path string

	// FS optionally supplies the file system Path is resolved against.
	FS fileutil.FileSystem

	// Label names the source in error messages and bank listings. Defaults
	// to Path when empty.
	Label string
}

// FileSource returns a Source reading a .sf2 file from the OS file system.
func FileSource(path string) Source {
	return Source{Path: path}
}

// FSSource returns a Source reading a .sf2 file through the given FileSystem.
func FSSource(fsys fileutil.FileSystem, path string) Source {
	return Source{Path: path, FS: fsys}
}

// BytesSource returns a Source over in-memory SoundFont data.
func BytesSource(label string, data []byte) Source {
	return Source{Data: data, Label: label}
}

// ReaderSource returns a Source consuming r once.
func ReaderSource(label string, r io.Reader) Source {
	return Source{Reader: r, Label: label}
}

// label returns the display name of the source.
func (s Source) label() string {
	if s.Label != "" {
		return s.Label
	}
	if s.Path != "" {
		return s.Path
	}
	return "(in-memory SoundFont)"
}

// read returns the complete SoundFont bytes of the source.
func (s Source) read() ([]byte, error) {
	switch {
	case s.Data != nil:
		return s.Data, nil
	case s.Reader != nil:
		data, err := io.ReadAll(s.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read SoundFont %s: %w", s.label(), err)
		}
		return data, nil
	case s.Path != "":
		if s.FS != nil {
			data, err := s.FS.ReadFile(s.Path)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrSoundFontNotFound, s.Path)
			}
			return data, nil
		}
		data, err := os.ReadFile(s.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrSoundFontNotFound, s.Path)
			}
			return nil, fmt.Errorf("failed to read SoundFont file: %w", err)
		}
		return data, nil
	}
	return nil, ErrNoSource
}

// Config is the immutable soundfont configuration supplied once at plugin
// construction. It lists the bank sources parsed by Provider.Initialize.
type Config struct {
	Sources []Source
}

// NewConfig creates a Config from the given sources.
func NewConfig(sources ...Source) Config {
	return Config{Sources: sources}
}
