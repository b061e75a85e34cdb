// Package asset defines the MIDI audio asset type and the loader that brings
// raw Standard MIDI File bytes into it from the engine's asset pipeline.
package asset

import (
	"bytes"
	"time"
)

// Note represents a single MIDI note in a programmatic sequence.
type Note struct {
	// Channel to play the note on.
	Channel int32
	// Preset (instrument) to play the note with, per the General MIDI spec.
	Preset int32
	// Key to play (60 is middle C).
	Key int32
	// Velocity to play the note at (1..127).
	Velocity int32
	// Duration to hold the note for.
	Duration time.Duration
}

// DefaultNote returns a one-second middle C on channel 0.
func DefaultNote() Note {
	return Note{
		Channel:  0,
		Preset:   0,
		Key:      60,
		Velocity: 100,
		Duration: time.Second,
	}
}

// MidiAudio is a MIDI audio asset: either a complete, unmodified copy of a
// Standard MIDI File, or a simple programmatic sequence of notes. The asset
// is immutable once created; decoding never consumes or alters it, so the
// same asset can be decoded any number of times.
type MidiAudio struct {
	data     []byte
	sequence []Note
}

// FromBytes creates a file-backed asset owning a copy of data.
func FromBytes(data []byte) *MidiAudio {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &MidiAudio{data: owned}
}

// FromSequence creates a sequence-backed asset owning a copy of notes.
func FromSequence(notes ...Note) *MidiAudio {
	owned := make([]Note, len(notes))
	copy(owned, notes)
	return &MidiAudio{sequence: owned}
}

// IsSequence reports whether the asset is a programmatic note sequence
// rather than MIDI file bytes.
func (a *MidiAudio) IsSequence() bool {
	return a.data == nil
}

// Size returns the byte length of a file-backed asset, 0 for sequences.
func (a *MidiAudio) Size() int {
	return len(a.data)
}

// Bytes returns a copy of the asset's MIDI file bytes, nil for sequences.
func (a *MidiAudio) Bytes() []byte {
	if a.data == nil {
		return nil
	}
	out := make([]byte, len(a.data))
	copy(out, a.data)
	return out
}

// Reader returns a fresh read-only reader over the asset's MIDI file bytes.
func (a *MidiAudio) Reader() *bytes.Reader {
	return bytes.NewReader(a.data)
}

// Sequence returns a copy of the asset's note sequence, nil for file assets.
func (a *MidiAudio) Sequence() []Note {
	if a.sequence == nil {
		return nil
	}
	out := make([]Note, len(a.sequence))
	copy(out, a.sequence)
	return out
}
