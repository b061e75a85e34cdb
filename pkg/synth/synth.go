// Package synth turns MIDI audio assets into pull-based sample streams using
// the go-meltysynth software synthesizer. A Stream is created per playback
// attempt by Decode and is consumed by the engine's audio mixer, one pull per
// buffer period.
package synth

import (
	"errors"
	"time"
)

// DefaultSampleRate is the sample rate streams render at unless overridden.
const DefaultSampleRate = 44100

// ChannelCount is the number of output channels. Synthesis is always stereo.
const ChannelCount = 2

// DefaultReleaseTail is how much audio is rendered past the end of the MIDI
// sequence so envelope releases and reverb can decay before the stream ends.
const DefaultReleaseTail = 500 * time.Millisecond

// Decode errors.
var (
	// ErrNoAsset is returned when Decode is called without an asset.
	ErrNoAsset = errors.New("MIDI asset is required")

	// ErrNoSoundFont is returned when Decode is called without a SoundFont
	// handle.
	ErrNoSoundFont = errors.New("SoundFont handle is required for MIDI playback")

	// ErrInvalidFormat is returned when the asset bytes are not a valid
	// Standard MIDI File.
	ErrInvalidFormat = errors.New("invalid MIDI file format")

	// ErrBankOutOfRange is returned when the selected SoundFont bank index
	// does not exist in the handle.
	ErrBankOutOfRange = errors.New("SoundFont bank index out of range")
)

// Settings control how a Stream renders.
type Settings struct {
	// SampleRate in Hz.
	SampleRate int
	// ReleaseTail is the extra render time after the sequence ends.
	ReleaseTail time.Duration
	// Bank selects which parsed SoundFont bank to synthesize with.
	Bank int
}

func defaultSettings() Settings {
	return Settings{
		SampleRate:  DefaultSampleRate,
		ReleaseTail: DefaultReleaseTail,
		Bank:        0,
	}
}

// Option modifies decode Settings.
type Option func(*Settings)

// WithSampleRate sets the output sample rate in Hz.
func WithSampleRate(hz int) Option {
	return func(s *Settings) {
		if hz > 0 {
			s.SampleRate = hz
		}
	}
}

// WithReleaseTail sets the render time past the end of the sequence.
// A zero tail ends the stream exactly at the nominal sequence length.
func WithReleaseTail(d time.Duration) Option {
	return func(s *Settings) {
		if d >= 0 {
			s.ReleaseTail = d
		}
	}
}

// WithBank selects the SoundFont bank to synthesize with, in the order the
// provider's sources were configured.
func WithBank(i int) Option {
	return func(s *Settings) {
		s.Bank = i
	}
}
