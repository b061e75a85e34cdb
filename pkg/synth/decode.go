package synth

import (
	"fmt"
	"time"

	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/exvacuum/ebiten-meltysynth/pkg/asset"
	"github.com/exvacuum/ebiten-meltysynth/pkg/soundfont"
)

// Decode builds a synthesizer for the asset bound to the shared SoundFont
// handle and returns a fresh Stream over its output.
//
// Each call produces an independent stream with its own synthesis state;
// decoding the same asset twice yields two non-interfering streams with
// identical sample content. The handle itself is only read, so a failed
// decode leaves it untouched and usable by concurrent or later decodes.
func Decode(a *asset.MidiAudio, h *soundfont.Handle, opts ...Option) (*Stream, error) {
	if a == nil {
		return nil, ErrNoAsset
	}
	if h == nil {
		return nil, ErrNoSoundFont
	}

	settings := defaultSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	bank, ok := h.Bank(settings.Bank)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBankOutOfRange, settings.Bank)
	}

	synthSettings := meltysynth.NewSynthesizerSettings(int32(settings.SampleRate))
	synthesizer, err := meltysynth.NewSynthesizer(bank, synthSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesizer: %w", err)
	}

	s := &Stream{
		sampleRate:    settings.SampleRate,
		tailRemaining: framesFor(settings.ReleaseTail, settings.SampleRate),
	}

	if a.IsSequence() {
		s.synth = synthesizer
		s.notes = a.Sequence()
		var total time.Duration
		for _, n := range s.notes {
			if n.Duration > 0 {
				total += n.Duration
			}
		}
		s.duration = total
	} else {
		midi, err := meltysynth.NewMidiFile(a.Reader())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		sequencer := meltysynth.NewMidiFileSequencer(synthesizer)
		sequencer.Play(midi, false) // false = don't loop
		s.sequencer = sequencer
		s.duration = midi.GetLength()
	}

	s.remaining = framesFor(s.duration, settings.SampleRate)
	return s, nil
}

// framesFor converts a duration to a whole frame count at the given rate.
func framesFor(d time.Duration, sampleRate int) int64 {
	if d <= 0 {
		return 0
	}
	return int64(d.Seconds() * float64(sampleRate))
}
