package synth

import (
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/exvacuum/ebiten-meltysynth/pkg/asset"
)

// Stream is a forward-only, finite stream of interleaved stereo samples
// rendered on demand from a decoded MIDI asset. It owns its synthesizer
// state exclusively; the SoundFont bank behind it is shared read-only with
// every other stream.
//
// A stream starts in a constructed state, advances its synthesis clock on
// every pull, and becomes exhausted once the sequence and its release tail
// have been rendered. Exhaustion is terminal: further pulls report io.EOF.
// There is no seek or rewind; callers wanting to restart decode a fresh
// stream from the same asset.
//
// The mixer thread is the intended single consumer, but all methods are
// safe to call with a concurrent control thread holding the same stream.
type Stream struct {
	mu sync.Mutex

	sampleRate int
	duration   time.Duration

	// File-backed assets render through the sequencer; sequence-backed
	// assets drive the synthesizer directly.
	sequencer *meltysynth.MidiFileSequencer
	synth     *meltysynth.Synthesizer

	notes         []asset.Note
	noteIdx       int
	noteOn        bool
	noteRemaining int64

	remaining     int64 // nominal sequence frames left to render
	tailRemaining int64 // release-tail frames left after the sequence
	rendered      int64
	exhausted     bool

	left, right []float32
}

// SampleRate returns the stream's sample rate in Hz.
func (s *Stream) SampleRate() int {
	return s.sampleRate
}

// Channels returns the number of output channels per frame.
func (s *Stream) Channels() int {
	return ChannelCount
}

// Duration returns the nominal length of the MIDI sequence, excluding the
// release tail.
func (s *Stream) Duration() time.Duration {
	return s.duration
}

// Position returns how much audio has been rendered so far.
func (s *Stream) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.rendered) * time.Second / time.Duration(s.sampleRate)
}

// RenderedFrames returns the total number of sample frames rendered.
func (s *Stream) RenderedFrames() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rendered
}

// Exhausted reports whether the stream has reached its terminal state.
func (s *Stream) Exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exhausted
}

// PullFrames renders the next chunk of audio into dst as interleaved stereo
// float32 samples and returns the number of frames written (dst receives
// 2*n values). A short count means the stream ended mid-chunk; the unused
// remainder of dst is zeroed. Once the stream is exhausted PullFrames
// returns (0, io.EOF).
func (s *Stream) PullFrames(dst []float32) (int, error) {
	frames := len(dst) / ChannelCount
	if frames == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exhausted {
		return 0, io.EOF
	}

	n := s.renderLocked(frames)
	for i := 0; i < n; i++ {
		dst[2*i] = s.left[i]
		dst[2*i+1] = s.right[i]
	}
	for i := n * ChannelCount; i < frames*ChannelCount; i++ {
		dst[i] = 0
	}

	if n == 0 {
		s.exhausted = true
		return 0, io.EOF
	}
	return n, nil
}

// Read implements io.Reader for Ebitengine's audio player, emitting 16-bit
// little-endian interleaved stereo PCM. It shares the stream's single
// forward cursor with PullFrames.
func (s *Stream) Read(p []byte) (int, error) {
	// 16-bit stereo = 4 bytes per frame.
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exhausted {
		return 0, io.EOF
	}

	n := s.renderLocked(frames)
	if n == 0 {
		s.exhausted = true
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		l := int16(clamp(s.left[i], -1, 1) * 32767)
		r := int16(clamp(s.right[i], -1, 1) * 32767)
		binary.LittleEndian.PutUint16(p[i*4:], uint16(l))
		binary.LittleEndian.PutUint16(p[i*4+2:], uint16(r))
	}
	return n * 4, nil
}

// renderLocked fills s.left/s.right with up to frames frames of audio and
// returns how many were produced. Zero means the stream is spent.
// Must be called with s.mu held.
func (s *Stream) renderLocked(frames int) int {
	s.ensureScratch(frames)
	var n int
	if s.sequencer != nil {
		n = s.renderFile(frames)
	} else {
		n = s.renderSequence(frames)
	}
	s.rendered += int64(n)
	return n
}

// renderFile advances the MIDI file sequencer, then keeps rendering through
// the release tail once the nominal sequence length has elapsed.
func (s *Stream) renderFile(frames int) int {
	rendered := 0
	for rendered < frames {
		budget := s.remaining
		if budget <= 0 {
			budget = s.tailRemaining
		}
		if budget <= 0 {
			break
		}
		chunk := frames - rendered
		if int64(chunk) > budget {
			chunk = int(budget)
		}
		s.sequencer.Render(s.left[rendered:rendered+chunk], s.right[rendered:rendered+chunk])
		if s.remaining > 0 {
			s.remaining -= int64(chunk)
		} else {
			s.tailRemaining -= int64(chunk)
		}
		rendered += chunk
	}
	return rendered
}

// renderSequence plays the programmatic note list back to back: program
// change, key down, render the note's duration, key up, next note. After
// the last note the release tail lets the final envelope decay.
func (s *Stream) renderSequence(frames int) int {
	rendered := 0
	for rendered < frames {
		if s.noteIdx >= len(s.notes) {
			if s.tailRemaining <= 0 {
				break
			}
			chunk := frames - rendered
			if int64(chunk) > s.tailRemaining {
				chunk = int(s.tailRemaining)
			}
			s.synth.Render(s.left[rendered:rendered+chunk], s.right[rendered:rendered+chunk])
			s.tailRemaining -= int64(chunk)
			rendered += chunk
			continue
		}

		note := s.notes[s.noteIdx]
		if !s.noteOn {
			// 0xC0 = program change, selects the note's preset.
			s.synth.ProcessMidiMessage(note.Channel, 0xC0, note.Preset, 0)
			s.synth.NoteOn(note.Channel, note.Key, note.Velocity)
			s.noteOn = true
			s.noteRemaining = framesFor(note.Duration, s.sampleRate)
		}
		if s.noteRemaining <= 0 {
			s.synth.NoteOff(note.Channel, note.Key)
			s.noteOn = false
			s.noteIdx++
			continue
		}

		chunk := frames - rendered
		if int64(chunk) > s.noteRemaining {
			chunk = int(s.noteRemaining)
		}
		s.synth.Render(s.left[rendered:rendered+chunk], s.right[rendered:rendered+chunk])
		s.noteRemaining -= int64(chunk)
		rendered += chunk
	}
	return rendered
}

// ensureScratch grows the channel scratch buffers to hold frames frames.
func (s *Stream) ensureScratch(frames int) {
	if cap(s.left) < frames {
		s.left = make([]float32, frames)
		s.right = make([]float32, frames)
	}
	s.left = s.left[:frames]
	s.right = s.right[:frames]
}

// clamp restricts a value to the range [min, max].
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
