package synth

import (
	"io"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/exvacuum/ebiten-meltysynth/pkg/asset"
)

// TestStreamChunkSizeIndependenceProperty checks that the total number of
// frames a stream yields does not depend on how the mixer slices its pulls:
// for any chunk size, draining the stream produces the same frame count as
// the reference drain.
func TestStreamChunkSizeIndependenceProperty(t *testing.T) {
	handle := loadTestSoundFont(t)
	midiAsset := asset.FromBytes(makeTestMIDI(1, 30))
	tail := 50 * time.Millisecond

	reference, err := Decode(midiAsset, handle, WithReleaseTail(tail))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := int64(len(pullAll(t, reference, 512)) / ChannelCount)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("total frames are chunk-size independent", prop.ForAll(
		func(chunkFrames int) bool {
			stream, err := Decode(midiAsset, handle, WithReleaseTail(tail))
			if err != nil {
				t.Logf("Decode failed: %v", err)
				return false
			}
			got := int64(len(pullAll(t, stream, chunkFrames)) / ChannelCount)
			if got != want {
				t.Logf("chunk %d: got %d frames, want %d", chunkFrames, got, want)
				return false
			}
			return stream.Exhausted()
		},
		gen.IntRange(16, 2048),
	))

	properties.TestingRun(t)
}

// TestStreamFiniteProperty checks that any decoded stream reaches its
// terminal state in a bounded number of pulls, whatever the note count.
func TestStreamFiniteProperty(t *testing.T) {
	handle := loadTestSoundFont(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10

	properties := gopter.NewProperties(parameters)

	properties.Property("streams are finite", prop.ForAll(
		func(numNotes int) bool {
			stream, err := Decode(asset.FromBytes(makeTestMIDI(numNotes, 10)), handle,
				WithReleaseTail(20*time.Millisecond))
			if err != nil {
				t.Logf("Decode failed: %v", err)
				return false
			}

			// Generous bound: nominal length plus tail, in 256-frame
			// pulls, with slack for the final EOF pull.
			nominal := int64(stream.Duration().Seconds() * float64(stream.SampleRate()))
			maxPulls := (nominal+int64(stream.SampleRate()))/256 + 16

			dst := make([]float32, 256*ChannelCount)
			for pulls := int64(0); pulls < maxPulls; pulls++ {
				if _, err := stream.PullFrames(dst); err == io.EOF {
					return stream.Exhausted()
				}
			}
			t.Logf("stream not exhausted after %d pulls", maxPulls)
			return false
		},
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}
