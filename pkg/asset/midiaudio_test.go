package asset

import (
	"bytes"
	"testing"
	"time"
)

func TestFromBytesOwnsCopy(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	a := FromBytes(src)

	// Mutating the source must not leak into the asset.
	src[0] = 99
	if got := a.Bytes(); got[0] != 1 {
		t.Errorf("asset shares memory with its source: %v", got)
	}

	// Mutating a returned copy must not leak either.
	out := a.Bytes()
	out[1] = 99
	if got := a.Bytes(); got[1] != 2 {
		t.Errorf("Bytes returned shared memory: %v", got)
	}
}

func TestFromSequence(t *testing.T) {
	notes := []Note{
		{Channel: 1, Preset: 5, Key: 62, Velocity: 80, Duration: time.Second},
	}
	a := FromSequence(notes...)

	if !a.IsSequence() {
		t.Fatal("sequence asset should report IsSequence")
	}
	if a.Bytes() != nil {
		t.Error("sequence asset has no file bytes")
	}
	if a.Size() != 0 {
		t.Error("sequence asset has no byte size")
	}

	notes[0].Key = 0
	if got := a.Sequence(); got[0].Key != 62 {
		t.Errorf("asset shares memory with its source notes: %+v", got[0])
	}
}

func TestReaderIsFresh(t *testing.T) {
	a := FromBytes([]byte("abcdef"))

	first := make([]byte, 3)
	a.Reader().Read(first)

	second := make([]byte, 6)
	n, _ := a.Reader().Read(second)
	if n != 6 || !bytes.Equal(second, []byte("abcdef")) {
		t.Errorf("second Reader did not start from the beginning: %q", second[:n])
	}
}

func TestDefaultNote(t *testing.T) {
	n := DefaultNote()
	if n.Key != 60 || n.Velocity != 100 || n.Duration != time.Second {
		t.Errorf("unexpected default note: %+v", n)
	}
}
