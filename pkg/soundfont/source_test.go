package soundfont

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/exvacuum/ebiten-meltysynth/pkg/fileutil"
)

type erroringReader struct{}

func (erroringReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestSourceLabel(t *testing.T) {
	cases := []struct {
		name string
		src  Source
		want string
	}{
		{"explicit label wins", Source{Path: "a.sf2", Label: "custom"}, "custom"},
		{"path is the fallback", Source{Path: "a.sf2"}, "a.sf2"},
		{"in-memory default", Source{Data: []byte{1}}, "(in-memory SoundFont)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.src.label(); got != tc.want {
				t.Errorf("label = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSourceRead(t *testing.T) {
	t.Run("empty source", func(t *testing.T) {
		if _, err := (Source{}).read(); !errors.Is(err, ErrNoSource) {
			t.Errorf("expected ErrNoSource, got: %v", err)
		}
	})

	t.Run("reader failure", func(t *testing.T) {
		if _, err := ReaderSource("pipe", erroringReader{}).read(); err == nil {
			t.Error("expected error from broken reader")
		}
	})

	t.Run("file system source", func(t *testing.T) {
		fsys := fileutil.NewEmbedFS(fstest.MapFS{
			"fonts/bank.sf2": {Data: []byte("bank")},
		}, "fonts")

		data, err := FSSource(fsys, "bank.sf2").read()
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if string(data) != "bank" {
			t.Errorf("data = %q", data)
		}
	})

	t.Run("missing file system source", func(t *testing.T) {
		fsys := fileutil.NewEmbedFS(fstest.MapFS{}, "fonts")
		if _, err := FSSource(fsys, "bank.sf2").read(); !errors.Is(err, ErrSoundFontNotFound) {
			t.Errorf("expected ErrSoundFontNotFound, got: %v", err)
		}
	})
}
