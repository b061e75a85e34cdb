package cli

import (
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := ParseArgs([]string{"song.mid"})
		if err != nil {
			t.Fatalf("ParseArgs failed: %v", err)
		}
		if config.MIDIFile != "song.mid" {
			t.Errorf("MIDIFile = %q", config.MIDIFile)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %q, want info", config.LogLevel)
		}
		if config.SoundFontPath != "" {
			t.Errorf("SoundFontPath = %q, want empty", config.SoundFontPath)
		}
	})

	t.Run("flags", func(t *testing.T) {
		config, err := ParseArgs([]string{"-soundfont", "bank.sf2", "-log-level", "debug", "tune.midi"})
		if err != nil {
			t.Fatalf("ParseArgs failed: %v", err)
		}
		if config.SoundFontPath != "bank.sf2" {
			t.Errorf("SoundFontPath = %q", config.SoundFontPath)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %q", config.LogLevel)
		}
	})

	t.Run("shorthand flags", func(t *testing.T) {
		config, err := ParseArgs([]string{"-s", "bank.sf2", "-l", "warn", "tune.mid"})
		if err != nil {
			t.Fatalf("ParseArgs failed: %v", err)
		}
		if config.SoundFontPath != "bank.sf2" || config.LogLevel != "warn" {
			t.Errorf("unexpected config: %+v", config)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ParseArgs(nil); err == nil {
			t.Error("expected error without a MIDI file")
		}
	})

	t.Run("too many files", func(t *testing.T) {
		if _, err := ParseArgs([]string{"a.mid", "b.mid"}); err == nil {
			t.Error("expected error with two MIDI files")
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		if _, err := ParseArgs([]string{"song.wav"}); err == nil {
			t.Error("expected error for non-MIDI file")
		}
	})

	t.Run("help skips validation", func(t *testing.T) {
		config, err := ParseArgs([]string{"-h"})
		if err != nil {
			t.Fatalf("ParseArgs failed: %v", err)
		}
		if !config.ShowHelp {
			t.Error("ShowHelp should be set")
		}
	})
}

func TestUsage(t *testing.T) {
	if !strings.Contains(Usage(), "midiplay") {
		t.Error("usage text should mention the command name")
	}
}
