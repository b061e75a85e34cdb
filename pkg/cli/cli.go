// Package cli parses command line arguments for the midiplay demo.
package cli

import (
	"flag"
	"fmt"
	"strings"
)

// Config holds settings parsed from command line arguments.
type Config struct {
	// SoundFontPath is the .sf2 file to synthesize with. When empty the
	// default SoundFont is searched for next to the binary.
	SoundFontPath string
	// MIDIFile is the MIDI file to play.
	MIDIFile string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// ShowHelp requests the usage text.
	ShowHelp bool
}

// ParseArgs parses args (without the program name) into a Config.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("midiplay", flag.ContinueOnError)

	config := &Config{}
	fs.StringVar(&config.SoundFontPath, "soundfont", "", "path to the SoundFont (.sf2) file")
	fs.StringVar(&config.SoundFontPath, "s", "", "path to the SoundFont (shorthand)")
	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (shorthand)")
	fs.BoolVar(&config.ShowHelp, "help", false, "show usage")
	fs.BoolVar(&config.ShowHelp, "h", false, "show usage (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if config.ShowHelp {
		return config, nil
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, fmt.Errorf("expected exactly one MIDI file argument, got %d", len(rest))
	}
	config.MIDIFile = rest[0]

	if !strings.HasSuffix(strings.ToLower(config.MIDIFile), ".mid") &&
		!strings.HasSuffix(strings.ToLower(config.MIDIFile), ".midi") {
		return nil, fmt.Errorf("not a MIDI file: %s", config.MIDIFile)
	}

	return config, nil
}

// Usage returns the usage text.
func Usage() string {
	return `Usage: midiplay [options] <file.mid>

Plays a Standard MIDI File through the SoundFont synthesizer.

Options:
  -soundfont, -s <path>   SoundFont (.sf2) file to synthesize with
  -log-level, -l <level>  log level: debug, info, warn, error (default info)
  -help, -h               show this help
`
}
