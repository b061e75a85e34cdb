// Command midiplay plays a Standard MIDI File through the SoundFont
// synthesizer, exercising the same loader, decoder and audio-player path a
// game would use.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/exvacuum/ebiten-meltysynth/pkg/cli"
	"github.com/exvacuum/ebiten-meltysynth/pkg/logger"
	"github.com/exvacuum/ebiten-meltysynth/pkg/plugin"
	"github.com/exvacuum/ebiten-meltysynth/pkg/soundfont"
	"github.com/exvacuum/ebiten-meltysynth/pkg/synth"
)

// game drives playback inside the Ebitengine loop and terminates once the
// stream is exhausted.
type game struct {
	player *audio.Player
	stream *synth.Stream
}

func (g *game) Update() error {
	if !g.player.IsPlaying() && g.stream.Exhausted() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 320, 240
}

func run(args []string) error {
	config, err := cli.ParseArgs(args)
	if err != nil {
		return err
	}
	if config.ShowHelp {
		fmt.Print(cli.Usage())
		return nil
	}

	if err := logger.Init(config.LogLevel); err != nil {
		return err
	}
	log := logger.Get()

	var source soundfont.Source
	if config.SoundFontPath != "" {
		source = soundfont.FileSource(config.SoundFontPath)
	} else {
		location := soundfont.Find(nil)
		if location == nil {
			return fmt.Errorf("no SoundFont found; pass one with -soundfont")
		}
		log.Info("using discovered SoundFont", "path", location.Path)
		source = location.Source()
	}

	p := plugin.New(
		plugin.WithSoundFont(source),
		plugin.WithLogger(log),
	)
	if err := p.Build(); err != nil {
		return err
	}

	midiAudio, err := p.LoadFile(nil, config.MIDIFile)
	if err != nil {
		return err
	}

	ctx := audio.NewContext(synth.DefaultSampleRate)
	stream, err := p.Decode(midiAudio)
	if err != nil {
		return err
	}
	log.Info("playing",
		"file", config.MIDIFile,
		"duration", stream.Duration(),
	)

	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("failed to create audio player: %w", err)
	}
	defer player.Close()
	player.Play()

	ebiten.SetWindowSize(320, 240)
	ebiten.SetWindowTitle("midiplay")
	if err := ebiten.RunGame(&game{player: player, stream: stream}); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return nil
		}
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
