// Package plugin wires MIDI soundfont audio support into an Ebitengine
// application: it initializes the shared SoundFont provider from the plugin
// configuration, registers the MIDI asset loader, and exposes the decoder
// that turns loaded assets into playable audio streams.
package plugin

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/exvacuum/ebiten-meltysynth/pkg/asset"
	"github.com/exvacuum/ebiten-meltysynth/pkg/fileutil"
	"github.com/exvacuum/ebiten-meltysynth/pkg/logger"
	"github.com/exvacuum/ebiten-meltysynth/pkg/soundfont"
	"github.com/exvacuum/ebiten-meltysynth/pkg/synth"
)

// Plugin configures the soundfont used for playback and registers MIDI
// asset support. Construct it with New, then call Build once during
// application startup, before anything decodes MIDI audio.
type Plugin struct {
	cfg        soundfont.Config
	provider   *soundfont.Provider
	registry   *asset.Registry
	log        *slog.Logger
	decodeOpts []synth.Option
}

// Option modifies the Plugin under construction.
type Option func(*Plugin)

// WithSoundFont appends SoundFont sources to the plugin configuration.
// A default is not provided since soundfonts can be quite large.
func WithSoundFont(sources ...soundfont.Source) Option {
	return func(p *Plugin) {
		p.cfg.Sources = append(p.cfg.Sources, sources...)
	}
}

// WithSoundFontFile appends a .sf2 file source.
func WithSoundFontFile(path string) Option {
	return WithSoundFont(soundfont.FileSource(path))
}

// WithSoundFontBytes appends an in-memory SoundFont source.
func WithSoundFontBytes(label string, data []byte) Option {
	return WithSoundFont(soundfont.BytesSource(label, data))
}

// WithProvider substitutes the SoundFont provider to initialize. The
// process-wide provider is used by default.
func WithProvider(provider *soundfont.Provider) Option {
	return func(p *Plugin) {
		p.provider = provider
	}
}

// WithRegistry substitutes the asset registry to register the MIDI loader
// in. A fresh registry is created by default.
func WithRegistry(registry *asset.Registry) Option {
	return func(p *Plugin) {
		p.registry = registry
	}
}

// WithLogger sets the logger asset and decode failures are reported to.
func WithLogger(log *slog.Logger) Option {
	return func(p *Plugin) {
		p.log = log
	}
}

// WithDecodeOptions sets synthesis options applied to every decode
// performed through the plugin.
func WithDecodeOptions(opts ...synth.Option) Option {
	return func(p *Plugin) {
		p.decodeOpts = append(p.decodeOpts, opts...)
	}
}

// New creates an unbuilt Plugin.
func New(opts ...Option) *Plugin {
	p := &Plugin{
		provider: soundfont.Default(),
		registry: asset.NewRegistry(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Get()
	}
	return p
}

// Build parses the configured SoundFont sources into the shared provider
// and registers the MIDI file loader. A configuration failure aborts the
// build with an error; the host must treat that as fatal rather than
// continue with no usable soundfont.
func (p *Plugin) Build() error {
	if err := p.provider.Initialize(p.cfg); err != nil {
		p.log.Error("soundfont initialization failed", "error", err)
		return fmt.Errorf("failed to build MIDI audio plugin: %w", err)
	}

	p.registry.Register(asset.Loader{})

	handle, _ := p.provider.Get()
	p.log.Info("MIDI audio plugin ready",
		"banks", handle.Len(),
		"sources", handle.Names(),
	)
	return nil
}

// Registry returns the asset registry the MIDI loader is registered in.
func (p *Plugin) Registry() *asset.Registry {
	return p.registry
}

// Provider returns the SoundFont provider the plugin initializes.
func (p *Plugin) Provider() *soundfont.Provider {
	return p.provider
}

// LoadFile loads a MIDI asset through the registry. Read failures are
// reported to the plugin's logger and fail only this asset.
func (p *Plugin) LoadFile(fsys fileutil.FileSystem, path string) (*asset.MidiAudio, error) {
	a, err := p.registry.LoadFile(fsys, path)
	if err != nil {
		p.log.Error("MIDI asset load failed", "path", path, "error", err)
		return nil, err
	}
	return a, nil
}

// Decode builds a fresh synthesizer stream for the asset using the shared
// soundfont. A malformed asset fails only this playback attempt; other
// streams and the shared soundfont state are unaffected.
func (p *Plugin) Decode(a *asset.MidiAudio, opts ...synth.Option) (*synth.Stream, error) {
	handle, err := p.provider.Get()
	if err != nil {
		return nil, err
	}
	combined := make([]synth.Option, 0, len(p.decodeOpts)+len(opts))
	combined = append(combined, p.decodeOpts...)
	combined = append(combined, opts...)
	stream, err := synth.Decode(a, handle, combined...)
	if err != nil {
		p.log.Error("MIDI decode failed", "error", err)
		return nil, err
	}
	return stream, nil
}

// NewPlayer decodes the asset and wraps the stream in an Ebitengine audio
// player on ctx. The stream renders at the context's sample rate, so no
// resampling happens in this layer.
func (p *Plugin) NewPlayer(ctx *audio.Context, a *asset.MidiAudio, opts ...synth.Option) (*audio.Player, error) {
	opts = append(opts, synth.WithSampleRate(ctx.SampleRate()))
	stream, err := p.Decode(a, opts...)
	if err != nil {
		return nil, err
	}
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player: %w", err)
	}
	return player, nil
}
