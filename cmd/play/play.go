package play

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/common/config"
	"github.com/gigurra/dit/cmd/common/morse"
	"github.com/gigurra/dit/cmd/common/render"
	"github.com/gigurra/dit/cmd/common/sink"
	"github.com/spf13/cobra"
)

type Params struct {
	Text       []string `pos:"true" optional:"true" help:"Text to play. If none provided, reads one message per line from stdin."`
	Unit       string   `name:"unit" short:"u" optional:"true" help:"Length of one Morse unit as a Go duration." default:"250ms"`
	WPM        int      `name:"wpm" short:"w" optional:"true" help:"Words per minute. Overrides --unit when set." default:"0"`
	SampleRate int      `name:"sample-rate" short:"r" optional:"true" help:"Sample rate in Hz." default:"44100"`
	Frequency  float64  `name:"frequency" short:"f" optional:"true" help:"Tone frequency in Hz." default:"400"`
	Volume     float64  `name:"volume" optional:"true" help:"Volume between 0 and 1." default:"1.0"`
	Threshold  float64  `name:"threshold" optional:"true" help:"Amplitude below which a sample counts as silent when trimming tone ends." default:"0.01"`
	Lifetime   string   `name:"lifetime" short:"l" optional:"true" help:"Output stream lifetime: session (one stream) or tone (one per tone)." default:"session"`
	Sink       string   `name:"sink" short:"s" optional:"true" help:"Audio output: speaker, bell or wav." default:"speaker"`
	Out        string   `short:"o" optional:"true" help:"Write a WAV file instead of playing. Implies --sink wav." default:""`
	Strict     bool     `name:"strict" help:"Fail on stray characters in the symbol stream instead of skipping them." default:"false"`
	Quiet      bool     `short:"q" help:"Do not print the Morse code." default:"false"`
	Clip       bool     `short:"c" help:"Read the message from the clipboard." default:"false"`
	Verbose    bool     `short:"v" help:"Enable debug logging." default:"false"`
}

// Flag names, matching the name tags on Params.
const (
	flagUnit       = "unit"
	flagWPM        = "wpm"
	flagSampleRate = "sample-rate"
	flagFrequency  = "frequency"
	flagVolume     = "volume"
	flagThreshold  = "threshold"
	flagLifetime   = "lifetime"
	flagSink       = "sink"
	flagStrict     = "strict"
)

var newDevice = sink.New

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "play",
		Short: "Play text as Morse code tones",
		Long: `Encode text to Morse code and play it as 400 Hz tones.

Unset flags fall back to the playback section of the config file
(see 'dit config'), then to the built-in defaults.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, cmd.Flags().Changed, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

// Run plays every message. changed reports whether a flag was set
// explicitly; explicit flags win over the config file.
func Run(params *Params, changed func(string) bool, stdin io.Reader, stdout io.Writer) (err error) {
	fileCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	closeLog := common.SetupLogging(params.Verbose, fileCfg.LogFile)
	defer func() {
		if closeErr := closeLog(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "play: failed to close log file: %v\n", closeErr)
		}
	}()

	cfg, opts, err := resolve(params, fileCfg.Playback, changed)
	if err != nil {
		return err
	}

	messages, err := common.Messages(params.Text, params.Clip, stdin)
	if err != nil {
		return err
	}

	// Encode everything before touching the device so that a bad character
	// fails the run without a sound.
	encoded := make([]string, 0, len(messages))
	for _, msg := range messages {
		code, err := morse.Encode(msg)
		if err != nil {
			return err
		}
		encoded = append(encoded, code)
	}

	device, err := openDevice(opts)
	if err != nil {
		return err
	}

	r, err := render.New(device, cfg)
	if err != nil {
		return errors.Join(err, device.Terminate())
	}
	defer func() {
		if d, ok := device.(sink.Discarder); ok && err != nil {
			// Leave no half-written output behind.
			d.Discard()
		}
		err = errors.Join(err, r.Close())
	}()

	for _, code := range encoded {
		if !params.Quiet {
			if err := common.PrintSymbols(stdout, code); err != nil {
				return err
			}
		}
		stats, err := r.Render(code)
		if err != nil {
			return err
		}
		slog.Debug("played message",
			"tones", stats.Tones,
			"tone_time", stats.ToneTime,
			"pause_time", stats.PauseTime,
		)
	}

	if opts.Kind == sink.KindWav {
		// The file is only written when the device is released.
		if err := r.Close(); err != nil {
			return err
		}
		slog.Info("wrote wav file", "path", opts.Path)
	}
	return nil
}

func openDevice(opts sink.Options) (sink.Device, error) {
	device, err := newDevice(opts)
	if errors.Is(err, sink.ErrAudioUnavailable) {
		slog.Warn("speaker unavailable, falling back to the system bell", "error", err)
		opts.Kind = sink.KindBell
		device, err = newDevice(opts)
	}
	return device, err
}

// resolve layers explicitly set flags over the config file's playback
// settings.
func resolve(params *Params, file *config.PlaybackConfig, changed func(string) bool) (render.Config, sink.Options, error) {
	p := config.DefaultConfig().Playback
	if file != nil {
		p = file
	}
	merged := *p

	if changed(flagUnit) {
		merged.Unit = params.Unit
		merged.WPM = 0
	}
	if changed(flagWPM) {
		merged.WPM = params.WPM
	}
	if changed(flagSampleRate) {
		merged.SampleRate = params.SampleRate
	}
	if changed(flagFrequency) {
		merged.Frequency = params.Frequency
	}
	if changed(flagVolume) {
		volume := params.Volume
		merged.Volume = &volume
	}
	if changed(flagThreshold) {
		merged.TrimThreshold = params.Threshold
	}
	if changed(flagLifetime) {
		merged.Lifetime = params.Lifetime
	}
	if changed(flagSink) {
		merged.Sink = params.Sink
	}
	if changed(flagStrict) {
		merged.Strict = params.Strict
	}

	cfg, err := merged.RenderConfig()
	if err != nil {
		return cfg, sink.Options{}, err
	}

	opts := sink.Options{
		Kind:       sink.Kind(merged.Sink),
		SampleRate: cfg.SampleRate,
		Frequency:  cfg.Frequency,
	}
	if params.Out != "" {
		opts.Kind = sink.KindWav
		opts.Path = params.Out
	}
	return cfg, opts, nil
}
