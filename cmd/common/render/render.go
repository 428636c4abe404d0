// Package render plays Morse symbol streams as timed tones on a sink.
//
// Rendering is synchronous: every tone is written and every gap waited out
// on the calling goroutine before the next symbol is looked at.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gigurra/dit/cmd/common/sink"
	"github.com/gigurra/dit/cmd/common/tone"
	"github.com/google/uuid"
)

var ErrUnknownSymbol = errors.New("unknown symbol")

// Stats summarizes one Render call.
type Stats struct {
	Tones     int
	Pauses    int
	Skipped   int
	Untrimmed int // tones played without a trim point
	ToneTime  time.Duration
	PauseTime time.Duration
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithSleep replaces time.Sleep for gaps on devices that are not sink.Pauser.
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Renderer) {
		r.sleep = sleep
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// Renderer owns a device for one rendering session. It must be closed to
// release the device.
type Renderer struct {
	device sink.Device
	cfg    Config
	synth  tone.Synth
	sleep  func(time.Duration)
	logger *slog.Logger

	stream sink.Stream
	closed bool
}

// New validates cfg and takes ownership of device.
func New(device sink.Device, cfg Config, opts ...Option) (*Renderer, error) {
	if device == nil {
		return nil, fmt.Errorf("%w: no audio device", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		device: device,
		cfg:    cfg,
		synth:  tone.Synth{SampleRate: cfg.SampleRate, Threshold: cfg.TrimThreshold},
		sleep:  time.Sleep,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("session", uuid.NewString())
	return r, nil
}

// Render plays symbols left to right. Characters other than '.', '-', '/'
// and ' ' are skipped, or rejected when the config is strict.
func (r *Renderer) Render(symbols string) (Stats, error) {
	var stats Stats
	if r.closed {
		return stats, sink.ErrClosed
	}

	r.logger.Debug("rendering",
		"length", len(symbols),
		"unit", r.cfg.Unit,
		"sample_rate", r.cfg.SampleRate,
		"lifetime", r.cfg.Lifetime,
	)

	for i, c := range symbols {
		sym := Classify(c)
		if sym == SymbolUnknown {
			if r.cfg.Strict {
				return stats, fmt.Errorf("%w %q at position %d", ErrUnknownSymbol, c, i)
			}
			r.logger.Debug("skipping unknown symbol", "char", string(c), "position", i)
			stats.Skipped++
			continue
		}

		action := r.cfg.Timing.Action(sym)
		if action.ToneUnits > 0 {
			if err := r.playTone(r.units(action.ToneUnits), &stats); err != nil {
				return stats, err
			}
		}
		if action.PauseUnits > 0 {
			if err := r.pause(r.units(action.PauseUnits), &stats); err != nil {
				return stats, err
			}
		}
	}

	r.logger.Debug("rendered",
		"tones", stats.Tones,
		"pauses", stats.Pauses,
		"skipped", stats.Skipped,
		"untrimmed", stats.Untrimmed,
	)
	return stats, nil
}

func (r *Renderer) units(n int) time.Duration {
	return time.Duration(n) * r.cfg.Unit
}

func (r *Renderer) playTone(d time.Duration, stats *Stats) error {
	buf := r.synth.Synthesize(tone.Tone{
		Frequency: r.cfg.Frequency,
		Duration:  d,
		Volume:    r.cfg.Volume,
	})
	if !buf.Trim.Found {
		r.logger.Debug("no trim point, playing full buffer", "samples", buf.Generated)
		stats.Untrimmed++
	}

	stream, err := r.acquireStream()
	if err != nil {
		return err
	}
	if err := stream.Write(buf.Samples); err != nil {
		return &sink.Error{Op: "write", Err: err}
	}
	if r.cfg.Lifetime == LifetimeTone {
		if err := r.releaseStream(); err != nil {
			return err
		}
	}

	stats.Tones++
	stats.ToneTime += tone.Duration(len(buf.Samples), r.cfg.SampleRate)
	return nil
}

func (r *Renderer) pause(d time.Duration, stats *Stats) error {
	if p, ok := r.device.(sink.Pauser); ok {
		if err := p.Pause(d); err != nil {
			return &sink.Error{Op: "pause", Err: err}
		}
	} else {
		r.sleep(d)
	}
	stats.Pauses++
	stats.PauseTime += d
	return nil
}

func (r *Renderer) acquireStream() (sink.Stream, error) {
	if r.stream != nil {
		return r.stream, nil
	}
	stream, err := r.device.Open(sink.Format{SampleRate: r.cfg.SampleRate, Channels: 1})
	if err != nil {
		return nil, &sink.Error{Op: "open", Err: err}
	}
	r.stream = stream
	return stream, nil
}

func (r *Renderer) releaseStream() error {
	if r.stream == nil {
		return nil
	}
	stream := r.stream
	r.stream = nil

	var errs []error
	if err := stream.Stop(); err != nil {
		errs = append(errs, &sink.Error{Op: "stop", Err: err})
	}
	if err := stream.Close(); err != nil {
		errs = append(errs, &sink.Error{Op: "close", Err: err})
	}
	return errors.Join(errs...)
}

// Close stops and closes any open stream and terminates the device. Calling
// it again is a no-op.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	err := r.releaseStream()
	if termErr := r.device.Terminate(); termErr != nil {
		err = errors.Join(err, &sink.Error{Op: "terminate", Err: termErr})
	}
	return err
}

// Play renders symbols on device and releases the device on every path.
func Play(device sink.Device, cfg Config, symbols string, opts ...Option) (stats Stats, err error) {
	r, err := New(device, cfg, opts...)
	if err != nil {
		if device != nil {
			if termErr := device.Terminate(); termErr != nil {
				err = errors.Join(err, &sink.Error{Op: "terminate", Err: termErr})
			}
		}
		return Stats{}, err
	}
	defer func() {
		err = errors.Join(err, r.Close())
	}()

	return r.Render(symbols)
}
