// Package sink provides the audio outputs tones are written to.
package sink

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAudioUnavailable is returned when this build cannot drive the speaker.
	ErrAudioUnavailable = errors.New("audio playback not available in this build (requires cgo on linux)")
	ErrClosed           = errors.New("stream closed")
)

// Format describes the samples a stream accepts.
type Format struct {
	SampleRate int
	Channels   int
}

// Device is an audio output that streams are opened on.
type Device interface {
	Open(format Format) (Stream, error)
	// Terminate releases the device. No stream may be used afterwards.
	Terminate() error
}

// Stream accepts sample buffers in [-1, 1]. Write blocks until the sink has
// taken the whole buffer.
type Stream interface {
	Write(samples []float64) error
	Stop() error
	Close() error
}

// Pauser is implemented by devices that represent silence as data rather
// than elapsed time, such as file outputs.
type Pauser interface {
	Pause(d time.Duration) error
}

// Discarder is implemented by devices that only commit their output on
// Terminate. After Discard, Terminate releases the device without writing.
type Discarder interface {
	Discard()
}

// Error wraps a failure of the audio sink with the operation that failed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("audio sink %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind selects a Device implementation.
type Kind string

const (
	KindSpeaker Kind = "speaker"
	KindBell    Kind = "bell"
	KindWav     Kind = "wav"
)

// Kinds lists the supported sink kinds.
func Kinds() []Kind {
	return []Kind{KindSpeaker, KindBell, KindWav}
}

// Options configures New.
type Options struct {
	Kind Kind
	// Path is the output file for KindWav.
	Path string
	// SampleRate is the rate KindWav records at.
	SampleRate int
	// Frequency is the pitch used by KindBell, which cannot play samples.
	Frequency float64
}

// New creates the device selected by opts.
func New(opts Options) (Device, error) {
	switch opts.Kind {
	case KindSpeaker, "":
		return NewSpeaker()
	case KindBell:
		return NewBell(opts.Frequency), nil
	case KindWav:
		if opts.Path == "" {
			return nil, fmt.Errorf("wav sink requires an output path")
		}
		return NewWavFile(opts.Path, opts.SampleRate), nil
	default:
		return nil, fmt.Errorf("unknown sink %q (expected one of %v)", opts.Kind, Kinds())
	}
}
