package sink

import (
	"fmt"
	"os"
	"time"

	"github.com/gigurra/dit/cmd/common/tone"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// WavFile records the rendered message and writes it as a mono 16-bit WAV
// file when terminated. Pauses are recorded as silence.
type WavFile struct {
	path       string
	sampleRate int
	samples    []float64
	discarded  bool
	terminated bool
}

// NewWavFile creates a device writing to path at sampleRate.
func NewWavFile(path string, sampleRate int) *WavFile {
	if sampleRate <= 0 {
		sampleRate = tone.DefaultSampleRate
	}
	return &WavFile{path: path, sampleRate: sampleRate}
}

func (w *WavFile) Open(format Format) (Stream, error) {
	if w.terminated {
		return nil, ErrClosed
	}
	if format.SampleRate != w.sampleRate {
		return nil, fmt.Errorf("sample rate %d does not match file rate %d", format.SampleRate, w.sampleRate)
	}
	return &wavStream{file: w}, nil
}

func (w *WavFile) Pause(d time.Duration) error {
	if w.terminated {
		return ErrClosed
	}
	w.samples = append(w.samples, make([]float64, tone.SampleCount(w.sampleRate, d))...)
	return nil
}

// Discard drops everything recorded so Terminate leaves no file behind.
func (w *WavFile) Discard() {
	w.discarded = true
	w.samples = nil
}

// Terminate encodes everything recorded so far to the file, unless the
// recording was discarded.
func (w *WavFile) Terminate() error {
	if w.terminated {
		return nil
	}
	w.terminated = true
	if w.discarded {
		return nil
	}

	f, err := os.Create(w.path)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(w.sampleRate),
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(f, newMonoStreamer(w.samples), format); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", w.path, err)
	}
	return f.Close()
}

type wavStream struct {
	file   *WavFile
	closed bool
}

func (st *wavStream) Write(samples []float64) error {
	if st.closed || st.file.terminated {
		return ErrClosed
	}
	st.file.samples = append(st.file.samples, samples...)
	return nil
}

func (st *wavStream) Stop() error {
	return nil
}

func (st *wavStream) Close() error {
	st.closed = true
	return nil
}
