//go:build (linux && cgo) || windows || darwin

package sink

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether the speaker sink is supported in this build.
const AudioAvailable = true

// Speaker plays samples on the default output device through beep.
type Speaker struct {
	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
}

// NewSpeaker creates a speaker device. The output is only acquired on the
// first Open.
func NewSpeaker() (Device, error) {
	return &Speaker{}, nil
}

func (s *Speaker) Open(format Format) (Stream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		sr := beep.SampleRate(format.SampleRate)
		if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
			return nil, err
		}
		s.sampleRate = sr
		s.initialized = true
	}

	return &speakerStream{
		in:  beep.SampleRate(format.SampleRate),
		out: s.sampleRate,
	}, nil
}

func (s *Speaker) Terminate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
	return nil
}

type speakerStream struct {
	in, out beep.SampleRate
	closed  bool
}

func (st *speakerStream) Write(samples []float64) error {
	if st.closed {
		return ErrClosed
	}
	if len(samples) == 0 {
		return nil
	}

	var streamer beep.Streamer = newMonoStreamer(samples)
	if st.in != st.out {
		streamer = beep.Resample(4, st.in, st.out, streamer)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

func (st *speakerStream) Stop() error {
	if st.closed {
		return nil
	}
	speaker.Clear()
	return nil
}

func (st *speakerStream) Close() error {
	st.closed = true
	return nil
}
