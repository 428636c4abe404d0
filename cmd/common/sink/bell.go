package sink

import (
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gigurra/dit/cmd/common/tone"
)

// Bell beeps through the system beeper instead of playing samples. Each
// written buffer becomes one beep of the same duration at a fixed pitch.
type Bell struct {
	frequency float64
	beep      func(freq float64, durationMs int) error
	sleep     func(time.Duration)
	now       func() time.Time
}

// NewBell creates a bell device beeping at frequency Hz.
func NewBell(frequency float64) *Bell {
	if frequency <= 0 {
		frequency = tone.DefaultFrequency
	}
	return &Bell{
		frequency: frequency,
		beep:      beeep.Beep,
		sleep:     time.Sleep,
		now:       time.Now,
	}
}

func (b *Bell) Open(format Format) (Stream, error) {
	return &bellStream{bell: b, sampleRate: format.SampleRate}, nil
}

func (b *Bell) Terminate() error {
	return nil
}

type bellStream struct {
	bell       *Bell
	sampleRate int
	closed     bool
}

func (st *bellStream) Write(samples []float64) error {
	if st.closed {
		return ErrClosed
	}
	d := tone.Duration(len(samples), st.sampleRate)
	if d <= 0 {
		return nil
	}

	start := st.bell.now()
	if err := st.bell.beep(st.bell.frequency, int(d/time.Millisecond)); err != nil {
		return err
	}
	// Some beepers return immediately; hold the line for the full tone.
	if rest := d - st.bell.now().Sub(start); rest > 0 {
		st.bell.sleep(rest)
	}
	return nil
}

func (st *bellStream) Stop() error {
	return nil
}

func (st *bellStream) Close() error {
	st.closed = true
	return nil
}
