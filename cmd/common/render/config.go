package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/gigurra/dit/cmd/common/tone"
)

// Lifetime decides how long an output stream stays open.
type Lifetime string

const (
	// LifetimeSession keeps one stream open for the whole message.
	LifetimeSession Lifetime = "session"
	// LifetimeTone opens and closes a stream around every tone.
	LifetimeTone Lifetime = "tone"
)

const DefaultUnit = 250 * time.Millisecond

var ErrInvalidConfig = errors.New("invalid render config")

// Config controls timing and synthesis.
type Config struct {
	Unit          time.Duration
	SampleRate    int
	Frequency     float64
	Volume        float64
	TrimThreshold float64
	Lifetime      Lifetime
	Timing        Timing
	// Strict turns stray characters in the symbol stream into errors
	// instead of skipping them.
	Strict bool
}

func DefaultConfig() Config {
	return Config{
		Unit:          DefaultUnit,
		SampleRate:    tone.DefaultSampleRate,
		Frequency:     tone.DefaultFrequency,
		Volume:        1.0,
		TrimThreshold: tone.DefaultThreshold,
		Lifetime:      LifetimeSession,
		Timing:        DefaultTiming(),
	}
}

// UnitFromWPM returns the unit length for a words-per-minute speed, using the
// 50 unit word "PARIS".
func UnitFromWPM(wpm int) time.Duration {
	if wpm <= 0 {
		return 0
	}
	return time.Duration(float64(time.Minute) / (50 * float64(wpm)))
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Unit <= 0:
		return fmt.Errorf("%w: unit must be positive, got %v", ErrInvalidConfig, c.Unit)
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	case c.Frequency <= 0:
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidConfig, c.Frequency)
	case c.Frequency*2 > float64(c.SampleRate):
		return fmt.Errorf("%w: frequency %v is above the Nyquist limit of %d Hz", ErrInvalidConfig, c.Frequency, c.SampleRate/2)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume must be within [0, 1], got %v", ErrInvalidConfig, c.Volume)
	case c.TrimThreshold <= 0 || c.TrimThreshold > 1:
		return fmt.Errorf("%w: trim threshold must be within (0, 1], got %v", ErrInvalidConfig, c.TrimThreshold)
	case c.Lifetime != LifetimeSession && c.Lifetime != LifetimeTone:
		return fmt.Errorf("%w: unknown stream lifetime %q", ErrInvalidConfig, c.Lifetime)
	}
	t := c.Timing
	if t.Dot < 0 || t.Dash < 0 || t.ElementGap < 0 || t.CharGap < 0 || t.WordGap < 0 {
		return fmt.Errorf("%w: timing units must not be negative: %+v", ErrInvalidConfig, t)
	}
	if t.Dot == 0 || t.Dash == 0 {
		return fmt.Errorf("%w: dots and dashes must last at least one unit: %+v", ErrInvalidConfig, t)
	}
	return nil
}
