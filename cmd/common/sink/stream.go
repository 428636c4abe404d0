package sink

import "github.com/gopxl/beep/v2"

// monoStreamer plays a mono buffer on both channels.
type monoStreamer struct {
	samples  []float64
	position int
}

func newMonoStreamer(samples []float64) *monoStreamer {
	return &monoStreamer{samples: samples}
}

func (m *monoStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if m.position >= len(m.samples) {
		return 0, false
	}
	for n < len(samples) && m.position < len(m.samples) {
		v := m.samples[m.position]
		samples[n][0] = v
		samples[n][1] = v
		n++
		m.position++
	}
	return n, true
}

func (m *monoStreamer) Err() error {
	return nil
}

var _ beep.Streamer = (*monoStreamer)(nil)
