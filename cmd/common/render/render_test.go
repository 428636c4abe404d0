package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gigurra/dit/cmd/common/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUnit = 10 * time.Millisecond

// fakeDevice records every call made on it and its streams.
type fakeDevice struct {
	events   []string
	writes   [][]float64
	openErr  error
	writeErr error
	termErr  error
}

func (d *fakeDevice) Open(format sink.Format) (sink.Stream, error) {
	d.events = append(d.events, "open")
	if d.openErr != nil {
		return nil, d.openErr
	}
	return &fakeStream{dev: d}, nil
}

func (d *fakeDevice) Terminate() error {
	d.events = append(d.events, "terminate")
	return d.termErr
}

type fakeStream struct {
	dev *fakeDevice
}

func (s *fakeStream) Write(samples []float64) error {
	s.dev.events = append(s.dev.events, fmt.Sprintf("write:%d", len(samples)))
	s.dev.writes = append(s.dev.writes, samples)
	return s.dev.writeErr
}

func (s *fakeStream) Stop() error {
	s.dev.events = append(s.dev.events, "stop")
	return nil
}

func (s *fakeStream) Close() error {
	s.dev.events = append(s.dev.events, "close")
	return nil
}

// pausingDevice records gaps as data.
type pausingDevice struct {
	fakeDevice
}

func (d *pausingDevice) Pause(dur time.Duration) error {
	d.events = append(d.events, fmt.Sprintf("pause:%v", dur))
	return nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Unit = testUnit
	cfg.SampleRate = 8000
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRenderer(t *testing.T, dev sink.Device, cfg Config) (*Renderer, *[]time.Duration) {
	t.Helper()
	var slept []time.Duration
	r, err := New(dev, cfg,
		WithSleep(func(d time.Duration) { slept = append(slept, d) }),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	return r, &slept
}

func TestClassify(t *testing.T) {
	tests := map[rune]Symbol{
		'.':  SymbolDot,
		'-':  SymbolDash,
		'/':  SymbolWordGap,
		' ':  SymbolCharGap,
		'x':  SymbolUnknown,
		'\t': SymbolUnknown,
		'_':  SymbolUnknown,
	}
	for r, want := range tests {
		assert.Equal(t, want, Classify(r), "Classify(%q)", r)
	}
}

func TestTiming_Action(t *testing.T) {
	timing := DefaultTiming()
	assert.Equal(t, Action{ToneUnits: 1, PauseUnits: 1}, timing.Action(SymbolDot))
	assert.Equal(t, Action{ToneUnits: 3, PauseUnits: 1}, timing.Action(SymbolDash))
	assert.Equal(t, Action{PauseUnits: 3}, timing.Action(SymbolWordGap))
	assert.Equal(t, Action{PauseUnits: 2}, timing.Action(SymbolCharGap))
	assert.Equal(t, Action{}, timing.Action(SymbolUnknown))
}

func TestRender_Dot(t *testing.T) {
	dev := &fakeDevice{}
	r, slept := newTestRenderer(t, dev, testConfig())

	stats, err := r.Render(".")
	require.NoError(t, err)

	// 80 samples; 400 Hz at 8000 Hz is exactly zero at index 70.
	assert.Equal(t, []string{"open", "write:71"}, dev.events)
	assert.Equal(t, []time.Duration{testUnit}, *slept)
	assert.Equal(t, 1, stats.Tones)
	assert.Equal(t, 1, stats.Pauses)
	assert.Equal(t, 0.0, dev.writes[0][70])

	require.NoError(t, r.Close())
	assert.Equal(t, []string{"open", "write:71", "stop", "close", "terminate"}, dev.events)
}

func TestRender_SOS(t *testing.T) {
	dev := &fakeDevice{}
	r, slept := newTestRenderer(t, dev, testConfig())
	defer r.Close()

	stats, err := r.Render("... --- ... ")
	require.NoError(t, err)

	assert.Equal(t, 9, stats.Tones)
	assert.Equal(t, 12, stats.Pauses)
	assert.Equal(t, 15*testUnit, stats.PauseTime)
	assert.Len(t, *slept, 12)

	// One stream for the whole session.
	opens := 0
	for _, e := range dev.events {
		if e == "open" {
			opens++
		}
	}
	assert.Equal(t, 1, opens)
	assert.Equal(t, "write:231", dev.events[4])

	for _, w := range dev.writes {
		assert.Equal(t, 0.0, w[len(w)-1])
		for _, s := range w {
			require.True(t, s >= -1 && s <= 1)
		}
	}
}

func TestRender_GapsOnly(t *testing.T) {
	dev := &fakeDevice{}
	r, slept := newTestRenderer(t, dev, testConfig())

	_, err := r.Render("/ ")
	require.NoError(t, err)
	assert.Empty(t, dev.events)
	assert.Equal(t, []time.Duration{3 * testUnit, 2 * testUnit}, *slept)

	require.NoError(t, r.Close())
	assert.Equal(t, []string{"terminate"}, dev.events)
}

func TestRender_PerToneLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Lifetime = LifetimeTone
	dev := &fakeDevice{}
	r, _ := newTestRenderer(t, dev, cfg)

	_, err := r.Render("..")
	require.NoError(t, err)
	require.NoError(t, r.Close())

	assert.Equal(t, []string{
		"open", "write:71", "stop", "close",
		"open", "write:71", "stop", "close",
		"terminate",
	}, dev.events)
}

func TestRender_UnknownSymbols(t *testing.T) {
	dev := &fakeDevice{}
	r, slept := newTestRenderer(t, dev, testConfig())
	defer r.Close()

	stats, err := r.Render("x.\t")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, 1, stats.Tones)
	assert.Len(t, *slept, 1)
}

func TestRender_Strict(t *testing.T) {
	cfg := testConfig()
	cfg.Strict = true
	dev := &fakeDevice{}
	r, _ := newTestRenderer(t, dev, cfg)
	defer r.Close()

	_, err := r.Render(".x")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Equal(t, []string{"open", "write:71"}, dev.events)
}

func TestRender_Pauser(t *testing.T) {
	dev := &pausingDevice{}
	r, slept := newTestRenderer(t, dev, testConfig())
	defer r.Close()

	_, err := r.Render("./")
	require.NoError(t, err)
	assert.Empty(t, *slept)
	assert.Equal(t, []string{"open", "write:71", "pause:10ms", "pause:30ms"}, dev.events)
}

func TestRender_NoTrimPoint(t *testing.T) {
	cfg := testConfig()
	cfg.SampleRate = 44100
	cfg.Frequency = 100
	cfg.Unit = time.Millisecond
	dev := &fakeDevice{}
	r, _ := newTestRenderer(t, dev, cfg)
	defer r.Close()

	stats, err := r.Render(".")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Untrimmed)
	assert.Equal(t, []string{"open", "write:45"}, dev.events)
}

func TestRender_AfterClose(t *testing.T) {
	r, _ := newTestRenderer(t, &fakeDevice{}, testConfig())
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err := r.Render(".")
	assert.ErrorIs(t, err, sink.ErrClosed)
}

func TestPlay_ReleasesOnWriteFailure(t *testing.T) {
	boom := errors.New("device unplugged")
	dev := &fakeDevice{writeErr: boom}

	_, err := Play(dev, testConfig(), "...", WithSleep(func(time.Duration) {}), WithLogger(quietLogger()))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var sinkErr *sink.Error
	require.ErrorAs(t, err, &sinkErr)
	assert.Equal(t, "write", sinkErr.Op)
	assert.Equal(t, []string{"open", "write:71", "stop", "close", "terminate"}, dev.events)
}

func TestPlay_ReleasesOnOpenFailure(t *testing.T) {
	boom := errors.New("busy")
	dev := &fakeDevice{openErr: boom, termErr: errors.New("already gone")}

	_, err := Play(dev, testConfig(), "-", WithSleep(func(time.Duration) {}), WithLogger(quietLogger()))
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "terminate")
	assert.Equal(t, []string{"open", "terminate"}, dev.events)
}

func TestPlay_InvalidConfigStillTerminates(t *testing.T) {
	cfg := testConfig()
	cfg.Volume = 1.5
	dev := &fakeDevice{}

	_, err := Play(dev, cfg, ".")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, []string{"terminate"}, dev.events)
}

func TestPlay_Stats(t *testing.T) {
	dev := &fakeDevice{}
	stats, err := Play(dev, testConfig(), ".- ", WithSleep(func(time.Duration) {}), WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Tones)
	assert.Equal(t, 3, stats.Pauses)
	assert.Equal(t, 4*testUnit, stats.PauseTime)
}
