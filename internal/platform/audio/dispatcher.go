package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Sink plays finished streamers.
type Sink interface {
	Play(s beep.Streamer)
}

// Dispatcher plays at most one cue per game step and drops minor cues that
// arrive within the configured interval of the previous one.
type Dispatcher struct {
	mu       sync.Mutex
	sink     Sink
	synth    *Synth
	interval time.Duration
	last     time.Time
	now      func() time.Time
	logger   *log.Logger
	enabled  bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithLogger sets the logger used for synthesis errors.
func WithLogger(l *log.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// NewDispatcher creates a dispatcher. With audio disabled or a nil sink the
// dispatcher accepts events and does nothing.
func NewDispatcher(cfg config.AudioConfig, sink Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sink:     sink,
		interval: time.Duration(cfg.MinIntervalMs) * time.Millisecond,
		now:      time.Now,
		enabled:  cfg.Enabled && sink != nil,
	}
	if d.enabled {
		d.synth = NewSynth(beep.SampleRate(cfg.SampleRate), cfg.Volume)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Enabled reports whether cues reach the sink.
func (d *Dispatcher) Enabled() bool {
	return d.enabled
}

// Dispatch plays the cue for a step's events and returns it, or CueNone when
// nothing was played.
func (d *Dispatcher) Dispatch(events []core.Event) Cue {
	if !d.enabled {
		return CueNone
	}
	cue := Pick(events)
	if cue == CueNone {
		return CueNone
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if !cue.urgent() && !d.last.IsZero() && now.Sub(d.last) < d.interval {
		return CueNone
	}

	st, err := d.synth.Streamer(cue)
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("audio cue failed", "cue", cue, "error", err)
		}
		return CueNone
	}
	d.last = now
	d.sink.Play(st)
	return cue
}
