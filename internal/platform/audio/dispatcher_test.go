package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

type recordingSink struct {
	played []beep.Streamer
}

func (r *recordingSink) Play(s beep.Streamer) {
	r.played = append(r.played, s)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{
		Enabled:       true,
		Volume:        0.5,
		MinIntervalMs: 500,
		SampleRate:    44100,
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event core.Event
		want  Cue
	}{
		{core.Event{Kind: core.EventRotate}, CueRotate},
		{core.Event{Kind: core.EventLock}, CueLock},
		{core.Event{Kind: core.EventLineClear, Count: 0}, CueNone},
		{core.Event{Kind: core.EventLineClear, Count: 1}, CueLine1},
		{core.Event{Kind: core.EventLineClear, Count: 2}, CueLine2},
		{core.Event{Kind: core.EventLineClear, Count: 3}, CueLine3},
		{core.Event{Kind: core.EventLineClear, Count: 4}, CueLine4},
		{core.Event{Kind: core.EventLineClear, Count: 7}, CueLine4},
		{core.Event{Kind: core.EventGameOver}, CueGameOver},
		{core.Event{}, CueNone},
	}

	for _, tt := range tests {
		if got := CueFor(tt.event); got != tt.want {
			t.Errorf("CueFor(%v/%d) = %v, expected %v", tt.event.Kind, tt.event.Count, got, tt.want)
		}
	}
}

func TestPickPrefersStrongestCue(t *testing.T) {
	events := []core.Event{
		{Kind: core.EventRotate},
		{Kind: core.EventLock},
		{Kind: core.EventLineClear, Count: 2},
	}
	if got := Pick(events); got != CueLine2 {
		t.Errorf("Pick = %v, expected %v", got, CueLine2)
	}
	if got := Pick(nil); got != CueNone {
		t.Errorf("Pick(nil) = %v, expected none", got)
	}
}

func TestDispatcherRateLimit(t *testing.T) {
	sink := &recordingSink{}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	d := NewDispatcher(testAudioConfig(), sink, WithClock(clock.now))

	rotate := []core.Event{{Kind: core.EventRotate}}

	if got := d.Dispatch(rotate); got != CueRotate {
		t.Fatalf("first cue = %v, expected rotate", got)
	}

	clock.advance(100 * time.Millisecond)
	if got := d.Dispatch(rotate); got != CueNone {
		t.Errorf("cue within interval = %v, expected none", got)
	}

	// Line clears are never dropped.
	clock.advance(100 * time.Millisecond)
	if got := d.Dispatch([]core.Event{{Kind: core.EventLineClear, Count: 1}}); got != CueLine1 {
		t.Errorf("line clear = %v, expected line1", got)
	}

	clock.advance(500 * time.Millisecond)
	if got := d.Dispatch(rotate); got != CueRotate {
		t.Errorf("cue after interval = %v, expected rotate", got)
	}

	if len(sink.played) != 3 {
		t.Errorf("played %d streamers, expected 3", len(sink.played))
	}
}

func TestDispatcherDisabled(t *testing.T) {
	sink := &recordingSink{}
	cfg := testAudioConfig()
	cfg.Enabled = false
	d := NewDispatcher(cfg, sink)

	if d.Enabled() {
		t.Error("dispatcher should be disabled")
	}
	if got := d.Dispatch([]core.Event{{Kind: core.EventGameOver}}); got != CueNone {
		t.Errorf("disabled dispatch = %v, expected none", got)
	}
	if len(sink.played) != 0 {
		t.Errorf("disabled dispatcher played %d streamers", len(sink.played))
	}
}

func TestDispatcherNilSink(t *testing.T) {
	d := NewDispatcher(testAudioConfig(), nil)
	if d.Enabled() {
		t.Error("dispatcher without sink should be disabled")
	}
	d.Dispatch([]core.Event{{Kind: core.EventLock}})
}

func TestSynthStreamersAreFinite(t *testing.T) {
	s := NewSynth(beep.SampleRate(44100), 1)
	limit := 44100 * 2

	for cue := CueRotate; cue <= CueGameOver; cue++ {
		st, err := s.Streamer(cue)
		if err != nil {
			t.Fatalf("Streamer(%v) error: %v", cue, err)
		}

		buf := make([][2]float64, 512)
		total := 0
		for total < limit {
			n, ok := st.Stream(buf)
			for i := range n {
				if math.Abs(buf[i][0]) > 1.0001 || math.Abs(buf[i][1]) > 1.0001 {
					t.Fatalf("%v: sample %d out of range: %v", cue, total+i, buf[i])
				}
			}
			total += n
			if !ok || n == 0 {
				break
			}
		}

		if total == 0 || total >= limit {
			t.Errorf("%v streamed %d samples, expected a short finite cue", cue, total)
		}
	}
}

func TestSynthUnknownCue(t *testing.T) {
	s := NewSynth(beep.SampleRate(44100), 1)
	if _, err := s.Streamer(CueNone); err == nil {
		t.Error("expected error for CueNone")
	}
}
