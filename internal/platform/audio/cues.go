// Package audio turns game events into short synthesized sound cues.
package audio

import (
	"errors"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrUnknownCue is returned by Synth.Streamer for cues without a sound.
var ErrUnknownCue = errors.New("audio: unknown cue")

// Cue identifies one sound.
type Cue int

const (
	CueNone Cue = iota
	CueRotate
	CueLock
	CueLine1
	CueLine2
	CueLine3
	CueLine4
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueRotate:
		return "rotate"
	case CueLock:
		return "lock"
	case CueLine1:
		return "line1"
	case CueLine2:
		return "line2"
	case CueLine3:
		return "line3"
	case CueLine4:
		return "line4"
	case CueGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// urgent cues bypass the rate limit.
func (c Cue) urgent() bool {
	return c >= CueLine1
}

// CueFor maps an event to its cue. Clears of more than four rows reuse the
// four-row chord.
func CueFor(e core.Event) Cue {
	switch e.Kind {
	case core.EventRotate:
		return CueRotate
	case core.EventLock:
		return CueLock
	case core.EventLineClear:
		switch {
		case e.Count <= 0:
			return CueNone
		case e.Count == 1:
			return CueLine1
		case e.Count == 2:
			return CueLine2
		case e.Count == 3:
			return CueLine3
		default:
			return CueLine4
		}
	case core.EventGameOver:
		return CueGameOver
	default:
		return CueNone
	}
}

// Pick returns the loudest cue among events: game over beats line clears,
// which beat lock, which beats rotate.
func Pick(events []core.Event) Cue {
	best := CueNone
	for _, e := range events {
		if c := CueFor(e); c > best {
			best = c
		}
	}
	return best
}

type note struct {
	freqs []float64 // played together
	dur   time.Duration
}

// A major-ish ladder: each extra row adds a voice.
var cueNotes = map[Cue][]note{
	CueRotate:   {{freqs: []float64{880}, dur: 30 * time.Millisecond}},
	CueLock:     {{freqs: []float64{110}, dur: 60 * time.Millisecond}},
	CueLine1:    {{freqs: []float64{523.25}, dur: 150 * time.Millisecond}},
	CueLine2:    {{freqs: []float64{523.25, 659.25}, dur: 180 * time.Millisecond}},
	CueLine3:    {{freqs: []float64{523.25, 659.25, 783.99}, dur: 210 * time.Millisecond}},
	CueLine4:    {{freqs: []float64{523.25, 659.25, 783.99, 1046.5}, dur: 260 * time.Millisecond}},
	CueGameOver: {
		{freqs: []float64{392}, dur: 200 * time.Millisecond},
		{freqs: []float64{311.13}, dur: 200 * time.Millisecond},
		{freqs: []float64{261.63}, dur: 400 * time.Millisecond},
	},
}

// Synth builds streamers for cues at a fixed sample rate and volume.
type Synth struct {
	sr     beep.SampleRate
	volume float64
}

// NewSynth creates a synth. volume is linear in [0, 1].
func NewSynth(sr beep.SampleRate, volume float64) *Synth {
	return &Synth{sr: sr, volume: volume}
}

// Streamer returns a finite streamer for cue.
func (s *Synth) Streamer(cue Cue) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, ErrUnknownCue
	}

	seq := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		voices := make([]beep.Streamer, 0, len(n.freqs))
		for _, f := range n.freqs {
			tone, err := generators.SineTone(s.sr, f)
			if err != nil {
				return nil, err
			}
			voices = append(voices, beep.Take(s.sr.N(n.dur), tone))
		}
		chord := &effects.Volume{
			Streamer: beep.Mix(voices...),
			Base:     2,
			// Keep a chord at the same loudness as a single voice.
			Volume: -math.Log2(float64(len(voices))),
		}
		seq = append(seq, chord)
	}

	return s.scaled(beep.Seq(seq...)), nil
}

func (s *Synth) scaled(st beep.Streamer) beep.Streamer {
	if s.volume <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(s.volume)}
}
