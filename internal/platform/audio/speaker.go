package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

var speakerOnce struct {
	sync.Once
	err error
}

// SpeakerSink plays through the default output device.
type SpeakerSink struct{}

// NewSpeakerSink initializes the speaker once per process. An error means no
// output device is usable; callers fall back to a silent dispatcher.
func NewSpeakerSink(sampleRate int) (*SpeakerSink, error) {
	speakerOnce.Do(func() {
		sr := beep.SampleRate(sampleRate)
		if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
			speakerOnce.err = fmt.Errorf("audio: init speaker: %w", err)
		}
	})
	if speakerOnce.err != nil {
		return nil, speakerOnce.err
	}
	return &SpeakerSink{}, nil
}

// Play queues s on the speaker mixer.
func (SpeakerSink) Play(s beep.Streamer) {
	speaker.Play(s)
}
