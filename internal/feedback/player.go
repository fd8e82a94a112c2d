package feedback

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/iburimskiy/trait-mixer/internal/config"
	"github.com/iburimskiy/trait-mixer/internal/mixer"
)

// levelWindow is how many recent samples feed Level, about 25ms at 44.1kHz.
const levelWindow = 1024

// Player turns center zone edges into discrete feedback.
type Player interface {
	Play(ev mixer.CenterEvent)
	// Level is the loudness of recent feedback in [0,1], for visual pulses.
	Level() float64
	Close() error
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Play(mixer.CenterEvent) {}
func (Silent) Level() float64         { return 0 }
func (Silent) Close() error           { return nil }

// Speaker plays ticks through the system audio device. All ticks go through
// one mixer so overlapping crossings do not cut each other off.
type Speaker struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	tap    *Tap
	logger *slog.Logger
}

// NewSpeaker initializes the audio device.
func NewSpeaker(cfg config.AudioConfig, logger *slog.Logger) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	s := &Speaker{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	s.tap = NewTap(s.mixer, config.VisualRingSize)

	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.tap)
	logger.Info("audio ready", "sample_rate", cfg.SampleRate)
	return s, nil
}

// Play queues the tick for ev.
func (s *Speaker) Play(ev mixer.CenterEvent) {
	t := NewTick(ev, s.rate, s.volume)
	if t == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(t)
	speaker.Unlock()
	s.logger.Debug("tick", "event", ev.String())
}

// Level reports the RMS of what was just played.
func (s *Speaker) Level() float64 {
	return s.tap.Level(levelWindow)
}

// Close stops playback.
func (s *Speaker) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

// New returns a Speaker when audio is enabled and the device opens, and
// Silent otherwise. A missing audio device is not fatal.
func New(cfg config.AudioConfig, logger *slog.Logger) Player {
	if !cfg.Enabled {
		return Silent{}
	}
	s, err := NewSpeaker(cfg, logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return Silent{}
	}
	return s
}
