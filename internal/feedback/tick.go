package feedback

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/iburimskiy/trait-mixer/internal/mixer"
)

const (
	tickDuration = 45 * time.Millisecond
	enterFreq    = 1320.0
	exitFreq     = 880.0
)

// tick is a sine burst with an exponential decay.
type tick struct {
	freq     float64
	phase    float64
	position int
	length   int
	decay    float64
	rate     beep.SampleRate
}

// NewTick returns the sound for a center zone edge: higher on enter, lower on
// exit. It returns nil for CenterNone.
func NewTick(ev mixer.CenterEvent, rate beep.SampleRate, volume float64) beep.Streamer {
	var freq float64
	switch ev {
	case mixer.CenterEntered:
		freq = enterFreq
	case mixer.CenterExited:
		freq = exitFreq
	default:
		return nil
	}
	length := rate.N(tickDuration)
	t := &tick{
		freq:   freq,
		length: length,
		// Down to about -60dB by the end of the burst.
		decay: math.Log(1000) / float64(length),
		rate:  rate,
	}
	return newVolume(t, volume)
}

func (t *tick) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		env := math.Exp(-t.decay * float64(t.position))
		val := math.Sin(2*math.Pi*t.phase) * env
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tick) Err() error { return nil }

// newVolume scales s linearly; zero or less is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
