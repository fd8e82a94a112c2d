package feedback

import (
	"math"
	"testing"

	"github.com/faiface/beep"
	"github.com/iburimskiy/trait-mixer/internal/config"
	"github.com/iburimskiy/trait-mixer/internal/logging"
	"github.com/iburimskiy/trait-mixer/internal/mixer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = beep.SampleRate(44100)

// drain streams s to the end and returns everything it produced.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestNewTick_Shape(t *testing.T) {
	for _, ev := range []mixer.CenterEvent{mixer.CenterEntered, mixer.CenterExited} {
		t.Run(ev.String(), func(t *testing.T) {
			s := NewTick(ev, rate, 1)
			require.NotNil(t, s)

			samples := drain(t, s)
			assert.Len(t, samples, rate.N(tickDuration))
			for i, smp := range samples {
				assert.True(t, smp[0] >= -1 && smp[0] <= 1, "sample %d out of range: %f", i, smp[0])
				assert.Equal(t, smp[0], smp[1])
			}

			// Decays: the tail is much quieter than the head.
			head := peak(samples[:200])
			tail := peak(samples[len(samples)-200:])
			assert.Greater(t, head, 10*tail)
			assert.NoError(t, s.Err())
		})
	}
}

func TestNewTick_None(t *testing.T) {
	assert.Nil(t, NewTick(mixer.CenterNone, rate, 1))
}

func TestNewTick_Volume(t *testing.T) {
	loud := drain(t, NewTick(mixer.CenterEntered, rate, 1))
	quiet := drain(t, NewTick(mixer.CenterEntered, rate, 0.25))
	assert.InDelta(t, peak(loud)*0.25, peak(quiet), 1e-9)

	silent := drain(t, NewTick(mixer.CenterEntered, rate, 0))
	assert.Zero(t, peak(silent))
}

func TestTap_SnapshotIsChronological(t *testing.T) {
	var next float64
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			next++
			samples[i] = [2]float64{next, next}
		}
		return len(samples), true
	})
	tap := NewTap(src, 8)

	buf := make([][2]float64, 5)
	tap.Stream(buf)
	tap.Stream(buf)

	snap := tap.Snapshot(4)
	require.Len(t, snap, 4)
	assert.Equal(t, [][2]float64{{7, 7}, {8, 8}, {9, 9}, {10, 10}}, snap)

	assert.Len(t, tap.Snapshot(100), 8)
	assert.Nil(t, tap.Snapshot(0))
}

func TestTap_Level(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0.5, -0.5}
		}
		return len(samples), true
	})
	tap := NewTap(src, 64)
	assert.Zero(t, tap.Level(64))

	tap.Stream(make([][2]float64, 64))
	assert.Zero(t, tap.Level(64), "opposite channels cancel in mono")

	tick := NewTap(NewTick(mixer.CenterEntered, rate, 1), 256)
	tick.Stream(make([][2]float64, 256))
	lvl := tick.Level(256)
	assert.Greater(t, lvl, 0.1)
	assert.False(t, math.IsNaN(lvl))
}

func TestNew_Disabled(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false
	p := New(cfg, logging.NewNop())
	assert.IsType(t, Silent{}, p)
	p.Play(mixer.CenterEntered)
	assert.Zero(t, p.Level())
	assert.NoError(t, p.Close())
}

func peak(samples [][2]float64) float64 {
	var m float64
	for _, s := range samples {
		m = math.Max(m, math.Abs(s[0]))
	}
	return m
}
