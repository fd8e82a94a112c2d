package game

import (
	"errors"
	"math"
	"testing"

	"github.com/iburimskiy/trait-mixer/internal/config"
	"github.com/iburimskiy/trait-mixer/internal/feedback"
	"github.com/iburimskiy/trait-mixer/internal/logging"
	"github.com/iburimskiy/trait-mixer/internal/mixer"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialogs struct {
	reports   []mixer.WeightVector
	reportErr error

	pick    colorful.Color
	pickOK  bool
	pickErr error
	picked  []string
}

func (f *fakeDialogs) ReportBlend(w mixer.WeightVector) error {
	f.reports = append(f.reports, w)
	return f.reportErr
}

func (f *fakeDialogs) PickColor(t mixer.Trait) (colorful.Color, bool, error) {
	f.picked = append(f.picked, t.Name)
	return f.pick, f.pickOK, f.pickErr
}

type countingPlayer struct {
	feedback.Silent
	events []mixer.CenterEvent
}

func (p *countingPlayer) Play(ev mixer.CenterEvent) { p.events = append(p.events, ev) }

func newGame(t *testing.T) (*Game, *fakeDialogs, *countingPlayer) {
	t.Helper()
	d := &fakeDialogs{}
	p := &countingPlayer{}
	g, err := New(config.Default(), p, d, logging.NewNop())
	require.NoError(t, err)
	return g, d, p
}

func TestNew_RejectsBadTraits(t *testing.T) {
	cfg := config.Default()
	cfg.Traits = append(cfg.Traits, cfg.Traits[0])
	_, err := New(cfg, feedback.Silent{}, &fakeDialogs{}, logging.NewNop())
	assert.ErrorIs(t, err, mixer.ErrInvalidTraitSet)
}

func TestGame_Drag(t *testing.T) {
	g, _, player := newGame(t)
	o := g.layout.disc.Origin
	r := g.layout.disc.Radius

	t.Run("press outside the frame is ignored", func(t *testing.T) {
		g.pointerDown(g.layout.frameX+g.layout.frameSize+50, o.Y)
		assert.False(t, g.dragging)
		assert.Equal(t, mixer.Center, g.current.Position)
	})

	t.Run("drag toward the right trait", func(t *testing.T) {
		g.pointerDown(o.X+r/2, o.Y)
		require.True(t, g.dragging)
		g.pointerMove(o.X+2*r, o.Y)

		assert.InDelta(t, 1, g.current.Position.X, 1e-12)
		dom, _ := g.current.Weights.Dominant()
		assert.Equal(t, "Analytical", dom.Trait.Name)
		assert.Equal(t, []mixer.CenterEvent{mixer.CenterExited}, player.events)
	})

	t.Run("moves after release are ignored", func(t *testing.T) {
		g.pointerUp()
		g.pointerMove(o.X, o.Y-r)
		assert.InDelta(t, 1, g.current.Position.X, 1e-12)
	})

	t.Run("recenter", func(t *testing.T) {
		g.recenter()
		assert.Equal(t, mixer.Center, g.current.Position)
		for _, w := range g.current.Weights {
			assert.Equal(t, 0.25, w.Weight)
		}
	})
}

func TestGame_ShowReport(t *testing.T) {
	g, d, _ := newGame(t)
	g.showReport()
	require.Len(t, d.reports, 1)
	assert.Len(t, d.reports[0], 4)
	assert.NoError(t, g.lastErr)

	d.reportErr = errors.New("no display")
	g.showReport()
	assert.ErrorContains(t, g.lastErr, "no display")
}

func TestGame_EditTraitColor(t *testing.T) {
	g, d, _ := newGame(t)
	green := colorful.Color{R: 0, G: 1, B: 0}

	t.Run("cancel keeps the color", func(t *testing.T) {
		before := g.session.Traits()[1].Color
		g.editTraitColor(1)
		assert.Equal(t, []string{"Analytical"}, d.picked)
		assert.Equal(t, before, g.session.Traits()[1].Color)
	})

	t.Run("picked color reconfigures the session", func(t *testing.T) {
		d.pick, d.pickOK = green, true
		g.editTraitColor(1)
		assert.Equal(t, green, g.session.Traits()[1].Color)
		assert.Equal(t, green, g.current.Weights[1].Trait.Color)
	})

	t.Run("dialog error is surfaced", func(t *testing.T) {
		d.pickErr = errors.New("zenity missing")
		g.editTraitColor(0)
		assert.ErrorContains(t, g.lastErr, "zenity missing")
	})

	t.Run("out of range index", func(t *testing.T) {
		n := len(d.picked)
		g.editTraitColor(9)
		assert.Len(t, d.picked, n)
	})
}

func TestGame_Animate(t *testing.T) {
	g, _, _ := newGame(t)
	g.dragging = true
	for i := 0; i < 60; i++ {
		g.animate()
	}
	assert.InDelta(t, 1.15, g.knobScale, 1e-6)
	assert.InDelta(t, 0.85, g.rippleScale, 1e-6)
	assert.Zero(t, g.pulse)
}

func TestLayout(t *testing.T) {
	l := newLayout(config.Default())

	assert.Equal(t, 420.0, l.frameSize)
	assert.Equal(t, mixer.Point{X: 230, Y: 260}, l.disc.Origin)
	assert.Equal(t, 150.0, l.disc.Radius)
	assert.True(t, l.inFrame(230, 260))
	assert.False(t, l.inFrame(10, 260))

	top := l.labelPosition(mixer.NewTrait("t", mixer.White, mixer.Top))
	assert.InDelta(t, 230, top.X, 1e-9)
	assert.InDelta(t, 260-175, top.Y, 1e-9)

	px := l.toPixels(mixer.Position{X: 1, Y: 0})
	assert.Equal(t, mixer.Point{X: 380, Y: 260}, px)
}

func TestLayout_TraitAt(t *testing.T) {
	l := newLayout(config.Default())
	traits := mixer.DefaultTraits()

	for i, tr := range traits {
		p := l.labelPosition(tr)
		assert.Equal(t, i, l.traitAt(traits, p.X+3, p.Y-3), tr.Name)
	}
	assert.Equal(t, -1, l.traitAt(traits, l.disc.Origin.X, l.disc.Origin.Y))
}

func TestPieSlices(t *testing.T) {
	traits := mixer.DefaultTraits()
	w := mixer.WeightVector{
		{Trait: traits[0], Weight: 0.7},
		{Trait: traits[1], Weight: 0.3},
		{Trait: traits[2], Weight: 0},
		{Trait: traits[3], Weight: 0.001},
	}
	slices := pieSlices(w)
	require.Len(t, slices, 4)

	assert.InDelta(t, -math.Pi/2, slices[0].Start, 1e-12)
	assert.InDelta(t, 3*math.Pi/2, slices[3].End, 1e-9)
	for i := 1; i < len(slices); i++ {
		assert.Equal(t, slices[i-1].End, slices[i].Start)
	}

	total := 0.7 + 0.3 + 0.02 + 0.02
	assert.InDelta(t, 2*math.Pi*0.02/total, slices[2].End-slices[2].Start, 1e-12)
	assert.Equal(t, 0.0, slices[2].Weight, "legend keeps the real weight")

	assert.Nil(t, pieSlices(nil))
}

func TestLabelHelpers(t *testing.T) {
	assert.InDelta(t, 0.8, labelScale(0), 1e-12)
	assert.InDelta(t, 1.2, labelScale(1), 1e-12)
	assert.True(t, labelActive(0.25))
	assert.False(t, labelActive(0.05))
}

func TestRGBA(t *testing.T) {
	c := rgba(colorful.Color{R: 1, G: 0.5, B: 0}, 0.5)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(128), c.A)

	over := rgba(colorful.Color{R: 1.4, G: -0.2, B: 0.2}, 2)
	assert.Equal(t, uint8(255), over.R)
	assert.Equal(t, uint8(0), over.G)
	assert.Equal(t, uint8(255), over.A)
}

func TestBlendReport(t *testing.T) {
	traits := mixer.DefaultTraits()
	w := mixer.WeightVector{
		{Trait: traits[0], Weight: 0.6},
		{Trait: traits[1], Weight: 0.4},
	}
	assert.Equal(t, "Dominant: Creative\n\nCreative: 60%\nAnalytical: 40%", blendReport(w))
	assert.Empty(t, blendReport(nil))
}
