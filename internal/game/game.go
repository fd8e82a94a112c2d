package game

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/trait-mixer/internal/config"
	"github.com/iburimskiy/trait-mixer/internal/feedback"
	"github.com/iburimskiy/trait-mixer/internal/mixer"
)

// Game hosts one mixing session in an ebiten window.
type Game struct {
	cfg     config.Config
	layout  layout
	session *mixer.Session
	player  feedback.Player
	dialogs Dialogs
	logger  *slog.Logger

	// current is re-derived from the session on every update.
	current mixer.Snapshot

	// pointer
	dragging bool
	touching bool
	touchID  ebiten.TouchID

	// animation
	time        float64
	knobScale   float64
	rippleScale float64
	pulse       float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	showPanel bool
	lastErr   error
}

// New wires a session for cfg to the given feedback player and dialogs.
func New(cfg config.Config, player feedback.Player, dialogs Dialogs, logger *slog.Logger) (*Game, error) {
	l := newLayout(cfg)
	s, err := mixer.NewSession(cfg.Traits, l.disc,
		mixer.WithParams(cfg.Params),
		mixer.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:         cfg,
		layout:      l,
		session:     s,
		player:      player,
		dialogs:     dialogs,
		logger:      logger,
		knobScale:   1,
		rippleScale: 0.8,
		prevKey:     map[ebiten.Key]bool{},
		showPanel:   cfg.ShowPanel,
	}
	s.OnCenterCross(player.Play)
	s.OnBlendChange(g.reportBlend)
	s.Begin()
	g.current = s.Snapshot()
	return g, nil
}

// Session exposes the running session.
func (g *Game) Session() *mixer.Session { return g.session }

// reportBlend is the host's blend-changed callback.
func (g *Game) reportBlend(snap mixer.Snapshot) {
	g.logger.Debug("blend updated", "blend", snap.Weights.String())
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.updateMouse()
	g.updateTouch()

	if justPressed(ebiten.KeySpace) {
		g.recenter()
	}
	if justPressed(ebiten.KeyTab) {
		g.showPanel = !g.showPanel
	}
	if justPressed(ebiten.KeyEnter) {
		g.showReport()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.animate()
	g.current = g.session.Snapshot()
	return nil
}

func (g *Game) updateMouse() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if i := g.layout.traitAt(g.session.Traits(), fx, fy); i >= 0 {
			g.editTraitColor(i)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pointerDown(fx, fy)
	}
	if g.dragging && !g.touching && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.pointerMove(fx, fy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && !g.touching {
		g.pointerUp()
	}
}

// updateTouch follows the first finger only.
func (g *Game) updateTouch() {
	if !g.touching {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			g.touchID, g.touching = id, true
			g.pointerDown(float64(x), float64(y))
			break
		}
		return
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		g.pointerUp()
		return
	}
	x, y := ebiten.TouchPosition(g.touchID)
	g.pointerMove(float64(x), float64(y))
}

// pointerDown starts a drag when the press lands on the mixer frame.
func (g *Game) pointerDown(x, y float64) {
	if !g.layout.inFrame(x, y) {
		return
	}
	g.dragging = true
	g.pointerMove(x, y)
}

func (g *Game) pointerMove(x, y float64) {
	if !g.dragging {
		return
	}
	snap, err := g.session.Apply(mixer.Point{X: x, Y: y})
	if err != nil {
		g.fail("apply pointer", err)
		return
	}
	g.current = snap
}

func (g *Game) pointerUp() {
	g.dragging = false
}

func (g *Game) recenter() {
	g.dragging = false
	g.session.Begin()
	g.current = g.session.Snapshot()
	g.logger.Info("session restarted")
}

func (g *Game) showReport() {
	w := g.session.Snapshot().Weights
	g.logger.Info("blend report", "blend", w.String())
	if err := g.dialogs.ReportBlend(w); err != nil {
		g.fail("report dialog", err)
	}
}

// editTraitColor asks for a new color for trait i and reconfigures the
// session with it.
func (g *Game) editTraitColor(i int) {
	traits := g.session.Traits()
	if i < 0 || i >= len(traits) {
		return
	}
	c, ok, err := g.dialogs.PickColor(traits[i])
	if err != nil {
		g.fail("color dialog", err)
		return
	}
	if !ok {
		return
	}
	traits[i].Color = c
	if err := g.session.Configure(traits); err != nil {
		g.fail("configure traits", err)
		return
	}
	g.current = g.session.Snapshot()
	g.logger.Info("trait color changed", "trait", traits[i].Name, "color", c.Hex())
}

func (g *Game) fail(op string, err error) {
	g.lastErr = fmt.Errorf("%s: %w", op, err)
	g.logger.Warn(op+" failed", "error", err)
}

// animate eases the knob, the ripple and the tick pulse toward their targets.
func (g *Game) animate() {
	g.time += 1.0 / 60.0
	knob, ripple := 1.0, 0.8
	if g.dragging {
		knob, ripple = 1.15, 0.85
	}
	g.knobScale = smooth(g.knobScale, knob, config.SmoothingFactor)
	g.rippleScale = smooth(g.rippleScale, ripple, config.SmoothingFactor)
	g.pulse = smooth(g.pulse, clamp01(g.player.Level()*4), config.SmoothingFactor)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
