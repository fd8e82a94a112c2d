package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/trait-mixer/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	background = colorful.Color{R: 0.96, G: 0.96, B: 0.97}
	rimColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 150}
	shadow     = color.NRGBA{A: 50}
)

// whiteSubImage is the 1x1 source for DrawTriangles fills.
var whiteSubImage *ebiten.Image

func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawDisc(screen)
	g.drawLabels(screen)
	g.drawKnob(screen)
	if g.showPanel {
		g.drawPanel(screen)
	}

	status := "Drag to mix - Space: recenter, Enter: report, Tab: panel, right-click a trait: recolor, Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// drawBackground tints the window toward the blend, slowly breathing.
func (g *Game) drawBackground(screen *ebiten.Image) {
	h := g.cfg.WindowHeight
	for y := 0; y < h; y += 4 {
		ratio := float64(y) / float64(h)
		amount := 0.08 + 0.04*math.Sin(g.time*0.5+ratio*math.Pi)
		c := background.BlendRgb(g.current.Color, amount)
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.cfg.WindowWidth), 4, rgba(c, 1), false)
	}
}

func (g *Game) drawDisc(screen *ebiten.Image) {
	o := g.layout.disc.Origin
	r := float32(g.layout.disc.Radius)
	cx, cy := float32(o.X), float32(o.Y)
	blend := g.current.Color

	vector.DrawFilledCircle(screen, cx+2, cy+8, r, shadow, true)
	vector.DrawFilledCircle(screen, cx, cy, r, rgba(blend, 1), true)

	// Glass highlight toward the top left.
	for i := 0; i < 3; i++ {
		hr := float32(40 - i*10)
		off := float32(-30 + i*10)
		vector.DrawFilledCircle(screen, cx-r/3+off, cy-r/3+off, hr, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(40 - i*10)}, true)
	}
	vector.StrokeCircle(screen, cx, cy, r, 2, rimColor, true)

	ripple := r * float32(g.rippleScale)
	vector.StrokeCircle(screen, cx, cy, ripple, 2, rgba(blend.BlendRgb(colorful.Color{}, 0.2), 0.3), true)

	// Center reference, pulsing with the tick.
	pulse := float32(8 + 10*g.pulse)
	vector.DrawFilledCircle(screen, cx, cy, pulse, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(120 + 100*g.pulse)}, true)
	vector.DrawFilledCircle(screen, cx, cy, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 220}, true)
}

func (g *Game) drawLabels(screen *ebiten.Image) {
	for _, e := range g.current.Weights {
		p := g.layout.labelPosition(e.Trait)
		x, y := float32(p.X), float32(p.Y)

		if labelActive(e.Weight) {
			ring := float32(18 * (1 + e.Weight*0.3))
			vector.StrokeCircle(screen, x, y, ring, 2, rgba(e.Trait.Color, e.Weight*0.6), true)
		}
		dot := float32(12 * labelScale(e.Weight))
		vector.DrawFilledCircle(screen, x, y, dot, rgba(e.Trait.Color, 1), true)
		vector.StrokeCircle(screen, x, y, dot, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 80}, true)

		initial := e.Trait.Name
		if len(initial) > 0 {
			initial = initial[:1]
		}
		ebitenutil.DebugPrintAt(screen, initial, int(x)-3, int(y)-8)
	}
}

func (g *Game) drawKnob(screen *ebiten.Image) {
	p := g.layout.toPixels(g.current.Position)
	x, y := float32(p.X), float32(p.Y)
	r := float32(g.layout.knobSize / 2 * g.knobScale)

	vector.DrawFilledCircle(screen, x, y+4, r, color.NRGBA{A: 64}, true)
	vector.DrawFilledCircle(screen, x, y, r, color.White, true)
	vector.DrawFilledCircle(screen, x, y, r*0.7, rgba(g.current.Color, 0.3), true)
	vector.StrokeCircle(screen, x, y, r, 1, color.NRGBA{R: 160, G: 160, B: 170, A: 120}, true)
}

// drawPanel shows the pie chart and the percentage legend.
func (g *Game) drawPanel(screen *ebiten.Image) {
	l := g.layout
	panelH := float32(l.legendY-l.panelY) + float32(len(g.current.Weights))*18 + 16
	vector.DrawFilledRect(screen, float32(l.panelX), float32(l.panelY), config.PanelWidth, panelH, color.NRGBA{R: 255, G: 255, B: 255, A: 170}, true)
	vector.StrokeRect(screen, float32(l.panelX), float32(l.panelY), config.PanelWidth, panelH, 1, color.NRGBA{R: 200, G: 200, B: 210, A: 200}, true)

	cx, cy := float32(l.pieCenter.X), float32(l.pieCenter.Y)
	for _, s := range pieSlices(g.current.Weights) {
		drawSector(screen, cx, cy, float32(l.pieRadius), float32(s.Start), float32(s.End), rgba(s.Trait.Color, 0.9))
	}
	hole := float32(l.pieRadius * config.PieHoleFrac)
	vector.DrawFilledCircle(screen, cx, cy, hole, color.White, true)

	ebitenutil.DebugPrintAt(screen, "BLEND", int(cx)-15, int(cy)-14)
	if dom, ok := g.current.Weights.Dominant(); ok {
		ebitenutil.DebugPrintAt(screen, dom.Trait.Name, int(cx)-len(dom.Trait.Name)*3, int(cy))
	}

	y := l.legendY
	for _, e := range g.current.Weights {
		x := l.panelX + 16
		vector.DrawFilledCircle(screen, float32(x), float32(y+8), 6, rgba(e.Trait.Color, 1), true)
		ebitenutil.DebugPrintAt(screen, e.Trait.Name, int(x)+14, int(y))
		pct := formatPercent(e.Weight)
		ebitenutil.DebugPrintAt(screen, pct, int(l.panelX)+config.PanelWidth-16-len(pct)*6, int(y))
		y += 18
	}
}

// drawSector fills a pie slice between two screen angles, clockwise.
func drawSector(dst *ebiten.Image, cx, cy, r, start, end float32, clr color.NRGBA) {
	if end <= start {
		return
	}
	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, r, start, end, vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	a := float32(clr.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff * a
		vs[i].ColorG = float32(clr.G) / 0xff * a
		vs[i].ColorB = float32(clr.B) / 0xff * a
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, fillSource(), op)
}
