package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/hellfall/internal/application/state"
	"github.com/younwookim/hellfall/internal/domain/entity"
	"golang.org/x/image/colornames"
)

// Colors for rendering
var (
	colorBG       = colornames.Midnightblue
	colorStone    = colornames.Slategray
	colorGrass    = colornames.Forestgreen
	colorDecor    = colornames.Darkslategray
	colorPlayer   = colornames.Limegreen
	colorWalker   = colornames.Ivory
	colorLunger   = colornames.Mediumpurple
	colorBoss     = colornames.Crimson
	colorFlash    = colornames.White
	colorArrow    = colornames.Orange
	colorBolt     = colornames.Magenta
	colorSpark    = colornames.Gold
	colorDust     = colornames.Lightgray
	colorLeaf     = colornames.Olivedrab
	colorHeart    = colornames.Red
	colorWipe     = colornames.Black
	colorPause    = color.RGBA{0, 0, 0, 128}
	colorGameOver = color.RGBA{100, 0, 0, 120}
)

// wipeRowHeight is the scanline height used to draw the level wipe
const wipeRowHeight = 2

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cam := p.scroll.Add(p.enc.ShakeOffset(p.shakeRNG))
	camX, camY := math.Floor(cam.X), math.Floor(cam.Y)

	s := p.enc.State()
	p.drawTiles(screen, camX, camY)
	for _, pt := range s.Particles {
		c := colorDust
		if pt.Type == entity.ParticleLeaf {
			c = colorLeaf
		}
		ebitenutil.DrawRect(screen, pt.Pos.X-camX-1, pt.Pos.Y-camY-1, 2, 2, c)
	}
	for _, e := range s.Walkers {
		drawBody(screen, &e.Body, camX, camY, colorWalker)
	}
	for _, e := range s.Lungers {
		drawBody(screen, &e.Body, camX, camY, colorLunger)
	}
	for _, e := range s.Bosses {
		c := colorBoss
		if e.GraceTimer > 0 && e.GraceTimer/4%2 == 0 {
			c = colorFlash
		}
		drawBody(screen, &e.Body, camX, camY, c)
	}
	if s.Dead < 1 && s.Player.Visible() {
		c := colorPlayer
		if s.Cooldown > 0 && s.Cooldown/4%2 == 0 {
			c = colorFlash
		}
		drawBody(screen, &s.Player.Body, camX, camY, c)
	}
	for _, pr := range s.Projectiles {
		c := colorArrow
		if pr.Kind == entity.ProjectileBolt {
			c = colorBolt
		}
		x, y := pr.Pos.X-camX, pr.Pos.Y-camY
		ebitenutil.DrawLine(screen, x, y, x-pr.Vel.X*3, y-pr.Vel.Y*3, c)
		ebitenutil.DrawRect(screen, x-1, y-1, 2, 2, c)
	}
	for _, sp := range s.Sparks {
		x, y := sp.Pos.X-camX, sp.Pos.Y-camY
		tail := sp.Speed * 3
		ebitenutil.DrawLine(screen, x, y, x-math.Cos(sp.Angle)*tail, y-math.Sin(sp.Angle)*tail, colorSpark)
	}

	p.drawUI(screen)

	switch p.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorGameOver)
	}

	for _, r := range wipeSpans(p.enc.TransitionRadius(), p.screenW, p.screenH) {
		ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, colorWipe)
	}
}

func drawBody(screen *ebiten.Image, b *entity.Body, camX, camY float64, c color.Color) {
	ebitenutil.DrawRect(screen, b.Pos.X-camX, b.Pos.Y-camY, b.Size.X, b.Size.Y, c)
	// Facing notch
	nx := b.Pos.X - camX + b.Size.X - 2
	if b.FacingLeft() {
		nx = b.Pos.X - camX
	}
	ebitenutil.DrawRect(screen, nx, b.Pos.Y-camY+2, 2, 2, colorBG)
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	tiles := p.enc.State().Tiles
	if tiles == nil {
		return
	}
	size := float64(tiles.TileSize)

	for _, t := range tiles.Offgrid {
		ebitenutil.DrawRect(screen, t.Pos.X-camX, t.Pos.Y-camY, size, size, colorDecor)
	}
	for g, t := range tiles.Grid {
		x := float64(g.X)*size - camX
		y := float64(g.Y)*size - camY
		if x+size < 0 || y+size < 0 || x > float64(p.screenW) || y > float64(p.screenH) {
			continue
		}

		var c color.Color
		switch t.Type {
		case "stone":
			c = colorStone
		case "grass":
			c = colorGrass
		default:
			c = colorDecor
		}
		ebitenutil.DrawRect(screen, x, y, size, size, c)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	for i := 0; i < p.enc.LivesShown(); i++ {
		ebitenutil.DrawRect(screen, float64(8+i*12), 8, 8, 8, colorHeart)
	}

	levelText := fmt.Sprintf("Level %d/%d", p.enc.Level()+1, p.enc.MaxLevel())
	ebitenutil.DebugPrintAt(screen, levelText, p.screenW-80, 4)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorPause)

	text := "PAUSED\n\nPress ESC to resume\nQ to quit"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-55, p.screenH/2-30)
}

// wipeSpans returns the rects that cover the screen outside a circle of
// the given radius centered on the screen, one scanline band at a time.
func wipeSpans(radius float64, w, h int) []entity.Rect {
	cx, cy := float64(w)/2, float64(h)/2
	if radius*radius >= cx*cx+cy*cy {
		return nil
	}

	var spans []entity.Rect
	for y := 0; y < h; y += wipeRowHeight {
		dy := float64(y) + wipeRowHeight/2.0 - cy
		if radius <= 0 || math.Abs(dy) >= radius {
			spans = append(spans, entity.Rect{X: 0, Y: float64(y), W: float64(w), H: wipeRowHeight})
			continue
		}

		half := math.Sqrt(radius*radius - dy*dy)
		left := cx - half
		right := cx + half
		if left > 0 {
			spans = append(spans, entity.Rect{X: 0, Y: float64(y), W: left, H: wipeRowHeight})
		}
		if right < float64(w) {
			spans = append(spans, entity.Rect{X: right, Y: float64(y), W: float64(w) - right, H: wipeRowHeight})
		}
	}
	return spans
}
