package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG            = color.RGBA{10, 145, 73, 255}
	colorHUD           = color.RGBA{255, 255, 255, 255}
	colorPauseOverlay  = color.RGBA{0, 0, 0, 128}
	colorFrozenOverlay = color.RGBA{100, 0, 0, 160}
)

// Avatar corner radius; only the top corners are rounded
const avatarRadius = 15

type rect struct {
	X, Y, W, H float32
}

type circle struct {
	X, Y, R float32
}

// roundedRectParts splits a box with rounded top and bottom corners into
// filled rectangles and corner circles. Radii are clamped to half the
// smaller side.
func roundedRectParts(x, y, w, h, top, bottom float32) ([]rect, []circle) {
	limit := w / 2
	if h/2 < limit {
		limit = h / 2
	}
	top = min(max(top, 0), limit)
	bottom = min(max(bottom, 0), limit)

	rects := []rect{{x, y + top, w, h - top - bottom}}
	var circles []circle

	if top > 0 {
		rects = append(rects, rect{x + top, y, w - 2*top, top})
		circles = append(circles, circle{x + top, y + top, top}, circle{x + w - top, y + top, top})
	}
	if bottom > 0 {
		rects = append(rects, rect{x + bottom, y + h - bottom, w - 2*bottom, bottom})
		circles = append(circles, circle{x + bottom, y + h - bottom, bottom}, circle{x + w - bottom, y + h - bottom, bottom})
	}
	return rects, circles
}

func drawRoundedRect(dst *ebiten.Image, x, y, w, h, top, bottom float32, c color.Color) {
	rects, circles := roundedRectParts(x, y, w, h, top, bottom)
	for _, r := range rects {
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, c, true)
	}
	for _, ci := range circles {
		vector.DrawFilledCircle(dst, ci.X, ci.Y, ci.R, c, true)
	}
}

func drawText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y, c)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	for _, pl := range p.session.Field().Platforms() {
		p.drawPlatform(screen, pl)
	}
	p.drawAvatar(screen)
	p.drawHUD(screen)

	switch p.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateFrozen:
		p.drawFrozenOverlay(screen)
	}
}

func (p *Playing) drawPlatform(screen *ebiten.Image, pl *entity.Platform) {
	r := float32(p.config.Entities.Platform.Roundness)
	drawRoundedRect(screen, float32(pl.X), float32(pl.Y), float32(pl.Width), float32(pl.Height), r, r, pl.Tint)

	if !pl.HasSpring() {
		return
	}
	// Drawn from the platform's top edge so the animated height grows upward
	h := p.springs.Height(pl)
	vector.DrawFilledRect(screen, float32(pl.Spring.X), float32(pl.Y-h), float32(pl.Spring.Width), float32(h),
		p.config.Entities.Spring.Color.Color(), false)
}

func (p *Playing) drawAvatar(screen *ebiten.Image) {
	a := p.session.Avatar()
	drawRoundedRect(screen, float32(a.X), float32(a.Y), float32(a.Width), float32(a.Height), avatarRadius, 0,
		p.config.Entities.Avatar.Color.Color())
}

// hudText is the score line shown in the corner
func (p *Playing) hudText() string {
	odds := p.session.Field().Odds()
	return fmt.Sprintf("Score: %d Cloud: %.2f Move: %.2f", p.session.Score(), odds.Cloud, odds.Move)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	drawText(screen, p.hudText(), 10, 20, colorHUD)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorPauseOverlay, false)
	drawText(screen, "PAUSED", p.screenW/2-21, p.screenH/2-10, colorHUD)
	drawText(screen, "Press ESC to resume", p.screenW/2-66, p.screenH/2+10, colorHUD)
}

func (p *Playing) drawFrozenOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorFrozenOverlay, false)
	msg := fmt.Sprintf("FROZEN - final score %d", p.session.Score())
	drawText(screen, msg, p.screenW/2-len(msg)*7/2, p.screenH/2, colorHUD)
}
