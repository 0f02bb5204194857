package tui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/pkg/utils"
)

const (
	glyphPlayer = '▲'
	glyphBlock  = '█'
	glyphLaser  = '|'
	glyphBonus  = '◆'
)

var tierGlyphs = map[defs.Tier]rune{
	defs.TierA: 'W',
	defs.TierB: 'M',
	defs.TierC: 'V',
}

// Renderer рисует поле в ячейках терминала. Последняя строка экрана под HUD.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorBlack)
}

// cells переводит рамку в диапазон ячеек [c0, c1] x [r0, r1].
func cells(rect utils.Rect, sw, sh float64, cols, rows int) (c0, r0, c1, r1 int) {
	fc, fr := float64(cols), float64(rows)
	c0 = int(math.Floor(rect.Left() * fc / sw))
	c1 = int(math.Ceil(rect.Right()*fc/sw)) - 1
	r0 = int(math.Floor(rect.Top() * fr / sh))
	r1 = int(math.Ceil(rect.Bottom()*fr/sh)) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return
}

func (r *Renderer) fill(rect utils.Rect, cfg config.Config, glyph rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	rows-- // HUD
	if cols <= 0 || rows <= 0 {
		return
	}
	c0, r0, c1, r1 := cells(rect, cfg.ScreenWidth, cfg.ScreenHeight, cols, rows)
	for y := max(r0, 0); y <= min(r1, rows-1); y++ {
		for x := max(c0, 0); x <= min(c1, cols-1); x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// Draw выводит кадр. paused добавляет плашку паузы.
func (r *Renderer) Draw(g *app.Game, paused bool) {
	cfg := g.Config()
	r.screen.Clear()

	for _, b := range g.Blocks() {
		r.fill(b.Rect, cfg, glyphBlock, styleOf(b.Color))
	}
	for _, e := range g.Enemies() {
		r.fill(e.Rect, cfg, tierGlyphs[e.Tier], styleOf(e.Color))
	}
	if bonus, ok := g.Bonus(); ok {
		r.fill(bonus.Rect, cfg, glyphBonus, styleOf(bonus.Color))
	}
	for _, p := range g.AllProjectiles() {
		r.fill(p.Rect, cfg, glyphLaser, styleOf(p.Color))
	}
	if player, ok := g.Player(); ok && g.Lives() > 0 {
		r.fill(player.Rect, cfg, glyphPlayer, styleOf(player.Color))
	}

	r.drawHUD(g, paused)
	r.screen.Show()
}

func (r *Renderer) drawHUD(g *app.Game, paused bool) {
	cols, rows := r.screen.Size()
	hud := styleOf(config.TextColor)
	line := fmt.Sprintf("SCORE %d  LIVES %s", g.Score(), strings.Repeat("♥", g.Lives()))
	r.text(0, rows-1, line, hud)

	var banner string
	switch {
	case g.Status() == component.StatusWon:
		banner = "YOU WON"
	case g.Status() == component.StatusLost:
		banner = "GAME OVER"
	case paused:
		banner = "PAUSED"
	}
	if banner != "" {
		r.text((cols-len(banner))/2, (rows-1)/2, banner, hud.Reverse(true))
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
