package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/utils"
	pkgutils "go-space-invaders/pkg/utils"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func newGame(t *testing.T, mutate func(*config.Config)) *app.Game {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := app.NewGame(cfg, utils.NewPRNGService(1))
	require.NoError(t, err)
	return g
}

func row(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func count(screen tcell.Screen, glyph rune) int {
	cols, rows := screen.Size()
	n := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == glyph {
				n++
			}
		}
	}
	return n
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestCellsMapping(t *testing.T) {
	// 600x600 на 60x30: ячейка 10x20 пикселей.
	c0, r0, c1, r1 := cells(pkgutils.Rect{X: 270, Y: 570, W: 60, H: 30}, 600, 600, 60, 30)
	assert.Equal(t, []int{27, 28, 32, 29}, []int{c0, r0, c1, r1})

	// Узкий лазер всё равно занимает одну ячейку.
	c0, _, c1, _ = cells(pkgutils.Rect{X: 301, Y: 100, W: 2, H: 10}, 600, 600, 60, 30)
	assert.Equal(t, c0, c1)
}

func TestDrawPlayfieldAndHUD(t *testing.T) {
	screen := newScreen(t, 60, 31)
	g := newGame(t, nil)

	NewRenderer(screen).Draw(g, false)

	hud := row(screen, 30)
	assert.Contains(t, hud, "SCORE 0")
	assert.Contains(t, hud, "LIVES ♥♥♥")

	r, _, _, _ := screen.GetContent(30, 29)
	assert.Equal(t, glyphPlayer, r)
	assert.Greater(t, count(screen, tierGlyphs[defs.TierA]), 0)
	assert.Greater(t, count(screen, glyphBlock), 0)
	assert.Zero(t, count(screen, glyphBonus))
}

func TestDrawBanners(t *testing.T) {
	screen := newScreen(t, 60, 31)
	g := newGame(t, nil)
	renderer := NewRenderer(screen)

	renderer.Draw(g, true)
	assert.Contains(t, row(screen, 15), "PAUSED")

	g.FormationSystem.Clear()
	g.Tick(app.Input{})
	renderer.Draw(g, false)
	assert.Contains(t, row(screen, 15), "YOU WON")
}

func TestControlsHoldAndFire(t *testing.T) {
	c := &Controls{}

	assert.Equal(t, ActionNone, c.HandleKey(key(tcell.KeyLeft, 0)))
	assert.Equal(t, ActionNone, c.HandleKey(key(tcell.KeyRune, ' ')))

	first := c.Next()
	assert.Equal(t, app.Input{Direction: -1, Fire: true}, first)
	for i := 1; i < HoldTicks; i++ {
		assert.Equal(t, app.Input{Direction: -1}, c.Next(), "tick %d", i)
	}
	assert.Equal(t, app.Input{}, c.Next())

	c.HandleKey(key(tcell.KeyRune, 'd'))
	assert.Equal(t, 1, c.Next().Direction)
}

func TestControlsPauseAndQuit(t *testing.T) {
	c := &Controls{}

	assert.Equal(t, ActionPause, c.HandleKey(key(tcell.KeyRune, 'p')))
	assert.True(t, c.Paused())
	c.HandleKey(key(tcell.KeyRune, 'p'))
	assert.False(t, c.Paused())

	assert.Equal(t, ActionQuit, c.HandleKey(key(tcell.KeyEscape, 0)))
	assert.Equal(t, ActionQuit, c.HandleKey(key(tcell.KeyRune, 'q')))
}

func TestRunQuitsOnEscape(t *testing.T) {
	screen := newScreen(t, 60, 31)
	g := newGame(t, nil)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, Run(ctx, screen, g))
}

func TestRunStopsOnContext(t *testing.T) {
	screen := newScreen(t, 60, 31)
	g := newGame(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := Run(ctx, screen, g)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, g.Ticks(), 0)
}
