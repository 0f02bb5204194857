package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/utils"
)

func TestScoreText(t *testing.T) {
	assert.Equal(t, "SCORE 00000", ScoreText(0))
	assert.Equal(t, "SCORE 00530", ScoreText(530))
	assert.Equal(t, "SCORE 123456", ScoreText(123456))
}

func TestSlots(t *testing.T) {
	slots := Slots(2, 3)
	assert.Len(t, slots, 3)
	assert.Equal(t, config.PlayerColor, slots[0])
	assert.Equal(t, config.PlayerColor, slots[1])
	assert.NotEqual(t, config.PlayerColor, slots[2])

	assert.Len(t, Slots(0, 3), 3)
	assert.Len(t, Slots(5, 3), 5)
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "", StatusText(component.StatusOngoing))
	assert.Equal(t, "YOU WON", StatusText(component.StatusWon))
	assert.Equal(t, "GAME OVER", StatusText(component.StatusLost))
}

func TestBannerCentersText(t *testing.T) {
	b := NewBanner(600, 600, basicfont.Face7x13)

	// Face7x13: 7 пикселей на символ.
	o := b.Origin("GAME OVER", 0)
	assert.InDelta(t, (600-9*7)/2, o.X, 1)
	assert.Equal(t, 300, o.Y)
	assert.Greater(t, b.Origin("hint", 1).Y, o.Y)
}

func TestPauseIconPulse(t *testing.T) {
	icon := NewPauseIcon(0, 0, 10, config.TextColor)
	assert.InDelta(t, 1.0, icon.Scale(), 1e-6)

	icon.SetPaused(true)
	assert.InDelta(t, 1.3, icon.Scale(), 1e-6)
	for i := 0; i < 120; i++ {
		icon.Update()
	}
	assert.InDelta(t, 1.0, icon.Scale(), 0.01)
}

func TestCRTScanlinesEveryThreePixels(t *testing.T) {
	crt := NewCRT(600, 600, utils.NewPRNGService(1))

	lines := crt.Scanlines()
	assert.Len(t, lines, 200)
	assert.Equal(t, float32(0), lines[0])
	assert.Equal(t, float32(3), lines[1])
	assert.Equal(t, float32(597), lines[len(lines)-1])
}

func TestCRTFlickerStaysInRange(t *testing.T) {
	crt := NewCRT(600, 600, utils.NewPRNGService(7))
	same := NewCRT(600, 600, utils.NewPRNGService(7))

	seen := map[uint8]bool{}
	for i := 0; i < 500; i++ {
		a := crt.Flicker()
		assert.GreaterOrEqual(t, a, uint8(CRTMinAlpha))
		assert.LessOrEqual(t, a, uint8(CRTMaxAlpha))
		assert.Equal(t, a, same.Flicker(), "same seed, same flicker")
		seen[a] = true
	}
	assert.Greater(t, len(seen), 1)
	assert.Equal(t, crt.Alpha(), same.Alpha())
}
