// internal/ui/crt.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"
)

const (
	ScanlineStep  = 3
	CRTMinAlpha   = 75
	CRTMaxAlpha   = 90
	scanlineWidth = 1
)

// CRT накрывает кадр строками развёртки. Прозрачность дрожит каждый кадр.
type CRT struct {
	Width, Height float32
	rng           interfaces.RandomSource
	alpha         uint8
}

// NewCRT берёт собственный источник случайности, чтобы мерцание
// не сдвигало поток случайных чисел симуляции.
func NewCRT(width, height float32, rng interfaces.RandomSource) *CRT {
	return &CRT{Width: width, Height: height, rng: rng, alpha: CRTMinAlpha}
}

// Flicker выбирает прозрачность следующего кадра в [CRTMinAlpha, CRTMaxAlpha].
func (c *CRT) Flicker() uint8 {
	c.alpha = uint8(utils.IntRange(c.rng, CRTMinAlpha, CRTMaxAlpha))
	return c.alpha
}

func (c *CRT) Alpha() uint8 {
	return c.alpha
}

// Scanlines y-координаты строк развёртки сверху вниз.
func (c *CRT) Scanlines() []float32 {
	n := int(c.Height) / ScanlineStep
	ys := make([]float32, n)
	for i := range ys {
		ys[i] = float32(i * ScanlineStep)
	}
	return ys
}

// Draw рисуется последним, поверх HUD.
func (c *CRT) Draw(screen *ebiten.Image) {
	clr := render.WithAlpha(color.RGBA{}, c.Flicker())
	for _, y := range c.Scanlines() {
		vector.StrokeLine(screen, 0, y, c.Width, y, scanlineWidth, clr, false)
	}
}
