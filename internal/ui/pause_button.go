// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseIcon значок паузы с коротким "пульсом" после переключения.
type PauseIcon struct {
	X, Y      float32
	Size      float32
	Color     color.Color
	IsPaused  bool
	sinceFlip int // тиков с последнего переключения
}

func NewPauseIcon(x, y, size float32, clr color.Color) *PauseIcon {
	return &PauseIcon{X: x, Y: y, Size: size, Color: clr, sinceFlip: math.MaxInt32}
}

func (b *PauseIcon) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.sinceFlip = 0
	}
	b.IsPaused = paused
}

// Update отсчитывает тики для затухания пульса.
func (b *PauseIcon) Update() {
	if b.sinceFlip < math.MaxInt32 {
		b.sinceFlip++
	}
}

// Scale множитель размера: 1.3 сразу после переключения, дальше к 1.
func (b *PauseIcon) Scale() float32 {
	elapsed := float64(b.sinceFlip) / 60
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func (b *PauseIcon) Draw(screen *ebiten.Image) {
	if !b.IsPaused {
		return
	}
	size := b.Size * b.Scale()
	// Два прямоугольника (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.Color, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.Color, true)
}
