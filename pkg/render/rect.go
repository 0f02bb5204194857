package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/pkg/utils"
)

// FillRect рисует залитую рамку.
func FillRect(dst *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// StrokeRect рисует контур рамки.
func StrokeRect(dst *ebiten.Image, r utils.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, false)
}

// Overlay затемняет весь кадр полупрозрачным цветом.
func Overlay(dst *ebiten.Image, clr color.RGBA) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), clr, false)
}
