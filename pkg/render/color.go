// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor умножает RGB на k (0..1), альфа не меняется.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с другой прозрачностью.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
