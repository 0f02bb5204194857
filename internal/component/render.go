// component/render.go
package component

import "image/color"

// Body размер ограничивающей рамки. Рамка всегда строится от Position.
type Body struct {
	Width, Height float64
}

// Renderable компонент для отрисовки
type Renderable struct {
	Color color.RGBA
}
