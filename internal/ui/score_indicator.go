package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
)

// ScoreIndicator отображает счёт в левом верхнем углу.
type ScoreIndicator struct {
	X, Y             int
	Face             font.Face
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewScoreIndicator создает новый индикатор счёта.
func NewScoreIndicator(x, y int, face font.Face) *ScoreIndicator {
	return &ScoreIndicator{
		X:                x,
		Y:                y,
		Face:             face,
		Color:            config.TextColor,
		OutlineColor:     config.BackgroundColor,
		OutlineThickness: 1,
	}
}

// ScoreText строка счёта с ведущими нулями, как на автоматах.
func ScoreText(score int) string {
	return fmt.Sprintf("SCORE %05d", score)
}

// Draw отрисовывает индикатор на экране.
func (i *ScoreIndicator) Draw(screen *ebiten.Image, score int) {
	drawOutlined(screen, ScoreText(score), i.Face, image.Pt(i.X, i.Y), i.Color, i.OutlineColor, i.OutlineThickness)
}

// drawOutlined рисует текст с обводкой. origin это базовая линия.
func drawOutlined(screen *ebiten.Image, s string, face font.Face, origin image.Point, clr, outline color.Color, thickness int) {
	for y := -thickness; y <= thickness; y++ {
		for x := -thickness; x <= thickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, s, face, origin.X+x, origin.Y+y, outline)
		}
	}
	text.Draw(screen, s, face, origin.X, origin.Y, clr)
}
