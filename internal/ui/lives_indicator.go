// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
)

const (
	LifeIconWidth   = 24
	LifeIconHeight  = 12
	LifeIconSpacing = 6
)

// LivesIndicator рисует оставшиеся жизни значками корабля справа вверху.
type LivesIndicator struct {
	X, Y float32 // правый верхний угол
}

// NewLivesIndicator создает новый индикатор жизней.
func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Slots цвета значков слева направо: потерянные жизни тёмные.
func Slots(lives, maxLives int) []color.RGBA {
	if lives > maxLives {
		maxLives = lives
	}
	slots := make([]color.RGBA, maxLives)
	for j := range slots {
		if j < lives {
			slots[j] = config.PlayerColor
		} else {
			slots[j] = render.DarkenColor(render.DarkenColor(config.PlayerColor))
		}
	}
	return slots
}

// Draw рисует значки, последний прижат к X.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	slots := Slots(lives, maxLives)
	startX := i.X - float32(len(slots))*(LifeIconWidth+LifeIconSpacing) + LifeIconSpacing
	for j, clr := range slots {
		x := startX + float32(j)*(LifeIconWidth+LifeIconSpacing)
		// Корпус и пушка
		vector.DrawFilledRect(screen, x, i.Y+LifeIconHeight/3, LifeIconWidth, LifeIconHeight*2/3, clr, false)
		vector.DrawFilledRect(screen, x+LifeIconWidth/2-2, i.Y, 4, LifeIconHeight/3, clr, false)
	}
}
