// internal/system/render.go
package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"
	pkgutils "go-space-invaders/pkg/utils"
)

// Слои отрисовки снизу вверх.
const (
	LayerBlocks = iota
	LayerEnemies
	LayerBonus
	LayerProjectiles
	LayerPlayer
)

// BonusBlinkPeriod период мигания бонусной цели в тиках.
const BonusBlinkPeriod = 30

// Sprite одна залитая рамка кадра.
type Sprite struct {
	Rect  pkgutils.Rect
	Color color.RGBA
	Layer int
}

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) layer(id types.EntityID) (int, bool) {
	switch {
	case s.ecs.Blocks[id] != nil:
		return LayerBlocks, true
	case s.ecs.Enemies[id] != nil:
		return LayerEnemies, true
	case s.ecs.Bonuses[id] != nil:
		return LayerBonus, true
	case s.ecs.Projectiles[id] != nil:
		return LayerProjectiles, true
	case s.ecs.Players[id] != nil:
		return LayerPlayer, true
	}
	return 0, false
}

// Sprites собирает кадр: все живые сущности с Renderable по слоям.
// hidePlayer убирает корабль после проигрыша.
func (s *RenderSystem) Sprites(tick int, hidePlayer bool) []Sprite {
	sprites := make([]Sprite, 0, len(s.ecs.Renderables))
	for _, id := range entity.Alive(s.ecs, s.ecs.Renderables) {
		layer, ok := s.layer(id)
		if !ok || (hidePlayer && layer == LayerPlayer) {
			continue
		}
		rect, _ := s.ecs.Bounds(id)
		clr := s.ecs.Renderables[id].Color
		if layer == LayerBonus {
			clr = render.ScaleColor(clr, 0.6+0.4*float64(utils.Pulse(tick, BonusBlinkPeriod)))
		}
		sprites = append(sprites, Sprite{Rect: rect, Color: clr, Layer: layer})
	}
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].Layer < sprites[j].Layer })
	return sprites
}

func (s *RenderSystem) Draw(screen *ebiten.Image, tick int, hidePlayer bool) {
	for _, sp := range s.Sprites(tick, hidePlayer) {
		render.FillRect(screen, sp.Rect, sp.Color)
	}
}
