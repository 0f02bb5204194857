package system

import (
	"fmt"
	"math"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/types"
	"go-space-invaders/pkg/utils"
)

// ObstacleSystem владеет блоками барьеров. Позиции считаются один раз
// в конструкторе и больше не пересчитываются.
type ObstacleSystem struct {
	ecs     *entity.ECS
	offsets []float64
	xStart  float64
}

func NewObstacleSystem(ecs *entity.ECS, cfg config.Config) (*ObstacleSystem, error) {
	o := cfg.Obstacles
	cells := defs.ParseShape(o.Shape)
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: obstacle shape has no blocks", config.ErrInvalidConfig)
	}
	if o.Count <= 0 || o.BlockSize <= 0 {
		return nil, fmt.Errorf("%w: obstacle count %d, block size %v", config.ErrInvalidConfig, o.Count, o.BlockSize)
	}

	// Барьеры равномерно по ширине экрана, вся группа по центру.
	offsets := make([]float64, o.Count)
	for i := range offsets {
		offsets[i] = float64(i) * (cfg.ScreenWidth / float64(o.Count))
	}
	shapeWidth := float64(defs.ShapeWidth(o.Shape)) * o.BlockSize
	xStart := math.Floor((cfg.ScreenWidth - (offsets[len(offsets)-1] + shapeWidth)) / 2)

	s := &ObstacleSystem{ecs: ecs, offsets: offsets, xStart: xStart}
	for i, offset := range offsets {
		for _, cell := range cells {
			rect := utils.Rect{
				X: xStart + float64(cell.Col)*o.BlockSize + offset,
				Y: o.Y + float64(cell.Row)*o.BlockSize,
				W: o.BlockSize,
				H: o.BlockSize,
			}
			id := ecs.Spawn(rect, component.Renderable{Color: config.BlockColor})
			ecs.Blocks[id] = &component.Block{Obstacle: i}
		}
	}
	return s, nil
}

// Blocks возвращает живые блоки.
func (s *ObstacleSystem) Blocks() []types.EntityID {
	return entity.Alive(s.ecs, s.ecs.Blocks)
}

// Overlapping возвращает живые блоки, пересекающие rect.
func (s *ObstacleSystem) Overlapping(rect utils.Rect) []types.EntityID {
	var hits []types.EntityID
	for _, id := range s.Blocks() {
		if b, ok := s.ecs.Bounds(id); ok && b.Overlaps(rect) {
			hits = append(hits, id)
		}
	}
	return hits
}
