// internal/system/visual_effect.go
package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"
	pkgutils "go-space-invaders/pkg/utils"
)

const (
	ExplosionFlashTicks = 12
	ExplosionFlashSize  = 24
	PlayerFlashTicks    = 45
)

// Subscriber источник событий симуляции.
type Subscriber interface {
	Subscribe(eventType event.EventType, listener event.Listener)
}

// VisualEffectSystem управляет визуальными эффектами: вспышки попаданий
// и мигание корабля после потери жизни.
type VisualEffectSystem struct {
	ecs         *entity.ECS
	playerID    types.EntityID
	flashes     []component.Flash
	playerFlash int
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, playerID types.EntityID, source Subscriber) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs, playerID: playerID}
	source.Subscribe(event.Explosion, s)
	source.Subscribe(event.EnemyDestroyed, s)
	source.Subscribe(event.LifeLost, s)
	return s
}

// OnEvent вызывается внутри тика, пока сущность ещё не удалена Compact.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.Explosion:
		id, _ := e.Data.(types.EntityID)
		if rect, ok := s.ecs.Bounds(id); ok {
			cx, cy := rect.Center()
			s.add(cx, cy, ExplosionFlashSize, config.TextColor)
		}
	case event.EnemyDestroyed:
		id, _ := e.Data.(types.EntityID)
		if rect, ok := s.ecs.Bounds(id); ok {
			clr := config.TextColor
			if r := s.ecs.Renderables[id]; r != nil {
				clr = r.Color
			}
			cx, cy := rect.Center()
			s.add(cx, cy, rect.W, clr)
		}
	case event.LifeLost:
		s.playerFlash = PlayerFlashTicks
	}
}

func (s *VisualEffectSystem) add(cx, cy, size float64, clr color.RGBA) {
	s.flashes = append(s.flashes, component.Flash{
		Rect:     pkgutils.Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size},
		Color:    clr,
		Duration: ExplosionFlashTicks,
	})
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	alive := s.flashes[:0]
	for _, f := range s.flashes {
		f.Timer++
		if f.Timer < f.Duration {
			alive = append(alive, f)
		}
	}
	s.flashes = alive
	if s.playerFlash > 0 {
		s.playerFlash--
	}
}

// Flashes активные вспышки.
func (s *VisualEffectSystem) Flashes() []component.Flash {
	return s.flashes
}

// PlayerHidden true в "тёмной" фазе мигания корабля.
func (s *VisualEffectSystem) PlayerHidden() bool {
	return s.playerFlash > 0 && (s.playerFlash/5)%2 == 1
}

// Draw рисует вспышки: квадрат растёт и гаснет.
func (s *VisualEffectSystem) Draw(screen *ebiten.Image) {
	for _, f := range s.flashes {
		p := f.Progress()
		grow := f.Rect.W * p / 2
		rect := pkgutils.Rect{X: f.Rect.X - grow/2, Y: f.Rect.Y - grow/2, W: f.Rect.W + grow, H: f.Rect.H + grow}
		fade := utils.Lerp(1, 0, float32(p))
		render.StrokeRect(screen, rect, 2, render.ScaleColor(f.Color, float64(fade)))
	}
}
