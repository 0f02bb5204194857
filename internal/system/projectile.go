// internal/system/projectile.go
package system

import (
	"image/color"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/types"
	"go-space-invaders/pkg/utils"
)

// ProjectileSystem управляет движением лазеров обеих сторон.
type ProjectileSystem struct {
	ecs             *entity.ECS
	movement        *MovementSystem
	cfg             config.ProjectileConfig
	screenHeight    float64
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, cfg config.Config, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		movement:        NewMovementSystem(ecs),
		cfg:             cfg.Projectile,
		screenHeight:    cfg.ScreenHeight,
		eventDispatcher: eventDispatcher,
	}
}

// FirePlayer создаёт лазер игрока с центром в (cx, cy). Ограничение
// "один лазер в полёте" проверяет PlayerSystem до вызова.
func (s *ProjectileSystem) FirePlayer(cx, cy float64) types.EntityID {
	return s.spawn(cx, cy, defs.OwnerPlayer, s.cfg.PlayerSpeed, config.PlayerLaserColor)
}

// FireEnemy выбирает случайного живого юнита и стреляет из его центра
// цветом его яруса. Пустая формация: ничего не происходит.
func (s *ProjectileSystem) FireEnemy(formation *FormationSystem, rng interfaces.RandomSource) (types.EntityID, bool) {
	shooter, ok := formation.RandomUnit(rng)
	if !ok {
		return 0, false
	}
	rect, ok := s.ecs.Bounds(shooter)
	if !ok {
		return 0, false
	}
	tier, _ := formation.Tier(shooter)
	cx, cy := rect.Center()
	return s.spawn(cx, cy, defs.OwnerEnemy, s.cfg.EnemySpeed, tier.Color), true
}

func (s *ProjectileSystem) spawn(cx, cy float64, owner defs.Owner, speed float64, clr color.RGBA) types.EntityID {
	rect := utils.Rect{
		X: cx - s.cfg.Width/2,
		Y: cy - s.cfg.Height/2,
		W: s.cfg.Width,
		H: s.cfg.Height,
	}
	id := s.ecs.Spawn(rect, component.Renderable{Color: clr})
	s.ecs.Velocities[id] = &component.Velocity{DY: speed}
	s.ecs.Projectiles[id] = &component.Projectile{Owner: owner}
	s.eventDispatcher.Emit(event.LaserFired, owner)
	return id
}

// Update двигает лазеры и уничтожает вылетевшие за поле по вертикали.
func (s *ProjectileSystem) Update() {
	for _, id := range entity.Alive(s.ecs, s.ecs.Projectiles) {
		s.movement.Step(id)
		if pos := s.ecs.Positions[id]; pos.Y < 0 || pos.Y > s.screenHeight {
			s.ecs.Kill(id)
		}
	}
}

// Live возвращает живые лазеры стороны owner.
func (s *ProjectileSystem) Live(owner defs.Owner) []types.EntityID {
	var ids []types.EntityID
	for _, id := range entity.Alive(s.ecs, s.ecs.Projectiles) {
		if s.ecs.Projectiles[id].Owner == owner {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *ProjectileSystem) HasLive(owner defs.Owner) bool {
	for id, proj := range s.ecs.Projectiles {
		if proj.Owner == owner && s.ecs.IsAlive(id) {
			return true
		}
	}
	return false
}
