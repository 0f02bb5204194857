// internal/system/movement.go
package system

import (
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/types"
)

// MovementSystem сдвигает сущности на их скорость за один тик.
// Врагов двигает формация: у них нет Velocity.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Step применяет скорость к позиции. false, если двигать нечего.
func (s *MovementSystem) Step(id types.EntityID) bool {
	pos, hasPos := s.ecs.Positions[id]
	vel, hasVel := s.ecs.Velocities[id]
	if !hasPos || !hasVel || !s.ecs.IsAlive(id) {
		return false
	}
	pos.X += vel.DX
	pos.Y += vel.DY
	return true
}
