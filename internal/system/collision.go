// internal/system/collision.go
package system

import (
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
	"go-space-invaders/pkg/utils"
)

// CollisionSystem один раз за тик проверяет пересечения рамок и применяет
// последствия. Каждый проход идёт по снимку ID, взятому в его начале;
// уничтоженные сущности остаются в ECS до Compact, но IsAlive их отсекает.
type CollisionSystem struct {
	ecs             *entity.ECS
	formation       *FormationSystem
	obstacles       *ObstacleSystem
	player          *PlayerSystem
	projectiles     *ProjectileSystem
	bonus           *BonusSystem
	match           *MatchSystem
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(
	ecs *entity.ECS,
	formation *FormationSystem,
	obstacles *ObstacleSystem,
	player *PlayerSystem,
	projectiles *ProjectileSystem,
	bonus *BonusSystem,
	match *MatchSystem,
	eventDispatcher *event.Dispatcher,
) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		formation:       formation,
		obstacles:       obstacles,
		player:          player,
		projectiles:     projectiles,
		bonus:           bonus,
		match:           match,
		eventDispatcher: eventDispatcher,
	}
}

// Resolve выполняет три прохода строго в этом порядке.
func (s *CollisionSystem) Resolve() {
	s.resolvePlayerLasers()
	s.resolveEnemyLasers()
	s.resolveEnemyContact()
}

// Лазер игрока за тик взаимодействует только с одной категорией:
// блоки, затем враги, затем бонус.
func (s *CollisionSystem) resolvePlayerLasers() {
	for _, id := range s.projectiles.Live(defs.OwnerPlayer) {
		if !s.ecs.IsAlive(id) {
			continue
		}
		rect, ok := s.ecs.Bounds(id)
		if !ok {
			continue
		}

		if s.destroyBlocks(rect) {
			s.explode(id)
			continue
		}

		if hits := s.overlapping(rect, s.formation.Units()); len(hits) > 0 {
			// Один лазер забирает всех юнитов, которых сейчас касается.
			for _, unit := range hits {
				s.ecs.Kill(unit)
				s.match.ApplyHit(unit)
				s.eventDispatcher.Emit(event.EnemyDestroyed, unit)
			}
			s.explode(id)
			continue
		}

		if bonusID, present := s.bonus.Current(); present {
			if b, ok := s.ecs.Bounds(bonusID); ok && b.Overlaps(rect) {
				s.match.AddScore(s.ecs.Bonuses[bonusID].Value)
				s.ecs.Kill(bonusID)
				s.eventDispatcher.Emit(event.BonusDestroyed, bonusID)
				s.explode(id)
			}
		}
	}
}

func (s *CollisionSystem) resolveEnemyLasers() {
	playerRect := s.player.Bounds()
	for _, id := range s.projectiles.Live(defs.OwnerEnemy) {
		if !s.ecs.IsAlive(id) {
			continue
		}
		rect, ok := s.ecs.Bounds(id)
		if !ok {
			continue
		}

		if s.destroyBlocks(rect) {
			s.explode(id)
			continue
		}

		if rect.Overlaps(playerRect) {
			s.explode(id)
			if _, lost := s.match.ApplyLifeLoss(); lost {
				// Последняя жизнь: формация исчезает в этом же тике.
				s.formation.Clear()
				s.eventDispatcher.Emit(event.AmbienceStop, nil)
			}
		}
	}
}

// Юниты стирают блоки, которых касаются, но сами при этом не гибнут.
// Касание игрока останавливает музыку, жизни не трогает.
func (s *CollisionSystem) resolveEnemyContact() {
	playerRect := s.player.Bounds()
	touchedPlayer := false
	for _, unit := range s.formation.Units() {
		rect, ok := s.ecs.Bounds(unit)
		if !ok {
			continue
		}
		s.destroyBlocks(rect)
		if rect.Overlaps(playerRect) {
			touchedPlayer = true
		}
	}
	if touchedPlayer {
		s.eventDispatcher.Emit(event.AmbienceStop, nil)
	}
}

// destroyBlocks уничтожает все блоки под rect и сообщает, были ли такие.
func (s *CollisionSystem) destroyBlocks(rect utils.Rect) bool {
	hits := s.obstacles.Overlapping(rect)
	for _, block := range hits {
		s.ecs.Kill(block)
	}
	return len(hits) > 0
}

func (s *CollisionSystem) overlapping(rect utils.Rect, ids []types.EntityID) []types.EntityID {
	var hits []types.EntityID
	for _, id := range ids {
		if b, ok := s.ecs.Bounds(id); ok && b.Overlaps(rect) {
			hits = append(hits, id)
		}
	}
	return hits
}

func (s *CollisionSystem) explode(projectileID types.EntityID) {
	s.ecs.Kill(projectileID)
	s.eventDispatcher.Emit(event.Explosion, projectileID)
}
