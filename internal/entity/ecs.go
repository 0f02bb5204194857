// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/types"
	"go-space-invaders/pkg/utils"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Bodies      map[types.EntityID]*component.Body
	Renderables map[types.EntityID]*component.Renderable
	Players     map[types.EntityID]*component.Player
	Enemies     map[types.EntityID]*component.Enemy
	Blocks      map[types.EntityID]*component.Block
	Projectiles map[types.EntityID]*component.Projectile
	Bonuses     map[types.EntityID]*component.Bonus

	// Уничтоженные за текущий тик. Физически удаляются в Compact.
	dead map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Bodies:      make(map[types.EntityID]*component.Body),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Players:     make(map[types.EntityID]*component.Player),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Blocks:      make(map[types.EntityID]*component.Block),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Bonuses:     make(map[types.EntityID]*component.Bonus),
		dead:        make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Spawn создаёт сущность с позицией, рамкой и цветом.
func (ecs *ECS) Spawn(rect utils.Rect, renderable component.Renderable) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: rect.X, Y: rect.Y}
	ecs.Bodies[id] = &component.Body{Width: rect.W, Height: rect.H}
	ecs.Renderables[id] = &renderable
	return id
}

// Kill помечает сущность уничтоженной. Компоненты остаются до Compact,
// поэтому итерация по снимку ID в течение тика безопасна.
func (ecs *ECS) Kill(id types.EntityID) {
	if _, exists := ecs.Positions[id]; !exists {
		return
	}
	ecs.dead[id] = struct{}{}
}

// IsAlive true, если сущность существует и не помечена уничтоженной.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	if _, exists := ecs.Positions[id]; !exists {
		return false
	}
	_, isDead := ecs.dead[id]
	return !isDead
}

// Compact удаляет все помеченные сущности и возвращает их число.
func (ecs *ECS) Compact() int {
	n := len(ecs.dead)
	for id := range ecs.dead {
		ecs.remove(id)
	}
	clear(ecs.dead)
	return n
}

func (ecs *ECS) remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Bodies, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Blocks, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Bonuses, id)
}

// Bounds возвращает рамку сущности.
func (ecs *ECS) Bounds(id types.EntityID) (utils.Rect, bool) {
	pos, hasPos := ecs.Positions[id]
	body, hasBody := ecs.Bodies[id]
	if !hasPos || !hasBody {
		return utils.Rect{}, false
	}
	return utils.Rect{X: pos.X, Y: pos.Y, W: body.Width, H: body.Height}, true
}

// Alive возвращает отсортированный снимок живых ID из карты компонента.
// Порядок фиксирован, чтобы случайный выбор с заданным сидом повторялся.
func Alive[T any](ecs *ECS, components map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(components))
	for id := range components {
		if ecs.IsAlive(id) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
