package app

import (
	"image/color"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/types"
	"go-space-invaders/pkg/utils"
)

// EntityView копия состояния сущности для отрисовки.
// Tier заполнен только у врагов.
type EntityView struct {
	ID    types.EntityID
	Rect  utils.Rect
	Color color.RGBA
	Tier  defs.Tier
}

func (g *Game) view(id types.EntityID) (EntityView, bool) {
	rect, ok := g.ECS.Bounds(id)
	if !ok || !g.ECS.IsAlive(id) {
		return EntityView{}, false
	}
	v := EntityView{ID: id, Rect: rect}
	if r, ok := g.ECS.Renderables[id]; ok {
		v.Color = r.Color
	}
	if e, ok := g.ECS.Enemies[id]; ok {
		v.Tier = e.Tier
	}
	return v, true
}

func (g *Game) views(ids []types.EntityID) []EntityView {
	out := make([]EntityView, 0, len(ids))
	for _, id := range ids {
		if v, ok := g.view(id); ok {
			out = append(out, v)
		}
	}
	return out
}

func (g *Game) Player() (EntityView, bool) {
	return g.view(g.PlayerSystem.ID())
}

func (g *Game) Enemies() []EntityView {
	return g.views(g.FormationSystem.Units())
}

func (g *Game) Blocks() []EntityView {
	return g.views(g.ObstacleSystem.Blocks())
}

// Projectiles снаряды одной стороны.
func (g *Game) Projectiles(owner defs.Owner) []EntityView {
	return g.views(g.ProjectileSystem.Live(owner))
}

// AllProjectiles снаряды обеих сторон в порядке создания.
func (g *Game) AllProjectiles() []EntityView {
	return g.views(entity.Alive(g.ECS, g.ECS.Projectiles))
}

func (g *Game) Bonus() (EntityView, bool) {
	id, ok := g.BonusSystem.Current()
	if !ok {
		return EntityView{}, false
	}
	return g.view(id)
}

func (g *Game) Score() int {
	return g.MatchSystem.Score()
}

func (g *Game) Lives() int {
	return g.MatchSystem.Lives()
}

func (g *Game) Status() component.MatchStatus {
	return g.MatchSystem.Status()
}

// Direction текущее направление формации: +1 вправо, -1 влево.
func (g *Game) Direction() float64 {
	return g.FormationSystem.Direction()
}
