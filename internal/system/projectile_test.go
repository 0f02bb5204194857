package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
)

func TestFirePlayerTravelsUpward(t *testing.T) {
	w := newWorld(t, nil, nil)
	cx, cy := w.emptySpot()

	id := w.projectiles.FirePlayer(cx, cy)
	assert.Equal(t, 1, w.recorder.Count(event.LaserFired))
	gotX, gotY := w.center(id)
	assert.Equal(t, cx, gotX)
	assert.Equal(t, cy, gotY)

	w.projectiles.Update()
	_, y := w.center(id)
	assert.Equal(t, cy-8, y)
	assert.Equal(t, config.PlayerLaserColor, w.ecs.Renderables[id].Color)
}

func TestProjectileLeavesPlayfield(t *testing.T) {
	w := newWorld(t, nil, nil)
	up := w.projectiles.FirePlayer(100, 15)
	down := w.projectiles.FirePlayer(100, 300)
	w.ecs.Velocities[down].DY = 6
	w.ecs.Positions[down].Y = 598

	w.projectiles.Update()

	assert.False(t, w.ecs.IsAlive(up), "y < 0 after the move")
	assert.False(t, w.ecs.IsAlive(down), "y > screen height after the move")
	assert.Empty(t, w.projectiles.Live(defs.OwnerPlayer))
	assert.False(t, w.projectiles.HasLive(defs.OwnerPlayer))

	// Уничтоженный лазер больше не двигается.
	yBefore := w.ecs.Positions[up].Y
	w.projectiles.Update()
	assert.Equal(t, yBefore, w.ecs.Positions[up].Y)
}

func TestFireEnemyPicksRandomUnit(t *testing.T) {
	w := newWorld(t, nil, nil)
	units := w.formation.Units()

	id, ok := w.projectiles.FireEnemy(w.formation, &scriptedRand{values: []int{20}})
	require.True(t, ok)

	shooter := units[20]
	sx, sy := w.center(shooter)
	px, py := w.center(id)
	assert.Equal(t, sx, px)
	assert.Equal(t, sy, py)

	tier, _ := w.formation.Tier(shooter)
	assert.Equal(t, tier.Color, w.ecs.Renderables[id].Color)
	assert.Equal(t, defs.OwnerEnemy, w.ecs.Projectiles[id].Owner)
	assert.Equal(t, 6.0, w.ecs.Velocities[id].DY)
	assert.Equal(t, 1, w.recorder.Count(event.LaserFired))
	assert.Equal(t, []types.EntityID{id}, w.projectiles.Live(defs.OwnerEnemy))
}

func TestFireEnemyOnEmptyFormationIsNoop(t *testing.T) {
	w := newWorld(t, nil, nil)
	w.formation.Clear()

	_, ok := w.projectiles.FireEnemy(w.formation, &scriptedRand{values: []int{0}})
	assert.False(t, ok)
	assert.Empty(t, w.projectiles.Live(defs.OwnerEnemy))
	assert.Zero(t, w.recorder.Count(event.LaserFired))
}
