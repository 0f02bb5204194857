package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/utils"
)

func shortBonus(c *config.Config) {
	c.Bonus.SpawnMin = 3
	c.Bonus.SpawnMax = 5
}

func TestBonusSpawnsFromLeftAfterCountdown(t *testing.T) {
	// 0 -> отсчёт 3; 0 -> левая сторона; 2 -> новый отсчёт 5.
	rng := &scriptedRand{values: []int{0, 0, 2}}
	w := newWorld(t, shortBonus, rng)
	require.Equal(t, 3, w.bonus.Countdown())

	w.bonus.Update()
	w.bonus.Update()
	assert.False(t, w.bonus.Present())
	assert.Equal(t, 1, w.bonus.Countdown())

	w.bonus.Update()
	require.True(t, w.bonus.Present())
	assert.Equal(t, 5, w.bonus.Countdown())
	assert.Equal(t, 1, w.recorder.Count(event.BonusSpawned))

	id, _ := w.bonus.Current()
	assert.Equal(t, defs.SideLeft, w.ecs.Bonuses[id].Side)
	assert.Equal(t, -50.0, w.ecs.Positions[id].X)
	assert.Equal(t, 80.0, w.ecs.Positions[id].Y)
	assert.Equal(t, 3.0, w.ecs.Velocities[id].DX, "left entry travels rightward")

	w.bonus.Update()
	assert.Equal(t, -47.0, w.ecs.Positions[id].X)
	assert.Equal(t, 5, w.bonus.Countdown(), "no countdown while present")
}

func TestBonusFromRightTravelsLeftAndExits(t *testing.T) {
	rng := &scriptedRand{values: []int{0, 1, 0}}
	w := newWorld(t, shortBonus, rng)
	for i := 0; i < 3; i++ {
		w.bonus.Update()
	}
	id, ok := w.bonus.Current()
	require.True(t, ok)
	assert.Equal(t, defs.SideRight, w.ecs.Bonuses[id].Side)
	assert.Equal(t, 650.0, w.ecs.Positions[id].X)
	assert.Equal(t, -3.0, w.ecs.Velocities[id].DX)

	// 650 -> правый край <= 0 после (650+64)/3 = 238 шагов.
	for i := 0; i < 237; i++ {
		w.bonus.Update()
		require.True(t, w.bonus.Present(), "step %d", i)
	}
	w.bonus.Update()
	assert.False(t, w.bonus.Present())
	assert.False(t, w.ecs.IsAlive(id))

	// Следующий тик снова отсчитывает.
	w.bonus.Update()
	assert.Equal(t, 2, w.bonus.Countdown())
}

func TestBonusDestroyedFreesSlot(t *testing.T) {
	w := newWorld(t, shortBonus, &scriptedRand{values: []int{0}})
	for i := 0; i < 3; i++ {
		w.bonus.Update()
	}
	id, ok := w.bonus.Current()
	require.True(t, ok)

	w.ecs.Kill(id)
	w.dispatcher.Emit(event.BonusDestroyed, id)
	assert.False(t, w.bonus.Present())
	_, ok = w.bonus.Current()
	assert.False(t, ok)
}

func TestBonusExclusivityAndFreshCountdown(t *testing.T) {
	w := newWorld(t, nil, utils.NewPRNGService(99))
	spawns := 0
	for tick := 0; tick < 20000; tick++ {
		w.recorder.Reset()
		w.bonus.Update()
		w.ecs.Compact()

		assert.LessOrEqual(t, len(w.ecs.Bonuses), 1)
		if w.recorder.Count(event.BonusSpawned) > 0 {
			spawns++
			assert.GreaterOrEqual(t, w.bonus.Countdown(), 400)
			assert.LessOrEqual(t, w.bonus.Countdown(), 800)
		}
		assert.GreaterOrEqual(t, w.bonus.Countdown(), 0)
	}
	assert.Greater(t, spawns, 10)
}
