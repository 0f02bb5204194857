package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
)

// scriptedRand возвращает заранее заданные значения по кругу.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

type world struct {
	cfg         config.Config
	ecs         *entity.ECS
	dispatcher  *event.Dispatcher
	recorder    *event.Recorder
	formation   *FormationSystem
	obstacles   *ObstacleSystem
	projectiles *ProjectileSystem
	player      *PlayerSystem
	bonus       *BonusSystem
	match       *MatchSystem
	collision   *CollisionSystem
}

func newWorld(t *testing.T, mutate func(*config.Config), rng interfaces.RandomSource) *world {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	if rng == nil {
		rng = utils.NewPRNGService(1)
	}

	w := &world{
		cfg:        cfg,
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		recorder:   event.NewRecorder(),
	}
	w.recorder.SubscribeAll(w.dispatcher, event.AllTypes...)

	var err error
	w.formation, err = NewFormationSystem(w.ecs, cfg, defs.NewTierTable(cfg.Score))
	require.NoError(t, err)
	w.obstacles, err = NewObstacleSystem(w.ecs, cfg)
	require.NoError(t, err)
	w.projectiles = NewProjectileSystem(w.ecs, cfg, w.dispatcher)
	w.player = NewPlayerSystem(w.ecs, cfg, w.projectiles)
	w.bonus = NewBonusSystem(w.ecs, cfg, rng, w.dispatcher)
	w.match = NewMatchSystem(w.formation, cfg.Player.Lives, w.dispatcher)
	w.collision = NewCollisionSystem(w.ecs, w.formation, w.obstacles, w.player, w.projectiles, w.bonus, w.match, w.dispatcher)
	return w
}

// place переносит сущность так, чтобы её центр оказался в (cx, cy).
func (w *world) place(id types.EntityID, cx, cy float64) {
	body := w.ecs.Bodies[id]
	pos := w.ecs.Positions[id]
	pos.X = cx - body.Width/2
	pos.Y = cy - body.Height/2
}

func (w *world) center(id types.EntityID) (float64, float64) {
	rect, _ := w.ecs.Bounds(id)
	return rect.Center()
}

// emptySpot точка посреди поля, где нет ни блоков, ни врагов, ни игрока.
func (w *world) emptySpot() (float64, float64) {
	return w.cfg.ScreenWidth / 2, 420
}
