// internal/app/game.go
package app

import (
	"fmt"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/utils"
	"io"
	"log"
)

// Input управление игрока на один тик.
type Input struct {
	Direction int  // -1 влево, 0 стоим, +1 вправо
	Fire      bool // Запрос выстрела
}

// Game holds the main game state and logic.
// Не потокобезопасен: все вызовы идут из одного цикла кадров.
type Game struct {
	cfg             config.Config
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             interfaces.RandomSource

	FormationSystem  *system.FormationSystem
	ObstacleSystem   *system.ObstacleSystem
	ProjectileSystem *system.ProjectileSystem
	PlayerSystem     *system.PlayerSystem
	BonusSystem      *system.BonusSystem
	MatchSystem      *system.MatchSystem
	CollisionSystem  *system.CollisionSystem

	cues      *event.Recorder
	tick      int
	fireTimer int
	status    component.MatchStatus
	logger    *log.Logger
}

// NewGame initializes a new game instance. rng == nil означает генератор
// с сидом от текущего времени.
func NewGame(cfg config.Config, rng interfaces.RandomSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		cfg:             cfg,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		cues:            event.NewRecorder(),
		logger:          log.New(io.Discard, "", 0),
	}

	var err error
	g.FormationSystem, err = system.NewFormationSystem(ecs, cfg, defs.NewTierTable(cfg.Score))
	if err != nil {
		return nil, fmt.Errorf("failed to create formation: %w", err)
	}
	g.ObstacleSystem, err = system.NewObstacleSystem(ecs, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create obstacles: %w", err)
	}
	g.ProjectileSystem = system.NewProjectileSystem(ecs, cfg, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, cfg, g.ProjectileSystem)
	g.BonusSystem = system.NewBonusSystem(ecs, cfg, rng, eventDispatcher)
	g.MatchSystem = system.NewMatchSystem(g.FormationSystem, cfg.Player.Lives, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(
		ecs,
		g.FormationSystem,
		g.ObstacleSystem,
		g.PlayerSystem,
		g.ProjectileSystem,
		g.BonusSystem,
		g.MatchSystem,
		eventDispatcher,
	)

	g.cues.SubscribeAll(eventDispatcher, event.AllTypes...)
	return g, nil
}

// SetLogger включает журнал. По умолчанию игра молчит.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	g.logger = logger
	g.logger.Printf("match ready: %d units, %d blocks, %d lives",
		len(g.FormationSystem.Units()), len(g.ObstacleSystem.Blocks()), g.MatchSystem.Lives())
}

// Tick выполняет ровно один шаг симуляции.
func (g *Game) Tick(input Input) {
	g.cues.Reset()
	g.tick++

	// Таймер вражеского огня живёт в тиках, а не в миллисекундах.
	g.fireTimer++
	if g.fireTimer >= g.cfg.Projectile.EnemyInterval {
		g.fireTimer = 0
		g.ProjectileSystem.FireEnemy(g.FormationSystem, g.Rng)
	}

	g.PlayerSystem.Update()
	g.PlayerSystem.Move(input.Direction)
	if input.Fire {
		g.PlayerSystem.TryFire()
	}
	g.ProjectileSystem.Update()

	g.BonusSystem.Move()

	g.FormationSystem.Advance()
	g.FormationSystem.CheckBounds()

	g.BonusSystem.Schedule()
	g.CollisionSystem.Resolve()
	g.ECS.Compact()

	if status := g.MatchSystem.Status(); status != g.status {
		g.logger.Printf("tick %d: match %s, score %d, lives %d", g.tick, status, g.MatchSystem.Score(), g.MatchSystem.Lives())
		g.status = status
	}
}

// Advance выполняет ticks шагов с одним и тем же вводом.
func (g *Game) Advance(input Input, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Tick(input)
	}
}

// Subscribe подписывает внешнего коллаборатора (звук) на события.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.EventDispatcher.Subscribe(eventType, listener)
}

// Cues события последнего тика в порядке возникновения.
func (g *Game) Cues() []event.Event {
	return g.cues.Events()
}

// Ticks число выполненных шагов.
func (g *Game) Ticks() int {
	return g.tick
}

// Config параметры, с которыми создан матч.
func (g *Game) Config() config.Config {
	return g.cfg
}
