// internal/system/bonus.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
	pkgutils "go-space-invaders/pkg/utils"
)

// BonusSystem держит единственный слот бонусной цели.
// Пока слот пуст, идёт обратный отсчёт; по нулю цель появляется
// с случайной стороны, а отсчёт тянется заново.
type BonusSystem struct {
	ecs             *entity.ECS
	movement        *MovementSystem
	cfg             config.BonusConfig
	value           int
	screenWidth     float64
	rng             interfaces.RandomSource
	eventDispatcher *event.Dispatcher
	countdown       int
	bonusID         types.EntityID // 0, если цели нет
}

func NewBonusSystem(ecs *entity.ECS, cfg config.Config, rng interfaces.RandomSource, eventDispatcher *event.Dispatcher) *BonusSystem {
	s := &BonusSystem{
		ecs:             ecs,
		movement:        NewMovementSystem(ecs),
		cfg:             cfg.Bonus,
		value:           cfg.Score.Bonus,
		screenWidth:     cfg.ScreenWidth,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
	s.countdown = s.drawCountdown()
	eventDispatcher.Subscribe(event.BonusDestroyed, s)
	return s
}

func (s *BonusSystem) drawCountdown() int {
	return utils.IntRange(s.rng, s.cfg.SpawnMin, s.cfg.SpawnMax)
}

// Update выполняет один тик автомата: движение присутствующей цели
// или отсчёт до появления новой.
func (s *BonusSystem) Update() {
	if s.Present() {
		s.Move()
		return
	}
	s.Schedule()
}

// Move сдвигает цель, если она есть, и освобождает слот при выходе за экран.
func (s *BonusSystem) Move() {
	if !s.Present() {
		return
	}
	s.movement.Step(s.bonusID)
	vel := s.ecs.Velocities[s.bonusID]

	rect, _ := s.ecs.Bounds(s.bonusID)
	exited := (vel.DX > 0 && rect.Left() >= s.screenWidth) || (vel.DX < 0 && rect.Right() <= 0)
	if exited {
		s.ecs.Kill(s.bonusID)
		s.bonusID = 0
	}
}

// Schedule ведёт обратный отсчёт, пока слот пуст.
func (s *BonusSystem) Schedule() {
	if s.Present() {
		return
	}
	s.countdown--
	if s.countdown <= 0 {
		s.spawn()
		// Остаток не переносится, следующий период начинается с нового значения.
		s.countdown = s.drawCountdown()
	}
}

func (s *BonusSystem) spawn() {
	side, _ := utils.Choose(s.rng, defs.Sides)
	x := -s.cfg.EntryMargin
	if side == defs.SideRight {
		x = s.screenWidth + s.cfg.EntryMargin
	}
	rect := pkgutils.Rect{X: x, Y: s.cfg.Y, W: s.cfg.Width, H: s.cfg.Height}
	id := s.ecs.Spawn(rect, component.Renderable{Color: config.BonusColor})
	s.ecs.Velocities[id] = &component.Velocity{DX: side.Direction() * s.cfg.Speed}
	s.ecs.Bonuses[id] = &component.Bonus{Side: side, Value: s.value}
	s.bonusID = id
	s.eventDispatcher.Emit(event.BonusSpawned, side)
}

// OnEvent освобождает слот, когда цель сбита.
func (s *BonusSystem) OnEvent(e event.Event) {
	if e.Type != event.BonusDestroyed {
		return
	}
	if id, ok := e.Data.(types.EntityID); ok && id == s.bonusID {
		s.bonusID = 0
	}
}

// Present true, пока цель на поле.
func (s *BonusSystem) Present() bool {
	return s.bonusID != 0 && s.ecs.IsAlive(s.bonusID)
}

// Current возвращает ID цели, если она есть.
func (s *BonusSystem) Current() (types.EntityID, bool) {
	if !s.Present() {
		return 0, false
	}
	return s.bonusID, true
}

// Countdown тиков до следующего появления (имеет смысл, пока цели нет).
func (s *BonusSystem) Countdown() int {
	return s.countdown
}
