// internal/system/state.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
)

// MatchSystem хранит жизни и счёт. Итог партии не хранится отдельно,
// а каждый раз выводится из жизней и состояния формации.
type MatchSystem struct {
	formation       *FormationSystem
	eventDispatcher *event.Dispatcher
	lives           int
	score           int
}

func NewMatchSystem(formation *FormationSystem, lives int, eventDispatcher *event.Dispatcher) *MatchSystem {
	return &MatchSystem{
		formation:       formation,
		eventDispatcher: eventDispatcher,
		lives:           lives,
	}
}

// ApplyHit начисляет очки за сбитого юнита по его ярусу.
func (s *MatchSystem) ApplyHit(unitID types.EntityID) int {
	tier, ok := s.formation.Tier(unitID)
	if !ok {
		return 0
	}
	s.AddScore(tier.Value)
	return tier.Value
}

// AddScore увеличивает счёт. Отрицательные значения игнорируются.
func (s *MatchSystem) AddScore(n int) {
	if n > 0 {
		s.score += n
	}
}

// ApplyLifeLoss снимает одну жизнь, не опускаясь ниже нуля.
// lost == true ровно в тот вызов, когда жизни закончились.
func (s *MatchSystem) ApplyLifeLoss() (remaining int, lost bool) {
	if s.lives == 0 {
		return 0, false
	}
	s.lives--
	s.eventDispatcher.Emit(event.LifeLost, s.lives)
	if s.lives == 0 {
		s.eventDispatcher.Emit(event.MatchLost, nil)
		return 0, true
	}
	return s.lives, false
}

func (s *MatchSystem) Status() component.MatchStatus {
	switch {
	case s.lives <= 0:
		return component.StatusLost
	case s.formation.IsCleared():
		return component.StatusWon
	}
	return component.StatusOngoing
}

func (s *MatchSystem) Lives() int {
	return s.lives
}

func (s *MatchSystem) Score() int {
	return s.score
}
