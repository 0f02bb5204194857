// internal/system/formation.go
package system

import (
	"fmt"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
	pkgutils "go-space-invaders/pkg/utils"
)

// FormationSystem управляет сеткой врагов и их общим движением.
// Направление и шаг общие для всей формации, у юнитов своих нет.
type FormationSystem struct {
	ecs         *entity.ECS
	cfg         config.FormationConfig
	screenWidth float64
	tiers       defs.TierTable
	direction   float64
}

// NewFormationSystem заполняет сетку rows x cols. Ошибка только при
// некорректных размерах, частично созданной формации не бывает.
func NewFormationSystem(ecs *entity.ECS, cfg config.Config, tiers defs.TierTable) (*FormationSystem, error) {
	f := cfg.Formation
	if f.Rows <= 0 || f.Cols <= 0 {
		return nil, fmt.Errorf("%w: formation grid %dx%d", config.ErrInvalidConfig, f.Rows, f.Cols)
	}
	if f.XSpacing <= 0 || f.YSpacing <= 0 {
		return nil, fmt.Errorf("%w: formation spacing %vx%v", config.ErrInvalidConfig, f.XSpacing, f.YSpacing)
	}

	s := &FormationSystem{
		ecs:         ecs,
		cfg:         f,
		screenWidth: cfg.ScreenWidth,
		tiers:       tiers,
		direction:   1,
	}
	for row := 0; row < f.Rows; row++ {
		tier := defs.TierForRow(row, f.RowBands)
		for col := 0; col < f.Cols; col++ {
			rect := pkgutils.Rect{
				X: float64(col)*f.XSpacing + f.XOffset,
				Y: float64(row)*f.YSpacing + f.YOffset,
				W: f.Width,
				H: f.Height,
			}
			id := ecs.Spawn(rect, component.Renderable{Color: tiers.Get(tier).Color})
			ecs.Enemies[id] = &component.Enemy{Tier: tier, Row: row, Col: col}
		}
	}
	return s, nil
}

// Advance сдвигает всех живых юнитов на один шаг по текущему направлению.
func (s *FormationSystem) Advance() {
	for _, id := range s.Units() {
		s.ecs.Positions[id].X += s.direction * s.cfg.Step
	}
}

// CheckBounds разворачивает формацию и опускает её, если хотя бы один юнит
// коснулся края экрана. Срабатывает не больше одного раза за вызов.
func (s *FormationSystem) CheckBounds() bool {
	for _, id := range s.Units() {
		rect, ok := s.ecs.Bounds(id)
		if !ok {
			continue
		}
		if rect.Left() <= 0 || rect.Right() >= s.screenWidth {
			s.direction = -s.direction
			s.Descend(s.cfg.Descent)
			return true
		}
	}
	return false
}

// Descend опускает всех живых юнитов на distance.
func (s *FormationSystem) Descend(distance float64) {
	for _, id := range s.Units() {
		s.ecs.Positions[id].Y += distance
	}
}

func (s *FormationSystem) IsCleared() bool {
	for id := range s.ecs.Enemies {
		if s.ecs.IsAlive(id) {
			return false
		}
	}
	return true
}

// Clear уничтожает всю формацию (потеря последней жизни).
func (s *FormationSystem) Clear() {
	for _, id := range s.Units() {
		s.ecs.Kill(id)
	}
}

// Units возвращает живых юнитов в порядке создания.
func (s *FormationSystem) Units() []types.EntityID {
	return entity.Alive(s.ecs, s.ecs.Enemies)
}

// RandomUnit выбирает стрелка. ok == false, если формация пуста.
func (s *FormationSystem) RandomUnit(rng interfaces.RandomSource) (types.EntityID, bool) {
	return utils.Choose(rng, s.Units())
}

func (s *FormationSystem) Direction() float64 {
	return s.direction
}

// Tier возвращает определение яруса юнита.
func (s *FormationSystem) Tier(id types.EntityID) (defs.TierDefinition, bool) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return defs.TierDefinition{}, false
	}
	return s.tiers.Get(enemy.Tier), true
}
