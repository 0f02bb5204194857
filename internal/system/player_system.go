// internal/system/player_system.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/types"
	"go-space-invaders/pkg/utils"
)

// PlayerSystem отвечает за корабль игрока: движение в пределах экрана
// и темп стрельбы.
type PlayerSystem struct {
	ecs         *entity.ECS
	projectiles *ProjectileSystem
	cfg         config.PlayerConfig
	screenWidth float64
	playerID    types.EntityID
}

// NewPlayerSystem ставит корабль по центру у нижнего края экрана.
func NewPlayerSystem(ecs *entity.ECS, cfg config.Config, projectiles *ProjectileSystem) *PlayerSystem {
	p := cfg.Player
	rect := utils.Rect{
		X: cfg.ScreenWidth/2 - p.Width/2,
		Y: cfg.ScreenHeight - p.Height,
		W: p.Width,
		H: p.Height,
	}
	id := ecs.Spawn(rect, component.Renderable{Color: config.PlayerColor})
	ecs.Players[id] = &component.Player{Speed: p.Speed}

	return &PlayerSystem{
		ecs:         ecs,
		projectiles: projectiles,
		cfg:         p,
		screenWidth: cfg.ScreenWidth,
		playerID:    id,
	}
}

// Update отсчитывает перезарядку.
func (s *PlayerSystem) Update() {
	if player := s.ecs.Players[s.playerID]; player.ReloadTimer > 0 {
		player.ReloadTimer--
	}
}

// Move сдвигает корабль влево (-1) или вправо (+1), не выпуская за экран.
func (s *PlayerSystem) Move(direction int) {
	dir := utils.Sign(direction)
	if dir == 0 {
		return
	}
	pos := s.ecs.Positions[s.playerID]
	player := s.ecs.Players[s.playerID]
	pos.X = utils.Clamp(pos.X+float64(dir)*player.Speed, 0, s.screenWidth-s.cfg.Width)
}

// TryFire стреляет, если в полёте нет лазера игрока и перезарядка прошла.
func (s *PlayerSystem) TryFire() bool {
	player := s.ecs.Players[s.playerID]
	if player.ReloadTimer > 0 || s.projectiles.HasLive(defs.OwnerPlayer) {
		return false
	}
	rect, _ := s.ecs.Bounds(s.playerID)
	cx, cy := rect.Center()
	s.projectiles.FirePlayer(cx, cy)
	player.ReloadTimer = s.cfg.ReloadTicks
	return true
}

func (s *PlayerSystem) ID() types.EntityID {
	return s.playerID
}

func (s *PlayerSystem) Bounds() utils.Rect {
	rect, _ := s.ecs.Bounds(s.playerID)
	return rect
}

// Ready true, если следующий выстрел будет принят.
func (s *PlayerSystem) Ready() bool {
	return s.ecs.Players[s.playerID].ReloadTimer == 0 && !s.projectiles.HasLive(defs.OwnerPlayer)
}
