// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"
	"go-space-invaders/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: предыдущее состояние только рисуется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	banner        *ui.Banner
	icon          *ui.PauseIcon
}

func NewPauseState(sm *StateMachine, prevState State, cfg config.Config) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		banner:        ui.NewBanner(int(cfg.ScreenWidth), int(cfg.ScreenHeight), basicfont.Face7x13),
		icon:          ui.NewPauseIcon(float32(cfg.ScreenWidth)-30, 50, 8, config.TextColor),
	}
}

func (s *PauseState) Enter() {
	s.icon.SetPaused(true)
}

func (s *PauseState) Update() {
	s.icon.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.Restore(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	render.Overlay(screen, render.WithAlpha(render.DarkenColor(config.BackgroundColor), 160))
	s.banner.Draw(screen, "PAUSED", "P TO RESUME")
	s.icon.Draw(screen)
}

func (s *PauseState) Exit() {}
