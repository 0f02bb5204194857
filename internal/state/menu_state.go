// internal/state/menu_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"
)

// MenuState заставка перед партией
type MenuState struct {
	sm       *StateMachine
	settings Settings
	banner   *ui.Banner
	tick     int
}

func NewMenuState(sm *StateMachine, settings Settings) *MenuState {
	return &MenuState{
		sm:       sm,
		settings: settings,
		banner:   ui.NewBanner(int(settings.Config.ScreenWidth), int(settings.Config.ScreenHeight), basicfont.Face7x13),
	}
}

func (m *MenuState) Enter() {
	m.tick = 0
}

func (m *MenuState) Update() {
	m.tick++
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	gs, err := NewGameState(m.sm, m.settings)
	if err != nil {
		log.Printf("failed to start match: %v", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	hint := ""
	// Подсказка мигает раз в секунду
	if (m.tick/config.TPS)%2 == 0 {
		hint = "PRESS SPACE"
	}
	m.banner.Draw(screen, "SPACE INVADERS", hint)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
