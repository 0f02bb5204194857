package state

import (
	"bytes"
	"log"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
)

type probeState struct {
	name  string
	log   *[]string
	ticks int
}

func (p *probeState) Enter() { *p.log = append(*p.log, "enter "+p.name) }
func (p *probeState) Update() { p.ticks++ }
func (p *probeState) Draw(_ *ebiten.Image) {}
func (p *probeState) Exit() { *p.log = append(*p.log, "exit "+p.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	a := &probeState{name: "a", log: &log}
	b := &probeState{name: "b", log: &log}

	sm.Update() // без состояния ничего не происходит
	sm.SetState(a)
	sm.Update()
	sm.SetState(b)

	assert.Equal(t, []string{"enter a", "exit a", "enter b"}, log)
	assert.Equal(t, 1, a.ticks)
	assert.Same(t, b, sm.Current())
}

func TestPauseRestoresPreviousWithoutReenter(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	game := &probeState{name: "game", log: &log}
	sm.SetState(game)

	pause := NewPauseState(sm, game, config.Default())
	sm.SetState(pause)
	sm.Restore(pause.previousState)

	assert.Same(t, game, sm.Current())
	assert.Equal(t, []string{"enter game", "exit game"}, log, "resume does not re-enter")
}

func TestPauseStateFollowsConfiguredScreen(t *testing.T) {
	cfg := config.Default()
	cfg.ScreenWidth = 800
	cfg.ScreenHeight = 640

	pause := NewPauseState(NewStateMachine(), nil, cfg)

	assert.Equal(t, 800, pause.banner.Width)
	assert.Equal(t, 640, pause.banner.Height)
	assert.Equal(t, float32(770), pause.icon.X)
}

func TestInputFromKeys(t *testing.T) {
	assert.Equal(t, app.Input{Direction: -1}, InputFromKeys(true, false, false))
	assert.Equal(t, app.Input{Direction: 1, Fire: true}, InputFromKeys(false, true, true))
	assert.Equal(t, app.Input{}, InputFromKeys(true, true, false))
}

func TestNewGameStateBuildsMatch(t *testing.T) {
	gs, err := NewGameState(NewStateMachine(), Settings{Config: config.Default(), Seed: 1})
	require.NoError(t, err)
	assert.Len(t, gs.Game().Enemies(), 48)

	bad := config.Default()
	bad.Player.Lives = 0
	_, err = NewGameState(NewStateMachine(), Settings{Config: bad})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGameStateLogsSeedAndDebugLine(t *testing.T) {
	var buf bytes.Buffer
	gs, err := NewGameState(NewStateMachine(), Settings{
		Config: config.Default(),
		Seed:   42,
		Logger: log.New(&buf, "", 0),
		Debug:  true,
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "seed 42")
	assert.Contains(t, gs.DebugLine(), "tick 0")
	assert.Contains(t, gs.DebugLine(), "enemies 48")
	assert.Contains(t, gs.DebugLine(), "ready true")

	gs.Game().Tick(app.Input{Fire: true})
	assert.Contains(t, gs.DebugLine(), "ready false")
}

func TestGameStateCRTFollowsConfiguredScreen(t *testing.T) {
	cfg := config.Default()
	cfg.ScreenWidth = 800
	cfg.ScreenHeight = 450

	gs, err := NewGameState(NewStateMachine(), Settings{Config: cfg, Seed: 3})
	require.NoError(t, err)

	assert.Equal(t, float32(800), gs.crt.Width)
	assert.Len(t, gs.crt.Scanlines(), 150)
}
