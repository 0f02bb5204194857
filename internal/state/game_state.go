// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/ui"
	"go-space-invaders/internal/utils"
)

// Settings общие параметры всех партий одного запуска.
type Settings struct {
	Config config.Config
	Seed   int64            // 0: сид от времени
	Audio  *audio.CuePlayer // nil: без звука
	Logger *log.Logger      // nil: без журнала
	Debug  bool             // строка отладки внизу экрана
}

// GameState идущая партия
type GameState struct {
	sm       *StateMachine
	settings Settings
	game     *app.Game
	renderer *system.RenderSystem
	effects  *system.VisualEffectSystem
	score    *ui.ScoreIndicator
	lives    *ui.LivesIndicator
	banner   *ui.Banner
	crt      *ui.CRT
}

func NewGameState(sm *StateMachine, settings Settings) (*GameState, error) {
	rng := utils.NewPRNGService(settings.Seed)
	gameLogic, err := app.NewGame(settings.Config, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	if settings.Logger != nil {
		// Сид в журнале позволяет повторить партию через -seed.
		settings.Logger.Printf("seed %d", rng.Seed())
		gameLogic.SetLogger(settings.Logger)
	}
	if settings.Audio != nil {
		settings.Audio.Attach(gameLogic)
	}

	cfg := settings.Config
	face := basicfont.Face7x13
	return &GameState{
		sm:       sm,
		settings: settings,
		game:     gameLogic,
		renderer: system.NewRenderSystem(gameLogic.ECS),
		effects:  system.NewVisualEffectSystem(gameLogic.ECS, gameLogic.PlayerSystem.ID(), gameLogic),
		score:    ui.NewScoreIndicator(10, 20, face),
		lives:    ui.NewLivesIndicator(float32(cfg.ScreenWidth)-10, 8),
		banner:   ui.NewBanner(int(cfg.ScreenWidth), int(cfg.ScreenHeight), face),
		crt:      ui.NewCRT(float32(cfg.ScreenWidth), float32(cfg.ScreenHeight), utils.NewPRNGService(rng.Seed()+1)),
	}, nil
}

// InputFromKeys собирает Input из состояния клавиш.
// Обе стрелки сразу гасят друг друга.
func InputFromKeys(left, right, fire bool) app.Input {
	in := app.Input{Fire: fire}
	if left {
		in.Direction--
	}
	if right {
		in.Direction++
	}
	return in
}

func readInput() app.Input {
	return InputFromKeys(
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		ebiten.IsKeyPressed(ebiten.KeySpace),
	)
}

func (g *GameState) Enter() {
	if g.settings.Audio == nil {
		return
	}
	if err := g.settings.Audio.StartAmbience(); err != nil {
		log.Printf("ambience disabled: %v", err)
	}
}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.settings.Config))
		return
	}

	if g.game.Status() != component.StatusOngoing {
		// Симуляция продолжает тикать, но ввод игрока больше не нужен.
		g.game.Tick(app.Input{})
		g.effects.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		return
	}
	g.game.Tick(readInput())
	g.effects.Update()
}

func (g *GameState) restart() {
	next, err := NewGameState(g.sm, g.settings)
	if err != nil {
		log.Printf("failed to restart: %v", err)
		return
	}
	g.sm.SetState(next)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.game.Ticks(), g.game.Lives() == 0 || g.effects.PlayerHidden())
	g.effects.Draw(screen)

	g.score.Draw(screen, g.game.Score())
	g.lives.Draw(screen, g.game.Lives(), g.settings.Config.Player.Lives)
	if title := ui.StatusText(g.game.Status()); title != "" {
		g.banner.Draw(screen, title, "ENTER TO PLAY AGAIN")
	}
	g.crt.Draw(screen)
	if g.settings.Debug {
		ebitenutil.DebugPrintAt(screen, g.DebugLine(), 4, int(g.settings.Config.ScreenHeight)-16)
	}
}

// DebugLine тик, TPS и число живых сущностей.
func (g *GameState) DebugLine() string {
	return fmt.Sprintf("tick %d  TPS %.0f  enemies %d  shots %d  ready %t",
		g.game.Ticks(), ebiten.ActualTPS(), len(g.game.Enemies()), len(g.game.AllProjectiles()),
		g.game.PlayerSystem.Ready())
}

func (g *GameState) Exit() {}

// Game доступ к симуляции для отладки и тестов.
func (g *GameState) Game() *app.Game {
	return g.game
}
