// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
	cfg          config.Config
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Логический экран совпадает с полем симуляции, даже если его размер задан в -config.
	return int(a.cfg.ScreenWidth), int(a.cfg.ScreenHeight)
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config overriding the defaults")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "disable sound")
	skipMenu := flag.Bool("play", false, "start the match right away, skipping the menu")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	verbose := flag.Bool("v", false, "log match events")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	settings := state.Settings{Config: cfg, Seed: *seed, Debug: *verbose}
	if *verbose {
		settings.Logger = log.New(os.Stderr, "[match] ", log.LstdFlags)
	}
	if !*mute {
		player := audio.NewCuePlayer(audio.SampleRate)
		if err := player.Start(); err != nil {
			// Без звука играть можно
			log.Printf("audio initialization failed: %v", err)
		} else {
			settings.Audio = player
			defer player.Close()
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		gs, err := state.NewGameState(sm, settings)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, settings)) // Устанавливаем состояние меню
	}

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("Space Invaders")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, cfg: cfg}); err != nil {
		log.Fatal(err)
	}
}
