// cmd/tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/tui"
	"go-space-invaders/internal/utils"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config overriding the defaults")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	game, err := app.NewGame(cfg, utils.NewPRNGService(*seed))
	if err != nil {
		log.Fatal(err)
	}

	if !*mute {
		player := audio.NewCuePlayer(audio.SampleRate)
		if err := player.Start(); err != nil {
			// Терминал пишет поверх stderr, поэтому сообщаем до Init экрана
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer player.Close()
			player.Attach(game)
			if err := player.StartAmbience(); err != nil {
				log.Printf("ambience disabled: %v", err)
			}
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = tui.Run(ctx, screen, game)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("final score %d, %s", game.Score(), game.Status())
}
