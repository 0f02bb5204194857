// Package tui терминальный фронтенд: tcell, 60 тиков в секунду.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
)

// Run крутит игру до выхода по клавише или отмены ctx.
// Экран должен быть уже инициализирован, Fini делает вызывающий.
func Run(ctx context.Context, screen tcell.Screen, game *app.Game) error {
	renderer := NewRenderer(screen)
	controls := &Controls{}

	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	renderer.Draw(game, false)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if controls.HandleKey(ev) == ActionQuit {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if !controls.Paused() {
				game.Tick(controls.Next())
			}
			renderer.Draw(game, controls.Paused())
		}
	}
}
