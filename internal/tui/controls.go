package tui

import (
	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/app"
)

// HoldTicks сколько тиков держится направление после нажатия.
// Терминал не сообщает об отпускании клавиш, только об автоповторе.
const HoldTicks = 8

// Controls превращает поток нажатий в Input на каждый тик.
type Controls struct {
	direction int
	hold      int
	fire      bool
	paused    bool
}

// Action результат обработки клавиши.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
)

// HandleKey запоминает нажатие.
func (c *Controls) HandleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		c.steer(-1)
	case tcell.KeyRight:
		c.steer(1)
	case tcell.KeyUp:
		c.fire = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case 'p':
			c.paused = !c.paused
			return ActionPause
		case ' ':
			c.fire = true
		case 'a', 'h':
			c.steer(-1)
		case 'd', 'l':
			c.steer(1)
		}
	}
	return ActionNone
}

func (c *Controls) steer(dir int) {
	c.direction = dir
	c.hold = HoldTicks
}

// Next отдаёт ввод на очередной тик. Выстрел срабатывает один раз.
func (c *Controls) Next() app.Input {
	in := app.Input{Fire: c.fire}
	c.fire = false
	if c.hold > 0 {
		in.Direction = c.direction
		c.hold--
	}
	return in
}

func (c *Controls) Paused() bool {
	return c.paused
}
