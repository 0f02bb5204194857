// Package audio озвучивает сигналы симуляции через beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-space-invaders/internal/event"
	"go-space-invaders/internal/utils"
)

const (
	SampleRate        = beep.SampleRate(44100)
	bufferDuration    = 100 * time.Millisecond
	laserDuration     = 120 * time.Millisecond
	explosionDuration = 350 * time.Millisecond
)

// Subscriber источник сигналов, обычно *app.Game.
type Subscriber interface {
	Subscribe(eventType event.EventType, listener event.Listener)
}

// CuePlayer слушает сигналы и подмешивает звуки в общий микшер.
// Фоновый гул играет с момента StartAmbience до сигнала AmbienceStop.
type CuePlayer struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	noise    *utils.PRNGService
	mixer    *beep.Mixer
	ambience *beep.Ctrl
	played   map[event.EventType]int

	// lock/unlock защищают микшер от потока динамика. Без динамика пустые.
	lock, unlock func()
	started      bool
}

func NewCuePlayer(rate beep.SampleRate) *CuePlayer {
	return &CuePlayer{
		rate:   rate,
		noise:  utils.NewPRNGService(1),
		mixer:  &beep.Mixer{},
		played: make(map[event.EventType]int),
		lock:   func() {},
		unlock: func() {},
	}
}

// Start открывает устройство вывода и запускает микшер.
func (p *CuePlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(bufferDuration)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	p.started = true
	return nil
}

// Attach подписывает плеер на все звуковые сигналы.
func (p *CuePlayer) Attach(source Subscriber) {
	for _, cue := range event.Cues {
		source.Subscribe(cue, p)
	}
}

// StartAmbience запускает фоновый гул, если он ещё не играет.
func (p *CuePlayer) StartAmbience() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ambience != nil && !p.ambience.Paused {
		return nil
	}
	drone, err := ambienceDrone(p.rate)
	if err != nil {
		return fmt.Errorf("failed to build ambience: %w", err)
	}
	ctrl := &beep.Ctrl{Streamer: drone}
	p.withMixer(func() {
		// Ctrl без потока возвращает ok == false, и микшер его выбрасывает.
		if p.ambience != nil {
			p.ambience.Streamer = nil
		}
		p.mixer.Add(ctrl)
	})
	p.ambience = ctrl
	return nil
}

func (p *CuePlayer) OnEvent(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Type {
	case event.LaserFired:
		s := laserSound(p.rate)
		p.withMixer(func() { p.mixer.Add(s) })
	case event.Explosion:
		s := explosionSound(p.noise, p.rate)
		p.withMixer(func() { p.mixer.Add(s) })
	case event.AmbienceStop:
		if p.ambience != nil {
			p.withMixer(func() { p.ambience.Paused = true })
		}
	default:
		return
	}
	p.played[e.Type]++
}

func (p *CuePlayer) withMixer(fn func()) {
	p.lock()
	defer p.unlock()
	fn()
}

// AmbiencePlaying true, пока гул не остановлен.
func (p *CuePlayer) AmbiencePlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ambience != nil && !p.ambience.Paused
}

// Played сколько раз сигнал t был озвучен.
func (p *CuePlayer) Played(t event.EventType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[t]
}

// Output поток микшера. Нужен, когда вывод идёт не через speaker.
func (p *CuePlayer) Output() beep.Streamer {
	return p.mixer
}

// Close глушит всё, что играет.
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.withMixer(func() {
		if p.ambience != nil {
			p.ambience.Paused = true
		}
		p.mixer.Clear()
	})
}
