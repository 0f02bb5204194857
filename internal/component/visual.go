// internal/component/visual.go
package component

import (
	"image/color"

	"go-space-invaders/pkg/utils"
)

// Flash короткая вспышка на месте попадания. Живёт только во фронтенде.
type Flash struct {
	Rect     utils.Rect
	Color    color.RGBA
	Timer    int // Сколько тиков эффект уже активен
	Duration int // Общая продолжительность эффекта в тиках
}

// Progress доля прожитого времени в [0, 1].
func (f Flash) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	p := float64(f.Timer) / float64(f.Duration)
	if p > 1 {
		return 1
	}
	return p
}
