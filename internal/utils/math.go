package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Pulse возвращает значение в [0, 1], пульсирующее с периодом period тиков.
func Pulse(tick, period int) float32 {
	if period <= 0 {
		return 1
	}
	phase := float64(tick%period) / float64(period)
	return float32(0.5 + 0.5*math.Sin(2*math.Pi*phase))
}
