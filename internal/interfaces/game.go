package interfaces

// RandomSource источник случайных чисел для выбора стрелка и расписания бонуса.
// Реализации: utils.PRNGService в игре, скриптованные последовательности в тестах.
type RandomSource interface {
	// Intn возвращает число в [0, n), n > 0.
	Intn(n int) int
}
