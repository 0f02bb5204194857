package component

import "go-space-invaders/internal/defs"

// Enemy представляет юнит формации.
type Enemy struct {
	Tier defs.Tier // Ярус, определяет цвет и очки
	Row  int       // Строка в исходной сетке
	Col  int       // Столбец в исходной сетке
}
