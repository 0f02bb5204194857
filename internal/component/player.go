// internal/component/player.go
package component

// Player хранит состояние корабля игрока.
type Player struct {
	Speed       float64
	ReloadTimer int // Тиков до готовности следующего выстрела
}
