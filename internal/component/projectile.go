// internal/component/projectile.go
package component

import "go-space-invaders/internal/defs"

// Projectile представляет летящий лазер. Скорость хранится в Velocity,
// знак DY задаёт направление: меньше нуля значит вверх.
type Projectile struct {
	Owner defs.Owner
}
