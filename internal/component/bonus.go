package component

import "go-space-invaders/internal/defs"

// Bonus летающая цель за дополнительные очки.
type Bonus struct {
	Side  defs.Side
	Value int
}
