// internal/defs/types.go
package defs

// Owner defines which side fired a projectile.
type Owner string

const (
	OwnerPlayer Owner = "PLAYER"
	OwnerEnemy  Owner = "ENEMY"
)

// Side defines the screen edge the bonus target enters from.
type Side string

const (
	SideLeft  Side = "LEFT"
	SideRight Side = "RIGHT"
)

// Sides lists the entry sides in a fixed order so random picks are reproducible.
var Sides = []Side{SideLeft, SideRight}

// Direction returns the horizontal direction of travel for a bonus entering from s.
func (s Side) Direction() float64 {
	if s == SideRight {
		return -1
	}
	return 1
}
