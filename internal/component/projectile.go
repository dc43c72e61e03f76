// internal/component/projectile.go
package component

import (
	"go-artillery/internal/defs"
	"go-artillery/internal/types"
)

// Projectile представляет летящий снаряд. Weapon — разделяемое неизменяемое
// определение; для осколков кластера это уже ослабленная копия.
type Projectile struct {
	Weapon   defs.WeaponDefinition
	OwnerID  types.EntityID
	BodyID   types.BodyID
	TTL      float64
	Fragment bool // осколок кластера, сам больше не делится
	X, Y     float64
}
