// internal/defs/types.go
package defs

// EffectKind defines what happens when a weapon resolves. The set is closed:
// the combat resolver switches exhaustively over these values.
type EffectKind string

const (
	EffectBlast       EffectKind = "BLAST"
	EffectCluster     EffectKind = "CLUSTER"
	EffectBeam        EffectKind = "BEAM"
	EffectTeleport    EffectKind = "TELEPORT"
	EffectWell        EffectKind = "ATTRACTION_WELL"
	EffectLineOfSight EffectKind = "LINE_OF_SIGHT"
	EffectJetpack     EffectKind = "JETPACK"
)

// Visuals describes how a weapon's projectile or trace is drawn.
type Visuals struct {
	ColorR uint8   `json:"color_r"`
	ColorG uint8   `json:"color_g"`
	ColorB uint8   `json:"color_b"`
	Radius float64 `json:"radius"`
}
