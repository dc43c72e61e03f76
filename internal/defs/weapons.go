// internal/defs/weapons.go
package defs

import (
	"math"

	"go-artillery/internal/config"
)

// WeaponDefinition holds all the static data for a specific weapon.
// Definitions are shared by every projectile referencing them and are never
// mutated at runtime.
type WeaponDefinition struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Damage     int        `json:"damage"`
	Radius     float64    `json:"radius"`
	Effect     EffectKind `json:"effect"`
	Ammo       *int       `json:"ammo,omitempty"` // nil — неограниченный боезапас
	CooldownMs int        `json:"cooldown_ms"`

	// Параметры, специфичные для типа эффекта. Указатели, чтобы не тащить
	// все поля для всех типов (как в teacher-стиле каталогов).
	Cluster *ClusterParams `json:"cluster,omitempty"`
	Well    *WellParams    `json:"well,omitempty"`
	Jetpack *JetpackParams `json:"jetpack,omitempty"`

	Visuals Visuals `json:"visuals"`
}

// ClusterParams описывает разделение снаряда на осколки.
type ClusterParams struct {
	Fragments int `json:"fragments"`
}

// WellParams описывает гравитационную воронку.
type WellParams struct {
	Lifetime float64 `json:"lifetime"`
	Strength float64 `json:"strength"`
}

// JetpackParams описывает импульс джетпака.
type JetpackParams struct {
	ImpulseX float64 `json:"impulse_x"`
	ImpulseY float64 `json:"impulse_y"`
}

// Derated возвращает ослабленную копию определения для осколков кластера:
// урон и радиус уменьшаются вдвое с нижними порогами, эффект принудительно
// BLAST — поэтому рекурсия разделения всегда глубины один.
func (d WeaponDefinition) Derated() WeaponDefinition {
	frag := d
	frag.ID = d.ID + "_FRAGMENT"
	frag.Effect = EffectBlast
	frag.Cluster = nil
	frag.Damage = int(math.Round(float64(d.Damage) * config.ClusterScale))
	if frag.Damage < config.ClusterDamageFloor {
		frag.Damage = config.ClusterDamageFloor
	}
	frag.Radius = d.Radius * config.ClusterScale
	if frag.Radius < config.ClusterRadiusFloor {
		frag.Radius = config.ClusterRadiusFloor
	}
	return frag
}

// UnitDefinition holds the static data for a combatant hull.
type UnitDefinition struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MaxHealth int     `json:"max_health"`
	Armor     float64 `json:"armor"` // доля поглощаемого урона, [0..1)
	Radius    float64 `json:"radius"`
	Mass      float64 `json:"mass"`
	Visuals   Visuals `json:"visuals"`
}
