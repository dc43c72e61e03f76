// internal/component/unit.go
package component

import "go-artillery/internal/types"

// Status — флаг состояния юнита.
type Status string

const (
	StatusShield   Status = "SHIELD"   // активный щит, гасит часть урона
	StatusRicochet Status = "RICOCHET" // снаряды BLAST отскакивают от ландшафта
)

// Unit — боевая единица: здоровье, броня, позиция и набор статусов.
// Позиция дублируется из физического тела на каждом тике для рендерера.
type Unit struct {
	DefID     string
	Team      int
	Health    int
	MaxHealth int
	Armor     float64 // доля поглощаемого урона, [0..1)
	Facing    int     // +1 вправо, -1 влево
	BodyID    types.BodyID
	X, Y      float64
	Statuses  map[Status]bool
}

// Alive сообщает, жив ли юнит.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// HasStatus проверяет наличие статуса.
func (u *Unit) HasStatus(s Status) bool {
	return u.Statuses[s]
}

// SetStatus включает или выключает статус.
func (u *Unit) SetStatus(s Status, on bool) {
	if u.Statuses == nil {
		u.Statuses = make(map[Status]bool)
	}
	if on {
		u.Statuses[s] = true
	} else {
		delete(u.Statuses, s)
	}
}
