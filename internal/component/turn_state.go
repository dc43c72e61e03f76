// internal/component/turn_state.go
package component

import (
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
)

// TurnState владеет порядком ходов, ветром и учётом боезапаса/перезарядки.
// Явный объект, принадлежащий циклу симуляции и передаваемый системам по
// ссылке — никакого глобального состояния.
type TurnState struct {
	Order   []types.EntityID // фиксированный порядок ротации
	Current int              // индекс текущего актёра в Order
	Wind    float64          // значение ветра в [-1, 1]

	teams      map[types.EntityID]int
	eliminated map[types.EntityID]bool
	// боезапас: отсутствие записи по оружию = неограниченно
	ammo map[types.EntityID]map[string]int
	// остаток перезарядки по оружию, миллисекунды
	cooldowns map[types.EntityID]map[string]float64
}

// NewTurnState создаёт состояние ходов для юнитов в фиксированном порядке.
func NewTurnState(order []types.EntityID, teams map[types.EntityID]int) *TurnState {
	ts := &TurnState{
		Order:      append([]types.EntityID{}, order...),
		teams:      make(map[types.EntityID]int),
		eliminated: make(map[types.EntityID]bool),
		ammo:       make(map[types.EntityID]map[string]int),
		cooldowns:  make(map[types.EntityID]map[string]float64),
	}
	for id, team := range teams {
		ts.teams[id] = team
	}
	return ts
}

// ActingUnit возвращает юнита, которому принадлежит ход.
func (ts *TurnState) ActingUnit() types.EntityID {
	if len(ts.Order) == 0 {
		return 0
	}
	return ts.Order[ts.Current]
}

// MarkEliminated убирает юнита из ротации. Если ход принадлежал ему,
// индекс остаётся на месте до следующего NextTurn.
func (ts *TurnState) MarkEliminated(id types.EntityID) {
	ts.eliminated[id] = true
}

// Eliminated сообщает, выбыл ли юнит.
func (ts *TurnState) Eliminated(id types.EntityID) bool {
	return ts.eliminated[id]
}

// MatchOver возвращает true, когда живые юниты остались максимум у одной
// команды, и номер этой команды (-1, если живых нет).
func (ts *TurnState) MatchOver() (bool, int) {
	winner := -1
	teamsAlive := 0
	seen := make(map[int]bool)
	for _, id := range ts.Order {
		if ts.eliminated[id] {
			continue
		}
		team := ts.teams[id]
		if !seen[team] {
			seen[team] = true
			teamsAlive++
			winner = team
		}
	}
	if teamsAlive > 1 {
		return false, -1
	}
	return true, winner
}

// NextTurn передаёт ход следующему невыбывшему юниту по кругу и заново
// разыгрывает ветер в [-1, 1]. Возвращает false вместо перехода, если в
// матче осталась максимум одна команда.
func (ts *TurnState) NextTurn(prng *utils.PRNGService) bool {
	if over, _ := ts.MatchOver(); over {
		return false
	}
	n := len(ts.Order)
	for step := 1; step <= n; step++ {
		idx := (ts.Current + step) % n
		if !ts.eliminated[ts.Order[idx]] {
			ts.Current = idx
			ts.Wind = prng.Symmetric(1.0)
			return true
		}
	}
	return false
}

// SetAmmo переводит оружие юнита в режим учёта боезапаса.
func (ts *TurnState) SetAmmo(unit types.EntityID, weaponID string, count int) {
	if ts.ammo[unit] == nil {
		ts.ammo[unit] = make(map[string]int)
	}
	if count < 0 {
		count = 0
	}
	ts.ammo[unit][weaponID] = count
}

// AmmoLeft возвращает остаток и признак учёта. Для неучитываемого оружия
// второй результат — false.
func (ts *TurnState) AmmoLeft(unit types.EntityID, weaponID string) (int, bool) {
	counters, ok := ts.ammo[unit]
	if !ok {
		return 0, false
	}
	n, tracked := counters[weaponID]
	return n, tracked
}

// ConsumeAmmo списывает один заряд. Неучитываемое оружие всегда успешно;
// учитываемое при нуле возвращает false без изменений.
func (ts *TurnState) ConsumeAmmo(unit types.EntityID, weaponID string) bool {
	counters, ok := ts.ammo[unit]
	if !ok {
		return true
	}
	n, tracked := counters[weaponID]
	if !tracked {
		return true
	}
	if n <= 0 {
		return false
	}
	counters[weaponID] = n - 1
	return true
}

// SetCooldown выставляет перезарядку как максимум из текущего остатка и
// нового значения: уже идущую перезарядку укоротить нельзя.
func (ts *TurnState) SetCooldown(unit types.EntityID, weaponID string, ms float64) {
	if ms <= 0 {
		return
	}
	if ts.cooldowns[unit] == nil {
		ts.cooldowns[unit] = make(map[string]float64)
	}
	if ts.cooldowns[unit][weaponID] < ms {
		ts.cooldowns[unit][weaponID] = ms
	}
}

// CooldownLeft возвращает остаток перезарядки в миллисекундах.
func (ts *TurnState) CooldownLeft(unit types.EntityID, weaponID string) float64 {
	return ts.cooldowns[unit][weaponID]
}

// TickCooldowns уменьшает все активные перезарядки, удаляя дошедшие до нуля.
func (ts *TurnState) TickCooldowns(ms float64) {
	for unit, counters := range ts.cooldowns {
		for weaponID, left := range counters {
			left -= ms
			if left <= 0 {
				delete(counters, weaponID)
			} else {
				counters[weaponID] = left
			}
		}
		if len(counters) == 0 {
			delete(ts.cooldowns, unit)
		}
	}
}

// CanFire проверяет и перезарядку, и боезапас.
func (ts *TurnState) CanFire(unit types.EntityID, weaponID string) bool {
	if ts.CooldownLeft(unit, weaponID) > 0 {
		return false
	}
	if n, tracked := ts.AmmoLeft(unit, weaponID); tracked && n <= 0 {
		return false
	}
	return true
}
