package component

import (
	"math"
	"testing"

	"go-artillery/internal/types"
	"go-artillery/internal/utils"
)

func twoTeamState(units int) *TurnState {
	order := make([]types.EntityID, units)
	teams := make(map[types.EntityID]int)
	for i := 0; i < units; i++ {
		order[i] = types.EntityID(i + 1)
		teams[order[i]] = i % 2
	}
	return NewTurnState(order, teams)
}

func TestNextTurnRotatesInOrder(t *testing.T) {
	ts := twoTeamState(4)
	prng := utils.NewPRNGService(1)

	want := []types.EntityID{2, 3, 4, 1, 2}
	for i, expected := range want {
		if !ts.NextTurn(prng) {
			t.Fatalf("NextTurn %d returned false", i)
		}
		if got := ts.ActingUnit(); got != expected {
			t.Fatalf("turn %d: acting unit = %d, want %d", i, got, expected)
		}
	}
}

func TestNextTurnSkipsEliminated(t *testing.T) {
	ts := twoTeamState(4)
	prng := utils.NewPRNGService(1)

	// юнит 2 выбыл, ход от 1 переходит сразу к 3
	ts.MarkEliminated(2)
	if !ts.NextTurn(prng) {
		t.Fatal("NextTurn returned false with two teams alive")
	}
	if got := ts.ActingUnit(); got != 3 {
		t.Errorf("acting unit = %d, want 3", got)
	}
}

func TestNextTurnRefusesWhenMatchOver(t *testing.T) {
	ts := twoTeamState(4)
	prng := utils.NewPRNGService(1)

	// вся команда 1 выбыла
	ts.MarkEliminated(2)
	ts.MarkEliminated(4)

	over, winner := ts.MatchOver()
	if !over || winner != 0 {
		t.Fatalf("MatchOver = (%v, %d), want (true, 0)", over, winner)
	}
	if ts.NextTurn(prng) {
		t.Error("NextTurn advanced after match ended")
	}
}

func TestMatchOverNoSurvivors(t *testing.T) {
	ts := twoTeamState(2)
	ts.MarkEliminated(1)
	ts.MarkEliminated(2)
	over, winner := ts.MatchOver()
	if !over || winner != -1 {
		t.Errorf("MatchOver = (%v, %d), want (true, -1)", over, winner)
	}
}

func TestWindStaysInRange(t *testing.T) {
	ts := twoTeamState(4)
	prng := utils.NewPRNGService(99)
	for i := 0; i < 100; i++ {
		ts.NextTurn(prng)
		if math.Abs(ts.Wind) > 1 {
			t.Fatalf("wind out of range on turn %d: %v", i, ts.Wind)
		}
	}
}

func TestAmmoAccounting(t *testing.T) {
	ts := twoTeamState(2)

	// неучитываемое оружие стреляет всегда
	if !ts.ConsumeAmmo(1, "WEAPON_BAZOOKA") {
		t.Error("untracked weapon refused to fire")
	}
	if _, tracked := ts.AmmoLeft(1, "WEAPON_BAZOOKA"); tracked {
		t.Error("untracked weapon reports tracked ammo")
	}

	ts.SetAmmo(1, "WEAPON_GRENADE", 2)
	for i := 0; i < 2; i++ {
		if !ts.ConsumeAmmo(1, "WEAPON_GRENADE") {
			t.Fatalf("shot %d refused with ammo left", i+1)
		}
	}
	if n, tracked := ts.AmmoLeft(1, "WEAPON_GRENADE"); !tracked || n != 0 {
		t.Errorf("AmmoLeft = (%d, %v), want (0, true)", n, tracked)
	}
	// на нуле — отказ без ухода в минус
	if ts.ConsumeAmmo(1, "WEAPON_GRENADE") {
		t.Error("fired with zero ammo")
	}
	if n, _ := ts.AmmoLeft(1, "WEAPON_GRENADE"); n != 0 {
		t.Errorf("ammo went negative: %d", n)
	}

	// счётчики персональные
	if !ts.ConsumeAmmo(2, "WEAPON_GRENADE") {
		t.Error("unit 2 blocked by unit 1 ammo counter")
	}
}

func TestCooldownNeverShortened(t *testing.T) {
	ts := twoTeamState(2)

	ts.SetCooldown(1, "WEAPON_LASER", 500)
	ts.SetCooldown(1, "WEAPON_LASER", 200)
	if got := ts.CooldownLeft(1, "WEAPON_LASER"); got != 500 {
		t.Errorf("cooldown = %v, want 500 (must not shorten)", got)
	}
	ts.SetCooldown(1, "WEAPON_LASER", 800)
	if got := ts.CooldownLeft(1, "WEAPON_LASER"); got != 800 {
		t.Errorf("cooldown = %v, want 800 (longer value wins)", got)
	}
}

func TestTickCooldownsExpires(t *testing.T) {
	ts := twoTeamState(2)
	ts.SetCooldown(1, "WEAPON_LASER", 300)

	ts.TickCooldowns(100)
	if got := ts.CooldownLeft(1, "WEAPON_LASER"); got != 200 {
		t.Errorf("cooldown after 100ms = %v, want 200", got)
	}
	if ts.CanFire(1, "WEAPON_LASER") {
		t.Error("CanFire true during cooldown")
	}

	ts.TickCooldowns(250)
	if got := ts.CooldownLeft(1, "WEAPON_LASER"); got != 0 {
		t.Errorf("cooldown not cleared: %v", got)
	}
	if !ts.CanFire(1, "WEAPON_LASER") {
		t.Error("CanFire false after cooldown expired")
	}
}

func TestCanFireChecksAmmoToo(t *testing.T) {
	ts := twoTeamState(2)
	ts.SetAmmo(1, "WEAPON_GRENADE", 0)
	if ts.CanFire(1, "WEAPON_GRENADE") {
		t.Error("CanFire true with zero tracked ammo")
	}
	ts.SetAmmo(1, "WEAPON_GRENADE", 1)
	if !ts.CanFire(1, "WEAPON_GRENADE") {
		t.Error("CanFire false with ammo and no cooldown")
	}
}
