// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 700
	MaxDeltaTime = 0.06

	// Ландшафт: число сегментов и ширина фиксируются при создании матча.
	TerrainSegments     = 240
	TerrainSegmentWidth = 5.0
	TerrainMinHeight    = 60.0
	TerrainMaxHeight    = 320.0
	TerrainRoughness    = 0.55

	// Физика
	Gravity           = 380.0 // пикселей/сек^2, вниз
	WindForceFactor   = 55.0  // сила на единицу значения ветра [-1,1]
	WindMassThreshold = 5.0   // ветер действует только на лёгкие тела (снаряды)

	// Ограничения ввода: значения зажимаются, а не отклоняются
	AimAngleMin = 0.0
	AimAngleMax = 90.0
	PowerMin    = 10.0
	PowerMax    = 100.0
	PowerScale  = 6.2 // перевод мощности [10..100] в начальную скорость снаряда

	// Снаряды
	ProjectileRadius = 4.0
	ProjectileMass   = 1.0
	ProjectileTTL    = 12.0  // секунд до принудительного удаления
	BoundsMargin     = 400.0 // запас за краями экрана до признания снаряда потерянным

	// Боевая система
	BlastEdgeFactor    = 0.5  // урон на краю радиуса = 50% от базового
	ShieldMultiplier   = 0.6  // активный щит пропускает 60% урона (то же, что «-40%»)
	BeamHalfWidth      = 20.0 // допуск попадания луча
	BeamTraceLifetime  = 0.35
	ClusterScale       = 0.5 // осколки получают половину урона и радиуса
	ClusterDamageFloor = 1
	ClusterRadiusFloor = 8.0
	ClusterSpeedMin    = 120.0
	ClusterSpeedMax    = 220.0
	ClusterFanSpread   = 1.1 // разлёт осколков вокруг вертикали, радианы

	// Специальные эффекты
	TeleportSafeMargin = 60.0
	WellLifetime       = 3.0
	WellStrength       = 2.6e6 // F = Strength / d^2
	WellMinDistance    = 30.0  // защита от сингулярности у центра воронки
	JetpackImpulseX    = 170.0
	JetpackImpulseY    = -260.0
	RicochetDamping    = 0.55 // гашение вертикальной скорости при рикошете

	// Юниты
	UnitRadius       = 12.0
	UnitMass         = 40.0
	DefaultUnitCount = 2 // юнитов на команду, если состав не выбран явно

	// Визуальные эффекты
	ExplosionFlashDuration = 0.4

	// UI
	ClickCooldown    = 300
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	PowerBarWidth    = 160.0
	PowerBarHeight   = 10.0
	WeaponPanelY     = 8
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TerrainColor    = color.RGBA{96, 72, 48, 255}
	TerrainTopColor = color.RGBA{58, 132, 64, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	WindColor       = color.RGBA{120, 180, 255, 255}
	PowerBarColor   = color.RGBA{220, 160, 40, 255}
	ShieldColor     = color.RGBA{80, 200, 255, 160}
	BeamColor       = color.RGBA{255, 80, 80, 255}
	WellColor       = color.RGBA{180, 80, 230, 200}
	ExplosionColor  = color.RGBA{255, 170, 40, 220}
	ProjectileColor = color.RGBA{240, 240, 240, 255}
	TeamColors      = []color.RGBA{
		{220, 60, 60, 255},  // команда 0
		{70, 130, 230, 255}, // команда 1
		{60, 200, 90, 255},
		{230, 200, 60, 255},
	}
)
