package game

const (
	C                           = 600.0 // "speed of light" in map units/s
	ShipMaxSpeed                = 250.0 // units/s
	WorldW                      = 8000.0
	WorldH                      = 4500.0
	MissileMinSpeed             = 40.0
	MissileMaxSpeed             = ShipMaxSpeed
	MissileMinAgroRadius        = 100.0
	MissileDefaultAgroRadius    = 800.0
	MissileMaxLifetime          = 300.0
	MissileMinLifetime          = 20.0
	MissileLifetimeSpeedPenalty = 80.0
	MissileLifetimeAgroPenalty  = 40.0
	MissileLifetimeAgroRef      = 2000.0
)

// Missile heat defaults, used until the server sends a heat config.
const (
	MissileHeatMax         = 50.0
	MissileHeatWarnAt      = 35.0
	MissileHeatOverheatAt  = 50.0
	MissileHeatMarkerSpeed = 120.0
	MissileHeatExp         = 1.5
	MissileHeatKUp         = 28.0
	MissileHeatKDown       = 14.0
)
