package config

import "time"

const (
	// Panel
	ScreenWidth  = 480
	ScreenHeight = 272
	CellWidth    = 16 // Glyph cell of the panel font
	CellHeight   = 24

	// Lean gauge
	GaugeCenterX   = 240
	GaugeCenterY   = 272
	GaugeRadius    = 130 // Outline circle
	NeedleRadius   = 128 // Needle tip sits just inside the outline
	AlertThreshold = 60.0 // Degrees of lean that sound the buzzer

	// Inertial sensor (FS_SEL = 0)
	AccelDivisor = 16384.0 // LSB per g at ±2 g
	GyroDivisor  = 131.0   // LSB per °/s at ±250 °/s
	SensorAddr   = 0x68

	// Dials
	DialMin       = 0
	DialMax       = 30
	DialSettle    = 10 * time.Millisecond
	MaxEdgePolls  = 100000 // Upper bound on a single edge wait
	DistanceLimit = 30     // Readings above this mean "no target"

	// Loop
	LoopInterval     = 200 * time.Millisecond
	SettingsInterval = 20 * time.Millisecond
	SplashDelay      = time.Second

	// BLE ranging (log-distance path loss)
	MeasuredPower  = -59.0 // RSSI at 1 meter (dBm)
	PathLossExp    = 2.5   // Path loss exponent (N)
	SmoothingAlpha = 0.3   // EMA weight of a new RSSI sample
	BeaconTimeout  = 5 * time.Second
	EvictInterval  = 5 * time.Second

	// Terminal simulator
	SimCellW   = 4 // Pixels per terminal column
	SimCellH   = 8 // Pixels per terminal row (two half blocks)
	TargetFPS  = 15
	HistoryLen = 60 // Roll samples kept for the sparkline

	// App
	AppName    = "MOTO-HUD"
	AppVersion = "1.0"
)
