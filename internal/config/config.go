package config

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Tick rate the host runs at; the per-tick physics constants below
	// are tuned for it.
	TicksPerSecond = 60

	// Default engine tuning. Diameters and dot size are fractions of the
	// surface diagonal; forces are per-tick acceleration scales.
	DotSize          = 1.0 / 40.0
	DotSizeThreshold = 0.05
	InitVelocity     = 0.02
	OscPeriodSeconds = 3.0
	OscAmplitude     = 0.2
	Friction         = 0.06
	HoverDiameter    = 0.3
	HoverForce       = -0.02
	ActiveDiameter   = 0.6
	ActiveForce      = 0.01

	// Sources larger than this on either axis are downscaled before
	// sampling; the grid never needs more resolution than the surface.
	MaxSampleDim = 2048
)
