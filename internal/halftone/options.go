package halftone

import (
	"github.com/iburimskiy/breathing-halftone/internal/config"
)

// Channel selects which scalar property of the source image a particle
// grid samples.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelLum
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	case ChannelLum:
		return "lum"
	}
	return "unknown"
}

// channelAngles rotates each channel's lattice differently so overlapping
// grids separate visually instead of aliasing into moiré bands.
var channelAngles = map[Channel]float64{
	ChannelRed:   1,
	ChannelGreen: 2.5,
	ChannelBlue:  5,
	ChannelLum:   4,
}

// Options is the engine's entire tuning surface. Read-only after the
// engine is constructed; rebuild the engine to change them.
type Options struct {
	// DotSize is the grid spacing as a fraction of the surface diagonal.
	DotSize float64
	// DotSizeThreshold prunes grid origins whose sampled intensity is
	// below it, in [0,1].
	DotSizeThreshold float64
	// InitVelocity is the per-tick increment of the grow-in ramp.
	InitVelocity float64
	// OscPeriod is the breathing period in seconds; OscAmplitude the
	// breathing depth.
	OscPeriod    float64
	OscAmplitude float64
	// IsAdditive selects light-on-dark compositing; the default is the
	// classic dark-on-light halftone.
	IsAdditive bool
	// IsRadial lays particles on concentric rings instead of a lattice.
	IsRadial bool
	// Channels lists the grids to build. Empty means R/G/B when additive,
	// Lum otherwise.
	Channels []Channel
	// IsChannelLens re-samples intensity at the particle's moving position
	// every tick instead of freezing it at the spawn origin.
	IsChannelLens bool
	// Friction is the per-tick velocity damping factor in [0,1).
	Friction float64
	// Hover/Active control the pointer force field: diameters are
	// fractions of the surface diagonal, forces are signed accelerations
	// (negative repels, positive attracts).
	HoverDiameter  float64
	HoverForce     float64
	ActiveDiameter float64
	ActiveForce    float64
}

// DefaultOptions returns the stock tuning from the config package.
func DefaultOptions() Options {
	return Options{
		DotSize:          config.DotSize,
		DotSizeThreshold: config.DotSizeThreshold,
		InitVelocity:     config.InitVelocity,
		OscPeriod:        config.OscPeriodSeconds,
		OscAmplitude:     config.OscAmplitude,
		IsChannelLens:    true,
		Friction:         config.Friction,
		HoverDiameter:    config.HoverDiameter,
		HoverForce:       config.HoverForce,
		ActiveDiameter:   config.ActiveDiameter,
		ActiveForce:      config.ActiveForce,
	}
}

// normalize clamps fields to their documented ranges and fills unset
// values so the physics never divides by zero.
func (o Options) normalize() Options {
	if o.DotSize <= 0 {
		o.DotSize = config.DotSize
	}
	o.DotSizeThreshold = clamp01(o.DotSizeThreshold)
	if o.InitVelocity <= 0 {
		o.InitVelocity = config.InitVelocity
	}
	if o.OscPeriod <= 0 {
		o.OscPeriod = config.OscPeriodSeconds
	}
	if o.Friction < 0 {
		o.Friction = 0
	}
	if o.Friction >= 1 {
		o.Friction = 1 - 1e-9
	}
	if len(o.Channels) == 0 {
		if o.IsAdditive {
			o.Channels = []Channel{ChannelRed, ChannelGreen, ChannelBlue}
		} else {
			o.Channels = []Channel{ChannelLum}
		}
	}
	return o
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
