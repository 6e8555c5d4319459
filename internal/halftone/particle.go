package halftone

import (
	"math"
	"math/rand"
)

// Physics constants. The spring pulls a displaced particle back to its
// lattice origin; the size pair settles the dot radius toward its
// sampled target without ringing.
const (
	originSpring = 0.02
	sizeSpring   = 0.1
	sizeFriction = 0.3

	// Guards the force falloff against a degenerate zero interaction
	// radius, which would otherwise divide by zero.
	minForceRadius = 1e-6
)

// Particle is one animated halftone dot. All fields are owned by the
// engine's per-channel set and mutated only from the frame tick.
type Particle struct {
	channel Channel

	origin       Vector2
	position     Vector2
	velocity     Vector2
	acceleration Vector2

	naturalSize  float64
	size         float64
	sizeVelocity float64

	// initProgress ramps 0→1 once after spawn and then freezes.
	initProgress float64
	// oscPhase decorrelates breathing between neighboring dots.
	oscPhase float64
	// baseValue is the frozen origin sample used when the channel lens
	// is off.
	baseValue float64

	// renderRadius is the radius drawn this frame, recomputed by update.
	renderRadius float64
}

func newParticle(ch Channel, origin Vector2, naturalSize, baseValue float64) *Particle {
	return &Particle{
		channel:     ch,
		origin:      origin,
		position:    origin,
		naturalSize: naturalSize,
		baseValue:   baseValue,
		oscPhase:    rand.Float64() * 2 * math.Pi,
	}
}

// Origin returns the particle's fixed lattice point.
func (p *Particle) Origin() Vector2 { return p.origin }

// Position returns the particle's current position.
func (p *Particle) Position() Vector2 { return p.position }

// RenderRadius returns the radius computed by the last update.
func (p *Particle) RenderRadius() float64 { return p.renderRadius }

func (p *Particle) applyForce(f Vector2) {
	p.acceleration = p.acceleration.Add(f)
}

// update advances one frame: spring back to origin, pointer forces,
// velocity integration, size settling, grow-in ramp and breathing.
// elapsed is wall-clock seconds since the engine started.
func (p *Particle) update(e *Engine, elapsed float64) {
	// Spring toward the lattice origin.
	p.applyForce(p.origin.Sub(p.position).Scale(originSpring))

	// Pointer proximity forces. The falloff is zero at the interaction
	// boundary and maximal at the cursor center; the force sign decides
	// push vs pull, and hover/active carry independent tunings.
	for _, c := range e.cursors {
		diameter := e.opts.HoverDiameter
		force := e.opts.HoverForce
		if c.IsDown {
			diameter = e.opts.ActiveDiameter
			force = e.opts.ActiveForce
		}
		radius := diameter / 2 * e.diagonal
		if radius < minForceRadius {
			radius = minForceRadius
		}
		fv := p.position.Sub(c.Position)
		scale := math.Max(0, radius-fv.Magnitude()) / radius
		scale = math.Cos(scale*math.Pi)*-0.5 + 0.5
		p.applyForce(fv.Scale(scale * force))
	}

	// Integrate.
	p.velocity = p.velocity.Add(p.acceleration).Scale(1 - e.opts.Friction)
	p.position = p.position.Add(p.velocity)
	p.acceleration = Vector2{}

	// Size target: the lens re-samples at the moving position, otherwise
	// the value frozen at spawn is kept.
	value := p.baseValue
	if e.opts.IsChannelLens {
		value = e.sampler.Sample(p.position.X, p.position.Y, p.channel, e.opts.IsAdditive)
	}
	p.stepSize(p.naturalSize * value)

	if p.initProgress < 1 {
		p.initProgress = math.Min(1, p.initProgress+e.opts.InitVelocity)
	}

	osc := math.Cos(2*math.Pi*(elapsed/e.opts.OscPeriod)+p.oscPhase)*e.opts.OscAmplitude + 1
	initScale := math.Cos(p.initProgress*math.Pi)*-0.5 + 0.5
	p.renderRadius = math.Max(0, p.size*osc*initScale)
}

// stepSize settles size toward target with a damped spring.
func (p *Particle) stepSize(target float64) {
	accel := (target - p.size) * sizeSpring
	p.sizeVelocity = (p.sizeVelocity + accel) * (1 - sizeFriction)
	p.size += p.sizeVelocity
}
