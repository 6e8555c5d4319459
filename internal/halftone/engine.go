package halftone

import (
	"errors"
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/breathing-halftone/internal/config"
)

// ErrNoSource is returned when the engine is constructed without a
// decoded source image. Construction aborts and no instance exists;
// the effect simply does not appear.
var ErrNoSource = errors.New("halftone: no source image")

// State is the engine lifecycle phase.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateRunning
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateRunning:
		return "running"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Engine animates one halftone effect over a decoded source image. All
// mutation happens on the frame goroutine: Update, Draw, HandlePointer,
// Resize and Destroy must be called from the same loop, which is how
// ebiten delivers them.
type Engine struct {
	opts    Options
	buf     *PixelBuffer
	sampler *Sampler

	width, height float64
	diagonal      float64

	particles map[Channel][]*Particle
	cursors   map[PointerID]*Cursor
	renderer  *renderer

	state State
	start time.Time
}

// NewEngine decodes img into a pixel buffer, builds the per-channel
// grids for a surface of the given size and returns a running engine.
// A nil image returns ErrNoSource with no instance. A zero-area surface
// is not an error: it yields an engine with no particles.
func NewEngine(img image.Image, width, height float64, opts Options) (*Engine, error) {
	if img == nil {
		return nil, ErrNoSource
	}
	opts = opts.normalize()

	e := &Engine{
		opts:      opts,
		state:     StateLoading,
		buf:       NewPixelBuffer(img, config.MaxSampleDim),
		particles: map[Channel][]*Particle{},
		cursors:   newCursorSet(),
		start:     time.Now(),
	}
	e.setSize(width, height)
	for _, ch := range opts.Channels {
		e.particles[ch] = buildGrid(ch, opts, e.sampler, width, height)
	}
	e.renderer = newRenderer(opts.Channels, opts.IsAdditive)
	e.renderer.resize(int(width), int(height))
	e.state = StateRunning
	return e, nil
}

func (e *Engine) setSize(width, height float64) {
	e.width, e.height = width, height
	e.diagonal = math.Hypot(width, height)
	e.sampler = NewSampler(e.buf, width, height)
}

// State reports the lifecycle phase.
func (e *Engine) State() State { return e.state }

// Options returns the normalized configuration the engine runs with.
func (e *Engine) Options() Options { return e.opts }

// ParticleCount is the total across all channels.
func (e *Engine) ParticleCount() int {
	n := 0
	for _, ps := range e.particles {
		n += len(ps)
	}
	return n
}

// HandlePointer routes one pointer event into the cursor set. Ignored
// unless the engine is running.
func (e *Engine) HandlePointer(ev PointerEvent) {
	if e.state != StateRunning {
		return
	}
	applyPointer(e.cursors, ev)
}

// Resize adapts the surfaces and the sampling scale to a new host box.
// Particle origins are intentionally not regenerated: existing dots
// keep animating at their original lattice.
func (e *Engine) Resize(width, height float64) {
	if e.state != StateRunning {
		return
	}
	e.setSize(width, height)
	e.renderer.resize(int(width), int(height))
}

// Update advances every particle by one frame.
func (e *Engine) Update() {
	if e.state != StateRunning {
		return
	}
	elapsed := time.Since(e.start).Seconds()
	for _, ch := range e.opts.Channels {
		for _, p := range e.particles[ch] {
			p.update(e, elapsed)
		}
	}
}

// Draw renders the current frame onto dst.
func (e *Engine) Draw(dst *ebiten.Image) {
	if e.state != StateRunning {
		return
	}
	e.renderer.draw(dst, e.particles)
}

// Destroy releases the channel surfaces and stops the engine. Calling
// it again is a no-op.
func (e *Engine) Destroy() {
	if e.state == StateDestroyed {
		return
	}
	e.state = StateDestroyed
	if e.renderer != nil {
		e.renderer.deallocate()
	}
	e.particles = map[Channel][]*Particle{}
	e.cursors = newCursorSet()
}
