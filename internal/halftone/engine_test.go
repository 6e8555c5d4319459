package halftone

import (
	"image/color"
	"math"
	"testing"
)

func TestNewEngineNilSource(t *testing.T) {
	e, err := NewEngine(nil, 64, 64, DefaultOptions())
	if err != ErrNoSource {
		t.Fatalf("err = %v, want ErrNoSource", err)
	}
	if e != nil {
		t.Fatal("no instance should exist after a failed construction")
	}
}

func TestEngineLifecycle(t *testing.T) {
	e, err := NewEngine(uniformImage(8, 8, color.RGBA{A: 0xFF}), 64, 64, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if e.State() != StateRunning {
		t.Fatalf("state = %v, want running", e.State())
	}

	e.Destroy()
	if e.State() != StateDestroyed {
		t.Fatalf("state = %v, want destroyed", e.State())
	}
	if e.ParticleCount() != 0 {
		t.Errorf("destroyed engine still holds %d particles", e.ParticleCount())
	}

	// Destroy is idempotent and post-destroy calls are no-ops.
	e.Destroy()
	e.Update()
	e.HandlePointer(PointerEvent{ID: 1, Kind: PointerDown, Position: Vec(1, 1)})
	e.Resize(128, 128)
	if e.State() != StateDestroyed || len(e.cursors) != 1 {
		t.Fatalf("second destroy changed state: %v, %d cursors", e.State(), len(e.cursors))
	}
}

func TestEngineZeroBox(t *testing.T) {
	// A zero-size host box is not an error; the effect just has nothing
	// to show.
	e, err := NewEngine(uniformImage(8, 8, color.RGBA{A: 0xFF}), 0, 0, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if e.ParticleCount() != 0 {
		t.Fatalf("zero box built %d particles, want 0", e.ParticleCount())
	}
	e.Update()
	e.Destroy()
}

func TestEngineResizeKeepsParticles(t *testing.T) {
	e, err := NewEngine(uniformImage(8, 8, color.RGBA{A: 0xFF}), 64, 64, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer e.Destroy()

	before := e.ParticleCount()
	if before == 0 {
		t.Fatal("expected particles on a black subtractive source")
	}
	e.Resize(320, 200)
	if got := e.ParticleCount(); got != before {
		t.Fatalf("resize regenerated grids: %d -> %d particles", before, got)
	}
	if e.width != 320 || e.height != 200 {
		t.Fatalf("surface box not updated: %vx%v", e.width, e.height)
	}
}

func TestEngineCursorRouting(t *testing.T) {
	e, err := NewEngine(uniformImage(8, 8, color.RGBA{A: 0xFF}), 64, 64, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer e.Destroy()

	e.HandlePointer(PointerEvent{ID: 2, Kind: PointerDown, Position: Vec(10, 10)})
	e.HandlePointer(PointerEvent{ID: 3, Kind: PointerMove, Position: Vec(20, 20)})
	if len(e.cursors) != 3 { // default + two pointers
		t.Fatalf("cursor count = %d, want 3", len(e.cursors))
	}
	e.HandlePointer(PointerEvent{ID: 2, Kind: PointerEnd})
	if len(e.cursors) != 2 {
		t.Fatalf("cursor count after end = %d, want 2", len(e.cursors))
	}
}

// settleOptions disables breathing and the lens so steady-state radii
// are comparable against exact targets.
func settleOptions() Options {
	opts := DefaultOptions()
	opts.DotSize = 1.0 / 8
	opts.DotSizeThreshold = 0
	opts.IsAdditive = false
	opts.IsChannelLens = false
	opts.OscAmplitude = 0
	return opts
}

func TestEndToEndBlackSource(t *testing.T) {
	// Inverted black samples as full intensity: every dot whose origin
	// lands on the source settles to its natural size.
	e, err := NewEngine(uniformImage(64, 64, color.RGBA{A: 0xFF}), 64, 64, settleOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer e.Destroy()

	for i := 0; i < 400; i++ {
		e.Update()
	}

	checked := 0
	for _, p := range e.particles[ChannelLum] {
		if p.baseValue < 1 {
			continue // origin off the source rectangle
		}
		checked++
		if math.Abs(p.renderRadius-p.naturalSize) > 0.01*p.naturalSize {
			t.Fatalf("particle at %+v: radius %v, want %v", p.origin, p.renderRadius, p.naturalSize)
		}
	}
	if checked == 0 {
		t.Fatal("no on-source particles to check")
	}
}

func TestEndToEndWhiteSource(t *testing.T) {
	// Inverted white samples as zero: every dot settles to nothing.
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	e, err := NewEngine(uniformImage(64, 64, white), 64, 64, settleOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer e.Destroy()

	for i := 0; i < 400; i++ {
		e.Update()
	}
	for _, p := range e.particles[ChannelLum] {
		if p.renderRadius > 1e-6 {
			t.Fatalf("particle at %+v: radius %v, want ~0", p.origin, p.renderRadius)
		}
	}
}
