package game

import (
	"errors"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/breathing-halftone/internal/config"
	"github.com/iburimskiy/breathing-halftone/internal/halftone"
)

// Game hosts the halftone engine: it loads source images, translates
// ebiten input into engine pointer events and forwards layout changes.
type Game struct {
	engine     *halftone.Engine
	source     image.Image
	sourceName string

	opts      halftone.Options
	presetIdx int

	width, height int

	// input edge detection
	prevKey     map[ebiten.Key]bool
	touchIDs    []ebiten.TouchID
	releasedIDs []ebiten.TouchID

	lastErr error
}

// New returns a host with default options and no image loaded.
func New() *Game {
	return &Game{
		opts:    halftone.DefaultOptions(),
		width:   config.WindowWidth,
		height:  config.WindowHeight,
		prevKey: map[ebiten.Key]bool{},
	}
}

// LoadFile decodes an image file and rebuilds the engine around it.
func (g *Game) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := halftone.Decode(filepath.Base(path), f)
	if err != nil {
		return err
	}
	g.source = img
	g.sourceName = filepath.Base(path)
	g.rebuild()
	return nil
}

// rebuild tears down the running engine and constructs a fresh one from
// the current source and options. Options are immutable per instance,
// so every toggle goes through here.
func (g *Game) rebuild() {
	if g.engine != nil {
		g.engine.Destroy()
		g.engine = nil
	}
	if g.source == nil {
		return
	}
	g.opts.Channels = channelPresets[g.presetIdx].channels
	e, err := halftone.NewEngine(g.source, float64(g.width), float64(g.height), g.opts)
	if err != nil {
		g.lastErr = err
		return
	}
	g.engine = e
	g.lastErr = nil
	log.Printf("halftone: %s, %d particles", g.sourceName, e.ParticleCount())
}

func (g *Game) openFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp", "*.bmp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.LoadFile(filename)
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyO) {
		if err := g.openFileDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyA) {
		g.opts.IsAdditive = !g.opts.IsAdditive
		g.rebuild()
	}
	if justPressed(ebiten.KeyR) {
		g.opts.IsRadial = !g.opts.IsRadial
		g.rebuild()
	}
	if justPressed(ebiten.KeyL) {
		g.opts.IsChannelLens = !g.opts.IsChannelLens
		g.rebuild()
	}
	if justPressed(ebiten.KeyC) {
		g.presetIdx = (g.presetIdx + 1) % len(channelPresets)
		g.rebuild()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.engine != nil {
		g.forwardPointers()
		g.engine.Update()
	}
	return nil
}

// mousePointerID is pointer 0; touches map to 1+ID.
const mousePointerID halftone.PointerID = 0

func touchPointerID(id ebiten.TouchID) halftone.PointerID {
	return halftone.PointerID(1 + int(id))
}

// forwardPointers turns this tick's mouse and touch state into engine
// pointer events.
func (g *Game) forwardPointers() {
	mx, my := ebiten.CursorPosition()
	pos := halftone.Vec(float64(mx), float64(my))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.engine.HandlePointer(halftone.PointerEvent{ID: mousePointerID, Kind: halftone.PointerDown, Position: pos})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.engine.HandlePointer(halftone.PointerEvent{ID: mousePointerID, Kind: halftone.PointerUp, Position: pos})
	default:
		g.engine.HandlePointer(halftone.PointerEvent{ID: mousePointerID, Kind: halftone.PointerMove, Position: pos})
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		tpos := halftone.Vec(float64(tx), float64(ty))
		kind := halftone.PointerMove
		if inpututil.TouchPressDuration(id) == 1 {
			kind = halftone.PointerDown
		}
		g.engine.HandlePointer(halftone.PointerEvent{ID: touchPointerID(id), Kind: kind, Position: tpos})
	}
	g.releasedIDs = inpututil.AppendJustReleasedTouchIDs(g.releasedIDs[:0])
	for _, id := range g.releasedIDs {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		g.engine.HandlePointer(halftone.PointerEvent{
			ID:       touchPointerID(id),
			Kind:     halftone.PointerEnd,
			Position: halftone.Vec(float64(tx), float64(ty)),
		})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.engine != nil {
		g.engine.Draw(screen)
	}

	status := ""
	if g.source == nil {
		status = "O: open an image | Esc/Q: quit"
	} else {
		status = g.sourceName + " | " + modeLabel(g.opts, channelPresets[g.presetIdx].name) +
			" | O: open A: polarity R: layout L: lens C: channels"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.engine != nil {
			g.engine.Resize(float64(g.width), float64(g.height))
		}
	}
	return g.width, g.height
}
