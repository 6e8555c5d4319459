package halftone

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Fixed tint per (channel, polarity). Additive draws primaries on black;
// subtractive draws the complementary inks on white.
var (
	additiveTints = map[Channel]color.RGBA{
		ChannelRed:   {R: 0xFF, A: 0xFF},
		ChannelGreen: {G: 0xFF, A: 0xFF},
		ChannelBlue:  {B: 0xFF, A: 0xFF},
		ChannelLum:   {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	subtractiveTints = map[Channel]color.RGBA{
		ChannelRed:   {G: 0xFF, B: 0xFF, A: 0xFF},
		ChannelGreen: {R: 0xFF, B: 0xFF, A: 0xFF},
		ChannelBlue:  {R: 0xFF, G: 0xFF, A: 0xFF},
		ChannelLum:   {A: 0xFF},
	}
)

// channelTint returns the fill color for a channel under a polarity.
func channelTint(ch Channel, additive bool) color.RGBA {
	if additive {
		return additiveTints[ch]
	}
	return subtractiveTints[ch]
}

// backgroundColor is black under additive compositing, white under
// subtractive.
func backgroundColor(additive bool) color.RGBA {
	if additive {
		return color.RGBA{A: 0xFF}
	}
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}

// blendDarker keeps the per-component minimum, the subtractive
// counterpart of ebiten.BlendLighter. Factors are ignored by the min
// operation.
var blendDarker = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationMin,
	BlendOperationAlpha:         ebiten.BlendOperationMin,
}

// compositeBlend returns the surface-merge blend for a polarity.
func compositeBlend(additive bool) ebiten.Blend {
	if additive {
		return ebiten.BlendLighter
	}
	return blendDarker
}

// renderer owns one offscreen surface per channel. Each frame every
// channel's particles are drawn into its own surface and the surfaces
// are then merged onto the destination; drawing all channels straight
// to one surface would lose the color separation.
type renderer struct {
	additive bool
	channels []Channel

	w, h     int
	surfaces map[Channel]*ebiten.Image
}

func newRenderer(channels []Channel, additive bool) *renderer {
	return &renderer{
		additive: additive,
		channels: channels,
		surfaces: map[Channel]*ebiten.Image{},
	}
}

// resize drops the channel surfaces; draw recreates them at the new
// size. Particle origins are left alone.
func (r *renderer) resize(w, h int) {
	if w == r.w && h == r.h {
		return
	}
	r.w, r.h = w, h
	for ch, s := range r.surfaces {
		s.Deallocate()
		delete(r.surfaces, ch)
	}
}

func (r *renderer) surface(ch Channel) *ebiten.Image {
	if s, ok := r.surfaces[ch]; ok {
		return s
	}
	s := ebiten.NewImage(r.w, r.h)
	r.surfaces[ch] = s
	return s
}

// draw renders every channel's particles into its surface and
// composites the surfaces onto dst. Dots are filled with ordinary
// source-over so every channel-surface pixel stays opaque (background
// or ink); the lighter/min blend is applied only when the opaque
// surfaces merge. Min-blending the dots themselves would let a quad's
// transparent texels zero out the white subtractive background.
func (r *renderer) draw(dst *ebiten.Image, particles map[Channel][]*Particle) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	bg := backgroundColor(r.additive)
	blend := compositeBlend(r.additive)

	dst.Fill(bg)
	for _, ch := range r.channels {
		s := r.surface(ch)
		s.Fill(bg)

		tint := channelTint(ch, r.additive)
		for _, p := range particles[ch] {
			radius := p.RenderRadius()
			if radius <= 0 {
				continue
			}
			pos := p.Position()
			vector.DrawFilledCircle(s, float32(pos.X), float32(pos.Y),
				float32(radius), tint, true)
		}

		op := &ebiten.DrawImageOptions{Blend: blend}
		dst.DrawImage(s, op)
	}
}

// deallocate releases every surface. Safe to call more than once.
func (r *renderer) deallocate() {
	for ch, s := range r.surfaces {
		s.Deallocate()
		delete(r.surfaces, ch)
	}
}
