package halftone

import (
	"fmt"
	"image"
	"io"
	"math"

	"golang.org/x/image/draw"

	// Extra source formats beyond the stdlib png/jpeg/gif.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// DecodeError reports a source image that could not be decoded. It is
// returned from Decode rather than swallowed so the caller can retry or
// fall back.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("halftone: decode %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode reads and decodes a source image in any registered format.
func Decode(name string, r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}
	return img, nil
}

// PixelBuffer holds the decoded RGBA samples of the source image. It is
// read-only after construction and shared by every channel grid.
type PixelBuffer struct {
	pix           []uint8
	width, height int
}

// NewPixelBuffer converts img to RGBA, downscaling so neither axis
// exceeds maxDim. maxDim <= 0 disables scaling.
func NewPixelBuffer(img image.Image, maxDim int) *PixelBuffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = h * maxDim / w
			w = maxDim
		} else {
			w = w * maxDim / h
			h = maxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return &PixelBuffer{pix: dst.Pix, width: w, height: h}
}

// Width returns the buffer width in pixels.
func (p *PixelBuffer) Width() int { return p.width }

// Height returns the buffer height in pixels.
func (p *PixelBuffer) Height() int { return p.height }

// Sampler maps surface coordinates onto a PixelBuffer and extracts
// per-channel intensity. The scale factors convert surface units to
// source pixels.
type Sampler struct {
	buf            *PixelBuffer
	scaleX, scaleY float64
	degenerate     bool
}

// NewSampler builds a sampler for a surface of the given size. A
// degenerate surface yields a sampler whose every sample is out of
// bounds.
func NewSampler(buf *PixelBuffer, surfaceW, surfaceH float64) *Sampler {
	s := &Sampler{buf: buf}
	if surfaceW <= 0 || surfaceH <= 0 {
		s.degenerate = true
		return s
	}
	s.scaleX = float64(buf.width) / surfaceW
	s.scaleY = float64(buf.height) / surfaceH
	return s
}

// Sample returns the channel intensity in [0,1] at a surface coordinate.
// Coordinates outside the source rectangle sample as 0 in either
// polarity. Total; never fails.
func (s *Sampler) Sample(x, y float64, ch Channel, additive bool) float64 {
	if s.degenerate {
		return 0
	}
	// Floor, not truncate: fractional coordinates just left of or above
	// the source must stay out of bounds instead of snapping to pixel 0.
	px := int(math.Floor(x * s.scaleX))
	py := int(math.Floor(y * s.scaleY))
	if px < 0 || px >= s.buf.width || py < 0 || py >= s.buf.height {
		return 0
	}
	i := (py*s.buf.width + px) * 4
	var v float64
	switch ch {
	case ChannelRed:
		v = float64(s.buf.pix[i]) / 255
	case ChannelGreen:
		v = float64(s.buf.pix[i+1]) / 255
	case ChannelBlue:
		v = float64(s.buf.pix[i+2]) / 255
	case ChannelLum:
		r := float64(s.buf.pix[i]) / 255
		g := float64(s.buf.pix[i+1]) / 255
		b := float64(s.buf.pix[i+2]) / 255
		v = (max(r, g, b) + min(r, g, b)) / 2
	}
	if !additive {
		v = 1 - v
	}
	return v
}
