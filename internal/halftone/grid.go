package halftone

import "math"

// gridSpacing is the lattice pitch for a surface diagonal.
func gridSpacing(opts Options, diagonal float64) float64 {
	return opts.DotSize * diagonal
}

// cartesianOrigins lays a square lattice large enough to cover a rotated
// square of side diagonal, centered on the surface, then rotates every
// point by the channel's angle about the center. Distinct per-channel
// angles keep overlapping grids from aliasing into moiré bands.
func cartesianOrigins(ch Channel, opts Options, w, h float64) []Vector2 {
	if w <= 0 || h <= 0 {
		return nil
	}
	diagonal := math.Hypot(w, h)
	spacing := gridSpacing(opts, diagonal)
	cols := int(math.Ceil(diagonal / spacing))
	center := Vec(w/2, h/2)
	angle := channelAngles[ch]

	origins := make([]Vector2, 0, cols*cols)
	for row := 0; row < cols; row++ {
		for col := 0; col < cols; col++ {
			rel := Vec(
				(float64(col)+0.5)*spacing-diagonal/2,
				(float64(row)+0.5)*spacing-diagonal/2,
			)
			origins = append(origins, center.Add(rel.Rotate(angle)))
		}
	}
	return origins
}

// radialOrigins lays concentric rings: ring k carries max(6k, 1) points
// at radius k·spacing, angularly offset by the channel angle, around a
// center itself pushed one spacing along the channel angle.
func radialOrigins(ch Channel, opts Options, w, h float64) []Vector2 {
	if w <= 0 || h <= 0 {
		return nil
	}
	diagonal := math.Hypot(w, h)
	spacing := gridSpacing(opts, diagonal)
	angle := channelAngles[ch]
	center := Vec(w/2, h/2).Add(Vec(math.Cos(angle), math.Sin(angle)).Scale(spacing))
	maxLevel := radialLevels(diagonal, spacing)

	var origins []Vector2
	for k := 0; k < maxLevel; k++ {
		n := k * 6
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			theta := angle + 2*math.Pi*float64(i)/float64(n)
			origins = append(origins, center.Add(
				Vec(math.Cos(theta), math.Sin(theta)).Scale(float64(k)*spacing)))
		}
	}
	return origins
}

// radialLevels returns enough rings to reach the surface corners.
func radialLevels(diagonal, spacing float64) int {
	return int(math.Ceil(diagonal/2/spacing)) + 1
}

// buildGrid generates the particle set for one channel: candidate
// origins, threshold pruning at the sampled intensity, then particle
// construction. A degenerate surface yields an empty set.
func buildGrid(ch Channel, opts Options, sampler *Sampler, w, h float64) []*Particle {
	var origins []Vector2
	if opts.IsRadial {
		origins = radialOrigins(ch, opts, w, h)
	} else {
		origins = cartesianOrigins(ch, opts, w, h)
	}
	if len(origins) == 0 {
		return nil
	}

	spacing := gridSpacing(opts, math.Hypot(w, h))
	naturalSize := spacing * math.Sqrt2 / 2

	particles := make([]*Particle, 0, len(origins))
	for _, o := range origins {
		v := sampler.Sample(o.X, o.Y, ch, opts.IsAdditive)
		if v < opts.DotSizeThreshold {
			continue
		}
		particles = append(particles, newParticle(ch, o, naturalSize, v))
	}
	return particles
}
