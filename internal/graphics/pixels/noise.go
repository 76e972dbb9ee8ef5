package pixels

import (
	"image/color"
	"math"
)

// Tileable value noise for procedural fallback textures. Lattice indices wrap
// at the period so the result repeats seamlessly under GL_REPEAT.

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 is a SplitMix64-style integer hash, stable across runs
func hash2(x, z, seed int64) uint64 {
	v := uint64(x) + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, z, period, seed int64) float64 {
	x = ((x % period) + period) % period
	z = ((z % period) + period) % period
	return float64(hash2(x, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// valueNoise2D samples noise in [0,1] that repeats every period lattice cells
func valueNoise2D(x, z float64, period, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	ix, iz := int64(x0), int64(z0)

	fx := fade(x - x0)
	fz := fade(z - z0)

	v00 := latticeValue(ix, iz, period, seed)
	v10 := latticeValue(ix+1, iz, period, seed)
	v01 := latticeValue(ix, iz+1, period, seed)
	v11 := latticeValue(ix+1, iz+1, period, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz)
}

// octaveNoise2D sums octaves at doubling frequency; each octave's period
// doubles with it, so the sum keeps the base period.
func octaveNoise2D(x, z float64, period, seed int64, octaves int, persistence float64) float64 {
	amplitude, frequency := 1.0, 1.0
	sum, norm := 0.0, 0.0
	for i := range octaves {
		v := valueNoise2D(x*frequency, z*frequency, period*int64(frequency), seed+int64(i*131))
		sum += v * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Grain generates a size x size wood-grain pattern blending between a and b.
// The image tiles seamlessly.
func Grain(size int, seed int64, a, b color.RGBA) *RGB {
	const (
		period = 4
		rings  = 6
	)
	out := &RGB{Width: size, Height: size, Pix: make([]uint8, size*size*3)}
	if size <= 0 {
		return out
	}
	i := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u := float64(x) / float64(size) * period
			v := float64(y) / float64(size) * period
			n := octaveNoise2D(u, v, period, seed, 4, 0.5)
			// Stretch along y and fold into rings
			ring := float64(rings)*n + 0.5*math.Sin(v*math.Pi/2)
			t := ring - math.Floor(ring)
			out.Pix[i] = mix(a.R, b.R, t)
			out.Pix[i+1] = mix(a.G, b.G, t)
			out.Pix[i+2] = mix(a.B, b.B, t)
			i += 3
		}
	}
	return out
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(math.Round(lerp(float64(a), float64(b), t)))
}
