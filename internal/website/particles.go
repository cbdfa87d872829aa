package website

import (
	"math/rand/v2"
)

// Particle is one dot of the decorative background.
type Particle struct {
	Size     float64 // px, 1-4
	X, Y     float64 // % of the viewport
	Duration float64 // s, 10-20
	Delay    float64 // s, 0-5
	Opacity  float64 // 0.1-0.5
}

// Blob is one blurred colour field behind the page.
type Blob struct {
	Class string
	Color string
}

// ParticleCount is the number of background particles.
const ParticleCount = 25

// Particles returns n particles drawn from a seeded source, so a given seed
// always renders the same background.
func Particles(seed uint64, n int) []Particle {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]Particle, n)
	for i := range out {
		out[i] = Particle{
			Size:     r.Float64()*3 + 1,
			X:        r.Float64() * 100,
			Y:        r.Float64() * 100,
			Duration: r.Float64()*10 + 10,
			Delay:    r.Float64() * 5,
			Opacity:  r.Float64()*0.4 + 0.1,
		}
	}
	return out
}

// Blobs returns the three background colour fields.
func Blobs() []Blob {
	return []Blob{
		{Class: "blob blob-olive", Color: Colors["olive"]},
		{Class: "blob blob-brown", Color: Colors["brown"]},
		{Class: "blob blob-orange", Color: Colors["orange"]},
	}
}
