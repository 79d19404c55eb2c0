package tensor

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator supplies the random values used by Rand and Randn.
//
// A Generator is passed explicitly to every random constructor, so callers
// control seeding. A nil *Generator draws from the global math/rand/v2
// source. Generators are not safe for concurrent use.
//
// Example:
//
//	g := tensor.NewGenerator(42)
//	a, _ := tensor.Randn(g, 3, 3)
type Generator struct {
	src rand.Source
}

// NewGenerator returns a Generator backed by a PCG source seeded with seed.
// Two generators created with the same seed produce the same sequence.
func NewGenerator(seed uint64) *Generator {
	return &Generator{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// NewGeneratorFromSource returns a Generator drawing from src.
func NewGeneratorFromSource(src rand.Source) *Generator {
	return &Generator{src: src}
}

func (g *Generator) source() rand.Source {
	if g == nil {
		return nil
	}
	return g.src
}

// Uniform returns a value uniformly distributed in [0, 1).
func (g *Generator) Uniform() float32 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: g.source()}
	v := float32(u.Rand())
	// Narrowing may round values just below 1 up to 1.
	if v >= 1 {
		v = math.Nextafter32(1, 0)
	}
	return v
}

// Normal returns a value from the standard normal distribution N(0, 1).
func (g *Generator) Normal() float32 {
	n := distuv.Normal{Mu: 0, Sigma: 1, Src: g.source()}
	return float32(n.Rand())
}
