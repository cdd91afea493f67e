package main

// InputGenerator provides random inputs for benchmarking processing modules
type InputGenerator struct {
	rnd    *BoundedRandom
	widths []int
	bases  []int
}

// inputSeedMask keeps a worker's input stream independent of its module seed.
const inputSeedMask = 0x5bd1e995

// NewInputGenerator initializes a new InputGenerator drawing from seed
func NewInputGenerator(seed int) *InputGenerator {
	return &InputGenerator{
		rnd: NewBoundedRandom(seed ^ inputSeedMask),
		// 0 yields degenerate single value ranges
		widths: []int{0, 1, 5, 9, 99, 255, 1 << 16, 1 << 30},
		bases:  []int{-1 << 20, -1000, -1, 0, 1, 1000, 1 << 20},
	}
}

// Generate returns an input suited to the named module
func (g *InputGenerator) Generate(module string) []int {
	switch module {
	case RotateModuleName:
		return []int{g.value(), g.value(), g.value()}
	case RandomModuleName:
		min := g.bases[g.rnd.RandomIntn(len(g.bases))] + g.value()
		width := g.widths[g.rnd.RandomIntn(len(g.widths))]
		return []int{min, min + width}
	default:
		return nil
	}
}

func (g *InputGenerator) value() int {
	v, _ := g.rnd.Draw(-1<<16, 1<<16)
	return v
}
