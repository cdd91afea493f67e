package main

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mathext/prng"
)

// BoundedRandom draws uniformly distributed integers from caller supplied
// inclusive ranges. It is backed by a 32-bit Mersenne Twister seeded once at
// construction, so a fixed seed and a fixed sequence of ranges always yield
// the same values.
//
// A BoundedRandom is not safe for concurrent use.
type BoundedRandom struct {
	seed   int
	engine *prng.MT19937
}

// NewBoundedRandom initializes a new BoundedRandom seeded with seed.
// Only the low 32 bits of seed reach the engine.
func NewBoundedRandom(seed int) *BoundedRandom {
	engine := prng.NewMT19937()
	engine.Seed(uint64(seed))
	return &BoundedRandom{
		seed:   seed,
		engine: engine,
	}
}

// Seed returns the seed the generator was constructed with.
func (r *BoundedRandom) Seed() int {
	return r.seed
}

// Draw returns a pseudo-random int in [min,max]. Every successful call
// advances the engine, including when min == max. An inverted range is
// rejected with ErrInvalidRange and does not touch the engine.
func (r *BoundedRandom) Draw(min, max int) (int, error) {
	if min > max {
		return 0, errors.Wrapf(ErrInvalidRange, "min %d is greater than max %d", min, max)
	}

	span := uint64(max) - uint64(min)
	if span < math.MaxUint32 {
		// Downscale a single 32-bit word, rejecting the biased tail.
		urange := span + 1
		scaling := uint64(math.MaxUint32) / urange
		past := urange * scaling
		for {
			v := uint64(r.engine.Uint32())
			if v < past {
				return min + int(v/scaling), nil
			}
		}
	}

	if span == math.MaxUint64 {
		return int(r.engine.Uint64()), nil
	}
	urange := span + 1
	scaling := uint64(math.MaxUint64) / urange
	past := urange * scaling
	for {
		v := r.engine.Uint64()
		if v < past {
			return min + int(v/scaling), nil
		}
	}
}

// RandomIntn returns a pseudo-random int in [0,n). It panics if n <= 0.
func (r *BoundedRandom) RandomIntn(n int) int {
	if n <= 0 {
		panic("invalid argument to RandomIntn")
	}
	v, _ := r.Draw(0, n-1)
	return v
}

// MarshalBinary returns the current engine state.
func (r *BoundedRandom) MarshalBinary() ([]byte, error) {
	return r.engine.MarshalBinary()
}

// UnmarshalBinary restores an engine state produced by MarshalBinary.
// The seed reported by Seed is left unchanged.
func (r *BoundedRandom) UnmarshalBinary(data []byte) error {
	if err := r.engine.UnmarshalBinary(data); err != nil {
		return errors.Wrap(err, "restore engine state")
	}
	return nil
}
