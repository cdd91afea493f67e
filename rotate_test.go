package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		in   Triple
		want Triple
	}{
		{"distinct values", Triple{1, 2, 3}, Triple{3, 1, 2}},
		{"all equal", Triple{7, 7, 7}, Triple{7, 7, 7}},
		{"negatives", Triple{-1, 0, -5}, Triple{-5, -1, 0}},
		{"extremes", Triple{math.MinInt, 0, math.MaxInt}, Triple{math.MaxInt, math.MinInt, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			Rotate(&got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRotatePeriodThree(t *testing.T) {
	r := NewBoundedRandom(2024)
	for i := 0; i < 100; i++ {
		var orig Triple
		for j := range orig {
			orig[j], _ = r.Draw(math.MinInt, math.MaxInt)
		}

		got := orig
		Rotate(&got)
		Rotate(&got)
		Rotate(&got)
		assert.Equal(t, orig, got)
	}
}

func TestRotated(t *testing.T) {
	orig := Triple{10, 20, 30}
	got := orig.Rotated()

	assert.Equal(t, Triple{30, 10, 20}, got)
	assert.Equal(t, Triple{10, 20, 30}, orig, "Rotated must not modify its receiver")
	assert.Equal(t, orig, got.Rotated().Rotated())
}
