package main

// Triple is an ordered group of three integers rotated as a unit.
type Triple [3]int

// Rotate shifts the values of t one position to the right:
// (a, b, c) becomes (c, a, b).
func Rotate(t *Triple) {
	t[0], t[1], t[2] = t[2], t[0], t[1]
}

// Rotated returns a right-rotated copy of t, leaving t unchanged.
func (t Triple) Rotated() Triple {
	Rotate(&t)
	return t
}
