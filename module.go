package main

import (
	"sort"

	"github.com/pkg/errors"
)

// ProcessingModule is a single unit of work that maps an input vector to an
// output vector.
type ProcessingModule interface {
	Name() string
	Process(input []int) ([]int, error)
}

const (
	RotateModuleName = "rotate"
	RandomModuleName = "random"
)

var moduleFactories = map[string]func(seed int) ProcessingModule{
	RotateModuleName: func(int) ProcessingModule { return rotateModule{} },
	RandomModuleName: func(seed int) ProcessingModule { return &randomModule{rnd: NewBoundedRandom(seed)} },
}

// NewModule returns a fresh instance of the named module. Seed is ignored by
// modules that hold no random state.
func NewModule(name string, seed int) (ProcessingModule, error) {
	factory, ok := moduleFactories[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModule, "%q", name)
	}
	return factory(seed), nil
}

// ModuleNames returns the registered module names in sorted order.
func ModuleNames() []string {
	names := make([]string, 0, len(moduleFactories))
	for name := range moduleFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type rotateModule struct{}

func (rotateModule) Name() string { return RotateModuleName }

// Process expects exactly three values and returns them rotated right by one.
func (rotateModule) Process(input []int) ([]int, error) {
	if len(input) != 3 {
		return nil, errors.Wrapf(ErrInputSize, "rotate takes 3 values, got %d", len(input))
	}
	t := Triple{input[0], input[1], input[2]}
	Rotate(&t)
	return t[:], nil
}

type randomModule struct {
	rnd *BoundedRandom
}

func (m *randomModule) Name() string { return RandomModuleName }

// Process expects [min, max] and returns a single draw from that range.
func (m *randomModule) Process(input []int) ([]int, error) {
	if len(input) != 2 {
		return nil, errors.Wrapf(ErrInputSize, "random takes [min max], got %d values", len(input))
	}
	v, err := m.rnd.Draw(input[0], input[1])
	if err != nil {
		return nil, err
	}
	return []int{v}, nil
}
