package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputGeneratorShapes(t *testing.T) {
	g := NewInputGenerator(42)

	for i := 0; i < 500; i++ {
		triple := g.Generate(RotateModuleName)
		require.Len(t, triple, 3)

		rg := g.Generate(RandomModuleName)
		require.Len(t, rg, 2)
		assert.LessOrEqual(t, rg[0], rg[1])
	}
	assert.Nil(t, g.Generate("unknown"))
}

func TestInputGeneratorDeterminism(t *testing.T) {
	a := NewInputGenerator(9)
	b := NewInputGenerator(9)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Generate(RandomModuleName), b.Generate(RandomModuleName))
		assert.Equal(t, a.Generate(RotateModuleName), b.Generate(RotateModuleName))
	}
}

func TestInputGeneratorFeedsModules(t *testing.T) {
	g := NewInputGenerator(1)
	for _, name := range ModuleNames() {
		m, err := NewModule(name, 1)
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			in := g.Generate(name)
			out, err := m.Process(in)
			require.NoError(t, err)
			if name == RandomModuleName {
				assert.GreaterOrEqual(t, out[0], in[0])
				assert.LessOrEqual(t, out[0], in[1])
			}
		}
	}
}
