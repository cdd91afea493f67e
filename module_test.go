package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleNames(t *testing.T) {
	assert.Equal(t, []string{RandomModuleName, RotateModuleName}, ModuleNames())
}

func TestNewModuleUnknown(t *testing.T) {
	m, err := NewModule("xml", 1)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrUnknownModule)
}

func TestRotateModule(t *testing.T) {
	m, err := NewModule(RotateModuleName, 0)
	require.NoError(t, err)
	assert.Equal(t, RotateModuleName, m.Name())

	out, err := m.Process([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, out)

	for _, in := range [][]int{nil, {1, 2}, {1, 2, 3, 4}} {
		_, err := m.Process(in)
		assert.ErrorIs(t, err, ErrInputSize, "input %v", in)
	}
}

func TestRotateModuleDoesNotAliasInput(t *testing.T) {
	m, err := NewModule(RotateModuleName, 0)
	require.NoError(t, err)

	in := []int{4, 5, 6}
	out, err := m.Process(in)
	require.NoError(t, err)
	out[0] = 100
	assert.Equal(t, []int{4, 5, 6}, in)
}

func TestRandomModule(t *testing.T) {
	m, err := NewModule(RandomModuleName, 42)
	require.NoError(t, err)
	assert.Equal(t, RandomModuleName, m.Name())

	out, err := m.Process([]int{1, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, out)

	_, err = m.Process([]int{6, 1})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = m.Process([]int{1})
	assert.ErrorIs(t, err, ErrInputSize)
}

func TestRandomModuleInstancesAreIndependent(t *testing.T) {
	a, err := NewModule(RandomModuleName, 42)
	require.NoError(t, err)
	b, err := NewModule(RandomModuleName, 42)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _ = a.Process([]int{0, 100})
	}
	out, err := b.Process([]int{1, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, out)
}
