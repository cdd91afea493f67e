package main

import "github.com/pkg/errors"

var (
	// ErrInvalidRange is returned by BoundedRandom.Draw when min > max.
	ErrInvalidRange = errors.New("invalid range")
	// ErrUnknownModule is returned when a module name is not registered.
	ErrUnknownModule = errors.New("unknown processing module")
	// ErrInputSize is returned when a module receives the wrong number of values.
	ErrInputSize = errors.New("unexpected input size")
)
