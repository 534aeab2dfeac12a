package rimg

import "errors"

// Sentinel errors returned by matrix and bundle operations.
// Callers match them with errors.Is.
var (
	// ErrBadShape is returned when constructing a matrix with non-positive
	// dimensions or from a slice whose length does not match them.
	ErrBadShape = errors.New("rimg: invalid shape")

	// ErrShapeMismatch is returned by binary operations whose operands do
	// not have identical shape. Shapes are never silently broadcast.
	ErrShapeMismatch = errors.New("rimg: shape mismatch")

	// ErrAxisOutOfBounds is returned when an axis index does not name a
	// spatial axis of the matrix.
	ErrAxisOutOfBounds = errors.New("rimg: axis out of bounds")

	// ErrAxisTooShort is returned when a wrapping shift or difference is
	// requested along an axis of length <= 1, for which the operation is
	// undefined.
	ErrAxisTooShort = errors.New("rimg: axis too short")
)
