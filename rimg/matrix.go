package rimg

import (
	"fmt"
	"image"
)

// Matrix is a dense matrix of real pixel values.
// Elements are stored column by column, Elems[x*Height+y].
type Matrix struct {
	Elems  []float64
	Width  int
	Height int
}

// New allocates a zero-filled matrix of the given dimensions.
// Panics if either dimension is not positive.
func New(width, height int) *Matrix {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("rimg: non-positive dimensions %dx%d", width, height))
	}
	return &Matrix{make([]float64, width*height), width, height}
}

// FromSlice wraps elems, given column by column, in a matrix of the given
// dimensions. The slice is used directly, not copied.
func FromSlice(width, height int, elems []float64) (*Matrix, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, width, height)
	}
	if len(elems) != width*height {
		return nil, fmt.Errorf("%w: %d elements for %dx%d", ErrBadShape, len(elems), width, height)
	}
	return &Matrix{elems, width, height}, nil
}

// At accesses the element at (x, y).
func (f *Matrix) At(x, y int) float64 {
	return f.Elems[x*f.Height+y]
}

// Set modifies the element at (x, y).
func (f *Matrix) Set(x, y int, v float64) {
	f.Elems[x*f.Height+y] = v
}

// Size returns the dimensions of the matrix.
func (f *Matrix) Size() image.Point {
	return image.Pt(f.Width, f.Height)
}

// Clone creates a copy of the matrix.
func (f *Matrix) Clone() *Matrix {
	g := New(f.Width, f.Height)
	copy(g.Elems, f.Elems)
	return g
}

// Map applies fn to every element and returns the results as a new matrix.
func (f *Matrix) Map(fn func(float64) float64) *Matrix {
	g := New(f.Width, f.Height)
	for i, v := range f.Elems {
		g.Elems[i] = fn(v)
	}
	return g
}

// sameSize reports nil if f and g have identical shape,
// an ErrShapeMismatch otherwise.
func (f *Matrix) sameSize(g *Matrix) error {
	if f.Width != g.Width || f.Height != g.Height {
		return fmt.Errorf("%w: %dx%d and %dx%d", ErrShapeMismatch, f.Width, f.Height, g.Width, g.Height)
	}
	return nil
}
