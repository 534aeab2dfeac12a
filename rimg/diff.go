package rimg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Axis identifies a spatial axis of a matrix.
type Axis int

const (
	// X is the horizontal axis, of length Width.
	X Axis = iota
	// Y is the vertical axis, of length Height.
	Y
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// axisLen returns the length of the given axis, or an error if the axis
// does not exist or is too short to shift along.
func (f *Matrix) axisLen(axis Axis) (int, error) {
	var n int
	switch axis {
	case X:
		n = f.Width
	case Y:
		n = f.Height
	default:
		return 0, fmt.Errorf("%w: %s of %dx%d matrix", ErrAxisOutOfBounds, axis, f.Width, f.Height)
	}
	if n <= 1 {
		return 0, fmt.Errorf("%w: %s has length %d", ErrAxisTooShort, axis, n)
	}
	return n, nil
}

// ShiftPos returns the matrix shifted by one towards growing indices along
// the given axis, wrapping: index 0 receives what was at the last index.
func (f *Matrix) ShiftPos(axis Axis) (*Matrix, error) {
	if _, err := f.axisLen(axis); err != nil {
		return nil, err
	}
	g := New(f.Width, f.Height)
	w, h := f.Width, f.Height
	if axis == X {
		// Whole columns move as contiguous blocks.
		copy(g.Elems[:h], f.Elems[(w-1)*h:])
		copy(g.Elems[h:], f.Elems[:(w-1)*h])
		return g, nil
	}
	for x := 0; x < w; x++ {
		col := f.Elems[x*h : (x+1)*h]
		dst := g.Elems[x*h : (x+1)*h]
		dst[0] = col[h-1]
		copy(dst[1:], col[:h-1])
	}
	return g, nil
}

// ShiftNeg returns the matrix shifted by one towards shrinking indices along
// the given axis, wrapping: the last index receives what was at index 0.
// It is the inverse of ShiftPos.
func (f *Matrix) ShiftNeg(axis Axis) (*Matrix, error) {
	if _, err := f.axisLen(axis); err != nil {
		return nil, err
	}
	g := New(f.Width, f.Height)
	w, h := f.Width, f.Height
	if axis == X {
		copy(g.Elems[:(w-1)*h], f.Elems[h:])
		copy(g.Elems[(w-1)*h:], f.Elems[:h])
		return g, nil
	}
	for x := 0; x < w; x++ {
		col := f.Elems[x*h : (x+1)*h]
		dst := g.Elems[x*h : (x+1)*h]
		copy(dst[:h-1], col[1:])
		dst[h-1] = col[0]
	}
	return g, nil
}

// Diff returns the forward difference f - ShiftPos(f) along the given axis,
// with wrapping boundary conditions.
func (f *Matrix) Diff(axis Axis) (*Matrix, error) {
	shifted, err := f.ShiftPos(axis)
	if err != nil {
		return nil, err
	}
	g := New(f.Width, f.Height)
	floats.SubTo(g.Elems, f.Elems, shifted.Elems)
	return g, nil
}

// DiffT returns the transposed difference f - ShiftNeg(f) along the given
// axis, with wrapping boundary conditions. DiffT is the exact adjoint of
// Diff: Dot(Diff(A), B) == Dot(A, DiffT(B)) for same-shape A and B.
func (f *Matrix) DiffT(axis Axis) (*Matrix, error) {
	shifted, err := f.ShiftNeg(axis)
	if err != nil {
		return nil, err
	}
	g := New(f.Width, f.Height)
	floats.SubTo(g.Elems, f.Elems, shifted.Elems)
	return g, nil
}
