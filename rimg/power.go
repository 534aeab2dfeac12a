package rimg

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Squared returns the matrix with every element squared.
func (f *Matrix) Squared() *Matrix {
	g := New(f.Width, f.Height)
	floats.MulTo(g.Elems, f.Elems, f.Elems)
	return g
}

// Pow returns the matrix with every element raised to the power p.
func (f *Matrix) Pow(p float64) *Matrix {
	g := New(f.Width, f.Height)
	for i, v := range f.Elems {
		g.Elems[i] = math.Pow(v, p)
	}
	return g
}

// Norm returns the Euclidean norm of the elements.
func (f *Matrix) Norm() float64 {
	return floats.Norm(f.Elems, 2)
}

// Sum returns the sum of the elements.
func (f *Matrix) Sum() float64 {
	return floats.Sum(f.Elems)
}

// Dot returns the inner product of two same-size matrices.
func (f *Matrix) Dot(g *Matrix) (float64, error) {
	if err := f.sameSize(g); err != nil {
		return 0, err
	}
	return floats.Dot(f.Elems, g.Elems), nil
}
