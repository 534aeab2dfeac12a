package rimg

import "gonum.org/v1/gonum/mat"

// FromDense converts a gonum dense matrix. Rows map to the Y axis and
// columns to the X axis, so d.At(y, x) == FromDense(d).At(x, y).
func FromDense(d *mat.Dense) *Matrix {
	rows, cols := d.Dims()
	f := New(cols, rows)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			f.Set(x, y, d.At(y, x))
		}
	}
	return f
}

// Dense converts the matrix to a gonum dense matrix with Height rows and
// Width columns.
func (f *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(f.Height, f.Width, nil)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			d.Set(y, x, f.At(x, y))
		}
	}
	return d
}
