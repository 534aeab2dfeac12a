/*
Package rimg provides dense real-valued matrices for image processing.

A Matrix holds one channel of an image as float64 elements, an RGB couples
three same-shape matrices into a color image. All arithmetic is elementwise,
returns a fresh result and never mutates its operands. Binary operations
require operands of identical shape; scalars broadcast to every element.

The package also provides the wrapping (periodic) shift and finite-difference
operators used by variational image methods. Diff and DiffT form an exact
adjoint pair: for any same-shape A and B and either axis,

	Dot(Diff(A), B) == Dot(A, DiffT(B))

which is the discrete analogue of integration by parts.
*/
package rimg
