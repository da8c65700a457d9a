package domain

import "github.com/go-gl/mathgl/mgl32"

// Matrix is a 4x4 float32 transformation matrix in column-major order.
type Matrix = mgl32.Mat4

// Identity returns the identity matrix, the neutral element of composition.
func Identity() Matrix {
	return mgl32.Ident4()
}

// MatrixFromSlice builds a column-major matrix from exactly 16 values.
// It reports false if the slice has a different length.
func MatrixFromSlice(values []float32) (Matrix, bool) {
	var m Matrix
	if len(values) != len(m) {
		return m, false
	}
	copy(m[:], values)
	return m, true
}
