package math

import (
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Format formats a float for log output.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Cosine returns the cosine similarity of the given vectors.
// Vectors of different length or zero norm get a similarity of 0.
func Cosine(u, v []float64) float64 {
	if len(u) != len(v) || len(u) == 0 {
		return 0
	}
	nu := floats.Norm(u, 2)
	nv := floats.Norm(v, 2)
	if nu == 0 || nv == 0 {
		return 0
	}
	return floats.Dot(u, v) / (nu * nv)
}

// MaxIndex returns the index of the largest element.
func MaxIndex(ff []float64) int {
	return floats.MaxIdx(ff)
}
