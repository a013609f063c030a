package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {

	type test struct {
		input  float64
		output string
	}

	tests := map[string]test{
		"0": {
			input:  0,
			output: "0.00",
		},
		"-1": {
			input:  -1,
			output: "-1.00",
		},
		"+1": {
			input:  1,
			output: "1.00",
		},
		"fraction": {
			input:  0.123,
			output: "0.12",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, Format(tt.input))
		})
	}
}

func TestCosine(t *testing.T) {

	type test struct {
		u, v []float64
		sim  float64
	}

	tests := map[string]test{
		"identical": {
			u:   []float64{1, 2, 3},
			v:   []float64{1, 2, 3},
			sim: 1,
		},
		"opposite": {
			u:   []float64{1, 0},
			v:   []float64{-1, 0},
			sim: -1,
		},
		"orthogonal": {
			u:   []float64{1, 0},
			v:   []float64{0, 1},
			sim: 0,
		},
		"zero-norm": {
			u:   []float64{0, 0},
			v:   []float64{1, 1},
			sim: 0,
		},
		"length-mismatch": {
			u:   []float64{1},
			v:   []float64{1, 1},
			sim: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.sim, Cosine(tt.u, tt.v), 1e-9)
		})
	}
}

func TestMaxIndex(t *testing.T) {
	assert.Equal(t, 2, MaxIndex([]float64{0.1, 0.2, 0.7}))
	assert.Equal(t, 0, MaxIndex([]float64{0.7, 0.2, 0.1}))
}

func TestFit_Line(t *testing.T) {

	xx := []float64{0, 1, 2, 3, 4}
	yy := []float64{1, 3, 5, 7, 9}

	cc, err := Fit(xx, yy, 1)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, cc[0], 1e-9)
	assert.InDelta(t, 2.0, cc[1], 1e-9)
}
