package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// two trivially separable clusters in 2 dimensions
func toyData() ([][]float64, [][]float64) {
	x := [][]float64{
		{0.9, 0.1}, {1.0, 0.0}, {0.8, 0.2}, {1.1, -0.1},
		{0.1, 0.9}, {0.0, 1.0}, {0.2, 0.8}, {-0.1, 1.1},
	}
	y := [][]float64{
		{1, 0}, {1, 0}, {1, 0}, {1, 0},
		{0, 1}, {0, 1}, {0, 1}, {0, 1},
	}
	return x, y
}

func TestFeedForward_Fit(t *testing.T) {

	network := NewFeedForward(2, 2, Config{
		Layers: []int{8},
		Rate:   0.1,
		Epochs: 50,
	})

	x, y := toyData()

	report, err := network.Fit(x, y)
	assert.NoError(t, err)

	assert.Equal(t, 50, report.Epochs)
	assert.Equal(t, 50*len(x), report.Iterations)
	assert.False(t, math.IsNaN(report.Loss))
	assert.True(t, report.Loss >= 0)
	assert.False(t, math.IsNaN(report.Trend))
}

func TestFeedForward_Predict(t *testing.T) {

	network := NewFeedForward(2, 2, Config{
		Layers: []int{8},
		Rate:   0.1,
		Epochs: 50,
	})

	x, y := toyData()

	_, err := network.Fit(x, y)
	assert.NoError(t, err)

	out := network.Predict([]float64{1.0, 0.0})
	assert.Equal(t, 2, len(out))

	// softmax output sums to 1
	sum := 0.0
	for _, o := range out {
		assert.False(t, math.IsNaN(o))
		sum += o
	}
	assert.InDelta(t, 1.0, sum, 1e-6)

	class := network.Class([]float64{1.0, 0.0})
	assert.True(t, class == 0 || class == 1)
}

func TestFeedForward_Fit_Invalid(t *testing.T) {

	network := NewFeedForward(2, 2, Config{
		Layers: []int{4},
		Rate:   0.1,
		Epochs: 1,
	})

	_, err := network.Fit(nil, nil)
	assert.Error(t, err)

	_, err = network.Fit([][]float64{{1, 2}}, [][]float64{})
	assert.Error(t, err)
}
