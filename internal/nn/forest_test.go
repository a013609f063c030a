package nn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnn(t *testing.T) {

	ev, err := Knn("testdata/iris.csv", 3, 0.50)
	assert.NoError(t, err)

	assert.True(t, ev.Accuracy >= 0 && ev.Accuracy <= 1)
	assert.True(t, strings.Contains(ev.Summary, "Iris-setosa"))
}

func TestKnn_MissingFile(t *testing.T) {
	_, err := Knn("testdata/does-not-exist.csv", 3, 0.50)
	assert.Error(t, err)
}

func TestForest(t *testing.T) {

	ev, err := Forest("testdata/iris.csv", 50, 3, 0.60)
	assert.NoError(t, err)

	assert.True(t, ev.Accuracy >= 0 && ev.Accuracy <= 1)
	assert.True(t, strings.Contains(ev.Summary, "Iris-virginica"))
}

func TestVote(t *testing.T) {

	x := make([][]float64, 0)
	y := make([]int, 0)
	for i := 0; i < 20; i++ {
		v := float64(i) / 20
		x = append(x, []float64{v, 1 - v, 0.5, 0.5})
		if v > 0.5 {
			y = append(y, 1)
		} else {
			y = append(y, 0)
		}
	}

	vote := NewVote(100)
	importance, err := vote.Train(x, y)
	assert.NoError(t, err)
	assert.Equal(t, 4, len(importance))

	distribution, err := vote.Predict([]float64{0.9, 0.1, 0.5, 0.5})
	assert.NoError(t, err)
	assert.True(t, len(distribution) >= 2)
}

func TestVote_Invalid(t *testing.T) {

	vote := NewVote(10)

	_, err := vote.Train(nil, nil)
	assert.Error(t, err)

	_, err = vote.Predict([]float64{1, 2})
	assert.Error(t, err)
}
