package nn

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
)

// Vote is a random forest over the raw numeric rows.
// It exposes the per-feature importance of the trained forest.
type Vote struct {
	trees  int
	forest *randomforest.Forest
}

// NewVote creates a new vote forest with the given number of trees.
func NewVote(trees int) *Vote {
	return &Vote{
		trees: trees,
	}
}

// Train builds the forest and returns the feature importance.
func (v *Vote) Train(x [][]float64, y []int) ([]float64, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("inconsistent training set [ %d | %d ]", len(x), len(y))
	}
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: y}
	forest.Train(v.trees)
	v.forest = forest
	return forest.FeatureImportance, nil
}

// Predict returns the vote distribution over the classes.
func (v *Vote) Predict(x []float64) ([]float64, error) {
	if v.forest == nil {
		return nil, fmt.Errorf("no forest trained")
	}
	return v.forest.Vote(x), nil
}
