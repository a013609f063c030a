package main

import (
	"os"
	"testing"

	"github.com/drakos74/free-learn/internal/emb"
	"github.com/drakos74/free-learn/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestParavec(t *testing.T) {

	cfg := Config{
		Labeled:   "../../data/paravec/labeled",
		Unlabeled: "../../data/paravec/unlabeled",
		Embedding: emb.Config{
			Dim:        15,
			Window:     4,
			Iterations: 10,
			MinCount:   1,
			SkipGram:   true,
		},
		Store: false,
	}

	results, err := run(cfg)
	assert.NoError(t, err)

	// without store the centroids go to the void storage
	_, err = os.Stat(storage.DefaultDir)
	assert.True(t, os.IsNotExist(err))

	// at least one score line per unlabeled document
	assert.Equal(t, 3, len(results))
	for _, result := range results {
		assert.Equal(t, 3, len(result.Scores))
		best := result.Best()
		assert.NotEmpty(t, best.Label)
		assert.True(t, best.Similarity >= -1 && best.Similarity <= 1)
	}
}

func TestParavec_MissingInput(t *testing.T) {

	cfg := Config{
		Labeled:   "../../data/does-not-exist",
		Unlabeled: "../../data/paravec/unlabeled",
	}

	_, err := run(cfg)
	assert.Error(t, err)
}
