package main

import (
	"os"
	"testing"

	"github.com/drakos74/free-learn/internal/nn"
	"github.com/drakos74/free-learn/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestIris(t *testing.T) {

	cfg := Config{
		File:     "../../data/iris.txt",
		Features: 4,
		Split:    0.60,
		Seed:     44111342,
		Net: nn.Config{
			Layers: []int{16, 8},
			Rate:   0.1,
			Epochs: 20,
		},
		Neighbours:   10,
		Trees:        50,
		TreeFeatures: 3,
		Store:        false,
	}

	outcome, err := run(cfg)
	assert.NoError(t, err)

	// without store the report goes to the void storage
	_, err = os.Stat(storage.DefaultDir)
	assert.True(t, os.IsNotExist(err))

	assert.NotEmpty(t, outcome.ID)
	assert.True(t, outcome.Accuracy >= 0 && outcome.Accuracy <= 1)
	assert.True(t, outcome.MacroF1 >= 0 && outcome.MacroF1 <= 1)
	assert.Equal(t, 20, outcome.Report.Epochs)
	assert.Equal(t, 4, len(outcome.Importance))
}

func TestIris_MissingFile(t *testing.T) {

	cfg := Config{
		File:     "../../data/does-not-exist.txt",
		Features: 4,
	}

	_, err := run(cfg)
	assert.Error(t, err)
}
