package emb

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/ynqa/wego/pkg/model/modelutil/vector"
	"github.com/ynqa/wego/pkg/model/word2vec"
)

// Config carries the embedding model parameters.
type Config struct {
	Dim        int  `json:"dim"`
	Window     int  `json:"window"`
	Iterations int  `json:"iterations"`
	MinCount   int  `json:"min_count"`
	SkipGram   bool `json:"skip_gram"`
}

// Vectorizer trains word embeddings on a token corpus.
// The training itself is delegated to the embedding library,
// this repository only feeds the corpus and consumes the learned vectors.
type Vectorizer interface {
	Train(r io.ReadSeeker) error
	Embeddings() (Embeddings, error)
}

// Word2Vec is a Vectorizer backed by the wego word2vec implementation.
type Word2Vec struct {
	cfg        Config
	embeddings Embeddings
	trained    bool
}

// NewWord2Vec creates a new word2vec vectorizer with the given config.
func NewWord2Vec(cfg Config) *Word2Vec {
	return &Word2Vec{
		cfg: cfg,
	}
}

// Train builds the embedding model via the library configuration builder
// and runs the blocking training call on the given corpus.
func (w *Word2Vec) Train(r io.ReadSeeker) error {

	modelType := word2vec.Cbow
	if w.cfg.SkipGram {
		modelType = word2vec.SkipGram
	}

	model, err := word2vec.New(
		word2vec.Dim(w.cfg.Dim),
		word2vec.Window(w.cfg.Window),
		word2vec.Iter(w.cfg.Iterations),
		word2vec.MinCount(w.cfg.MinCount),
		word2vec.Model(modelType),
		word2vec.Optimizer(word2vec.NegativeSampling),
		word2vec.NegativeSampleSize(5),
	)
	if err != nil {
		return fmt.Errorf("could not create word2vec model: %w", err)
	}

	if err := model.Train(r); err != nil {
		return fmt.Errorf("could not train word2vec model: %w", err)
	}

	var buf bytes.Buffer
	if err := model.Save(&buf, vector.Agg); err != nil {
		return fmt.Errorf("could not extract word vectors: %w", err)
	}

	embeddings, err := Parse(&buf)
	if err != nil {
		return fmt.Errorf("could not parse word vectors: %w", err)
	}

	log.Info().
		Int("words", embeddings.Len()).
		Int("dim", embeddings.Dim()).
		Msg("trained word embeddings")

	w.embeddings = embeddings
	w.trained = true
	return nil
}

// Embeddings returns the learned vectors.
func (w *Word2Vec) Embeddings() (Embeddings, error) {
	if !w.trained {
		return Embeddings{}, fmt.Errorf("model is not trained")
	}
	return w.embeddings, nil
}
