package main

import (
	"fmt"

	"github.com/drakos74/free-learn/infra/config"
	"github.com/drakos74/free-learn/internal/classify"
	"github.com/drakos74/free-learn/internal/dataset"
	"github.com/drakos74/free-learn/internal/emb"
	"github.com/drakos74/free-learn/internal/storage"
	jsonstore "github.com/drakos74/free-learn/internal/storage/file/json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Config is the paravec driver config.
type Config struct {
	Labeled   string     `json:"labeled"`
	Unlabeled string     `json:"unlabeled"`
	Embedding emb.Config `json:"embedding"`
	Store     bool       `json:"store"`
}

func main() {

	cfg := Config{}
	config.MustLoad("paravec", &cfg)

	results, err := run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("paravec run failed")
	}

	log.Info().Int("documents", len(results)).Msg("done")
}

func run(cfg Config) ([]classify.Result, error) {

	labeled, err := dataset.LoadLabeled(cfg.Labeled)
	if err != nil {
		return nil, fmt.Errorf("could not load labeled corpus: %w", err)
	}

	unlabeled, err := dataset.LoadUnlabeled(cfg.Unlabeled)
	if err != nil {
		return nil, fmt.Errorf("could not load unlabeled documents: %w", err)
	}

	vectorizer := emb.NewWord2Vec(cfg.Embedding)
	if err := vectorizer.Train(labeled.Corpus()); err != nil {
		return nil, fmt.Errorf("could not train embeddings: %w", err)
	}

	embeddings, err := vectorizer.Embeddings()
	if err != nil {
		return nil, fmt.Errorf("could not get embeddings: %w", err)
	}

	classifier, err := classify.Train(embeddings, labeled)
	if err != nil {
		return nil, fmt.Errorf("could not train classifier: %w", err)
	}

	bayes, err := classify.TrainBayes(labeled)
	if err != nil {
		return nil, fmt.Errorf("could not train naive-bayes baseline: %w", err)
	}

	newShard := storage.VoidShard("paravec")
	if cfg.Store {
		newShard = jsonstore.BlobShard("paravec")
	}
	store, err := newShard("centroids")
	if err != nil {
		return nil, fmt.Errorf("could not open centroid storage: %w", err)
	}
	if err := classifier.Save(store, "labels"); err != nil {
		return nil, fmt.Errorf("could not store centroids: %w", err)
	}

	results := make([]classify.Result, 0, len(unlabeled))
	for _, doc := range unlabeled {
		result, err := classifier.Score(doc)
		if err != nil {
			return nil, fmt.Errorf("could not score document '%s': %w", doc.Name, err)
		}
		results = append(results, result)

		best := result.Best()
		log.Info().
			Str("document", doc.Name).
			Str("label", best.Label).
			Float64("similarity", best.Similarity).
			Str("scores", fmt.Sprintf("%+v", result.Scores)).
			Str("bayes", bayes.Predict(doc.Text)).
			Msg("classified document")
	}

	return results, nil
}
