package classify

import (
	"fmt"
	"sort"

	"github.com/drakos74/free-learn/internal/buffer"
	"github.com/drakos74/free-learn/internal/dataset"
	"github.com/drakos74/free-learn/internal/emb"
	learnmath "github.com/drakos74/free-learn/internal/math"
	"github.com/drakos74/free-learn/internal/metrics"
	"github.com/drakos74/free-learn/internal/storage"
	"github.com/rs/zerolog/log"
)

const processor = "classify"

// Score is the similarity of a document to one label.
type Score struct {
	Label      string  `json:"label"`
	Similarity float64 `json:"similarity"`
}

// Result carries the per-label scores for one document, best first.
type Result struct {
	Name   string  `json:"name"`
	Scores []Score `json:"scores"`
}

// Best returns the top score.
func (r Result) Best() Score {
	return r.Scores[0]
}

// Centroid is the persisted form of one label centroid.
type Centroid struct {
	Label   string    `json:"label"`
	Vector  []float64 `json:"vector"`
	Samples int       `json:"samples"`
}

// Classifier assigns labels to documents by nearest-centroid similarity.
type Classifier struct {
	embeddings emb.Embeddings
	centroids  []Centroid
}

// Train builds one centroid per label from the token embeddings of the labeled documents.
func Train(embeddings emb.Embeddings, docs dataset.Documents) (*Classifier, error) {

	if len(docs) == 0 {
		return nil, fmt.Errorf("no labeled documents to train on")
	}

	collectors := make(map[string]*buffer.StatsCollector)

	for _, doc := range docs {
		if doc.Label == "" {
			return nil, fmt.Errorf("unlabeled document '%s' in training set", doc.Name)
		}
		collector, ok := collectors[doc.Label]
		if !ok {
			collector = buffer.NewStatsCollector(embeddings.Dim())
			collectors[doc.Label] = collector
		}
		for _, token := range doc.Tokens() {
			if v, ok := embeddings.Vector(token); ok {
				collector.Push(v...)
			}
		}
	}

	centroids := make([]Centroid, 0, len(collectors))
	for _, label := range docs.Labels() {
		collector := collectors[label]
		if collector.Size() == 0 {
			return nil, fmt.Errorf("no known tokens for label '%s'", label)
		}
		centroids = append(centroids, Centroid{
			Label:   label,
			Vector:  collector.Avg(),
			Samples: collector.Size(),
		})
		log.Info().
			Str("label", label).
			Int("tokens", collector.Size()).
			Msg("built label centroid")
	}

	return &Classifier{
		embeddings: embeddings,
		centroids:  centroids,
	}, nil
}

// Score computes the cosine similarity of the document centroid to every label centroid.
func (c *Classifier) Score(doc dataset.Document) (Result, error) {

	centroid, ok := c.embeddings.Centroid(doc.Tokens())
	if !ok {
		return Result{}, fmt.Errorf("no known tokens in document '%s'", doc.Name)
	}

	scores := make([]Score, len(c.centroids))
	for i, lc := range c.centroids {
		scores[i] = Score{
			Label:      lc.Label,
			Similarity: learnmath.Cosine(centroid, lc.Vector),
		}
	}
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Similarity > scores[j].Similarity
	})

	metrics.Observer.IncrementDocuments(scores[0].Label, processor)

	return Result{
		Name:   doc.Name,
		Scores: scores,
	}, nil
}

// Predict returns the best matching label for the document.
func (c *Classifier) Predict(doc dataset.Document) (Score, error) {
	result, err := c.Score(doc)
	if err != nil {
		return Score{}, err
	}
	return result.Best(), nil
}

// Labels returns the labels the classifier was trained on.
func (c *Classifier) Labels() []string {
	labels := make([]string, len(c.centroids))
	for i, lc := range c.centroids {
		labels[i] = lc.Label
	}
	return labels
}

// Save stores the label centroids.
func (c *Classifier) Save(store storage.Persistence, name string) error {
	for _, lc := range c.centroids {
		key := storage.Key{
			Name:  name,
			Label: lc.Label,
		}
		if err := store.Store(key, lc); err != nil {
			return fmt.Errorf("could not store centroid for '%s': %w", lc.Label, err)
		}
	}
	return nil
}

// Load restores the label centroids for the given labels.
func Load(store storage.Persistence, name string, embeddings emb.Embeddings, labels []string) (*Classifier, error) {
	centroids := make([]Centroid, 0, len(labels))
	for _, label := range labels {
		var lc Centroid
		key := storage.Key{
			Name:  name,
			Label: label,
		}
		if err := store.Load(key, &lc); err != nil {
			return nil, fmt.Errorf("could not load centroid for '%s': %w", label, err)
		}
		centroids = append(centroids, lc)
	}
	return &Classifier{
		embeddings: embeddings,
		centroids:  centroids,
	}, nil
}
