package classify

import (
	"fmt"

	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/text"
	"github.com/drakos74/free-learn/internal/dataset"
	"github.com/rs/zerolog/log"
)

// Bayes is a naive-bayes baseline classifier over the raw document text.
// It gives a frequency based counterpoint to the embedding centroid scores.
type Bayes struct {
	labels []string
	model  *text.NaiveBayes
}

// TrainBayes trains a naive-bayes model on the labeled documents.
func TrainBayes(docs dataset.Documents) (*Bayes, error) {

	if len(docs) == 0 {
		return nil, fmt.Errorf("no labeled documents to train on")
	}

	labels := docs.Labels()
	if len(labels) < 2 {
		return nil, fmt.Errorf("need at least 2 labels, got %d", len(labels))
	}
	index := make(map[string]uint8, len(labels))
	for i, label := range labels {
		index[label] = uint8(i)
	}

	stream := make(chan base.TextDatapoint, 100)
	errs := make(chan error)

	model := text.NewNaiveBayes(stream, uint8(len(labels)), base.OnlyWordsAndNumbers)

	go model.OnlineLearn(errs)

	for _, doc := range docs {
		class, ok := index[doc.Label]
		if !ok {
			close(stream)
			return nil, fmt.Errorf("unknown label '%s'", doc.Label)
		}
		stream <- base.TextDatapoint{
			X: doc.Text,
			Y: class,
		}
	}
	close(stream)

	for err := range errs {
		if err != nil {
			return nil, fmt.Errorf("could not train naive-bayes model: %w", err)
		}
	}

	log.Info().
		Int("documents", len(docs)).
		Int("labels", len(labels)).
		Msg("trained naive-bayes baseline")

	return &Bayes{
		labels: labels,
		model:  model,
	}, nil
}

// Predict returns the most likely label for the given text.
func (b *Bayes) Predict(txt string) string {
	class := b.model.Predict(txt)
	if int(class) >= len(b.labels) {
		return ""
	}
	return b.labels[class]
}
