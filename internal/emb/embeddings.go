package emb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/drakos74/free-learn/internal/buffer"
)

// Embeddings is a word to vector lookup table.
type Embeddings struct {
	dim     int
	vectors map[string][]float64
}

// NewEmbeddings creates an embeddings table from the given vectors.
// All vectors must have the same dimension.
func NewEmbeddings(vectors map[string][]float64) (Embeddings, error) {
	dim := 0
	for w, v := range vectors {
		if dim == 0 {
			dim = len(v)
		}
		if len(v) != dim {
			return Embeddings{}, fmt.Errorf("inconsistent dimension for '%s': %d vs %d", w, len(v), dim)
		}
	}
	if dim == 0 {
		return Embeddings{}, fmt.Errorf("no vectors given")
	}
	return Embeddings{
		dim:     dim,
		vectors: vectors,
	}, nil
}

// Dim returns the embedding dimension.
func (e Embeddings) Dim() int {
	return e.dim
}

// Len returns the vocabulary size.
func (e Embeddings) Len() int {
	return len(e.vectors)
}

// Vector returns the embedding for the given word.
func (e Embeddings) Vector(word string) ([]float64, bool) {
	v, ok := e.vectors[word]
	return v, ok
}

// Centroid returns the mean vector of the known tokens.
// The second return value is false if none of the tokens is in the vocabulary.
func (e Embeddings) Centroid(tokens []string) ([]float64, bool) {
	collector := buffer.NewStatsCollector(e.dim)
	for _, token := range tokens {
		if v, ok := e.vectors[token]; ok {
			collector.Push(v...)
		}
	}
	if collector.Size() == 0 {
		return nil, false
	}
	return collector.Avg(), true
}

// Parse reads embeddings in the word2vec text format: one word per line,
// followed by the vector values, all whitespace separated.
// An optional `count dim` header line is skipped.
func Parse(r io.Reader) (Embeddings, error) {

	vectors := make(map[string][]float64)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if first {
			first = false
			if isHeader(fields) {
				continue
			}
		}
		if len(fields) < 2 {
			return Embeddings{}, fmt.Errorf("malformed vector line '%s'", line)
		}
		word := fields[0]
		vector := make([]float64, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Embeddings{}, fmt.Errorf("malformed vector value for '%s': %w", word, err)
			}
			vector[i] = v
		}
		vectors[word] = vector
	}
	if err := scanner.Err(); err != nil {
		return Embeddings{}, fmt.Errorf("could not read vectors: %w", err)
	}

	return NewEmbeddings(vectors)
}

func isHeader(fields []string) bool {
	if len(fields) != 2 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}
