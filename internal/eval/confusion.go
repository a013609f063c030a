package eval

import (
	"fmt"
	"strings"

	learnmath "github.com/drakos74/free-learn/internal/math"
	"github.com/olekukonko/tablewriter"
)

// Confusion is a confusion matrix over a fixed set of class labels.
type Confusion struct {
	labels []string
	counts map[string]map[string]int
	total  int
}

// NewConfusion creates an empty confusion matrix for the given labels.
func NewConfusion(labels ...string) *Confusion {
	counts := make(map[string]map[string]int, len(labels))
	for _, l := range labels {
		counts[l] = make(map[string]int, len(labels))
	}
	return &Confusion{
		labels: labels,
		counts: counts,
	}
}

// Add records one observation of actual vs predicted label.
func (c *Confusion) Add(actual, predicted string) error {
	row, ok := c.counts[actual]
	if !ok {
		return fmt.Errorf("unknown actual label '%s'", actual)
	}
	if _, ok := c.counts[predicted]; !ok {
		return fmt.Errorf("unknown predicted label '%s'", predicted)
	}
	row[predicted]++
	c.total++
	return nil
}

// Total returns the number of recorded observations.
func (c *Confusion) Total() int {
	return c.total
}

// Accuracy is the fraction of observations on the matrix diagonal.
func (c *Confusion) Accuracy() float64 {
	if c.total == 0 {
		return 0
	}
	hits := 0
	for _, l := range c.labels {
		hits += c.counts[l][l]
	}
	return float64(hits) / float64(c.total)
}

// Precision is tp / (tp + fp) for the given label.
func (c *Confusion) Precision(label string) float64 {
	tp := c.counts[label][label]
	predicted := 0
	for _, l := range c.labels {
		predicted += c.counts[l][label]
	}
	if predicted == 0 {
		return 0
	}
	return float64(tp) / float64(predicted)
}

// Recall is tp / (tp + fn) for the given label.
func (c *Confusion) Recall(label string) float64 {
	tp := c.counts[label][label]
	actual := 0
	for _, l := range c.labels {
		actual += c.counts[label][l]
	}
	if actual == 0 {
		return 0
	}
	return float64(tp) / float64(actual)
}

// F1 is the harmonic mean of precision and recall for the given label.
func (c *Confusion) F1(label string) float64 {
	p := c.Precision(label)
	r := c.Recall(label)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// MacroF1 is the unweighted mean F1 over all labels.
func (c *Confusion) MacroF1() float64 {
	if len(c.labels) == 0 {
		return 0
	}
	sum := 0.0
	for _, l := range c.labels {
		sum += c.F1(l)
	}
	return sum / float64(len(c.labels))
}

// Summary renders the per-class statistics as a text table.
func (c *Confusion) Summary() string {
	sb := new(strings.Builder)

	table := tablewriter.NewWriter(sb)
	table.SetHeader([]string{"class", "precision", "recall", "f1"})
	for _, l := range c.labels {
		table.Append([]string{
			l,
			learnmath.Format(c.Precision(l)),
			learnmath.Format(c.Recall(l)),
			learnmath.Format(c.F1(l)),
		})
	}
	table.SetFooter([]string{"accuracy", "", "", learnmath.Format(c.Accuracy())})
	table.Render()

	return sb.String()
}
