package nn

import (
	"fmt"
	"math"

	"github.com/drakos74/free-learn/internal/buffer"
	learnmath "github.com/drakos74/free-learn/internal/math"
	"github.com/drakos74/free-learn/internal/metrics"
	xml "github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
)

const processor = "nn"

// Config carries the feed-forward network parameters.
type Config struct {
	Layers []int   `json:"layers"`
	Rate   float64 `json:"rate"`
	Epochs int     `json:"epochs"`
}

// Report carries the training run statistics.
type Report struct {
	Epochs     int     `json:"epochs"`
	Iterations int     `json:"iterations"`
	Loss       float64 `json:"loss"`
	Trend      float64 `json:"trend"`
}

// FeedForward wraps the library feed-forward network.
// Backpropagation and weight updates happen inside the library,
// this wrapper only drives the epochs and tracks the loss.
type FeedForward struct {
	cfg        Config
	inputSize  int
	outputSize int
	network    *ff.Network
	history    *buffer.MultiBuffer
}

// NewFeedForward builds a network of the configured hidden layers,
// with tanh activations and a softmax output.
func NewFeedForward(inputSize, outputSize int, cfg Config) *FeedForward {

	rate := xml.Learn(1, cfg.Rate)

	initW := xmath.Rand(-1, 1, math.Sqrt)
	initB := xmath.Rand(-1, 1, math.Sqrt)

	network := ff.New(inputSize, outputSize)
	for _, layer := range cfg.Layers {
		network.Add(layer, net.NewBuilder().
			WithModule(xml.Base().
				WithRate(rate).
				WithActivation(xml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell))
	}
	network.Add(outputSize, net.NewBuilder().
		WithModule(xml.Base().
			WithRate(rate).
			WithActivation(xml.TanH)).
		WithWeights(initW, initB).
		Factory(net.NewActivationCell))
	network.Add(outputSize, net.NewBuilder().CellFactory(net.NewSoftCell))
	network.Loss(xml.Pow)

	return &FeedForward{
		cfg:        cfg,
		inputSize:  inputSize,
		outputSize: outputSize,
		network:    network,
		history:    buffer.NewMultiBuffer(cfg.Epochs),
	}
}

// Fit runs the configured number of epochs over the given rows.
// y must be the one-hot encoded labels for x.
func (n *FeedForward) Fit(x [][]float64, y [][]float64) (Report, error) {

	if len(x) == 0 || len(x) != len(y) {
		return Report{}, fmt.Errorf("inconsistent training set [ %d | %d ]", len(x), len(y))
	}
	if len(x[0]) != n.inputSize || len(y[0]) != n.outputSize {
		return Report{}, fmt.Errorf("unexpected row dimensions [ %d | %d ], expected [ %d | %d ]",
			len(x[0]), len(y[0]), n.inputSize, n.outputSize)
	}

	iterations := 0
	epochLoss := 0.0

	for epoch := 0; epoch < n.cfg.Epochs; epoch++ {
		stats := buffer.NewStats()
		for i := range x {
			inp := xmath.Vec(len(x[i])).With(x[i]...)
			exp := xmath.Vec(len(y[i])).With(y[i]...)
			loss, _ := n.network.Train(inp, exp)
			stats.Push(loss.Norm())
			iterations++
		}
		epochLoss = stats.Avg()
		n.history.Push(float64(epoch), epochLoss)
		log.Debug().
			Int("epoch", epoch).
			Float64("loss", epochLoss).
			Msg("epoch done")
	}

	metrics.Observer.AddIterations(float64(iterations), "feed-forward", processor)

	report := Report{
		Epochs:     n.cfg.Epochs,
		Iterations: iterations,
		Loss:       epochLoss,
		Trend:      n.trend(),
	}

	log.Info().
		Int("epochs", report.Epochs).
		Int("iterations", report.Iterations).
		Float64("loss", report.Loss).
		Float64("trend", report.Trend).
		Msg("trained feed-forward network")

	return report, nil
}

// trend fits the per-epoch loss history to a line and returns its slope.
func (n *FeedForward) trend() float64 {
	history := n.history.Get()
	if len(history) < 2 {
		return 0
	}
	xx := make([]float64, len(history))
	yy := make([]float64, len(history))
	for i, h := range history {
		xx[i] = h[0]
		yy[i] = h[1]
	}
	cc, err := learnmath.Fit(xx, yy, 1)
	if err != nil {
		log.Warn().Err(err).Msg("could not fit loss trend")
		return 0
	}
	return cc[1]
}

// Predict returns the class scores for the given row.
func (n *FeedForward) Predict(x []float64) []float64 {
	inp := xmath.Vec(len(x)).With(x...)
	return n.network.Predict(inp)
}

// Class returns the predicted class index for the given row.
func (n *FeedForward) Class(x []float64) int {
	return learnmath.MaxIndex(n.Predict(x))
}
