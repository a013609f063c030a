package main

import (
	"fmt"
	"time"

	"github.com/drakos74/free-learn/infra/config"
	"github.com/drakos74/free-learn/internal/dataset"
	"github.com/drakos74/free-learn/internal/eval"
	"github.com/drakos74/free-learn/internal/nn"
	"github.com/drakos74/free-learn/internal/storage"
	jsonstore "github.com/drakos74/free-learn/internal/storage/file/json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Config is the iris driver config.
type Config struct {
	File         string    `json:"file"`
	Features     int       `json:"features"`
	Split        float64   `json:"split"`
	Seed         int64     `json:"seed"`
	Net          nn.Config `json:"net"`
	Neighbours   int       `json:"neighbours"`
	Trees        int       `json:"trees"`
	TreeFeatures int       `json:"tree_features"`
	Store        bool      `json:"store"`
}

// Outcome is the aggregate result of one evaluation run.
type Outcome struct {
	ID         string    `json:"id"`
	Report     nn.Report `json:"report"`
	Accuracy   float64   `json:"accuracy"`
	MacroF1    float64   `json:"macro_f1"`
	Importance []float64 `json:"importance"`
}

func main() {

	cfg := Config{}
	config.MustLoad("iris", &cfg)

	outcome, err := run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("iris run failed")
	}

	log.Info().
		Str("id", outcome.ID).
		Float64("accuracy", outcome.Accuracy).
		Float64("macro-f1", outcome.MacroF1).
		Msg("done")
}

func run(cfg Config) (Outcome, error) {

	table, err := dataset.LoadTable(cfg.File, cfg.Features)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not load table: %w", err)
	}

	train, test := table.Split(cfg.Split, cfg.Seed)

	network := nn.NewFeedForward(cfg.Features, len(table.Classes), cfg.Net)
	report, err := network.Fit(train.Rows, train.OneHot())
	if err != nil {
		return Outcome{}, fmt.Errorf("could not train network: %w", err)
	}

	confusion := eval.NewConfusion(table.Classes...)
	for i, row := range test.Rows {
		predicted := table.Classes[network.Class(row)]
		if err := confusion.Add(test.Labels[i], predicted); err != nil {
			return Outcome{}, fmt.Errorf("could not record prediction: %w", err)
		}
	}

	fmt.Println("FeedForward Performance")
	fmt.Println(confusion.Summary())

	knnEval, err := nn.Knn(cfg.File, cfg.Neighbours, 0.50)
	if err != nil {
		return Outcome{}, fmt.Errorf("knn baseline failed: %w", err)
	}
	fmt.Println("KNN Performance")
	fmt.Println(knnEval.Summary)

	forestEval, err := nn.Forest(cfg.File, cfg.Trees, cfg.TreeFeatures, 0.60)
	if err != nil {
		return Outcome{}, fmt.Errorf("forest baseline failed: %w", err)
	}
	fmt.Println("RandomForest Performance")
	fmt.Println(forestEval.Summary)

	vote := nn.NewVote(cfg.Trees)
	importance, err := vote.Train(table.Rows, table.ClassIndexes())
	if err != nil {
		return Outcome{}, fmt.Errorf("vote forest failed: %w", err)
	}
	log.Info().
		Floats64("importance", importance).
		Float64("knn-accuracy", knnEval.Accuracy).
		Float64("forest-accuracy", forestEval.Accuracy).
		Msg("baselines done")

	outcome := Outcome{
		ID:         uuid.New().String(),
		Report:     report,
		Accuracy:   confusion.Accuracy(),
		MacroF1:    confusion.MacroF1(),
		Importance: importance,
	}

	newShard := storage.VoidShard("iris")
	if cfg.Store {
		newShard = jsonstore.BlobShard("iris")
	}
	store, err := newShard("reports")
	if err != nil {
		return Outcome{}, fmt.Errorf("could not open report storage: %w", err)
	}
	key := storage.Key{
		Hash:  time.Now().Unix(),
		Name:  "iris",
		Label: "report",
	}
	if err := store.Store(key, outcome); err != nil {
		return Outcome{}, fmt.Errorf("could not store outcome: %w", err)
	}

	return outcome, nil
}
