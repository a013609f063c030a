package nn

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/knn"
)

// Evaluation carries the outcome of a library baseline run.
type Evaluation struct {
	Accuracy float64
	Summary  string
}

// Knn applies the library knn classifier to the given dataset file.
/**
5.1,3.5,1.4,0.2,Iris-setosa
4.9,3.0,1.4,0.2,Iris-setosa
...
*/
func Knn(file string, neighbours int, split float64) (Evaluation, error) {

	rawData, err := base.ParseCSVToInstances(file, false)
	if err != nil {
		return Evaluation{}, fmt.Errorf("could not parse dataset '%s': %w", file, err)
	}

	cls := knn.NewKnnClassifier("cosine", "linear", neighbours)

	trainData, testData := base.InstancesTrainTestSplit(rawData, split)
	err = cls.Fit(trainData)
	if err != nil {
		log.Error().Err(err).Msg("could not train knn model")
		return Evaluation{}, err
	}

	predictions, err := cls.Predict(testData)
	if err != nil {
		log.Error().Err(err).Msg("could not predict on knn model")
		return Evaluation{}, err
	}

	confusionMat, err := evaluation.GetConfusionMatrix(testData, predictions)
	if err != nil {
		log.Error().Err(err).Msg("could not get confusion matrix")
		return Evaluation{}, err
	}

	return Evaluation{
		Accuracy: evaluation.GetAccuracy(confusionMat),
		Summary:  evaluation.GetSummary(confusionMat),
	}, nil
}
