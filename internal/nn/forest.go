package nn

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/ensemble"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/filters"
)

// preProcessAttributes discretises the float attributes with Chi-Merge,
// as the tree ensemble needs categorical features.
func preProcessAttributes(raw *base.DenseInstances) (*base.LazilyFilteredInstances, error) {
	filt := filters.NewChiMergeFilter(raw, 0.999)
	for _, a := range base.NonClassFloatAttributes(raw) {
		filt.AddAttribute(a)
	}
	err := filt.Train()
	if err != nil {
		return nil, err
	}
	return base.NewLazilyFilteredInstances(raw, filt), nil
}

// Forest applies the library random forest to the given dataset file.
func Forest(file string, trees int, features int, split float64) (Evaluation, error) {

	rawData, err := base.ParseCSVToInstances(file, false)
	if err != nil {
		return Evaluation{}, fmt.Errorf("could not parse dataset '%s': %w", file, err)
	}

	filtered, err := preProcessAttributes(rawData)
	if err != nil {
		return Evaluation{}, fmt.Errorf("could not discretise attributes: %w", err)
	}

	trainData, testData := base.InstancesTrainTestSplit(filtered, split)

	tree := ensemble.NewRandomForest(trees, features)
	err = tree.Fit(trainData)
	if err != nil {
		return Evaluation{}, fmt.Errorf("could not train random forest: %w", err)
	}

	predictions, err := tree.Predict(testData)
	if err != nil {
		return Evaluation{}, fmt.Errorf("could not predict on random forest: %w", err)
	}

	confusionMat, err := evaluation.GetConfusionMatrix(testData, predictions)
	if err != nil {
		return Evaluation{}, fmt.Errorf("could not get confusion matrix: %w", err)
	}

	return Evaluation{
		Accuracy: evaluation.GetAccuracy(confusionMat),
		Summary:  evaluation.GetSummary(confusionMat),
	}, nil
}
