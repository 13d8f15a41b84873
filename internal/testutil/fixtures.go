package testutil

import (
	"time"

	"titanguard/internal/core/domain"
)

// NewTestArtifact returns a loadable artifact whose coefficients produce
// stable, hand-checkable predictions: a first-class 25-year-old woman with a
// 100.0 fare scores well above 0.5, a third-class 35-year-old man with a
// 10.0 fare well below.
func NewTestArtifact() *domain.ModelArtifact {
	return &domain.ModelArtifact{
		ModelVersion: "1.0.0",
		Algorithm:    domain.AlgorithmLogisticRegression,
		Classifier: &domain.LogisticRegression{
			Coefficients: []float64{-0.98, 1.31, -0.46, 0.12, 0.17},
			Intercept:    -0.63,
		},
		Scaler: &domain.StandardScaler{
			Mean:  []float64{2.31, 0.35, 29.4, 32.2, 0.36},
			Scale: []float64{0.83, 0.48, 13.3, 49.7, 0.64},
		},
	}
}

// NewTestMetadata returns evaluation metadata consistent with the test
// artifact: a 179-row holdout with accuracy 0.8101.
func NewTestMetadata() *domain.ModelMetadata {
	return &domain.ModelMetadata{
		ModelVersion: "1.0.0",
		FeatureNames: []string{"Pclass", "Sex", "Age", "Fare", "Embarked"},
		TargetName:   "Survived",
		Classes:      []int{0, 1},
		ClassNames:   []string{"Did Not Survive", "Survived"},
		Accuracy:     0.8101,
		Precision:    0.8030,
		Recall:       0.7162,
		F1Score:      0.7571,
		ConfusionMatrix: [2][2]int{
			{92, 13},
			{21, 53},
		},
		ClassificationReport: "              precision    recall  f1-score   support\n\n           0       0.81      0.88      0.84       105\n           1       0.80      0.72      0.76        74\n\n    accuracy                           0.81       179\n   macro avg       0.81      0.80      0.80       179\nweighted avg       0.81      0.81      0.81       179\n",
		TrainedAt:            time.Date(2026, 7, 14, 9, 30, 0, 0, time.UTC),
	}
}
