package domain

// ============================================================================
// Feature Contract
// ============================================================================

// FeatureCount is the number of input features the model was trained on.
const FeatureCount = 5

// Embarkation ports, encoded the way the training pipeline encodes them.
const (
	EmbarkedSouthampton = 0
	EmbarkedCherbourg   = 1
	EmbarkedQueenstown  = 2
)

// Sex encoding used at training time.
const (
	SexMale   = 0
	SexFemale = 1
)

// PassengerFeatures is the ordered feature contract shared with the training
// pipeline. The scaler and classifier were fit against vectors in exactly the
// order Vector() emits; the numeric pipeline cannot detect a reordering, so
// the order lives here and nowhere else.
type PassengerFeatures struct {
	Pclass   int     `json:"pclass"`
	Sex      int     `json:"sex"`
	Age      float64 `json:"age"`
	Fare     float64 `json:"fare"`
	Embarked int     `json:"embarked"`
}

// Vector returns the feature values as [Pclass, Sex, Age, Fare, Embarked].
func (f PassengerFeatures) Vector() []float64 {
	return []float64{
		float64(f.Pclass),
		float64(f.Sex),
		f.Age,
		f.Fare,
		float64(f.Embarked),
	}
}

// FeatureNames returns the feature names in vector order.
func FeatureNames() []string {
	return []string{"Pclass", "Sex", "Age", "Fare", "Embarked"}
}

// SameFeatureOrder reports whether names matches the serving feature contract
// exactly, element for element. Artifacts or metadata trained against a
// different order must be rejected at load time.
func SameFeatureOrder(names []string) bool {
	contract := FeatureNames()
	if len(names) != len(contract) {
		return false
	}
	for i, name := range names {
		if name != contract[i] {
			return false
		}
	}
	return true
}
