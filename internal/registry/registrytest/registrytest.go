// Package registrytest provides small artifact fixtures for tests.
package registrytest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"croprecd/internal/model"
	"croprecd/internal/registry"
)

// Crops are the fixture crop classes in class id order.
var Crops = []string{"apple", "banana", "chickpea", "rice"}

// Soils are the fixture soil type classes in class id order.
var Soils = []string{"Clay", "Loamy", "Sandy"}

// BasicModel is a two-tree forest over the basic features. The sample
// {N:90,P:42,K:43,temperature:20.8,humidity:82,ph:6.5,rainfall:202.9}
// predicts rice with probability 19/24.
const BasicModel = `{
  "type": "RandomForestClassifier",
  "n_features": 7,
  "n_classes": 4,
  "n_estimators": 2,
  "max_depth": 2,
  "feature_names": ["N", "P", "K", "temperature", "humidity", "ph", "rainfall"],
  "trees": [
    {"nodes": [
      {"feature": 6, "threshold": 150, "left": 1, "right": 4},
      {"feature": 4, "threshold": 50, "left": 2, "right": 3},
      {"feature": -1, "left": -1, "right": -1, "value": [0, 0, 5, 0]},
      {"feature": -1, "left": -1, "right": -1, "value": [3, 1, 0, 0]},
      {"feature": -1, "left": -1, "right": -1, "value": [0, 1, 0, 5]}
    ]},
    {"nodes": [
      {"feature": 3, "threshold": 25, "left": 1, "right": 2},
      {"feature": -1, "left": -1, "right": -1, "value": [1, 0, 0, 3]},
      {"feature": -1, "left": -1, "right": -1, "value": [0, 4, 0, 0]}
    ]}
  ]
}`

// SoilModel is a single tree over the soil features: Clay soils give rice,
// otherwise annual rainfall <= 1000 gives chickpea and above gives banana.
const SoilModel = `{
  "type": "DecisionTreeClassifier",
  "n_features": 9,
  "n_classes": 4,
  "feature_names": ["Soil_Type", "Soil_pH", "Temperature", "Humidity", "Wind_Speed", "N", "P", "K", "Annual_Rainfall"],
  "trees": [
    {"nodes": [
      {"feature": 0, "threshold": 0.5, "left": 1, "right": 2},
      {"feature": -1, "left": -1, "right": -1, "value": [0, 0, 0, 2]},
      {"feature": 8, "threshold": 1000, "left": 3, "right": 4},
      {"feature": -1, "left": -1, "right": -1, "value": [0, 0, 3, 1]},
      {"feature": -1, "left": -1, "right": -1, "value": [1, 2, 0, 0]}
    ]}
  ]
}`

// CentroidModel is a basic-feature model without probability estimates.
const CentroidModel = `{
  "type": "NearestCentroid",
  "n_features": 7,
  "n_classes": 4,
  "centroids": [
    [20, 130, 200, 22, 92, 5.9, 110],
    [100, 80, 50, 27, 80, 6, 105],
    [40, 67, 80, 18, 17, 7.3, 80],
    [80, 48, 40, 23, 82, 6.4, 236]
  ]
}`

// EncoderJSON renders an encoder artifact for classes.
func EncoderJSON(classes []string) string {
	return `{"classes": ["` + strings.Join(classes, `", "`) + `"]}`
}

// WriteArtifacts writes the fixture artifacts for rev into dir.
func WriteArtifacts(t testing.TB, dir string, rev registry.Revision) {
	t.Helper()
	files := map[string]string{
		registry.ModelFile:       BasicModel,
		registry.CropEncoderFile: EncoderJSON(Crops),
	}
	if rev == registry.RevisionSoil {
		files[registry.ModelFile] = SoilModel
		files[registry.SoilEncoderFile] = EncoderJSON(Soils)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

// New assembles a loaded registry for rev from the fixtures.
func New(t testing.TB, rev registry.Revision) *registry.Registry {
	t.Helper()
	src := BasicModel
	if rev == registry.RevisionSoil {
		src = SoilModel
	}
	clf, err := model.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode model: %v", err)
	}
	return WithClassifier(t, rev, clf)
}

// WithClassifier assembles a loaded registry around clf and the fixture encoders.
func WithClassifier(t testing.TB, rev registry.Revision, clf model.Classifier) *registry.Registry {
	t.Helper()
	crops, err := registry.NewLabelEncoder(Crops)
	if err != nil {
		t.Fatalf("crop encoder: %v", err)
	}
	soils, err := registry.NewLabelEncoder(Soils)
	if err != nil {
		t.Fatalf("soil encoder: %v", err)
	}
	reg, err := registry.Assemble(rev, clf, crops, soils)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return reg
}
