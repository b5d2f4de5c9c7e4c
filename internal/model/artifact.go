package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Classifier families understood by Decode.
const (
	TypeRandomForest    = "RandomForestClassifier"
	TypeDecisionTree    = "DecisionTreeClassifier"
	TypeNearestCentroid = "NearestCentroid"
)

// Artifact is the on-disk JSON form of a trained classifier.
type Artifact struct {
	Type         string      `json:"type"`
	NFeatures    int         `json:"n_features"`
	NClasses     int         `json:"n_classes"`
	FeatureNames []string    `json:"feature_names,omitempty"`
	NEstimators  int         `json:"n_estimators,omitempty"`
	MaxDepth     *int        `json:"max_depth,omitempty"`
	Trees        []TreeSpec  `json:"trees,omitempty"`
	Centroids    [][]float64 `json:"centroids,omitempty"`
}

// TreeSpec is one serialized tree.
type TreeSpec struct {
	Nodes []Node `json:"nodes"`
}

// LoadFile reads and builds the classifier stored at path.
func LoadFile(path string) (Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses an artifact from r and builds the classifier it describes.
func Decode(r io.Reader) (Classifier, error) {
	var a Artifact
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return a.Build()
}

// Build validates the artifact and returns the matching classifier.
func (a Artifact) Build() (Classifier, error) {
	if a.NFeatures <= 0 {
		return nil, errors.New("artifact: n_features must be positive")
	}
	if a.NClasses <= 0 {
		return nil, errors.New("artifact: n_classes must be positive")
	}
	if len(a.FeatureNames) != 0 && len(a.FeatureNames) != a.NFeatures {
		return nil, fmt.Errorf("artifact: %d feature names for %d features", len(a.FeatureNames), a.NFeatures)
	}
	m := meta{typeName: a.Type, nFeat: a.NFeatures, nClass: a.NClasses, names: a.FeatureNames}

	switch a.Type {
	case TypeRandomForest:
		if len(a.Trees) == 0 {
			return nil, errors.New("artifact: random forest has no trees")
		}
		if a.NEstimators != 0 && a.NEstimators != len(a.Trees) {
			return nil, fmt.Errorf("artifact: n_estimators is %d but %d trees are present", a.NEstimators, len(a.Trees))
		}
		trees := make([]tree, 0, len(a.Trees))
		for i, spec := range a.Trees {
			t, err := newTree(spec.Nodes, a.NFeatures, a.NClasses)
			if err != nil {
				return nil, fmt.Errorf("artifact: tree %d: %w", i, err)
			}
			trees = append(trees, t)
		}
		return &RandomForest{meta: m, trees: trees, maxDepth: a.MaxDepth}, nil
	case TypeDecisionTree:
		if len(a.Trees) != 1 {
			return nil, fmt.Errorf("artifact: decision tree needs exactly one tree, got %d", len(a.Trees))
		}
		t, err := newTree(a.Trees[0].Nodes, a.NFeatures, a.NClasses)
		if err != nil {
			return nil, fmt.Errorf("artifact: %w", err)
		}
		return &DecisionTree{meta: m, t: t, maxDepth: a.MaxDepth}, nil
	case TypeNearestCentroid:
		if len(a.Centroids) != a.NClasses {
			return nil, fmt.Errorf("artifact: %d centroids for %d classes", len(a.Centroids), a.NClasses)
		}
		for i, c := range a.Centroids {
			if len(c) != a.NFeatures {
				return nil, fmt.Errorf("artifact: centroid %d has %d values, want %d", i, len(c), a.NFeatures)
			}
		}
		return &NearestCentroid{meta: m, centroids: a.Centroids}, nil
	case "":
		return nil, errors.New("artifact: missing type")
	default:
		return nil, fmt.Errorf("artifact: unsupported classifier type %q", a.Type)
	}
}
