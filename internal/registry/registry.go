// Package registry loads the classifier and label encoders from the artifact
// directory and holds them, read-only, for the life of the process.
package registry

import (
	"fmt"
	"strings"

	"croprecd/internal/model"
)

// Revision selects the request schema and artifact set.
type Revision int

const (
	// RevisionBasic takes seven numeric soil/climate features.
	RevisionBasic Revision = 1
	// RevisionSoil adds a categorical soil type and wind speed.
	RevisionSoil Revision = 2
)

// Valid reports whether r is a known revision.
func (r Revision) Valid() bool { return r == RevisionBasic || r == RevisionSoil }

// State is the load state of a registry.
type State string

const (
	StateLoaded   State = "loaded"
	StateUnloaded State = "unloaded"
)

// Registry is either fully loaded or fully empty; it never holds a subset
// of its artifacts.
type Registry struct {
	state      State
	revision   Revision
	dir        string
	err        string
	classifier model.Classifier
	crops      *LabelEncoder
	soils      *LabelEncoder
}

// Unloaded returns an empty registry recording why loading failed.
func Unloaded(rev Revision, dir, reason string) *Registry {
	return &Registry{state: StateUnloaded, revision: rev, dir: dir, err: reason}
}

// Assemble builds a loaded registry from parts after checking that they agree
// with each other and with the revision's feature columns. soils is required
// for RevisionSoil and ignored otherwise.
func Assemble(rev Revision, clf model.Classifier, crops, soils *LabelEncoder) (*Registry, error) {
	if !rev.Valid() {
		return nil, fmt.Errorf("unknown api revision %d", rev)
	}
	if clf == nil {
		return nil, fmt.Errorf("classifier is nil")
	}
	if crops == nil {
		return nil, fmt.Errorf("crop encoder is nil")
	}
	if rev == RevisionSoil && soils == nil {
		return nil, fmt.Errorf("soil encoder is required for revision %d", rev)
	}
	if rev == RevisionBasic {
		soils = nil
	}
	if clf.NumClasses() != crops.Len() {
		return nil, fmt.Errorf("classifier has %d classes, crop encoder has %d", clf.NumClasses(), crops.Len())
	}
	features := Features(rev)
	if clf.NumFeatures() != len(features) {
		return nil, fmt.Errorf("classifier takes %d features, expected %d", clf.NumFeatures(), len(features))
	}
	if names := clf.FeatureNames(); names != nil {
		if len(names) != len(features) {
			return nil, fmt.Errorf("artifact names %d features, expected %d", len(names), len(features))
		}
		for i := range names {
			if !strings.EqualFold(names[i], features[i]) {
				return nil, fmt.Errorf("feature %d is %q in the artifact, expected %q", i, names[i], features[i])
			}
		}
	}
	return &Registry{state: StateLoaded, revision: rev, classifier: clf, crops: crops, soils: soils}, nil
}

func (r *Registry) Loaded() bool      { return r != nil && r.state == StateLoaded }
func (r *Registry) State() State       { return r.state }
func (r *Registry) Revision() Revision { return r.revision }
func (r *Registry) Dir() string        { return r.dir }

// Err is the load failure message of an unloaded registry.
func (r *Registry) Err() string { return r.err }

// Classifier returns the model, or nil when unloaded.
func (r *Registry) Classifier() model.Classifier { return r.classifier }

// Crops returns the crop label encoder, or nil when unloaded.
func (r *Registry) Crops() *LabelEncoder { return r.crops }

// Soils returns the soil type encoder, or nil when unloaded or on RevisionBasic.
func (r *Registry) Soils() *LabelEncoder { return r.soils }
