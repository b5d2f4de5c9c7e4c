package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// LabelEncoder maps categorical values to the integer class ids a model was
// trained on. The id of a class is its index in the classes list.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

type encoderFile struct {
	Classes []string `json:"classes"`
}

// NewLabelEncoder builds an encoder over classes, which must be non-empty and unique.
func NewLabelEncoder(classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, errors.New("encoder has no classes")
	}
	idx := make(map[string]int, len(classes))
	for i, c := range classes {
		if _, dup := idx[c]; dup {
			return nil, fmt.Errorf("encoder has duplicate class %q", c)
		}
		idx[c] = i
	}
	return &LabelEncoder{classes: append([]string(nil), classes...), index: idx}, nil
}

// DecodeLabelEncoder reads {"classes": [...]} from r.
func DecodeLabelEncoder(r io.Reader) (*LabelEncoder, error) {
	var f encoderFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode encoder: %w", err)
	}
	return NewLabelEncoder(f.Classes)
}

// LoadLabelEncoder reads an encoder artifact from path.
func LoadLabelEncoder(path string) (*LabelEncoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeLabelEncoder(f)
}

// Transform returns the class id of value.
func (e *LabelEncoder) Transform(value string) (int, bool) {
	id, ok := e.index[value]
	return id, ok
}

// InverseTransform returns the label for a class id.
func (e *LabelEncoder) InverseTransform(id int) (string, error) {
	if id < 0 || id >= len(e.classes) {
		return "", fmt.Errorf("class id %d out of range [0, %d)", id, len(e.classes))
	}
	return e.classes[id], nil
}

// Classes returns the labels in class id order.
func (e *LabelEncoder) Classes() []string { return append([]string(nil), e.classes...) }

// Sorted returns the labels in lexical order.
func (e *LabelEncoder) Sorted() []string {
	out := e.Classes()
	sort.Strings(out)
	return out
}

func (e *LabelEncoder) Len() int { return len(e.classes) }
