package predict

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"croprecd/pkg/types"
)

// outcome is what the model produced for one feature vector.
type outcome struct {
	crop       string
	confidence float64
	dist       []types.ClassProbability
}

// result renders o for in. Each call gets its own distribution, inserted
// highest probability first.
func (o outcome) result(in types.Input, withDist bool) types.PredictionResult {
	res := types.PredictionResult{
		PredictedCrop:   o.crop,
		Confidence:      o.confidence,
		InputParameters: in.Parameters(),
	}
	if withDist && o.dist != nil {
		res.AllProbabilities = types.NewDistribution(o.dist)
	}
	return res
}

// outcomeCache memoizes outcomes by encoded feature vector. Entries never go
// stale because the registry is immutable. A nil cache is a no-op.
type outcomeCache struct {
	c *lru.Cache[string, outcome]
}

func newOutcomeCache(size int) *outcomeCache {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[string, outcome](size)
	if err != nil {
		return nil
	}
	return &outcomeCache{c: c}
}

func (oc *outcomeCache) get(key string) (outcome, bool) {
	if oc == nil {
		return outcome{}, false
	}
	o, ok := oc.c.Get(key)
	if ok {
		cacheLookups.WithLabelValues("hit").Inc()
	} else {
		cacheLookups.WithLabelValues("miss").Inc()
	}
	return o, ok
}

func (oc *outcomeCache) add(key string, o outcome) {
	if oc == nil {
		return
	}
	oc.c.Add(key, o)
}

func (oc *outcomeCache) len() int {
	if oc == nil {
		return 0
	}
	return oc.c.Len()
}

// vectorKey renders features exactly, so only identical vectors share a key.
func vectorKey(features []float64) string {
	var b strings.Builder
	for i, f := range features {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return b.String()
}
