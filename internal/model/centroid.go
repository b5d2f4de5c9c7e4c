package model

import "math"

// NearestCentroid assigns the class whose centroid is closest in Euclidean
// distance. It has no probability estimate.
type NearestCentroid struct {
	meta
	centroids [][]float64
}

func (c *NearestCentroid) Predict(features []float64) (int, error) {
	if err := c.checkWidth(features); err != nil {
		return 0, err
	}
	best, bestDist := 0, math.Inf(1)
	for i, centroid := range c.centroids {
		var d float64
		for j, v := range centroid {
			diff := features[j] - v
			d += diff * diff
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}
