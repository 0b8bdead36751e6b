package dataset

import (
	"fmt"
	"math/rand"

	"github.com/nkiran-dev/skycore/point"
)

// Synthetic errors.
var (
	// ErrTooFewVertices is returned when n is below the minimum a
	// generator requires.
	ErrTooFewVertices = fmt.Errorf("dataset: n must be at least 1")
	// ErrInvalidProbability is returned when an edge probability falls
	// outside [0,1].
	ErrInvalidProbability = fmt.Errorf("dataset: probability must be in [0,1]")
)

// RandomSparse samples an Erdos-Renyi-style undirected graph over n
// vertices with independent edge probability p, using a seeded RNG for
// reproducible fixtures. Every unordered pair is visited exactly once,
// in ascending (i, j) order, so the resulting edge set is deterministic
// for a fixed seed regardless of caller.
func RandomSparse(n int, p float64, seed int64) ([][]int, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}

	rng := rand.New(rand.NewSource(seed))
	edges := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() <= p {
				edges[i] = append(edges[i], j)
				edges[j] = append(edges[j], i)
			}
		}
	}
	return edges, nil
}

// RandomLabels draws n labels of the given dimension, each coordinate
// uniform over [0, maxCoord), from a seeded RNG. correlation selects
// among the three label regimes the original catalogue names:
// "indep" draws each coordinate independently; "corr" sets every
// coordinate to a single shared draw (perfectly correlated, unscaled);
// "anticorr" sets even-indexed coordinates to a single draw and
// odd-indexed coordinates to maxCoord-1 minus that draw.
func RandomLabels(n, dimension int, maxCoord int, correlation string, seed int64) []point.Label {
	rng := rand.New(rand.NewSource(seed))
	labels := make([]point.Label, n)
	for i := 0; i < n; i++ {
		label := make(point.Label, dimension)
		switch correlation {
		case "corr":
			base := rng.Intn(maxCoord)
			for d := range label {
				label[d] = base
			}
		case "anticorr":
			base := rng.Intn(maxCoord)
			for d := range label {
				if d%2 == 0 {
					label[d] = base
				} else {
					label[d] = maxCoord - 1 - base
				}
			}
		default:
			for d := range label {
				label[d] = rng.Intn(maxCoord)
			}
		}
		labels[i] = label
	}
	return labels
}
