// Package cluster scores how well a candidate fits a job corpus by k-means
// clustering the stacked feature vectors, with a set-overlap fallback when
// clustering cannot run.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultClusters caps the cluster count; fewer vectors than this
	// shrink k to the vector count.
	DefaultClusters = 3
	// DefaultSeed fixes centroid initialization so repeated runs over the
	// same corpus land in the same clusters.
	DefaultSeed = 42
	// DefaultRestarts is the number of random initializations; the run
	// with the lowest inertia wins.
	DefaultRestarts = 10
	// DefaultMaxIterations bounds Lloyd iterations per restart.
	DefaultMaxIterations = 300
)

var errNoVectors = errors.New("cluster: no vectors to cluster")

// Config carries the k-means parameters. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Clusters      int
	Seed          int64
	Restarts      int
	MaxIterations int
}

func DefaultConfig() Config {
	return Config{
		Clusters:      DefaultClusters,
		Seed:          DefaultSeed,
		Restarts:      DefaultRestarts,
		MaxIterations: DefaultMaxIterations,
	}
}

// standardize centers every column and scales it to unit variance in place,
// mirroring what a standard scaler does before clustering. Zero-variance
// columns are centered only.
func standardize(rows [][]float64) {
	if len(rows) == 0 {
		return
	}
	cols := len(rows[0])
	col := make([]float64, len(rows))
	for c := 0; c < cols; c++ {
		for r := range rows {
			col[r] = rows[r][c]
		}
		mean := stat.Mean(col, nil)
		std := stat.PopStdDev(col, nil)
		for r := range rows {
			rows[r][c] -= mean
			if std > 0 {
				rows[r][c] /= std
			}
		}
	}
}

// kMeans runs seeded Lloyd clustering with restarts and returns the
// assignment of each row for the restart with the lowest inertia.
func kMeans(rows [][]float64, cfg Config) ([]int, float64, error) {
	n := len(rows)
	if n == 0 {
		return nil, 0, errNoVectors
	}
	k := cfg.Clusters
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil, 0, fmt.Errorf("cluster: invalid cluster count %d", cfg.Clusters)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	bestInertia := math.Inf(1)
	var bestLabels []int
	for restart := 0; restart < cfg.Restarts; restart++ {
		labels, inertia := lloyd(rows, k, cfg.MaxIterations, rng)
		if inertia < bestInertia {
			bestInertia = inertia
			bestLabels = labels
		}
	}
	return bestLabels, bestInertia, nil
}

func lloyd(rows [][]float64, k, maxIter int, rng *rand.Rand) ([]int, float64) {
	n, dim := len(rows), len(rows[0])

	// Initialize centroids from k distinct rows.
	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(n)[:k] {
		centroids[i] = append([]float64(nil), rows[idx]...)
	}

	labels := make([]int, n)
	counts := make([]int, k)
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, row := range rows {
			best := nearestCentroid(row, centroids)
			if labels[i] != best || iter == 0 {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		for c := range centroids {
			for d := 0; d < dim; d++ {
				centroids[c][d] = 0
			}
			counts[c] = 0
		}
		for i, row := range rows {
			floats.Add(centroids[labels[i]], row)
			counts[labels[i]]++
		}
		for c := range centroids {
			if counts[c] == 0 {
				// Re-seed an empty cluster from a random row.
				copy(centroids[c], rows[rng.Intn(n)])
				continue
			}
			floats.Scale(1/float64(counts[c]), centroids[c])
		}
	}

	inertia := 0.0
	for i, row := range rows {
		d := floats.Distance(row, centroids[labels[i]], 2)
		inertia += d * d
	}
	return labels, inertia
}

func nearestCentroid(row []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		if d := floats.Distance(row, centroid, 2); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
