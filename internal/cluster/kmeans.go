package cluster

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrTooFewDocuments reports that the corpus is smaller than the requested
// cluster count.
var ErrTooFewDocuments = errors.New("fewer documents than clusters")

// Config controls a k-means run.
type Config struct {
	K       int
	MaxIter int
	Seed    int64
}

// Result holds the fitted model.
type Result struct {
	Centroids  [][]float64
	Labels     []int
	Iterations int
}

// Run clusters the rows into cfg.K groups using k-means with k-means++
// seeding. Identical rows, config, and seed produce identical results.
func Run(rows [][]float64, cfg Config) (*Result, error) {
	if cfg.K <= 0 {
		return nil, fmt.Errorf("cluster count must be positive, got %d", cfg.K)
	}
	if len(rows) < cfg.K {
		return nil, fmt.Errorf("%w: %d documents, k=%d", ErrTooFewDocuments, len(rows), cfg.K)
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 100
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	centroids := seedPlusPlus(rows, cfg.K, rng)

	labels := make([]int, len(rows))
	for i := range labels {
		labels[i] = -1
	}

	iterations := 0
	for ; iterations < cfg.MaxIter; iterations++ {
		changed := assign(rows, centroids, labels)
		if !changed {
			break
		}
		recompute(rows, centroids, labels)
	}

	return &Result{Centroids: centroids, Labels: labels, Iterations: iterations}, nil
}

// seedPlusPlus picks initial centroids: the first uniformly, the rest with
// probability proportional to squared distance from the nearest chosen one.
func seedPlusPlus(rows [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(rows[rng.Intn(len(rows))]))

	dist := make([]float64, len(rows))
	for len(centroids) < k {
		total := 0.0
		for i, row := range rows {
			best := sqDist(row, centroids[0])
			for _, c := range centroids[1:] {
				if d := sqDist(row, c); d < best {
					best = d
				}
			}
			dist[i] = best
			total += best
		}

		if total == 0 {
			// All remaining points coincide with a centroid.
			centroids = append(centroids, clone(rows[rng.Intn(len(rows))]))
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		chosen := len(rows) - 1
		for i, d := range dist {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, clone(rows[chosen]))
	}

	return centroids
}

func assign(rows, centroids [][]float64, labels []int) bool {
	changed := false
	for i, row := range rows {
		best := 0
		bestDist := sqDist(row, centroids[0])
		for j := 1; j < len(centroids); j++ {
			if d := sqDist(row, centroids[j]); d < bestDist {
				bestDist = d
				best = j
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}
	return changed
}

func recompute(rows, centroids [][]float64, labels []int) {
	dims := len(centroids[0])
	counts := make([]int, len(centroids))

	for j := range centroids {
		centroids[j] = make([]float64, dims)
	}
	for i, row := range rows {
		counts[labels[i]]++
		for d, val := range row {
			centroids[labels[i]][d] += val
		}
	}

	for j, count := range counts {
		if count == 0 {
			continue
		}
		for d := range centroids[j] {
			centroids[j][d] /= float64(count)
		}
	}

	// Reseed empty clusters on the point farthest from its current centroid.
	for j, count := range counts {
		if count == 0 {
			centroids[j] = clone(rows[farthest(rows, centroids, labels)])
		}
	}
}

func farthest(rows, centroids [][]float64, labels []int) int {
	worst, worstDist := 0, -1.0
	for i, row := range rows {
		if d := sqDist(row, centroids[labels[i]]); d > worstDist {
			worstDist = d
			worst = i
		}
	}
	return worst
}

// TopTerms returns the n highest-weight vocabulary terms of a centroid,
// descending by weight with alphabetical tie-break. Zero-weight terms are
// skipped.
func TopTerms(centroid []float64, vocabulary []string, n int) []string {
	type weighted struct {
		term   string
		weight float64
	}

	pairs := make([]weighted, 0, len(centroid))
	for i, w := range centroid {
		if w > 0 && i < len(vocabulary) {
			pairs = append(pairs, weighted{term: vocabulary[i], weight: w})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].weight == pairs[j].weight {
			return pairs[i].term < pairs[j].term
		}
		return pairs[i].weight > pairs[j].weight
	})

	if n > len(pairs) {
		n = len(pairs)
	}
	terms := make([]string, 0, n)
	for _, p := range pairs[:n] {
		terms = append(terms, p.term)
	}
	return terms
}

func sqDist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

func clone(row []float64) []float64 {
	out := make([]float64, len(row))
	copy(out, row)
	return out
}
