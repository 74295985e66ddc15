// Package gen contains the per-entity record generators. Every generator is
// a pure function over an explicitly passed *rand.Rand; nothing in this
// package touches the process-global random source, so callers control
// reproducibility by controlling the stream.
package gen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dariyanisacc/healthcare-sql-project/internal/catalog"
)

func choice[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// sample draws k distinct elements from pool in random order.
func sample[T any](rng *rand.Rand, pool []T, k int) []T {
	perm := rng.Perm(len(pool))
	out := make([]T, k)
	for i := 0; i < k; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}

// weighted returns an index into weights proportional to its value.
func weighted(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

// gaussClamp draws from N(mu, sigma) and clamps to [lo, hi].
func gaussClamp(rng *rand.Rand, mu, sigma, lo, hi float64) float64 {
	v := rng.NormFloat64()*sigma + mu
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// round2 matches the two-decimal rounding used for lab values.
func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// intBetween returns a random int in [lo, hi] inclusive.
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// timeBetween returns a random instant in [start, end).
func timeBetween(rng *rand.Rand, start, end time.Time) time.Time {
	span := end.Sub(start)
	return start.Add(time.Duration(rng.Int63n(int64(span))))
}

func digits(rng *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}

func phone(rng *rand.Rand) string {
	return fmt.Sprintf("(%03d) %03d-%04d", 200+rng.Intn(800), rng.Intn(1000), rng.Intn(10000))
}

func firstNameAny(rng *rand.Rand) string {
	if rng.Intn(2) == 0 {
		return choice(rng, catalog.FirstNamesMale)
	}
	return choice(rng, catalog.FirstNamesFemale)
}

func streetAddress(rng *rand.Rand) string {
	return fmt.Sprintf("%d %s %s", 1+rng.Intn(9999), choice(rng, catalog.LastNames), choice(rng, catalog.StreetSuffixes))
}

// days converts a fractional day count to a duration.
func days(d float64) time.Duration {
	return time.Duration(d * 24 * float64(time.Hour))
}
