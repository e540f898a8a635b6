// Package random produces pseudo-random integer partitions.
package random

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
)

// Total is the value every partition sums to.
const Total = 100

var ErrInvalidCount = errors.New("count must be between 1 and 100")

// Generator splits Total into random positive parts. The zero value uses the
// package-level random source.
type Generator struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewGenerator returns a Generator backed by r. A nil r uses the global source.
func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{r: r}
}

func (g *Generator) perm(n int) []int {
	if g.r == nil {
		return rand.Perm(n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.Perm(n)
}

// Ints returns n positive integers that sum to exactly Total.
//
// It picks n-1 distinct cut points in (0, Total) and returns the gaps between
// consecutive cuts, so every part is at least 1.
func (g *Generator) Ints(n int) ([]int, error) {
	if n < 1 || n > Total {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	cuts := make([]int, 0, n+1)
	cuts = append(cuts, 0)
	for _, p := range g.perm(Total - 1)[:n-1] {
		cuts = append(cuts, p+1)
	}
	cuts = append(cuts, Total)
	sort.Ints(cuts)

	parts := make([]int, n)
	for i := 0; i < n; i++ {
		parts[i] = cuts[i+1] - cuts[i]
	}
	return parts, nil
}

var defaultGenerator = &Generator{}

// Ints partitions Total into n positive integers using the global source.
func Ints(n int) ([]int, error) {
	return defaultGenerator.Ints(n)
}
