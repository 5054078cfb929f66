// Package catalog produces the mock product dataset and runs the
// filter → sort → paginate pipeline over it.
package catalog

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"inventory_dashboard/internal/models"
)

const (
	DefaultSize = 100

	maxPrice = 100.0
	maxStock = 50
)

// Generator builds a fresh product set on every call. Only price and stock
// are random; id, name and category depend on the index alone.
type Generator struct {
	mu   sync.Mutex
	rnd  *rand.Rand
	size int
}

// NewGenerator returns a generator of size records. A zero seed seeds from
// the clock; any other seed makes the random columns reproducible.
func NewGenerator(size int, seed int64) *Generator {
	if size <= 0 {
		size = DefaultSize
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd:  rand.New(rand.NewSource(seed)),
		size: size,
	}
}

// Size returns the number of records produced per call.
func (g *Generator) Size() int { return g.size }

// Generate returns a new slice of products with ids 1..Size().
func (g *Generator) Generate() []models.Product {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]models.Product, g.size)
	for i := range out {
		id := i + 1
		out[i] = models.Product{
			ID:       id,
			Name:     fmt.Sprintf("Product %d", id),
			Price:    g.rnd.Float64() * maxPrice,
			Category: models.Categories[i%len(models.Categories)],
			Stock:    g.rnd.Intn(maxStock),
		}
	}
	return out
}
