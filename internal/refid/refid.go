// Package refid generates the short human-facing reference codes handed
// back to form submitters (QT..., BK..., TRK..., APP..., TKT..., SR...).
package refid

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Generator produces codes of the form PREFIX followed by six digits.
// The suffix is random rather than clock-derived, so two submissions in
// the same millisecond cannot collide by construction; the unique column
// in the store is still the final arbiter and callers regenerate on a
// duplicate-key insert.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand allows tests to supply a deterministic source.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

func (g *Generator) Generate(prefix string) string {
	g.mu.Lock()
	n := g.rnd.Intn(1000000)
	g.mu.Unlock()
	return fmt.Sprintf("%s%06d", prefix, n)
}
