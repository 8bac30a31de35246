package pricing

import (
	"math/rand"
	"sync"
)

var _ Rand = (*LockedRand)(nil)

// LockedRand protege un *rand.Rand con un mutex. *rand.Rand no es seguro
// para uso concurrente y la misma fuente alimenta al simulador diario y a
// las peticiones de tendencia, que Fiber atiende en goroutines distintas.
type LockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand crea la fuente con la semilla dada.
func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{rnd: rand.New(rand.NewSource(seed))}
}

// Float64 devuelve un valor uniforme en [0, 1).
func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}
