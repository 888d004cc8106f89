package random

import (
	"math/rand/v2"
	"sync"
)

// Source es la fuente aleatoria inyectable que usan los generadores.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// lockedSource serializa el acceso: *rand.Rand no es seguro entre goroutines.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New devuelve una fuente determinística para seed != 0 y una sin semilla para seed == 0.
func New(seed uint64) Source {
	if seed == 0 {
		return &lockedSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Pick elige un elemento al azar; ok es false si items está vacío.
func Pick[T any](src Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[src.IntN(len(items))], true
}
