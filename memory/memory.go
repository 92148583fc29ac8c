package memory

import (
	"sync"

	"github.com/meikuraledutech/flow"
)

// Store implements flow.Store in process memory. It is safe for concurrent
// use; every method works on copies so callers never share slices with it.
type Store struct {
	mu     sync.RWMutex
	graphs map[string]*flow.Graph
	order  []string
}

// New creates an empty Store.
func New() *Store {
	return &Store{graphs: make(map[string]*flow.Graph)}
}

var _ flow.Store = (*Store)(nil)
