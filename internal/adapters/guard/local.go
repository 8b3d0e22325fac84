// Package guard prevents two tips for the same tweet from running at once.
package guard

import (
	"context"
	"sync"

	"tweet-tipping/internal/domain"
)

// Local guards keys within one process.
type Local struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocal() *Local {
	return &Local{held: make(map[string]struct{})}
}

// Acquire takes key or fails with domain.ErrTipInProgress. The returned
// release func frees the key and is safe to call more than once.
func (g *Local) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, domain.ErrTipInProgress
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
