package inflight

import (
	"context"
	"sync"
)

// MemoryGuard флаги в памяти процесса
type MemoryGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewMemoryGuard создает guard в памяти
func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{active: make(map[string]struct{})}
}

// Acquire ставит флаг по ключу или возвращает ErrCommitInProgress
func (g *MemoryGuard) Acquire(_ context.Context, key string) (func(), error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return nil, ErrCommitInProgress
	}
	g.active[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}, nil
}

// Busy сообщает, выставлен ли флаг по ключу
func (g *MemoryGuard) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.active[key]
	return busy
}
