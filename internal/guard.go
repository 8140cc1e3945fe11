package internal

import (
	"errors"
	"fmt"
	"sync"
)

// ErrPoisoned is returned by Guard.Do once a previous callback panicked while holding the lock.
var ErrPoisoned = errors.New("storage poisoned by a panic while the lock was held")

// PoisonedError carries the value of the panic that poisoned the guard.
type PoisonedError struct {
	Value any
}

func (e *PoisonedError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPoisoned.Error(), e.Value)
}

func (e *PoisonedError) Unwrap() error {
	return ErrPoisoned
}

// Guard is a mutex-guarded value. A panic inside Do poisons it for good.
type Guard[T any] struct {
	mu     sync.Mutex
	v      T
	poison *PoisonedError
}

func NewGuard[T any](v T) *Guard[T] {
	return &Guard[T]{
		mu: sync.Mutex{},
		v:  v,
	}
}

// Do runs f with exclusive access to the value.
//
// If f panics, the guard records the panic, releases the lock and re-panics.
// Every later call returns a *PoisonedError without running f.
func (g *Guard[T]) Do(f func(v *T)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.poison != nil {
		return g.poison
	}

	completed := false
	defer func() {
		if completed {
			return
		}
		r := recover()
		g.poison = &PoisonedError{Value: r}
		// nil means runtime.Goexit, which must keep unwinding on its own.
		if r != nil {
			panic(r)
		}
	}()

	f(&g.v)
	completed = true

	return nil
}

func (g *Guard[T]) Poisoned() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.poison != nil
}
