// Package lazy provides a small memoizing proxy for deferred singleton
// construction. The wrapped constructor runs at most once, on first Get;
// later calls return the cached value (or the cached construction error).
package lazy

import "sync"

// Proxy defers construction of a value until it is first requested.
type Proxy[T any] struct {
	once sync.Once
	init func() (T, error)

	value T
	err   error
}

// New wraps a constructor in a Proxy. The constructor is not invoked here.
func New[T any](init func() (T, error)) *Proxy[T] {
	return &Proxy[T]{init: init}
}

// Get returns the constructed value, invoking the constructor on first use.
// A construction error is cached and returned on every subsequent call.
func (p *Proxy[T]) Get() (T, error) {
	p.once.Do(func() {
		p.value, p.err = p.init()
		p.init = nil
	})
	return p.value, p.err
}

// MustGet returns the constructed value and panics on construction error.
func (p *Proxy[T]) MustGet() T {
	v, err := p.Get()
	if err != nil {
		panic(err)
	}
	return v
}
