// Package revalidate carries the stale-route signal from the data layer
// to whatever renders or caches the public pages. Repositories announce
// which routes a write affected; listeners decide what to do about it.
package revalidate

import "sync"

// Listener receives the routes invalidated by a write.
type Listener func(paths []string)

// Notifier fans out invalidated route paths to registered listeners.
// The zero value is ready to use; a nil *Notifier drops all signals.
type Notifier struct {
	mu        sync.RWMutex
	listeners []Listener
}

// Subscribe registers a listener for future invalidations.
func (n *Notifier) Subscribe(l Listener) {
	if n == nil || l == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, l)
}

// Invalidate announces that the given route paths are stale.
func (n *Notifier) Invalidate(paths ...string) {
	if n == nil || len(paths) == 0 {
		return
	}
	n.mu.RLock()
	listeners := make([]Listener, len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.RUnlock()

	for _, l := range listeners {
		l(paths)
	}
}
