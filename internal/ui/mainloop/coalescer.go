package mainloop

import (
	"sync"

	"github.com/jwijenbergh/puregotk/v4/glib"
)

// Coalescer merges bursts of same-key main-loop tasks. Config reloads
// arrive on the fsnotify watcher goroutine and can fire several times for
// one file save; posting the resulting reconfigure through the coalescer
// runs only the latest one on the GTK loop.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that schedules work through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		post:      post,
	}
}

// NewIdleCoalescer creates a coalescer that schedules work as GLib idle
// callbacks on the GTK main loop.
func NewIdleCoalescer() *Coalescer {
	return NewCoalescer(postIdle)
}

// postIdle schedules fn once on the GTK main loop.
func postIdle(fn func()) {
	var cb glib.SourceFunc
	cb = glib.SourceFunc(func(_ uintptr) bool {
		fn()
		// Keep cb reachable until the source has fired.
		_ = cb
		return false
	})
	glib.IdleAdd(&cb, 0)
}

// Post schedules fn under key, replacing any not-yet-run fn with the same
// key.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() {
		c.mu.Lock()
		if c.destroyed {
			delete(c.pending, key)
			delete(c.callbacks, key)
			c.mu.Unlock()
			return
		}
		fn := c.callbacks[key]
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()

		if fn != nil {
			fn()
		}
	})
}

// Destroy drops all pending work and rejects future posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
