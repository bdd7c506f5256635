package radial

import "sync"

// ResizeSource is anything that can report its size and notify on change.
type ResizeSource interface {
	Size() Size
	AddResizeListener(fn func(Size)) (remove func())
}

// Window is a ResizeSource driven by its host: an HTTP session posting the
// browser's inner size, or a terminal forwarding resize events.
type Window struct {
	mu        sync.Mutex
	size      Size
	nextID    int
	listeners map[int]func(Size)
}

// NewWindow creates a window with an initial size, which may be zero.
func NewWindow(initial Size) *Window {
	return &Window{
		size:      initial,
		listeners: make(map[int]func(Size)),
	}
}

func (w *Window) Size() Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Resize stores the new size and notifies every registered listener.
// Listeners run outside the lock so they may call back into the window.
func (w *Window) Resize(s Size) {
	w.mu.Lock()
	w.size = s
	fns := make([]func(Size), 0, len(w.listeners))
	for _, fn := range w.listeners {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// AddResizeListener registers fn and returns its removal func.
// Calling remove more than once is harmless.
func (w *Window) AddResizeListener(fn func(Size)) func() {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.listeners, id)
		w.mu.Unlock()
	}
}

// Listeners returns the number of registered listeners.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// Tracker keeps the latest viewport size of a ResizeSource.
// It holds exactly one listener on the source until Close.
type Tracker struct {
	mu     sync.RWMutex
	size   Size
	remove func()
	once   sync.Once
}

// Track measures src and subscribes to its resize events.
func Track(src ResizeSource) *Tracker {
	t := &Tracker{size: src.Size()}
	t.remove = src.AddResizeListener(t.update)
	return t
}

func (t *Tracker) update(s Size) {
	t.mu.Lock()
	t.size = s
	t.mu.Unlock()
}

// Size returns the most recent measurement; zero before the first one.
func (t *Tracker) Size() Size {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Close releases the resize listener. Safe to call repeatedly.
func (t *Tracker) Close() {
	t.once.Do(t.remove)
}
