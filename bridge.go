package glwindow

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/ignite-laboratories/glwindow/thread"
)

func (r *Registry) callbacks() Callbacks {
	return Callbacks{
		Size:        r.onSize,
		Framebuffer: r.onFramebuffer,
		Debug:       r.onDebug,
	}
}

func (r *Registry) onSize(handle Handle, width, height int) {
	w := r.Lookup(handle)
	if w == nil {
		return
	}
	w.mutex.Lock()
	w.width = width
	w.height = height
	w.mutex.Unlock()
}

// onFramebuffer recomputes the projection and updates the viewport.
//
// The viewport can only be set from a thread the context may be bound on. When
// the context is bound elsewhere the size is parked and SyncViewport applies it
// from the owning thread.
func (r *Registry) onFramebuffer(handle Handle, width, height int) {
	w := r.Lookup(handle)
	if w == nil || width <= 0 || height <= 0 {
		return
	}
	caller := thread.Current()
	r.mutex.Lock()
	if !w.valid() {
		r.mutex.Unlock()
		return
	}
	w.mutex.Lock()
	w.projection = perspective(width, height)
	w.mutex.Unlock()
	if w.bound != thread.None && w.bound != caller {
		w.mutex.Lock()
		w.pending = &std.XY[int]{X: width, Y: height}
		id := w.id
		w.mutex.Unlock()
		bound := w.bound
		r.mutex.Unlock()
		core.Verbosef(ModuleName, "[%d] viewport deferred to thread %v\n", id, bound)
		return
	}

	previous := r.CurrentContext()
	if err := r.setCurrent(w, caller); err != nil {
		r.mutex.Unlock()
		core.Verbosef(ModuleName, "[%d] viewport update failed: %v\n", w.ID(), err)
		return
	}
	w.mutex.Lock()
	w.pending = nil
	w.mutex.Unlock()
	r.mutex.Unlock()

	r.platform.Viewport(0, 0, width, height)

	r.mutex.Lock()
	if err := r.setCurrent(previous, caller); err != nil {
		core.Verbosef(ModuleName, "[%d] could not restore context after viewport update: %v\n", w.ID(), err)
	}
	r.mutex.Unlock()
}

// SyncViewport applies a framebuffer size that arrived while the context was
// bound on another thread. It must be called with the context current on the
// calling thread and reports whether a viewport change was applied.
func (w *Window) SyncViewport() (bool, error) {
	if w.registry == nil {
		return false, ErrInvalidWindow
	}
	caller := thread.Current()

	w.registry.mutex.Lock()
	if w.bound != caller {
		bound := w.bound
		w.registry.mutex.Unlock()
		return false, &NotOnBoundThreadError{Calling: caller, Bound: bound}
	}
	w.mutex.Lock()
	pending := w.pending
	w.pending = nil
	w.mutex.Unlock()
	w.registry.mutex.Unlock()

	if pending == nil {
		return false, nil
	}
	w.registry.platform.Viewport(0, 0, pending.X, pending.Y)
	return true, nil
}

func (r *Registry) onDebug(handle Handle, message DebugMessage) {
	w := r.Lookup(handle)
	if w == nil {
		core.Verbosef(ModuleName, "[unknown] %s %s %s (%d): %s\n",
			message.Source, message.Type, message.Severity, message.ID, message.Message)
		return
	}
	core.Verbosef(ModuleName, "[%d] %q %s %s %s (%d): %s\n", w.ID(), w.Title(),
		message.Source, message.Type, message.Severity, message.ID, message.Message)
}
