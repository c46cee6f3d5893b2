package glwindow

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/glwindow/thread"
)

// Move transfers src's window and context into a new Window, leaving src invalid.
func (r *Registry) Move(src *Window) (*Window, error) {
	dst := &Window{registry: r, id: -1}
	if err := dst.Assign(src); err != nil {
		return nil, err
	}
	return dst, nil
}

// Assign transfers src's window and context into w. If w still owns a window it
// is closed first. src is left invalid with ID -1; w takes over src's ID and its
// place in the registry. Must be called on the main thread.
func (w *Window) Assign(src *Window) error {
	if src == nil || src.registry == nil {
		return ErrInvalidWindow
	}
	r := src.registry
	if w.registry == nil {
		w.registry = r
	}
	if w.registry != r {
		return ErrInvalidWindow
	}
	caller := thread.Current()
	if err := r.checkMain(caller); err != nil {
		return err
	}
	if w == src {
		return nil
	}
	if !src.IsValid() {
		return ErrInvalidWindow
	}

	if w.IsValid() {
		id := w.ID()
		if err := w.Close(); err != nil {
			return err
		}
		core.Verbosef(ModuleName, "window [%d] destroyed by assignment\n", id)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !src.valid() {
		return ErrInvalidWindow
	}

	w.handle, src.handle = src.handle, nil
	w.context, src.context = src.context, nil
	w.bound, src.bound = src.bound, thread.None

	src.mutex.Lock()
	w.mutex.Lock()
	w.id, src.id = src.id, -1
	w.title = src.title
	w.width, w.height = src.width, src.height
	w.projection, w.view = src.projection, src.view
	w.pending, src.pending = src.pending, nil
	id := w.id
	w.mutex.Unlock()
	src.mutex.Unlock()

	r.associate(w.handle, w)
	for i, candidate := range r.windows {
		if candidate == src {
			r.windows[i] = w
		}
	}

	core.Verbosef(ModuleName, "window [%d] moved\n", id)
	return nil
}
