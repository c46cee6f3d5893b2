package glwindow

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/ignite-laboratories/glwindow/thread"
)

// Window owns one native window and its rendering context.
//
// A Window is only handed out by pointer and must not be copied; ownership moves
// with Registry.Move and Window.Assign. The zero Window is invalid.
type Window struct {
	registry *Registry

	// guarded by registry.mutex
	handle  Handle
	context Context
	bound   thread.ID

	mutex      sync.Mutex
	id         int
	title      string
	width      int
	height     int
	projection mgl32.Mat4
	view       mgl32.Mat4
	pending    *std.XY[int]
}

// CreateWindow builds a window and its context on the main thread.
//
// A nil size uses DefaultSize, a nil monitor opens a windowed window and a nil
// share creates an unshared context. The context that was current on the calling
// thread before the call is current again afterwards.
func (r *Registry) CreateWindow(size *std.XY[int], title string, monitor Monitor, share *Window, hints Hints) (*Window, error) {
	if size == nil {
		size = &DefaultSize
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, ErrInvalidSize
	}
	caller := thread.Current()
	if err := r.checkMain(caller); err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	previous := r.CurrentContext()

	w := &Window{
		registry:   r,
		id:         -1,
		title:      title,
		width:      size.X,
		height:     size.Y,
		projection: perspective(size.X, size.Y),
		view:       mgl32.Ident4(),
	}

	var s *Share
	if share != nil {
		if share.registry != r || !share.valid() {
			core.Verbosef(ModuleName, "cannot share %q with an invalid window\n", title)
			return nil, ErrInvalidWindow
		}
		s = &Share{Handle: share.handle, Context: share.context}
	}

	r.platform.SetHints(hints, r.Debug)
	handle, err := r.platform.CreateWindow(size.X, size.Y, title, monitor, s)
	if err != nil {
		core.Verbosef(ModuleName, "could not create window %q: %v\n", title, err)
		return nil, &CreationError{Stage: "window", Title: title, Err: err}
	}

	// The handle must resolve to w before the context becomes current.
	r.associate(handle, w)
	w.handle = handle

	context, err := r.platform.CreateContext(handle, s)
	if err != nil {
		w.abandon()
		core.Verbosef(ModuleName, "could not create context for %q: %v\n", title, err)
		return nil, &CreationError{Stage: "context", Title: title, Err: err}
	}
	w.context = context

	if err := r.setCurrent(w, caller); err != nil {
		w.abandon()
		return nil, &CreationError{Stage: "bind", Title: title, Err: err}
	}
	if err := r.platform.LoadExtensions(handle, context); err != nil {
		if rerr := r.setCurrent(previous, caller); rerr != nil {
			core.Verbosef(ModuleName, "could not restore context after failed creation: %v\n", rerr)
		}
		w.abandon()
		core.Verbosef(ModuleName, "could not load extensions for %q: %v\n", title, err)
		return nil, &CreationError{Stage: "extensions", Title: title, Err: err}
	}

	r.platform.SetCallbacks(handle, context, r.callbacks())
	r.register(w)

	if err := r.setCurrent(previous, caller); err != nil {
		core.Verbosef(ModuleName, "[%d] could not restore previous context: %v\n", w.id, err)
	}

	core.Verbosef(ModuleName, "window [%d] %q created\n", w.id, title)
	return w, nil
}

// abandon releases a partially constructed window. Callers hold registry.mutex.
func (w *Window) abandon() {
	r := w.registry
	if w.context != nil {
		r.platform.DestroyContext(w.handle, w.context)
	}
	if w.handle != nil {
		r.dissociate(w.handle, w)
		r.platform.DestroyWindow(w.handle)
	}
	w.handle = nil
	w.context = nil
	w.bound = thread.None
}

func (w *Window) valid() bool {
	return w.handle != nil && w.context != nil
}

// IsValid reports whether the window still owns a native window and context.
func (w *Window) IsValid() bool {
	if w == nil || w.registry == nil {
		return false
	}
	w.registry.mutex.Lock()
	defer w.registry.mutex.Unlock()
	return w.valid()
}

// Registry returns the registry that created the window.
func (w *Window) Registry() *Registry {
	return w.registry
}

// ID is unique for the life of the registry; moved-from and zero windows report -1.
func (w *Window) ID() int {
	if w.registry == nil {
		return -1
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.id
}

// Title returns the title the window was created with.
func (w *Window) Title() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.title
}

// Width is the window width in screen coordinates.
func (w *Window) Width() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.width
}

// Height is the window height in screen coordinates.
func (w *Window) Height() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.height
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() std.XY[int] {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return std.XY[int]{X: w.width, Y: w.height}
}

// Projection is recomputed whenever the framebuffer is resized.
func (w *Window) Projection() mgl32.Mat4 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.projection
}

// SetProjection replaces the projection until the next framebuffer resize.
func (w *Window) SetProjection(m mgl32.Mat4) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.projection = m
}

// View returns the view matrix, identity until set.
func (w *Window) View() mgl32.Mat4 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.view
}

// SetView replaces the view matrix.
func (w *Window) SetView(m mgl32.Mat4) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.view = m
}

// Handle returns the native window, or nil once the window is invalid.
func (w *Window) Handle() Handle {
	if w.registry == nil {
		return nil
	}
	w.registry.mutex.Lock()
	defer w.registry.mutex.Unlock()
	return w.handle
}

// Context returns the rendering context, or nil once the window is invalid.
func (w *Window) Context() Context {
	if w.registry == nil {
		return nil
	}
	w.registry.mutex.Lock()
	defer w.registry.mutex.Unlock()
	return w.context
}

// BoundThread returns the thread the context is bound on, or thread.None.
func (w *Window) BoundThread() thread.ID {
	if w.registry == nil {
		return thread.None
	}
	w.registry.mutex.Lock()
	defer w.registry.mutex.Unlock()
	return w.bound
}

// MakeCurrent binds this window's context on the calling thread.
func (w *Window) MakeCurrent() error {
	if w.registry == nil {
		return ErrInvalidWindow
	}
	return w.registry.SetCurrentContext(w)
}

// SwapBuffers presents the back buffer. The context must be unbound or bound on
// the calling thread.
func (w *Window) SwapBuffers() error {
	if w.registry == nil {
		return ErrInvalidWindow
	}
	caller := thread.Current()

	w.registry.mutex.Lock()
	if !w.valid() {
		w.registry.mutex.Unlock()
		return ErrInvalidWindow
	}
	if err := w.checkBound(caller); err != nil {
		w.registry.mutex.Unlock()
		return err
	}
	handle := w.handle
	w.registry.mutex.Unlock()

	w.registry.platform.SwapBuffers(handle)
	return nil
}

// ShouldClose reports the platform's close request flag. Invalid windows always
// report true so render loops over them terminate.
func (w *Window) ShouldClose() bool {
	if w.registry == nil {
		return true
	}
	w.registry.mutex.Lock()
	handle := w.handle
	valid := w.valid()
	w.registry.mutex.Unlock()

	if !valid {
		return true
	}
	return w.registry.platform.ShouldClose(handle)
}

// SetShouldClose sets or clears the platform's close request flag.
func (w *Window) SetShouldClose(value bool) {
	if w.registry == nil {
		return
	}
	w.registry.mutex.Lock()
	handle := w.handle
	valid := w.valid()
	w.registry.mutex.Unlock()

	if valid {
		w.registry.platform.SetShouldClose(handle, value)
	}
}

// Close releases the context and native window. It must run on the main thread
// while the context is unbound or bound on the main thread; a context bound on
// the main thread is detached first. Closing an invalid window does nothing.
func (w *Window) Close() error {
	if w.registry == nil {
		return nil
	}
	caller := thread.Current()

	w.registry.mutex.Lock()
	defer w.registry.mutex.Unlock()
	return w.teardown(caller)
}

// Destroy is Close for callers that cannot handle an error: thread misuse at
// teardown corrupts platform state, so it terminates the process instead.
func (w *Window) Destroy() {
	if err := w.Close(); err != nil {
		w.registry.fatalf("cannot destroy window [%d] %q: %v\n", w.ID(), w.Title(), err)
	}
}

// teardown releases w. Callers hold registry.mutex.
func (w *Window) teardown(caller thread.ID) error {
	r := w.registry
	if !w.valid() {
		return nil
	}
	if err := r.checkMain(caller); err != nil {
		return err
	}

	if r.CurrentContext() == w {
		if err := r.setCurrent(nil, caller); err != nil {
			return err
		}
	}
	if err := w.checkBound(caller); err != nil {
		core.Verbosef(ModuleName, "window [%d] %q is bound on thread %v, destroying from thread %v\n", w.ID(), w.Title(), w.bound, caller)
		return err
	}

	w.abandon()
	r.unregister(w)
	core.Verbosef(ModuleName, "window [%d] destroyed\n", w.ID())
	return nil
}
