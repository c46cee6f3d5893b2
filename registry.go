package glwindow

import (
	"sync"

	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/glwindow/thread"
)

// Registry tracks the live windows of one platform and which window is current
// on which thread.
//
// Build it from the main goroutine after runtime.LockOSThread; the calling thread
// becomes the registry's main thread for its whole lifetime.
type Registry struct {
	// Debug requests debug contexts and routes their messages to the log.
	Debug bool

	platform Platform
	main     thread.ID

	mutex   sync.Mutex
	windows []*Window
	nextID  int

	// handles resolves platform callbacks to windows. It has its own lock because
	// debug callbacks can fire from inside graphics calls made while mutex is held.
	handleMutex sync.RWMutex
	handles     map[Handle]*Window

	fatalf func(format string, args ...any)
}

// NewRegistry captures the calling thread as the main thread.
func NewRegistry(platform Platform) *Registry {
	r := &Registry{
		platform: platform,
		main:     thread.Current(),
		handles:  make(map[Handle]*Window),
	}
	r.fatalf = func(format string, args ...any) {
		core.Fatalf(ModuleName, format, args...)
	}
	core.Verbosef(ModuleName, "registry created on main thread %v\n", r.main)
	return r
}

// Platform returns the platform the registry drives.
func (r *Registry) Platform() Platform {
	return r.platform
}

// MainThread returns the identity captured by NewRegistry.
func (r *Registry) MainThread() thread.ID {
	return r.main
}

// ActiveWindows returns the live windows in creation order.
func (r *Registry) ActiveWindows() []*Window {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	out := make([]*Window, len(r.windows))
	copy(out, r.windows)
	return out
}

// Lookup resolves a native handle to the window that owns it.
func (r *Registry) Lookup(handle Handle) *Window {
	if handle == nil {
		return nil
	}
	r.handleMutex.RLock()
	defer r.handleMutex.RUnlock()
	return r.handles[handle]
}

func (r *Registry) associate(handle Handle, w *Window) {
	r.handleMutex.Lock()
	r.handles[handle] = w
	r.handleMutex.Unlock()
}

func (r *Registry) dissociate(handle Handle, w *Window) {
	r.handleMutex.Lock()
	if r.handles[handle] == w {
		delete(r.handles, handle)
	}
	r.handleMutex.Unlock()
}

// CurrentContext returns the window whose context is current on the calling thread.
func (r *Registry) CurrentContext() *Window {
	return r.Lookup(r.platform.CurrentContext())
}

// SetCurrentContext binds w's context on the calling thread, or detaches the
// current context when w is nil.
func (r *Registry) SetCurrentContext(w *Window) error {
	caller := thread.Current()

	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.setCurrent(w, caller)
}

// setCurrent is the only place contexts change hands. Callers hold mutex.
func (r *Registry) setCurrent(w *Window, caller thread.ID) error {
	if w != nil {
		if !w.valid() {
			return ErrInvalidWindow
		}
		if w.bound != thread.None && w.bound != caller {
			return &NotOnBoundThreadError{Calling: caller, Bound: w.bound}
		}
	}

	previous := r.CurrentContext()
	if w != nil && previous == w && w.bound == caller {
		return nil
	}
	if previous != nil {
		previous.bound = thread.None
	}

	if w == nil {
		return r.platform.MakeContextCurrent(nil, nil)
	}
	if err := r.platform.MakeContextCurrent(w.handle, w.context); err != nil {
		if previous != nil {
			previous.bound = caller
		}
		return err
	}
	w.bound = caller
	return nil
}

func (r *Registry) register(w *Window) {
	w.mutex.Lock()
	w.id = r.nextID
	w.mutex.Unlock()
	r.nextID++
	r.windows = append(r.windows, w)
}

func (r *Registry) unregister(w *Window) {
	for i, candidate := range r.windows {
		if candidate == w {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			return
		}
	}
}

// PollEvents pumps platform events, delivering resize and close notifications.
func (r *Registry) PollEvents() error {
	if err := r.CheckMainThread(); err != nil {
		return err
	}
	r.platform.PollEvents()
	return nil
}

// Terminate closes every live window and shuts the platform down.
func (r *Registry) Terminate() error {
	if err := r.CheckMainThread(); err != nil {
		return err
	}
	for _, w := range r.ActiveWindows() {
		id := w.ID()
		if err := w.Close(); err != nil {
			return err
		}
		core.Verbosef(ModuleName, "window [%d] closed at termination\n", id)
	}
	r.platform.Terminate()
	core.Verbosef(ModuleName, "platform terminated\n")
	return nil
}
