package glwindow

import "github.com/ignite-laboratories/glwindow/thread"

// CalledOnMainThread reports whether the calling thread is the registry's main thread.
func (r *Registry) CalledOnMainThread() bool {
	return thread.Current() == r.main
}

// CheckMainThread returns a *NotOnMainThreadError when called off the main thread.
func (r *Registry) CheckMainThread() error {
	return r.checkMain(thread.Current())
}

func (r *Registry) checkMain(caller thread.ID) error {
	if caller != r.main {
		return &NotOnMainThreadError{Calling: caller, Main: r.main}
	}
	return nil
}

// CalledOnBoundThread reports whether the window is unbound or bound on the calling thread.
func (w *Window) CalledOnBoundThread() bool {
	return w.CheckBoundThread() == nil
}

// CheckBoundThread returns a *NotOnBoundThreadError when the window's context is
// bound on a thread other than the caller's.
func (w *Window) CheckBoundThread() error {
	if w.registry == nil {
		return nil
	}
	caller := thread.Current()

	w.registry.mutex.Lock()
	defer w.registry.mutex.Unlock()
	return w.checkBound(caller)
}

func (w *Window) checkBound(caller thread.ID) error {
	if w.bound != thread.None && w.bound != caller {
		return &NotOnBoundThreadError{Calling: caller, Bound: w.bound}
	}
	return nil
}
