package glwindow

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/ignite-laboratories/glwindow/thread"
)

type fakeWindow struct {
	title       string
	width       int
	height      int
	monitor     Monitor
	share       *fakeWindow
	callbacks   Callbacks
	shouldClose bool
	destroyed   bool
	swaps       int
}

type fakeContext struct {
	window    *fakeWindow
	loaded    bool
	destroyed bool
}

type viewportCall struct {
	thread thread.ID
	window *fakeWindow
	width  int
	height int
}

// fakePlatform keeps one current window per OS thread, like a real context API.
type fakePlatform struct {
	mutex sync.Mutex

	current    map[thread.ID]*fakeWindow
	windows    []*fakeWindow
	contexts   []*fakeContext
	hints      Hints
	debug      bool
	viewports  []viewportCall
	polls      int
	terminated bool

	failWindow     bool
	failContext    bool
	failExtensions bool
	onLoad         func(handle Handle)
	onPoll         func()
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{current: make(map[thread.ID]*fakeWindow)}
}

func (p *fakePlatform) SetHints(hints Hints, debug bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.hints = append(Hints(nil), hints...)
	p.debug = debug
}

func (p *fakePlatform) ResolveHint(name string) (int, bool) {
	switch name {
	case "context_version_major":
		return 1, true
	case "context_version_minor":
		return 2, true
	}
	return 0, false
}

func (p *fakePlatform) CreateWindow(width, height int, title string, monitor Monitor, share *Share) (Handle, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.failWindow {
		return nil, errors.New("no display")
	}
	w := &fakeWindow{title: title, width: width, height: height, monitor: monitor}
	if share != nil {
		w.share = share.Handle.(*fakeWindow)
	}
	p.windows = append(p.windows, w)
	return w, nil
}

func (p *fakePlatform) CreateContext(handle Handle, share *Share) (Context, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.failContext {
		return nil, errors.New("out of memory")
	}
	c := &fakeContext{window: handle.(*fakeWindow)}
	p.contexts = append(p.contexts, c)
	return c, nil
}

func (p *fakePlatform) LoadExtensions(handle Handle, context Context) error {
	if p.onLoad != nil {
		p.onLoad(handle)
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.failExtensions {
		return errors.New("missing entry points")
	}
	if p.current[thread.Current()] != handle.(*fakeWindow) {
		return errors.New("context is not current")
	}
	context.(*fakeContext).loaded = true
	return nil
}

func (p *fakePlatform) SetCallbacks(handle Handle, context Context, callbacks Callbacks) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	handle.(*fakeWindow).callbacks = callbacks
}

func (p *fakePlatform) DestroyContext(handle Handle, context Context) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	context.(*fakeContext).destroyed = true
}

func (p *fakePlatform) DestroyWindow(handle Handle) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	w := handle.(*fakeWindow)
	for id, current := range p.current {
		if current == w && id != thread.Current() {
			panic(fmt.Sprintf("window %q destroyed while current on thread %v", w.title, id))
		}
	}
	if p.current[thread.Current()] == w {
		delete(p.current, thread.Current())
	}
	w.destroyed = true
}

func (p *fakePlatform) MakeContextCurrent(handle Handle, context Context) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	caller := thread.Current()
	if handle == nil {
		delete(p.current, caller)
		return nil
	}
	w := handle.(*fakeWindow)
	for id, current := range p.current {
		if current == w && id != caller {
			return fmt.Errorf("window %q already current on thread %v", w.title, id)
		}
	}
	p.current[caller] = w
	return nil
}

func (p *fakePlatform) CurrentContext() Handle {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if w := p.current[thread.Current()]; w != nil {
		return w
	}
	return nil
}

func (p *fakePlatform) SwapBuffers(handle Handle) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	handle.(*fakeWindow).swaps++
}

func (p *fakePlatform) ShouldClose(handle Handle) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return handle.(*fakeWindow).shouldClose
}

func (p *fakePlatform) SetShouldClose(handle Handle, value bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	handle.(*fakeWindow).shouldClose = value
}

func (p *fakePlatform) Viewport(x, y, width, height int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	caller := thread.Current()
	p.viewports = append(p.viewports, viewportCall{thread: caller, window: p.current[caller], width: width, height: height})
}

func (p *fakePlatform) PollEvents() {
	p.mutex.Lock()
	p.polls++
	onPoll := p.onPoll
	p.mutex.Unlock()
	if onPoll != nil {
		onPoll()
	}
}

func (p *fakePlatform) Terminate() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.terminated = true
}

func (p *fakePlatform) currentOn(id thread.ID) *fakeWindow {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.current[id]
}

// newTestRegistry pins the test goroutine, making its thread the registry's main thread.
func newTestRegistry(t *testing.T) (*Registry, *fakePlatform) {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	p := newFakePlatform()
	r := NewRegistry(p)
	r.fatalf = func(format string, args ...any) {
		panic(fmt.Sprintf(format, args...))
	}
	return r, p
}

// worker is a goroutine pinned to its own OS thread for the life of a test.
type worker struct {
	id    thread.ID
	calls chan func()
}

func startWorker(t *testing.T) *worker {
	t.Helper()
	w := &worker{calls: make(chan func())}
	ready := make(chan thread.ID)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		ready <- thread.Current()
		for fn := range w.calls {
			fn()
		}
	}()
	w.id = <-ready
	t.Cleanup(func() { close(w.calls) })
	return w
}

// do runs fn on the worker's thread and waits for it, returning any panic value.
func (w *worker) do(fn func()) (recovered any) {
	done := make(chan struct{})
	w.calls <- func() {
		defer close(done)
		defer func() { recovered = recover() }()
		fn()
	}
	<-done
	return recovered
}

func mustCreate(t *testing.T, r *Registry, title string) *Window {
	t.Helper()
	w, err := r.CreateWindow(nil, title, nil, nil, nil)
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return w
}

func handleOf(w *Window) *fakeWindow {
	return w.Handle().(*fakeWindow)
}
