package glwindow

// Handle is an opaque native window reference. Implementations must hand out
// comparable values, typically pointers, so handles can key the registry's side-table.
type Handle any

// Context is an opaque rendering context reference.
type Context any

// Monitor is an opaque monitor reference; nil requests windowed mode.
type Monitor any

// Share names an existing window whose GPU objects a new context should share.
type Share struct {
	Handle  Handle
	Context Context
}

// DebugMessage is a graphics API debug report, already decoded to readable names.
type DebugMessage struct {
	Source   string
	Type     string
	Severity string
	ID       uint32
	Message  string
}

// Callbacks are the platform events a registry listens to for each of its windows.
type Callbacks struct {
	Size        func(handle Handle, width, height int)
	Framebuffer func(handle Handle, width, height int)
	Debug       func(handle Handle, message DebugMessage)
}

// Platform is the windowing and context library a Registry drives.
//
// Window creation, destruction, hints, callbacks and event polling are only ever
// called from the registry's main thread. MakeContextCurrent, CurrentContext,
// SwapBuffers and Viewport act on the calling thread.
type Platform interface {
	// SetHints resets creation hints to defaults, then applies hints in order.
	// When debug is set a debug context is requested as well.
	SetHints(hints Hints, debug bool)
	// ResolveHint maps a symbolic hint name to the platform's hint key.
	ResolveHint(name string) (int, bool)

	CreateWindow(width, height int, title string, monitor Monitor, share *Share) (Handle, error)
	// CreateContext allocates the context for handle; the context is not yet current.
	CreateContext(handle Handle, share *Share) (Context, error)
	// LoadExtensions loads function pointers for the context current on the calling thread.
	LoadExtensions(handle Handle, context Context) error
	// SetCallbacks installs event callbacks; the window's context is current on the calling thread.
	SetCallbacks(handle Handle, context Context, callbacks Callbacks)
	DestroyContext(handle Handle, context Context)
	DestroyWindow(handle Handle)

	// MakeContextCurrent binds the context on the calling thread; a nil handle detaches.
	MakeContextCurrent(handle Handle, context Context) error
	// CurrentContext returns the window whose context is current on the calling thread, or nil.
	CurrentContext() Handle

	SwapBuffers(handle Handle)
	ShouldClose(handle Handle) bool
	SetShouldClose(handle Handle, value bool)
	Viewport(x, y, width, height int)
	PollEvents()
	Terminate()
}
