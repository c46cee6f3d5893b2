package glfw

import (
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/glwindow"
	"github.com/ignite-laboratories/glwindow/internal/glcontext"
)

func init() {
	GLVersion.Major = 3
	GLVersion.Minor = 3
	GLVersion.Core = true
}

// GLVersion is requested whenever a window is created without explicit hints.
var GLVersion struct {
	Major int
	Minor int
	Core  bool
}

// Context is the per-window loader state. GLFW owns the actual OpenGL context.
type Context struct {
	glcontext.Info
	DebugOutput bool
}

// Platform drives GLFW. It must be created and used from the main thread.
type Platform struct {
	mutex sync.Mutex
	debug bool
	sinks map[*glfw.Window]func(glwindow.Handle, glwindow.DebugMessage)
}

// Init initializes GLFW.
func Init() (*Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	core.Verbosef(ModuleName, "sparking GLFW %s\n", glfw.GetVersionString())
	return &Platform{
		sinks: make(map[*glfw.Window]func(glwindow.Handle, glwindow.DebugMessage)),
	}, nil
}

func (p *Platform) SetHints(hints glwindow.Hints, debug bool) {
	glfw.DefaultWindowHints()
	if len(hints) == 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, GLVersion.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, GLVersion.Minor)
		if GLVersion.Core {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		} else {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
		}
	}
	for _, hint := range hints {
		glfw.WindowHint(glfw.Hint(hint.Key), hint.Value)
	}
	if debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	p.mutex.Lock()
	p.debug = debug
	p.mutex.Unlock()
}

func (p *Platform) ResolveHint(name string) (int, bool) {
	hint, ok := hintNames[name]
	return int(hint), ok
}

func (p *Platform) CreateWindow(width, height int, title string, monitor glwindow.Monitor, share *glwindow.Share) (glwindow.Handle, error) {
	var m *glfw.Monitor
	if monitor != nil {
		var ok bool
		if m, ok = monitor.(*glfw.Monitor); !ok {
			return nil, fmt.Errorf("unsupported monitor %T", monitor)
		}
	}
	var s *glfw.Window
	if share != nil {
		s = window(share.Handle)
	}

	w, err := glfw.CreateWindow(width, height, title, m, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	return w, nil
}

// CreateContext allocates loader state; GLFW created the OpenGL context with the window.
func (p *Platform) CreateContext(handle glwindow.Handle, share *glwindow.Share) (glwindow.Context, error) {
	if window(handle) == nil {
		return nil, fmt.Errorf("no GLFW window for context")
	}
	return &Context{}, nil
}

func (p *Platform) LoadExtensions(handle glwindow.Handle, context glwindow.Context) error {
	info, err := glcontext.Load()
	if err != nil {
		return err
	}
	if c, ok := context.(*Context); ok {
		c.Info = info
	}
	core.Verbosef(ModuleName, "context initialized with %s on %s\n", info.Version, info.Renderer)
	return nil
}

func (p *Platform) SetCallbacks(handle glwindow.Handle, context glwindow.Context, callbacks glwindow.Callbacks) {
	w := window(handle)
	w.SetSizeCallback(func(w *glfw.Window, width int, height int) {
		if callbacks.Size != nil {
			callbacks.Size(w, width, height)
		}
	})
	w.SetFramebufferSizeCallback(func(w *glfw.Window, width int, height int) {
		if callbacks.Framebuffer != nil {
			callbacks.Framebuffer(w, width, height)
		}
	})

	p.mutex.Lock()
	debug := p.debug
	if debug && callbacks.Debug != nil {
		p.sinks[w] = callbacks.Debug
	}
	p.mutex.Unlock()

	if debug && callbacks.Debug != nil && (glfw.ExtensionSupported("GL_KHR_debug") || glfw.ExtensionSupported("GL_ARB_debug_output")) {
		glcontext.EnableDebugOutput(p.dispatchDebug)
		if c, ok := context.(*Context); ok {
			c.DebugOutput = true
		}
	}
}

func (p *Platform) dispatchDebug(message glwindow.DebugMessage) {
	w := glfw.GetCurrentContext()

	p.mutex.Lock()
	sink := p.sinks[w]
	p.mutex.Unlock()

	if sink != nil {
		sink(w, message)
	}
}

func (p *Platform) DestroyContext(handle glwindow.Handle, context glwindow.Context) {
	p.mutex.Lock()
	delete(p.sinks, window(handle))
	p.mutex.Unlock()
}

func (p *Platform) DestroyWindow(handle glwindow.Handle) {
	if w := window(handle); w != nil {
		w.Destroy()
	}
}

func (p *Platform) MakeContextCurrent(handle glwindow.Handle, context glwindow.Context) error {
	w := window(handle)
	if w == nil {
		glfw.DetachCurrentContext()
		return nil
	}
	w.MakeContextCurrent()
	return nil
}

func (p *Platform) CurrentContext() glwindow.Handle {
	if w := glfw.GetCurrentContext(); w != nil {
		return w
	}
	return nil
}

func (p *Platform) SwapBuffers(handle glwindow.Handle) {
	window(handle).SwapBuffers()
}

func (p *Platform) ShouldClose(handle glwindow.Handle) bool {
	return window(handle).ShouldClose()
}

func (p *Platform) SetShouldClose(handle glwindow.Handle, value bool) {
	window(handle).SetShouldClose(value)
}

func (p *Platform) Viewport(x, y, width, height int) {
	glcontext.Viewport(x, y, width, height)
}

func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

func (p *Platform) Terminate() {
	glfw.Terminate()
	core.Verbosef(ModuleName, "GLFW integration stopped\n")
}

// Attributes reports the context version GLFW negotiated for a window.
func Attributes(w *glwindow.Window) (major, minor, revision int) {
	gw := window(w.Handle())
	if gw == nil {
		return 0, 0, 0
	}
	return gw.GetAttrib(glfw.ContextVersionMajor), gw.GetAttrib(glfw.ContextVersionMinor), gw.GetAttrib(glfw.ContextRevision)
}
