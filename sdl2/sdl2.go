package sdl2

import (
	"fmt"
	"sync"

	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/glwindow"
	"github.com/ignite-laboratories/glwindow/internal/glcontext"
	"github.com/veandco/go-sdl2/sdl"
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

var _ glwindow.Platform = (*Platform)(nil)

// Platform drives SDL2's video subsystem. It must be created and used from the main thread.
type Platform struct {
	mutex   sync.Mutex
	debug   bool
	windows map[uint32]*definition
	handles map[*sdl.Window]*definition
}

// Init initializes SDL's video subsystem.
func Init() (*Platform, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL2: %w", err)
	}
	driver, _ := sdl.GetCurrentVideoDriver()
	core.Verbosef(ModuleName, "sparking SDL2 with video driver %s\n", driver)

	return &Platform{
		windows: make(map[uint32]*definition),
		handles: make(map[*sdl.Window]*definition),
	}, nil
}

func (p *Platform) SetHints(hints glwindow.Hints, debug bool) {
	sdl.GLResetAttributes()
	if len(hints) == 0 {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, GLVersion.Major)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, GLVersion.Minor)
		if GLVersion.Core {
			sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
		} else {
			sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES)
		}
		sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
		sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	}
	for _, hint := range hints {
		if err := sdl.GLSetAttribute(sdl.GLattr(hint.Key), hint.Value); err != nil {
			core.Verbosef(ModuleName, "ignoring attribute %d=%d: %v\n", hint.Key, hint.Value, err)
		}
	}
	if debug {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_DEBUG_FLAG)
	}

	p.mutex.Lock()
	p.debug = debug
	p.mutex.Unlock()
}

func (p *Platform) ResolveHint(name string) (int, bool) {
	attr, ok := attributeNames[name]
	return int(attr), ok
}

// CreateWindow opens a resizable window. Any non-nil monitor requests a full screen desktop window.
func (p *Platform) CreateWindow(width, height int, title string, monitor glwindow.Monitor, share *glwindow.Share) (glwindow.Handle, error) {
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if monitor != nil {
		flags = sdl.WINDOW_OPENGL | sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	w, err := sdl.CreateWindow(title, int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED), int32(width), int32(height), flags)
	if err != nil {
		return nil, fmt.Errorf("failed to create SDL window: %w", err)
	}
	id, err := w.GetID()
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("failed to identify SDL window: %w", err)
	}

	def := &definition{Handle: w}
	p.mutex.Lock()
	p.windows[id] = def
	p.handles[w] = def
	p.mutex.Unlock()
	return w, nil
}

// CreateContext creates the window's OpenGL context. SDL makes a new context current,
// so whatever was current on the calling thread is restored before returning.
func (p *Platform) CreateContext(handle glwindow.Handle, share *glwindow.Share) (glwindow.Context, error) {
	w := window(handle)
	if w == nil {
		return nil, fmt.Errorf("no SDL window for context")
	}
	previousWindow, _ := sdl.GLGetCurrentWindow()
	previousContext, _ := sdl.GLGetCurrentContext()
	defer previousWindow.GLMakeCurrent(previousContext)

	if share != nil {
		if sc := context(share.Context); sc != nil {
			sdl.GLSetAttribute(sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 1)
			if err := window(share.Handle).GLMakeCurrent(sc.GL); err != nil {
				return nil, fmt.Errorf("failed to bind shared context: %w", err)
			}
		}
	} else {
		sdl.GLSetAttribute(sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 0)
	}

	gl, err := w.GLCreateContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL context: %w", err)
	}
	ctx := &Context{GL: gl}

	p.mutex.Lock()
	if def := p.handles[w]; def != nil {
		def.Context = ctx
	}
	p.mutex.Unlock()
	return ctx, nil
}

func (p *Platform) LoadExtensions(handle glwindow.Handle, c glwindow.Context) error {
	info, err := glcontext.Load()
	if err != nil {
		return err
	}
	sdl.GLSetSwapInterval(1)
	if ctx := context(c); ctx != nil {
		ctx.Version = info.Version
		ctx.Renderer = info.Renderer
	}
	core.Verbosef(ModuleName, "context initialized with %s on %s\n", info.Version, info.Renderer)
	return nil
}

func (p *Platform) SetCallbacks(handle glwindow.Handle, c glwindow.Context, callbacks glwindow.Callbacks) {
	p.mutex.Lock()
	if def := p.handles[window(handle)]; def != nil {
		def.Callbacks = callbacks
	}
	debug := p.debug
	p.mutex.Unlock()

	if debug && callbacks.Debug != nil && (sdl.GLExtensionSupported("GL_KHR_debug") || sdl.GLExtensionSupported("GL_ARB_debug_output")) {
		glcontext.EnableDebugOutput(p.dispatchDebug)
		if ctx := context(c); ctx != nil {
			ctx.DebugOutput = true
		}
	}
}

func (p *Platform) dispatchDebug(message glwindow.DebugMessage) {
	w, _ := sdl.GLGetCurrentWindow()

	p.mutex.Lock()
	def := p.handles[w]
	p.mutex.Unlock()

	if def != nil && def.Callbacks.Debug != nil {
		def.Callbacks.Debug(w, message)
	}
}

func (p *Platform) DestroyContext(handle glwindow.Handle, c glwindow.Context) {
	if ctx := context(c); ctx != nil && ctx.GL != nil {
		sdl.GLDeleteContext(ctx.GL)
		ctx.GL = nil
	}
}

func (p *Platform) DestroyWindow(handle glwindow.Handle) {
	w := window(handle)
	if w == nil {
		return
	}
	p.mutex.Lock()
	delete(p.handles, w)
	for id, def := range p.windows {
		if def.Handle == w {
			delete(p.windows, id)
		}
	}
	p.mutex.Unlock()

	if err := w.Destroy(); err != nil {
		core.Verbosef(ModuleName, "failed to destroy SDL window: %v\n", err)
	}
}

func (p *Platform) MakeContextCurrent(handle glwindow.Handle, c glwindow.Context) error {
	w := window(handle)
	if w == nil {
		return (*sdl.Window)(nil).GLMakeCurrent(nil)
	}
	ctx := context(c)
	if ctx == nil {
		return fmt.Errorf("no OpenGL context for SDL window")
	}
	return w.GLMakeCurrent(ctx.GL)
}

func (p *Platform) CurrentContext() glwindow.Handle {
	if ctx, _ := sdl.GLGetCurrentContext(); ctx == nil {
		return nil
	}
	if w, _ := sdl.GLGetCurrentWindow(); w != nil {
		return w
	}
	return nil
}

func (p *Platform) SwapBuffers(handle glwindow.Handle) {
	window(handle).GLSwap()
}

func (p *Platform) ShouldClose(handle glwindow.Handle) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if def := p.handles[window(handle)]; def != nil {
		return def.ShouldClose
	}
	return true
}

func (p *Platform) SetShouldClose(handle glwindow.Handle, value bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if def := p.handles[window(handle)]; def != nil {
		def.ShouldClose = value
	}
}

func (p *Platform) Viewport(x, y, width, height int) {
	glcontext.Viewport(x, y, width, height)
}

// PollEvents drains SDL's event queue, translating window events into callbacks.
func (p *Platform) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.WindowEvent:
			p.handleWindowEvent(e)
		case *sdl.QuitEvent:
			p.mutex.Lock()
			for _, def := range p.windows {
				def.ShouldClose = true
			}
			p.mutex.Unlock()
		}
	}
}

func (p *Platform) handleWindowEvent(e *sdl.WindowEvent) {
	p.mutex.Lock()
	def := p.windows[e.WindowID]
	p.mutex.Unlock()
	if def == nil {
		return
	}

	switch e.Event {
	case sdl.WINDOWEVENT_CLOSE:
		p.SetShouldClose(def.Handle, true)
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		if def.Callbacks.Size != nil {
			def.Callbacks.Size(def.Handle, int(e.Data1), int(e.Data2))
		}
		if def.Callbacks.Framebuffer != nil {
			width, height := def.Handle.GLGetDrawableSize()
			def.Callbacks.Framebuffer(def.Handle, int(width), int(height))
		}
	}
}

func (p *Platform) Terminate() {
	sdl.Quit()
	core.Verbosef(ModuleName, "SDL2 integration stopped\n")
}
