package sdl2

import (
	"github.com/ignite-laboratories/glwindow"
	"github.com/veandco/go-sdl2/sdl"
)

// Context is an SDL OpenGL context together with what was learned when loading it.
type Context struct {
	GL          sdl.GLContext
	Version     string
	Renderer    string
	DebugOutput bool
}

// definition is the platform's bookkeeping for one window.
type definition struct {
	Handle      *sdl.Window
	Context     *Context
	Callbacks   glwindow.Callbacks
	ShouldClose bool
}

func window(handle glwindow.Handle) *sdl.Window {
	w, _ := handle.(*sdl.Window)
	return w
}

func context(c glwindow.Context) *Context {
	ctx, _ := c.(*Context)
	return ctx
}

var attributeNames = map[string]sdl.GLattr{
	"red_size":                   sdl.GL_RED_SIZE,
	"green_size":                 sdl.GL_GREEN_SIZE,
	"blue_size":                  sdl.GL_BLUE_SIZE,
	"alpha_size":                 sdl.GL_ALPHA_SIZE,
	"double_buffer":              sdl.GL_DOUBLEBUFFER,
	"depth_bits":                 sdl.GL_DEPTH_SIZE,
	"stencil_bits":               sdl.GL_STENCIL_SIZE,
	"samples":                    sdl.GL_MULTISAMPLESAMPLES,
	"multisample_buffers":        sdl.GL_MULTISAMPLEBUFFERS,
	"srgb_capable":               sdl.GL_FRAMEBUFFER_SRGB_CAPABLE,
	"context_version_major":      sdl.GL_CONTEXT_MAJOR_VERSION,
	"context_version_minor":      sdl.GL_CONTEXT_MINOR_VERSION,
	"context_flags":              sdl.GL_CONTEXT_FLAGS,
	"context_profile_mask":       sdl.GL_CONTEXT_PROFILE_MASK,
	"share_with_current_context": sdl.GL_SHARE_WITH_CURRENT_CONTEXT,
}
