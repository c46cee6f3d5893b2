package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/glwindow"
)

var _ glwindow.Platform = (*Platform)(nil)

func window(handle glwindow.Handle) *glfw.Window {
	w, _ := handle.(*glfw.Window)
	return w
}

// PrimaryMonitor returns the monitor to pass to CreateWindow for full screen windows.
func PrimaryMonitor() glwindow.Monitor {
	if m := glfw.GetPrimaryMonitor(); m != nil {
		return m
	}
	return nil
}

var hintNames = map[string]glfw.Hint{
	"resizable":                 glfw.Resizable,
	"visible":                   glfw.Visible,
	"decorated":                 glfw.Decorated,
	"focused":                   glfw.Focused,
	"floating":                  glfw.Floating,
	"maximized":                 glfw.Maximized,
	"samples":                   glfw.Samples,
	"double_buffer":             glfw.DoubleBuffer,
	"depth_bits":                glfw.DepthBits,
	"stencil_bits":              glfw.StencilBits,
	"srgb_capable":              glfw.SRGBCapable,
	"refresh_rate":              glfw.RefreshRate,
	"client_api":                glfw.ClientAPI,
	"context_creation_api":      glfw.ContextCreationAPI,
	"context_version_major":     glfw.ContextVersionMajor,
	"context_version_minor":     glfw.ContextVersionMinor,
	"context_robustness":        glfw.ContextRobustness,
	"opengl_forward_compatible": glfw.OpenGLForwardCompatible,
	"opengl_debug_context":      glfw.OpenGLDebugContext,
	"opengl_profile":            glfw.OpenGLProfile,
}
