// Package glcontext holds the OpenGL calls shared by the platform backends:
// per-context function loading, viewport updates and debug output.
package glcontext

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/ignite-laboratories/glwindow"
)

// Info describes a context after its functions were loaded.
type Info struct {
	Version  string
	Renderer string
}

// Load resolves OpenGL function pointers for the context current on the calling thread.
func Load() (Info, error) {
	if err := gl.Init(); err != nil {
		return Info{}, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}, nil
}

// Viewport sets the viewport of the context current on the calling thread.
func Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// EnableDebugOutput routes every debug message of the current context to handler.
// Output is synchronous, so handler runs on the thread that issued the failing call.
func EnableDebugOutput(handler func(glwindow.DebugMessage)) {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		handler(Decode(source, gltype, id, severity, message))
	}, nil)
}

// Decode converts raw debug message enums to readable names.
func Decode(source, gltype, id, severity uint32, message string) glwindow.DebugMessage {
	return glwindow.DebugMessage{
		Source:   sourceName(source),
		Type:     typeName(gltype),
		Severity: severityName(severity),
		ID:       id,
		Message:  message,
	}
}

func sourceName(source uint32) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "API"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "WINDOW_SYSTEM"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "SHADER_COMPILER"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "THIRD_PARTY"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "APPLICATION"
	default:
		return "OTHER"
	}
}

func typeName(gltype uint32) string {
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		return "ERROR"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "DEPRECATED_BEHAVIOR"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "UNDEFINED_BEHAVIOR"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "PORTABILITY"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "PERFORMANCE"
	default:
		return "OTHER"
	}
}

func severityName(severity uint32) string {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return "HIGH"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "MEDIUM"
	case gl.DEBUG_SEVERITY_LOW:
		return "LOW"
	default:
		return "NOTIFICATION"
	}
}
