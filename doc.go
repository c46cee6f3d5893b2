// Package glwindow wraps native windows and their OpenGL contexts behind a registry
// that enforces which OS thread may touch which window at which time.
//
// Window lifecycle (creation, destruction, moves) belongs to the main thread: the
// goroutine that locked itself with runtime.LockOSThread and then built the Registry.
// Contexts may be bound on any pinned thread, but on only one thread at a time.
package glwindow

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "glwindow"

func init() {
	core.ModuleReport(ModuleName)
}

func Report() {}
