package main

import (
	"runtime"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/glwindow"
)

// scene is the per-window render state. Draw calls stop at a clear; geometry and
// shaders are outside what this command demonstrates.
type scene struct {
	window *glwindow.Window
	clear  [4]float32
}

// frame binds the window on the calling thread, clears it and presents it.
func (s *scene) frame() error {
	if err := s.window.MakeCurrent(); err != nil {
		return err
	}
	if _, err := s.window.SyncViewport(); err != nil {
		return err
	}
	gl.ClearColor(s.clear[0], s.clear[1], s.clear[2], s.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return s.window.SwapBuffers()
}

// renderLoop keeps the window bound on one OS thread until it is asked to close.
func (s *scene) renderLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	id := s.window.ID()
	core.Verbosef(ModuleName, "[%d] render thread started\n", id)
	for core.Alive && !s.window.ShouldClose() {
		if err := s.frame(); err != nil {
			core.Verbosef(ModuleName, "[%d] frame failed: %v\n", id, err)
			break
		}
	}
	if err := s.window.Registry().SetCurrentContext(nil); err != nil {
		core.Verbosef(ModuleName, "[%d] could not release context: %v\n", id, err)
	}
	core.Verbosef(ModuleName, "[%d] render thread stopped\n", id)
}
