// Command multiwindow opens the windows described by a YAML config and clears
// each one from its own OS thread, or from the main thread when not threaded.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/ignite-laboratories/glwindow"
	"github.com/ignite-laboratories/glwindow/config"
	"github.com/ignite-laboratories/glwindow/glfw"
	"github.com/ignite-laboratories/glwindow/sdl2"
)

var ModuleName = "multiwindow"

// The main goroutine must own the main OS thread before anything touches the platform.
func init() {
	runtime.LockOSThread()
}

// Synchro carries lifecycle requests from render threads to the main thread.
var Synchro = make(std.Synchro)

func main() {
	configPath := flag.String("config", "multiwindow.yaml", "window config file")
	backend := flag.String("backend", "", "platform backend, overrides the config (glfw or sdl2)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		core.Fatalf(ModuleName, "%v\n", err)
	}
	if *backend != "" {
		cfg.Backend = config.Backend(*backend)
		if err := cfg.Validate(); err != nil {
			core.Fatalf(ModuleName, "%v\n", err)
		}
	}

	platform, err := open(cfg.Backend)
	if err != nil {
		core.Fatalf(ModuleName, "%v\n", err)
	}
	registry := glwindow.NewRegistry(platform)
	registry.Debug = cfg.Debug

	scenes, err := createWindows(registry, cfg)
	if err != nil {
		registry.Terminate()
		core.Fatalf(ModuleName, "%v\n", err)
	}

	if cfg.Threaded {
		runThreaded(registry, scenes)
	} else {
		runSingle(registry, scenes)
	}

	if err := registry.Terminate(); err != nil {
		core.Fatalf(ModuleName, "%v\n", err)
	}
}

func open(backend config.Backend) (glwindow.Platform, error) {
	switch backend {
	case config.BackendGLFW:
		return glfw.Init()
	case config.BackendSDL2:
		return sdl2.Init()
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func createWindows(registry *glwindow.Registry, cfg *config.Config) ([]*scene, error) {
	byTitle := make(map[string]*glwindow.Window, len(cfg.Windows))
	scenes := make([]*scene, 0, len(cfg.Windows))

	for _, wc := range cfg.Windows {
		hints, err := wc.ResolveHints(registry.Platform())
		if err != nil {
			return nil, err
		}
		size := std.XY[int]{X: wc.Width, Y: wc.Height}
		w, err := registry.CreateWindow(&size, wc.Title, nil, byTitle[wc.Share], hints)
		if err != nil {
			return nil, err
		}
		if cfg.Backend == config.BackendGLFW {
			major, minor, revision := glfw.Attributes(w)
			core.Verbosef(ModuleName, "[%d] %q using OpenGL %d.%d revision %d\n", w.ID(), wc.Title, major, minor, revision)
		}
		byTitle[wc.Title] = w
		scenes = append(scenes, &scene{window: w, clear: wc.Clear})
	}
	return scenes, nil
}

// runSingle renders every window from the main thread, switching contexts per frame.
func runSingle(registry *glwindow.Registry, scenes []*scene) {
	for core.Alive && len(registry.ActiveWindows()) > 0 {
		if err := registry.PollEvents(); err != nil {
			core.Fatalf(ModuleName, "%v\n", err)
		}
		for _, s := range scenes {
			if !s.window.IsValid() {
				continue
			}
			if s.window.ShouldClose() {
				s.window.Destroy()
				continue
			}
			if err := s.frame(); err != nil {
				core.Verbosef(ModuleName, "[%d] frame failed: %v\n", s.window.ID(), err)
			}
		}
		if err := registry.SetCurrentContext(nil); err != nil {
			core.Fatalf(ModuleName, "%v\n", err)
		}
	}
}

// runThreaded gives each window its own pinned render goroutine. The main thread
// only polls events and services destroy requests sent through Synchro.
func runThreaded(registry *glwindow.Registry, scenes []*scene) {
	var wg sync.WaitGroup
	for _, s := range scenes {
		wg.Add(1)
		go func(s *scene) {
			defer wg.Done()
			s.renderLoop()
			Synchro.Send(s.window.Destroy)
		}(s)
	}

	for core.Alive && len(registry.ActiveWindows()) > 0 {
		Synchro.Engage()
		if err := registry.PollEvents(); err != nil {
			core.Fatalf(ModuleName, "%v\n", err)
		}
		time.Sleep(time.Millisecond)
	}

	if !core.Alive {
		for _, s := range scenes {
			s.window.SetShouldClose(true)
		}
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		for {
			select {
			case <-done:
				return
			default:
				Synchro.Engage()
				time.Sleep(time.Millisecond)
			}
		}
	}
	wg.Wait()
}
