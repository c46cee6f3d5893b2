// Package sdl2 provides a glwindow.Platform backed by SDL2
package sdl2

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/glwindow"
)

var ModuleName = "sdl2"

func init() {
	glwindow.Report()
	core.SubmoduleReport(glwindow.ModuleName, ModuleName)
}

func Report() {}
