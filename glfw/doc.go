// Package glfw provides a glwindow.Platform backed by GLFW
package glfw

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/glwindow"
)

var ModuleName = "glfw"

func init() {
	glwindow.Report()
	core.SubmoduleReport(glwindow.ModuleName, ModuleName)
}

func Report() {}
