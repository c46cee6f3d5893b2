package glwindow

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ignite-laboratories/core/std"
)

// DefaultSize sets the default window size for new windows.
//
// If not overridden, it defaults to 1280x720
var DefaultSize = std.XY[int]{
	X: 1280,
	Y: 720,
}

// Perspective parameters used when a window's framebuffer changes size.
var (
	FieldOfView float32 = 45
	NearPlane   float32 = 0.1
	FarPlane    float32 = 1000
)

func perspective(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), float32(width)/float32(height), NearPlane, FarPlane)
}
