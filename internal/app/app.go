// Package app holds the start-up steps shared by the example programs.
package app

import (
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/magiebleue/internal/config"
	"github.com/kjkrol/magiebleue/pkg/camera"
	"github.com/kjkrol/magiebleue/pkg/input"
	"github.com/kjkrol/magiebleue/pkg/logging"
	"github.com/kjkrol/magiebleue/pkg/noisemap"
	"github.com/kjkrol/magiebleue/shaders"
)

// Setup loads the configuration at path and installs the process logger.
func Setup(path string) (config.Config, error) {
	conf, err := config.Load(path)
	if err != nil {
		return conf, err
	}
	logging.SetLogger(logging.NewTextLogger(logging.ParseLevel(conf.LogLevel)))
	logging.Logger().Debug("configuration loaded", "path", path, "window", conf.Window, "camera", conf.Camera)
	return conf, nil
}

// ShaderFS returns the directory named by conf.ShaderDir, or the embedded
// shaders when it is empty.
func ShaderFS(conf config.Config) fs.FS {
	if conf.ShaderDir == "" {
		return shaders.FS
	}
	return os.DirFS(conf.ShaderDir)
}

// Seed returns conf.Seed, or a time based seed when it is zero.
func Seed(conf config.Config) int64 {
	if conf.Seed != 0 {
		return conf.Seed
	}
	return noisemap.TimeSeed()
}

// Movement maps WASD to camera motion. Holding either Shift keeps the
// camera at its current height while moving forward or back.
func Movement(keys input.KeySet) camera.Movement {
	return camera.Movement{
		Forward:    keys.Contains(input.KeyW),
		Back:       keys.Contains(input.KeyS),
		Left:       keys.Contains(input.KeyA),
		Right:      keys.Contains(input.KeyD),
		KeepHeight: keys.Any(input.KeyLeftShift, input.KeyRightShift),
	}
}

// CursorLook turns cam by the offset of (x, y) from the centre (cx, cy).
func CursorLook(cam *camera.Camera, x, y, cx, cy float64) {
	cam.Look(float32(x-cx), float32(y-cy))
	logging.Logger().Debug("camera turned",
		"yaw", mgl32.RadToDeg(cam.Yaw),
		"pitch", mgl32.RadToDeg(cam.Pitch),
	)
}
