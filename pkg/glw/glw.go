// Package glw wraps OpenGL object handles (vertex arrays, buffers, shaders,
// programs, textures) in small Go types.
//
// Every call needs a current OpenGL 4.1 core context on the calling OS
// thread and a prior successful Init.
package glw

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/kjkrol/magiebleue/pkg/logging"
)

// ErrZeroHandle is returned when the driver hands back object name 0.
var ErrZeroHandle = errors.New("driver returned a zero object handle")

// Init loads the OpenGL function pointers for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "could not initialise OpenGL context")
	}
	logging.Logger().Info("OpenGL initialised",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)
	return nil
}
