package glw

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// ShaderType is a programmable pipeline stage.
type ShaderType uint32

const (
	Vertex         ShaderType = gl.VERTEX_SHADER
	TessControl    ShaderType = gl.TESS_CONTROL_SHADER
	TessEvaluation ShaderType = gl.TESS_EVALUATION_SHADER
	Geometry       ShaderType = gl.GEOMETRY_SHADER
	Fragment       ShaderType = gl.FRAGMENT_SHADER
)

func (t ShaderType) String() string {
	switch t {
	case Vertex:
		return "vertex"
	case TessControl:
		return "tessellation control"
	case TessEvaluation:
		return "tessellation evaluation"
	case Geometry:
		return "geometry"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

type Shader struct {
	ID   uint32
	Type ShaderType
}

func NewShader(ty ShaderType) (*Shader, error) {
	id := gl.CreateShader(uint32(ty))
	if id == 0 {
		return nil, errors.Wrapf(ErrZeroHandle, "%s shader", ty)
	}
	return &Shader{ID: id, Type: ty}, nil
}

// SetSource replaces the shader source.
func (s *Shader) SetSource(src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s.ID, 1, csources, nil)
	free()
}

func (s *Shader) Compile() {
	gl.CompileShader(s.ID)
}

// CompileSuccess reports whether the last Compile succeeded.
func (s *Shader) CompileSuccess() bool {
	var status int32
	gl.GetShaderiv(s.ID, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (s *Shader) InfoLog() string {
	var logLength int32
	gl.GetShaderiv(s.ID, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(s.ID, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// Delete flags the shader for deletion; the driver frees it once no program
// references it.
func (s *Shader) Delete() {
	if s == nil || s.ID == 0 {
		return
	}
	gl.DeleteShader(s.ID)
	s.ID = 0
}

// ShaderFromSource creates and compiles a shader. On failure the shader is
// deleted and the error carries the compile log.
func ShaderFromSource(ty ShaderType, src string) (*Shader, error) {
	s, err := NewShader(ty)
	if err != nil {
		return nil, err
	}
	s.SetSource(src)
	s.Compile()
	if !s.CompileSuccess() {
		log := s.InfoLog()
		s.Delete()
		return nil, errors.Errorf("%s compile error: %s", ty, log)
	}
	return s, nil
}
