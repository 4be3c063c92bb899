package glw

import (
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/kjkrol/magiebleue/pkg/logging"
)

// Program is a linked set of shader stages.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

func NewProgram() (*Program, error) {
	id := gl.CreateProgram()
	if id == 0 {
		return nil, errors.Wrap(ErrZeroHandle, "shader program")
	}
	return &Program{ID: id, uniforms: make(map[string]int32)}, nil
}

func (p *Program) Attach(s *Shader) {
	gl.AttachShader(p.ID, s.ID)
}

// Link links every attached shader.
func (p *Program) Link() {
	gl.LinkProgram(p.ID)
}

func (p *Program) LinkSuccess() bool {
	var status int32
	gl.GetProgramiv(p.ID, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (p *Program) InfoLog() string {
	var logLength int32
	gl.GetProgramiv(p.ID, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(p.ID, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// Use makes this the active program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete flags the program for deletion; it goes away once no longer active.
func (p *Program) Delete() {
	if p == nil || p.ID == 0 {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
	p.uniforms = nil
}

// UniformLocation looks up a uniform, caching the result. Unknown names
// yield -1, which the Uniform* calls silently ignore.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	CheckErrors("Program.UniformLocation")
	if loc < 0 {
		logging.Logger().Debug("uniform not found", "program", p.ID, "name", name)
	}
	if p.uniforms == nil {
		p.uniforms = make(map[string]int32)
	}
	p.uniforms[name] = loc
	return loc
}

// SetMat4 sets a mat4 uniform on this program, which must be in use.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.UniformLocation(name), 1, false, &m[0])
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.UniformLocation(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.UniformLocation(name), v)
}

// SetMatrixUniforms sets the "model", "view" and "proj" uniforms.
func (p *Program) SetMatrixUniforms(model, view, proj mgl32.Mat4) {
	p.SetMat4("model", model)
	p.SetMat4("view", view)
	p.SetMat4("proj", proj)
}

// Stages holds per-stage GLSL sources. Vertex and Fragment are required.
type Stages struct {
	Vertex         string
	TessControl    string
	TessEvaluation string
	Geometry       string
	Fragment       string
}

func (s Stages) each(fn func(ty ShaderType, src string) error) error {
	for _, stage := range []struct {
		ty       ShaderType
		src      string
		required bool
	}{
		{Vertex, s.Vertex, true},
		{TessControl, s.TessControl, false},
		{TessEvaluation, s.TessEvaluation, false},
		{Geometry, s.Geometry, false},
		{Fragment, s.Fragment, true},
	} {
		if stage.src == "" {
			if stage.required {
				return errors.Errorf("%s shader source is required", stage.ty)
			}
			continue
		}
		if err := fn(stage.ty, stage.src); err != nil {
			return err
		}
	}
	return nil
}

// ProgramFromStages compiles every present stage and links them. The
// intermediate shaders are always deleted; a failed link deletes the program.
func ProgramFromStages(stages Stages) (*Program, error) {
	prog, err := NewProgram()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't allocate a shader program")
	}

	var shaders []*Shader
	defer func() {
		for _, s := range shaders {
			s.Delete()
		}
	}()

	err = stages.each(func(ty ShaderType, src string) error {
		s, err := ShaderFromSource(ty, src)
		if err != nil {
			return err
		}
		shaders = append(shaders, s)
		prog.Attach(s)
		return nil
	})
	if err != nil {
		prog.Delete()
		return nil, err
	}

	prog.Link()
	if !prog.LinkSuccess() {
		log := prog.InfoLog()
		prog.Delete()
		return nil, errors.Errorf("link error: %s", log)
	}
	return prog, nil
}

// ProgramFromVertFrag builds a program from a vertex and a fragment source.
func ProgramFromVertFrag(vert, frag string) (*Program, error) {
	return ProgramFromStages(Stages{Vertex: vert, Fragment: frag})
}

// StagePaths names the file of each stage; empty optional paths are skipped.
type StagePaths Stages

// ReadStages loads the sources named by paths from fsys.
func ReadStages(fsys fs.FS, paths StagePaths) (Stages, error) {
	var stages Stages
	targets := []struct {
		ty   ShaderType
		path string
		dst  *string
	}{
		{Vertex, paths.Vertex, &stages.Vertex},
		{TessControl, paths.TessControl, &stages.TessControl},
		{TessEvaluation, paths.TessEvaluation, &stages.TessEvaluation},
		{Geometry, paths.Geometry, &stages.Geometry},
		{Fragment, paths.Fragment, &stages.Fragment},
	}
	for _, t := range targets {
		if t.path == "" {
			continue
		}
		src, err := fs.ReadFile(fsys, t.path)
		if err != nil {
			return Stages{}, errors.Wrapf(err, "%s read error", t.ty)
		}
		*t.dst = string(src)
	}
	return stages, nil
}

// ProgramFromFiles reads the stage files from fsys and builds a program.
func ProgramFromFiles(fsys fs.FS, paths StagePaths) (*Program, error) {
	stages, err := ReadStages(fsys, paths)
	if err != nil {
		return nil, err
	}
	return ProgramFromStages(stages)
}
