// Command cube draws a noise textured cube spinning about its diagonal.
package main

import (
	"context"
	"flag"
	"io/fs"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/magiebleue/internal/app"
	"github.com/kjkrol/magiebleue/pkg/camera"
	"github.com/kjkrol/magiebleue/pkg/gfx"
	"github.com/kjkrol/magiebleue/pkg/glw"
	"github.com/kjkrol/magiebleue/pkg/input"
	"github.com/kjkrol/magiebleue/pkg/logging"
	"github.com/kjkrol/magiebleue/pkg/mesh"
)

const cubeNoiseSize = 32

var cubeSampling = glw.Sampling{
	Wrap:   glw.ClampToBorder,
	Border: mgl32.Vec4{0, 0, 0, 1},
	Min:    glw.Linear,
	Mag:    glw.Linear,
}

func init() {
	runtime.LockOSThread()
}

type cubeRenderer struct {
	fovy, near, far float32
	seed            int64
	shaders         fs.FS
	program         *glw.Program
	vao             *glw.VertexArray
	texture         *glw.Texture
	axis            mgl32.Vec3
}

func (r *cubeRenderer) Init(w *gfx.Window) error {
	var err error
	r.program, err = glw.ProgramFromFiles(r.shaders, glw.StagePaths{Vertex: "base.vert", Fragment: "base.frag"})
	if err != nil {
		return err
	}

	r.vao, err = glw.NewVertexArray()
	if err != nil {
		return err
	}
	r.vao.Bind()
	if err := r.vao.AttachTexturedPoints(mesh.Cube()); err != nil {
		return err
	}

	r.texture, err = glw.NewTexture()
	if err != nil {
		return err
	}
	glw.SetTextureSlot(0)
	r.texture.Bind(glw.Tex2D)
	if err := cubeSampling.Apply(glw.Tex2D); err != nil {
		return err
	}
	glw.FillNoise(cubeNoiseSize, r.seed)
	glw.GenMipmap(glw.Tex2D)

	r.program.Use()
	r.program.SetInt("tex", 0)
	r.axis = mgl32.Vec3{1, 1, 1}.Normalize()

	glw.Enable(glw.DepthTest)
	glw.SetClearColor(mgl32.Vec4{0.2, 0.3, 0.3, 1})
	return nil
}

func (r *cubeRenderer) Render(w *gfx.Window, _ input.KeySet, t float64) {
	glw.Clear(glw.ColorBuffer | glw.DepthBuffer)

	model := mgl32.HomogRotate3D(float32(math.Pi/4+t), r.axis)
	view := mgl32.Translate3D(0, 0, -2)
	proj := camera.Projection(r.fovy, w.Aspect(), r.near, r.far)

	r.program.Use()
	r.program.SetMatrixUniforms(model, view, proj)
	r.vao.Bind()
	r.vao.Draw(glw.Triangles)
}

func (r *cubeRenderer) Close() {
	if r.texture != nil {
		r.texture.Delete()
	}
	if r.vao != nil {
		r.vao.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}

func main() {
	configPath := flag.String("config", "magiebleue.toml", "path to the TOML configuration")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logging.NewTextLogger(logging.ParseLevel("error")).Error("cube failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	conf, err := app.Setup(configPath)
	if err != nil {
		return err
	}

	window, err := gfx.NewWindow(gfx.WindowConfig{
		Width:      conf.Window.Width,
		Height:     conf.Window.Height,
		Title:      conf.Window.Title,
		Fullscreen: conf.Window.Fullscreen,
		VSync:      conf.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Close()
	window.OnKey(input.KeyEscape, func() { window.SetShouldClose(true) })

	return window.RunRenderer(context.Background(), &cubeRenderer{
		fovy:    mgl32.DegToRad(conf.Camera.FOV),
		near:    conf.Camera.Near,
		far:     conf.Camera.Far,
		seed:    app.Seed(conf),
		shaders: app.ShaderFS(conf),
	})
}
