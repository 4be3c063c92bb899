// Command objview loads a Wavefront .obj model and orbits it under a fly
// camera.
package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/kjkrol/magiebleue/internal/app"
	"github.com/kjkrol/magiebleue/pkg/camera"
	"github.com/kjkrol/magiebleue/pkg/gfx"
	"github.com/kjkrol/magiebleue/pkg/glw"
	"github.com/kjkrol/magiebleue/pkg/input"
	"github.com/kjkrol/magiebleue/pkg/logging"
	"github.com/kjkrol/magiebleue/pkg/mesh"
	"github.com/kjkrol/magiebleue/pkg/wavefront"
)

//go:embed models/*.obj
var models embed.FS

const (
	builtinModel = "models/cube.obj"

	// keeps a burst of cursor motion from stalling a frame
	maxEventsPerFrame = 64
)

func init() {
	runtime.LockOSThread()
}

type viewer struct {
	cam             *camera.Camera
	fovy, near, far float32
	shaders         fs.FS
	vertices        []mesh.Vertex

	program   *glw.Program
	vao       *glw.VertexArray
	fit       mgl32.Mat4
	lastTime  float64
	wireframe bool
}

func (r *viewer) Init(w *gfx.Window) error {
	var err error
	r.program, err = glw.ProgramFromFiles(r.shaders, glw.StagePaths{Vertex: "model.vert", Fragment: "model.frag"})
	if err != nil {
		return err
	}
	r.vao, err = glw.NewVertexArray()
	if err != nil {
		return err
	}
	r.vao.Bind()
	if err := r.vao.AttachVertices(r.vertices); err != nil {
		return err
	}
	lo, hi := mesh.Bounds(r.vertices)
	r.fit = mesh.FitMatrix(lo, hi, 2)

	glw.Enable(glw.DepthTest)
	glw.SetClearColor(mgl32.Vec4{0.1, 0.1, 0.12, 1})

	w.SetEventsConsumerStrategy(input.DrainMax(maxEventsPerFrame))
	w.OnKey(input.KeyF, func() {
		r.wireframe = !r.wireframe
		if r.wireframe {
			glw.SetPolygonMode(glw.Line)
		} else {
			glw.SetPolygonMode(glw.Fill)
		}
	})
	w.OnCursor(func(w *gfx.Window, x, y float64) {
		cx, cy := w.Center()
		app.CursorLook(r.cam, x, y, cx, cy)
		w.SetCursorPos(cx, cy)
	})
	r.lastTime = w.Time()
	return nil
}

func (r *viewer) Render(w *gfx.Window, keys input.KeySet, t float64) {
	dt := float32(t - r.lastTime)
	r.lastTime = t

	glw.Clear(glw.ColorBuffer | glw.DepthBuffer)
	model := mgl32.HomogRotate3DY(float32(t) * 0.5).Mul4(r.fit)
	r.program.Use()
	r.program.SetMatrixUniforms(model, r.cam.View(), camera.Projection(r.fovy, w.Aspect(), r.near, r.far))
	r.vao.Bind()
	r.vao.Draw(glw.Triangles)

	r.cam.Move(app.Movement(keys), dt)
}

func (r *viewer) Close() {
	if r.vao != nil {
		r.vao.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}

func loadModel(path string) ([]mesh.Vertex, error) {
	var (
		vertices []mesh.Vertex
		err      error
	)
	if path == "" {
		vertices, err = wavefront.ParseFS(models, builtinModel)
	} else {
		vertices, err = wavefront.ParseFile(path)
	}
	if err != nil {
		return nil, err
	}
	if len(vertices) == 0 {
		return nil, errors.Errorf("model %q has no faces", path)
	}
	logging.Logger().Info("model loaded", "path", path, "vertices", len(vertices))
	return vertices, nil
}

func main() {
	configPath := flag.String("config", "magiebleue.toml", "path to the TOML configuration")
	modelPath := flag.String("model", "", "path to a Wavefront .obj file; a cube is shown when empty")
	flag.Parse()

	if err := run(*configPath, *modelPath); err != nil {
		logging.NewTextLogger(logging.ParseLevel("error")).Error("objview failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, modelPath string) error {
	conf, err := app.Setup(configPath)
	if err != nil {
		return err
	}
	vertices, err := loadModel(modelPath)
	if err != nil {
		return err
	}

	window, err := gfx.NewWindow(gfx.WindowConfig{
		Width:         conf.Window.Width,
		Height:        conf.Window.Height,
		Title:         conf.Window.Title,
		Fullscreen:    conf.Window.Fullscreen,
		VSync:         conf.Window.VSync,
		CaptureCursor: true,
	})
	if err != nil {
		return err
	}
	defer window.Close()
	window.OnKey(input.KeyEscape, func() { window.SetShouldClose(true) })

	cam := camera.New(mgl32.Vec3{0, 0, 3}, conf.Camera.Speed/4, conf.Camera.Sensitivity)
	// face the origin down -Z
	cam.Yaw = -math.Pi / 2

	return window.RunRenderer(context.Background(), &viewer{
		cam:      cam,
		fovy:     mgl32.DegToRad(conf.Camera.FOV),
		near:     conf.Camera.Near,
		far:      conf.Camera.Far,
		shaders:  app.ShaderFS(conf),
		vertices: vertices,
	})
}
