// Command heightmap flies a camera over tessellated terrain displaced by a
// noise texture.
package main

import (
	"context"
	"flag"
	"io/fs"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/magiebleue/internal/app"
	"github.com/kjkrol/magiebleue/pkg/camera"
	"github.com/kjkrol/magiebleue/pkg/gfx"
	"github.com/kjkrol/magiebleue/pkg/glw"
	"github.com/kjkrol/magiebleue/pkg/input"
	"github.com/kjkrol/magiebleue/pkg/logging"
	"github.com/kjkrol/magiebleue/pkg/mesh"
)

const (
	patchResolution = 64
	terrainSize     = 256
	planeHalfSize   = 5
	heightScale     = 16
)

// heights outside the grid read as zero instead of wrapping around
var heightMapSampling = glw.Sampling{
	Wrap: glw.ClampToBorder,
	Min:  glw.Linear,
	Mag:  glw.Linear,
}

func init() {
	runtime.LockOSThread()
}

type terrain struct {
	cam             *camera.Camera
	fovy, near, far float32
	noiseSize       int
	seed            int64
	shaders         fs.FS

	planeProgram   *glw.Program
	terrainProgram *glw.Program
	plane          *glw.VertexArray
	patches        *glw.VertexArray
	heightMap      *glw.Texture

	wireframe bool
	lastTime  float64
	frames    int
}

func (r *terrain) Init(w *gfx.Window) error {
	var err error
	r.planeProgram, err = glw.ProgramFromFiles(r.shaders, glw.StagePaths{
		Vertex:   "base.vert",
		Fragment: "plane.frag",
	})
	if err != nil {
		return err
	}
	r.terrainProgram, err = glw.ProgramFromFiles(r.shaders, glw.StagePaths{
		Vertex:         "heightmap.vert",
		TessControl:    "heightmap.tesc",
		TessEvaluation: "heightmap.tese",
		Geometry:       "heightmap.geom",
		Fragment:       "heightmap.frag",
	})
	if err != nil {
		return err
	}

	r.plane, err = glw.NewVertexArray()
	if err != nil {
		return err
	}
	r.plane.Bind()
	quad := mesh.PlaneQuad(planeHalfSize)
	if err := r.plane.AttachVertices(quad[:]); err != nil {
		return err
	}

	r.patches, err = glw.NewVertexArray()
	if err != nil {
		return err
	}
	r.patches.Bind()
	grid := mesh.GenPatches(nil, patchResolution, terrainSize, mgl32.Vec3{-terrainSize / 2, 0, -terrainSize / 2})
	if err := r.patches.AttachVertices(grid); err != nil {
		return err
	}
	glw.ClearVertexArrayBinding()

	r.heightMap, err = glw.NewTexture()
	if err != nil {
		return err
	}
	glw.SetTextureSlot(0)
	r.heightMap.Bind(glw.Tex2D)
	if err := heightMapSampling.Apply(glw.Tex2D); err != nil {
		return err
	}
	glw.FillNoise(r.noiseSize, r.seed)

	r.terrainProgram.Use()
	r.terrainProgram.SetInt("heightMap", 0)
	r.terrainProgram.SetFloat("heightScale", heightScale)

	glw.SetPatchVertices(mesh.PatchVertices)
	glw.Enable(glw.DepthTest)
	glw.SetClearColor(mgl32.Vec4{0.2, 0.3, 0.3, 1})

	w.SetEventsConsumerStrategy(input.UntilKeyChange())
	w.OnKey(input.KeyF, r.toggleWireframe)
	w.OnCursor(func(w *gfx.Window, x, y float64) {
		cx, cy := w.Center()
		app.CursorLook(r.cam, x, y, cx, cy)
		w.SetCursorPos(cx, cy)
	})
	w.StartTicker(gfx.NewTicker(5*time.Second, r.reportFrames))
	r.lastTime = w.Time()
	return nil
}

func (r *terrain) toggleWireframe() {
	r.wireframe = !r.wireframe
	if r.wireframe {
		glw.SetPolygonMode(glw.Line)
	} else {
		glw.SetPolygonMode(glw.Fill)
	}
}

func (r *terrain) reportFrames(*gfx.Window) {
	logging.Logger().Info("frame rate", "fps", float64(r.frames)/5, "position", r.cam.Position)
	r.frames = 0
}

func (r *terrain) Render(w *gfx.Window, keys input.KeySet, t float64) {
	dt := float32(t - r.lastTime)
	r.lastTime = t
	r.frames++

	model := mgl32.Ident4()
	view := r.cam.View()
	proj := camera.Projection(r.fovy, w.Aspect(), r.near, r.far)

	glw.Clear(glw.ColorBuffer | glw.DepthBuffer)

	r.planeProgram.Use()
	r.planeProgram.SetMatrixUniforms(model, view, proj)
	r.plane.Bind()
	r.plane.Draw(glw.TriangleFan)

	glw.SetTextureSlot(0)
	r.heightMap.Bind(glw.Tex2D)
	r.terrainProgram.Use()
	r.terrainProgram.SetMatrixUniforms(model, view, proj)
	r.patches.Bind()
	r.patches.Draw(glw.Patches)
	glw.CheckErrors("end of render")

	r.cam.Move(app.Movement(keys), dt)
}

func (r *terrain) Close() {
	for _, va := range []*glw.VertexArray{r.plane, r.patches} {
		if va != nil {
			va.Delete()
		}
	}
	for _, p := range []*glw.Program{r.planeProgram, r.terrainProgram} {
		if p != nil {
			p.Delete()
		}
	}
	if r.heightMap != nil {
		r.heightMap.Delete()
	}
}

func main() {
	configPath := flag.String("config", "magiebleue.toml", "path to the TOML configuration")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logging.NewTextLogger(logging.ParseLevel("error")).Error("heightmap failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	conf, err := app.Setup(configPath)
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

	return window.RunRenderer(context.Background(), &terrain{
		cam:       camera.New(mgl32.Vec3{-3, 1, 5}, conf.Camera.Speed, conf.Camera.Sensitivity),
		fovy:      mgl32.DegToRad(conf.Camera.FOV),
		near:      conf.Camera.Near,
		far:       conf.Camera.Far,
		noiseSize: conf.NoiseSize,
		seed:      app.Seed(conf),
		shaders:   app.ShaderFS(conf),
	})
}
