package app

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/magiebleue/internal/config"
	"github.com/kjkrol/magiebleue/pkg/camera"
	"github.com/kjkrol/magiebleue/pkg/input"
)

func TestShaderFSDefaultsToEmbedded(t *testing.T) {
	fsys := ShaderFS(config.Default())
	_, err := fs.Stat(fsys, "base.vert")
	assert.NoError(t, err)
}

func TestShaderFSUsesDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.frag"), []byte("#version 410 core\n"), 0o644))

	conf := config.Default()
	conf.ShaderDir = dir
	fsys := ShaderFS(conf)

	_, err := fs.Stat(fsys, "custom.frag")
	assert.NoError(t, err)
	_, err = fs.Stat(fsys, "base.vert")
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	conf := config.Default()
	conf.Seed = 42
	assert.Equal(t, int64(42), Seed(conf))

}

func TestSetupMissingFile(t *testing.T) {
	conf, err := Setup(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)
}

func TestSetupInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("NoiseSize = -1\n"), 0o644))
	_, err := Setup(path)
	assert.Error(t, err)
}

func TestMovement(t *testing.T) {
	keys := input.NewKeySet()
	assert.Equal(t, camera.Movement{}, Movement(keys))

	keys.Apply(input.KeyPress{Key: input.KeyW})
	keys.Apply(input.KeyPress{Key: input.KeyD})
	keys.Apply(input.KeyPress{Key: input.KeyRightShift})
	assert.Equal(t, camera.Movement{Forward: true, Right: true, KeepHeight: true}, Movement(keys))

	keys.Apply(input.KeyRelease{Key: input.KeyW})
	keys.Apply(input.KeyPress{Key: input.KeyS})
	keys.Apply(input.KeyPress{Key: input.KeyA})
	keys.Apply(input.KeyRelease{Key: input.KeyRightShift})
	assert.Equal(t, camera.Movement{Back: true, Left: true, Right: true}, Movement(keys))
}

func TestCursorLook(t *testing.T) {
	cam := camera.New(mgl32.Vec3{}, 1, 0.01)
	CursorLook(cam, 110, 40, 100, 50)
	assert.InDelta(t, 0.1, cam.Yaw, 1e-6)
	assert.InDelta(t, 0.1, cam.Pitch, 1e-6)

	CursorLook(cam, 100, 50, 100, 50)
	assert.InDelta(t, 0.1, cam.Yaw, 1e-6)
}
