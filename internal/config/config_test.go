package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/magiebleue/internal/config"
)

func TestDefault(t *testing.T) {
	conf := config.Default()
	require.NoError(t, conf.Validate())
	assert.Equal(t, 1920, conf.Window.Width)
	assert.Equal(t, float32(20), conf.Camera.Speed)
	assert.Equal(t, float32(0.002), conf.Camera.Sensitivity)
	assert.InDelta(t, 1920.0/1080.0, conf.Aspect(), 1e-6)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	conf, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)

	conf, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	src := `
NoiseSize = 64
LogLevel = "debug"

[Window]
Width = 800
Height = 600
Title = "test"
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	conf, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, conf.Window.Width)
	assert.Equal(t, "test", conf.Window.Title)
	assert.True(t, conf.Window.VSync)
	assert.Equal(t, 64, conf.NoiseSize)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, float32(20), conf.Camera.Speed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("NoiseSize = -1\n"), 0o644))
	_, err := config.Load(path)
	assert.ErrorContains(t, err, "noise size")

	require.NoError(t, os.WriteFile(path, []byte("NoiseSize = [\n"), 0o644))
	_, err = config.Load(path)
	assert.ErrorContains(t, err, "couldn't read config file")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	conf := config.Default()
	conf.Window.Title = "saved"
	conf.Seed = 1234
	require.NoError(t, config.Save(path, conf))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, conf, loaded)
}
