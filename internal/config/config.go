package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Window struct {
	Width      int
	Height     int
	Title      string
	VSync      bool
	Fullscreen bool
}

type Camera struct {
	Speed       float32
	Sensitivity float32
	// FOV is the vertical field of view in degrees.
	FOV  float32
	Near float32
	Far  float32
}

type Config struct {
	Window Window
	Camera Camera
	// ShaderDir overrides the embedded shaders when set.
	ShaderDir string
	NoiseSize int
	// Seed of 0 picks a time based seed.
	Seed     int64
	LogLevel string
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1920,
			Height: 1080,
			Title:  "Magiebleue",
			VSync:  true,
		},
		Camera: Camera{
			Speed:       20,
			Sensitivity: 0.002,
			FOV:         60,
			Near:        0.01,
			Far:         1000,
		},
		NoiseSize: 128,
		LogLevel:  "info",
	}
}

// Load decodes the TOML file at path over the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return conf, errors.Wrapf(err, "couldn't read config file %s", path)
	}
	return conf, conf.Validate()
}

// Save writes conf to path as TOML.
func Save(path string, conf Config) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return errors.Wrap(err, "couldn't encode config")
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "couldn't write config file %s", path)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.NoiseSize <= 0 {
		return errors.Errorf("noise size must be positive, got %d", c.NoiseSize)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	return nil
}

// Aspect is the window width over its height.
func (c Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}
