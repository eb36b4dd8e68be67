// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// SceneConfig controls how scene resources are located and uploaded.
type SceneConfig struct {
	// File is a scene definition to load instead of the built-in gym.
	File string `yaml:"file"`
	// TextureDirs are searched in order for the scene's texture files.
	TextureDirs []string `yaml:"texture_dirs"`
	// FlipVertically flips decoded images so row 0 is the bottom row, as GL expects.
	FlipVertically bool `yaml:"flip_vertically"`
	// DirtyTracking skips uniform uploads whose value did not change.
	DirtyTracking bool `yaml:"dirty_tracking"`
}

// CameraConfig holds the initial orbit camera and projection settings.
type CameraConfig struct {
	Distance     float32 `yaml:"distance"`
	Pitch        float32 `yaml:"pitch"` // degrees
	Yaw          float32 `yaml:"yaw"`   // degrees
	FOV          float32 `yaml:"fov"`   // degrees
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
	Orthographic bool    `yaml:"orthographic"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Scene: SceneConfig{
			TextureDirs:    []string{"textures"},
			FlipVertically: true,
			DirtyTracking:  false,
		},
		Camera: CameraConfig{
			Distance: 45,
			Pitch:    25,
			Yaw:      0,
			FOV:      45,
			Near:     0.1,
			Far:      200,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if len(c.Scene.TextureDirs) == 0 {
		errs = append(errs, errors.New("scene: no texture_dirs configured"))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: invalid clip range %g..%g", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov %g out of range", c.Camera.FOV))
	}
	return errors.Join(errs...)
}
