// Package main is the entry point for the gym scene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gym-scene/internal/config"
	"github.com/Faultbox/gym-scene/internal/engine/scene"
	"github.com/Faultbox/gym-scene/internal/logger"
	"github.com/Faultbox/gym-scene/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Gym Scene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	def, err := loadScene(cfg.Scene.File)
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		os.Exit(1)
	}

	v, err := viewer.New(cfg, def)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func loadScene(path string) (*scene.Definition, error) {
	if path == "" {
		return scene.Gym()
	}
	return scene.LoadFile(path)
}
