// Command scenedump prepares and renders a scene without a GPU and prints
// what it would have sent to the shader.
//
// Usage:
//
//	scenedump [flags]
//
// Flags:
//
//	-scene string     scene definition file (default: built-in gym)
//	-textures string  texture search path (default "textures")
//	-mode string      summary or trace (default "summary")
//	-format string    text or yaml (default "text")
//	-frames int       frames to render (default 1)
//	-dirty            skip repeated uniform writes
//	-placeholder      stand in a blank image for missing textures
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gym-scene/internal/assets"
	"github.com/Faultbox/gym-scene/internal/engine/bridge"
	"github.com/Faultbox/gym-scene/internal/engine/scene"
	"github.com/Faultbox/gym-scene/internal/engine/texture"
	"github.com/Faultbox/gym-scene/internal/engine/trace"
	"github.com/Faultbox/gym-scene/internal/logger"
)

type options struct {
	scenePath   string
	textureDirs []string
	mode        string
	format      string
	frames      int
	dirty       bool
	placeholder bool
	logLevel    string
	logFile     string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "scenedump: %v\n", err)
		os.Exit(2)
	}

	if err := initLogging(opts, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(opts, os.Stdout); err != nil {
		logger.Error("scenedump failed", zap.Error(err))
		os.Exit(1)
	}
}

// initLogging sends console logs to w so stdout carries only the dump.
func initLogging(opts options, w io.Writer) error {
	logger.Console = zapcore.Lock(zapcore.AddSync(w))
	return logger.Init(opts.logLevel, opts.logFile)
}

func parseFlags(args []string) (options, error) {
	var opts options
	var textures string

	fs := flag.NewFlagSet("scenedump", flag.ContinueOnError)
	fs.StringVar(&opts.scenePath, "scene", "", "Scene definition file (default: built-in gym)")
	fs.StringVar(&textures, "textures", "textures", "Texture search path (list separated by the OS path list separator)")
	fs.StringVar(&opts.mode, "mode", "summary", "Output: summary or trace")
	fs.StringVar(&opts.format, "format", "text", "Format: text or yaml")
	fs.IntVar(&opts.frames, "frames", 1, "Frames to render")
	fs.BoolVar(&opts.dirty, "dirty", false, "Skip repeated uniform writes")
	fs.BoolVar(&opts.placeholder, "placeholder", false, "Use a blank image for missing textures")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "Log level")
	fs.StringVar(&opts.logFile, "log-file", "", "Also log to this file")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.textureDirs = filepath.SplitList(textures)
	if opts.mode != "summary" && opts.mode != "trace" {
		return opts, fmt.Errorf("unknown mode %q", opts.mode)
	}
	if opts.format != "text" && opts.format != "yaml" {
		return opts, fmt.Errorf("unknown format %q", opts.format)
	}
	if opts.frames < 1 {
		return opts, fmt.Errorf("frames must be at least 1")
	}
	return opts, nil
}

func run(opts options, out io.Writer) error {
	def, err := loadScene(opts.scenePath)
	if err != nil {
		return err
	}

	dirs := assets.NewDirManager(opts.textureDirs...)
	defer dirs.Close()
	var src texture.Source = dirs
	if opts.placeholder {
		src = placeholderSource{next: dirs}
	}

	rec := trace.NewRecorder()
	var bopts []bridge.Option
	if opts.dirty {
		bopts = append(bopts, bridge.WithDirtyTracking())
	}
	reg := texture.NewRegistry(src, rec, texture.Config{FlipVertically: true})
	director := scene.NewDirector(def, reg, bridge.New(rec, bopts...), rec)
	defer director.Close()

	if err := director.Prepare(); err != nil {
		return err
	}
	for i := 0; i < opts.frames; i++ {
		if err := director.Render(); err != nil {
			return err
		}
	}

	if opts.mode == "trace" {
		return writeTrace(out, opts.format, rec.Calls())
	}
	return writeSummary(out, opts.format, summarize(director, rec))
}

func loadScene(path string) (*scene.Definition, error) {
	if path == "" {
		return scene.Gym()
	}
	return scene.LoadFile(path)
}

func writeTrace(out io.Writer, format string, calls []trace.Call) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(calls)
	}
	for _, c := range calls {
		var err error
		switch {
		case c.Name != "" && c.Value != nil:
			_, err = fmt.Fprintf(out, "%-7s %-28s %v\n", c.Op, c.Name, c.Value)
		case c.Name != "":
			_, err = fmt.Fprintf(out, "%-7s %s\n", c.Op, c.Name)
		default:
			_, err = fmt.Fprintf(out, "%-7s %v\n", c.Op, c.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
