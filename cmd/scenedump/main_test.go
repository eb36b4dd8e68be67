package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gym-scene/internal/engine/trace"
	"github.com/Faultbox/gym-scene/internal/logger"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-mode", "trace", "-format", "yaml", "-frames", "3", "-dirty"})
	require.NoError(t, err)
	assert.Equal(t, "trace", opts.mode)
	assert.Equal(t, "yaml", opts.format)
	assert.Equal(t, 3, opts.frames)
	assert.True(t, opts.dirty)
	assert.Equal(t, []string{"textures"}, opts.textureDirs)

	_, err = parseFlags([]string{"-mode", "frames"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"-format", "json"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"-frames", "0"})
	assert.Error(t, err)
}

func TestSummaryWithPlaceholders(t *testing.T) {
	opts, err := parseFlags([]string{"-textures", t.TempDir(), "-placeholder", "-format", "yaml"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(opts, &out))

	var s summary
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &s))
	assert.Len(t, s.Textures, 7)
	for i, row := range s.Textures {
		assert.True(t, row.Loaded, row.Tag)
		assert.Equal(t, i, row.Slot)
	}
	assert.Equal(t, []string{"stoneMAT", "metalMAT", "woodMAT", "rubberMAT"}, s.Materials)
	assert.Equal(t, 2, s.ActiveLights)
	assert.Equal(t, 64, s.LastFrame.Draws)
	assert.Equal(t, map[string]int{"plane": 2, "box": 34, "cylinder": 10, "sphere": 18}, s.DrawsByMesh)
	assert.Empty(t, s.LoadErrors)
}

func TestSummaryWithoutTextures(t *testing.T) {
	opts, err := parseFlags([]string{"-textures", t.TempDir()})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(opts, &out))
	assert.Contains(t, out.String(), "64 draws, 0 textured, 64 solid")
	assert.Contains(t, out.String(), "unresolved")
}

func TestTraceText(t *testing.T) {
	opts, err := parseFlags([]string{"-textures", t.TempDir(), "-placeholder", "-mode", "trace"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(opts, &out))
	assert.Contains(t, out.String(), "draw    plane")
	assert.Contains(t, out.String(), "uniform pointLights[0].bActive")
}

func TestWriteTraceYAML(t *testing.T) {
	var out bytes.Buffer
	calls := []trace.Call{
		{Op: trace.OpUniform, Name: "UVscale", Value: [2]float32{2, 2}},
		{Op: trace.OpDraw, Name: "box"},
	}
	require.NoError(t, writeTrace(&out, "yaml", calls))

	var got []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "uniform", got[0]["op"])
	assert.Equal(t, []interface{}{2, 2}, got[0]["value"])
	assert.Equal(t, "box", got[1]["name"])
	assert.NotContains(t, got[1], "value")
}

func TestInitLoggingKeepsStdoutClean(t *testing.T) {
	var logs bytes.Buffer
	prevLog, prevSugar := logger.Log, logger.Sugar
	t.Cleanup(func() {
		logger.Console = os.Stdout
		logger.Log, logger.Sugar = prevLog, prevSugar
	})

	require.NoError(t, initLogging(options{logLevel: "warn"}, &logs))
	logger.Info("dropped below level")
	logger.Warn("texture not loaded")
	logger.Sync()

	assert.Contains(t, logs.String(), "texture not loaded")
	assert.NotContains(t, logs.String(), "dropped below level")
}
