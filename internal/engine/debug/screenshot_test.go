package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
}

func TestGenerateFilenameSuffixesRepeats(t *testing.T) {
	sc := NewScreenshotCapture("shots", "gym")
	sc.now = fixedClock

	assert.Equal(t, filepath.Join("shots", "gym_2024-03-09_14-05-07.png"), sc.GenerateFilename())
	assert.Equal(t, filepath.Join("shots", "gym_2024-03-09_14-05-07_1.png"), sc.GenerateFilename())
	assert.Equal(t, filepath.Join("shots", "gym_2024-03-09_14-05-07_2.png"), sc.GenerateFilename())
}

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(filepath.Join(dir, "out"), "gym")
	sc.now = fixedClock

	// 1x2, bottom row (red) first as GL reads it
	pixels := []byte{255, 0, 0, 255, 0, 0, 255, 255}
	name, err := sc.CaptureFromPixels(pixels, 1, 2)
	require.NoError(t, err)

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0xffff), b, "top row is the last GL row")
	r, _, _, _ = img.At(0, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "gym")
	_, err := sc.CaptureFromPixels(make([]byte, 7), 1, 2)
	assert.Error(t, err)
}
