package texture

import (
	"errors"
	"image"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	next     uint32
	uploaded []*Image
	bound    map[int]uint32
	deleted  []uint32
	failWith error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{next: 100, bound: make(map[int]uint32)}
}

func (d *fakeDevice) Upload(img *Image) (uint32, error) {
	if d.failWith != nil {
		return 0, d.failWith
	}
	d.next++
	d.uploaded = append(d.uploaded, img)
	return d.next, nil
}

func (d *fakeDevice) Bind(unit int, handle uint32) { d.bound[unit] = handle }
func (d *fakeDevice) Delete(handle uint32)         { d.deleted = append(d.deleted, handle) }

type mapSource map[string][]byte

func (m mapSource) Load(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func rgbPNG(t *testing.T) []byte {
	return encodePNG(t, opaqueRGBA(4, 4))
}

func TestRegisterAssignsSequentialSlots(t *testing.T) {
	dev := newFakeDevice()
	src := mapSource{"a.png": rgbPNG(t), "b.png": rgbPNG(t), "c.png": rgbPNG(t)}
	r := NewRegistry(src, dev, Config{FlipVertically: true})

	for _, tag := range []string{"a", "b", "c"} {
		require.NoError(t, r.Register(tag+".png", tag))
	}

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"a", "b", "c"}, r.Tags())
	for i, tag := range []string{"a", "b", "c"} {
		slot, ok := r.FindSlot(tag)
		require.True(t, ok)
		assert.Equal(t, i, slot)
	}

	r.BindAll()
	assert.Equal(t, map[int]uint32{0: 101, 1: 102, 2: 103}, dev.bound)
}

func TestRegisterMissingFile(t *testing.T) {
	r := NewRegistry(mapSource{}, newFakeDevice(), Config{})

	err := r.Register("nope.png", "nope")
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "nope.png", decErr.Source)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, 0, r.Len())
}

func TestRegisterUnsupportedChannels(t *testing.T) {
	dev := newFakeDevice()
	gray := encodePNG(t, image.NewGray(image.Rect(0, 0, 2, 2)))
	r := NewRegistry(mapSource{"g.png": gray}, dev, Config{})

	err := r.Register("g.png", "gray")
	var fmtErr *UnsupportedFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, 1, fmtErr.Channels)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, dev.uploaded, "nothing reaches the device")
}

func TestRegisterUploadFailure(t *testing.T) {
	dev := newFakeDevice()
	dev.failWith = errors.New("out of memory")
	r := NewRegistry(mapSource{"a.png": rgbPNG(t)}, dev, Config{})

	assert.Error(t, r.Register("a.png", "a"))
	assert.Equal(t, 0, r.Len())
}

func TestRegisterOversizedHeader(t *testing.T) {
	dev := newFakeDevice()
	src := mapSource{
		"ok.png":   rgbPNG(t),
		"huge.png": resizedPNG(t, 60000, 60000),
		"huge.tga": append(tgaHeader(tgaTypeRLE, 65535, 65535, 32, false), 0x82, 1, 2, 3, 4),
	}
	r := NewRegistry(src, dev, Config{})
	require.NoError(t, r.Register("ok.png", "ok"))

	for _, name := range []string{"huge.png", "huge.tga"} {
		err := r.Register(name, name)
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr, name)
		assert.Equal(t, name, decErr.Source)
		assert.ErrorIs(t, err, ErrImageSize)
	}
	assert.Equal(t, 1, r.Len())
	assert.Len(t, dev.uploaded, 1)
}

func TestFindMissingTag(t *testing.T) {
	r := NewRegistry(mapSource{"a.png": rgbPNG(t)}, newFakeDevice(), Config{})

	slot, ok := r.FindSlot("a")
	assert.False(t, ok)
	assert.Equal(t, -1, slot)

	require.NoError(t, r.Register("a.png", "a"))
	slot, ok = r.FindSlot("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, slot)
	handle, ok := r.FindHandle("missing")
	assert.False(t, ok)
	assert.Zero(t, handle)
}

func TestDuplicateTagFirstWins(t *testing.T) {
	dev := newFakeDevice()
	r := NewRegistry(mapSource{"a.png": rgbPNG(t)}, dev, Config{})

	require.NoError(t, r.Register("a.png", "wall"))
	require.NoError(t, r.Register("a.png", "wall"))

	assert.Equal(t, 2, r.Len(), "both occupy a unit")
	slot, ok := r.FindSlot("wall")
	require.True(t, ok)
	assert.Equal(t, 0, slot)
	handle, _ := r.FindHandle("wall")
	assert.Equal(t, uint32(101), handle)
}

func TestRegisterCapacity(t *testing.T) {
	r := NewRegistry(mapSource{"a.png": rgbPNG(t)}, newFakeDevice(), Config{MaxUnits: 2})

	require.NoError(t, r.Register("a.png", "one"))
	require.NoError(t, r.Register("a.png", "two"))
	err := r.Register("a.png", "three")
	assert.ErrorIs(t, err, ErrTooManyTextures)
	assert.Equal(t, 2, r.Len())
}

func TestMaxUnitsClamped(t *testing.T) {
	r := NewRegistry(nil, newFakeDevice(), Config{MaxUnits: 64})
	img := &Image{Pixels: make([]byte, 3), Width: 1, Height: 1, Channels: 3}
	for i := 0; i < MaxTextureUnits; i++ {
		require.NoError(t, r.RegisterImage(img, "mem", "t"))
	}
	assert.ErrorIs(t, r.RegisterImage(img, "mem", "t"), ErrTooManyTextures)
}

func TestRegisterWithoutSource(t *testing.T) {
	r := NewRegistry(nil, newFakeDevice(), Config{})
	var decErr *DecodeError
	assert.ErrorAs(t, r.Register("a.png", "a"), &decErr)
}

func TestRelease(t *testing.T) {
	dev := newFakeDevice()
	r := NewRegistry(mapSource{"a.png": rgbPNG(t)}, dev, Config{})
	require.NoError(t, r.Register("a.png", "a"))
	require.NoError(t, r.Register("a.png", "b"))

	r.Release()

	assert.Equal(t, []uint32{101, 102}, dev.deleted)
	assert.Equal(t, 0, r.Len())
	_, ok := r.FindSlot("a")
	assert.False(t, ok)
}
