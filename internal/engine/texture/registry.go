package texture

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gym-scene/internal/logger"
)

// MaxTextureUnits is the number of texture units the scene shader samples
// from. Slots are assigned in registration order and never exceed it.
const MaxTextureUnits = 16

// ErrTooManyTextures is returned when every texture unit is taken.
var ErrTooManyTextures = errors.New("texture units exhausted")

// DecodeError reports a texture source that could not be read or decoded.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not load image %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports a decoded image whose channel count is
// neither 3 (RGB) nor 4 (RGBA).
type UnsupportedFormatError struct {
	Source   string
	Channels int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("image %s has %d channels, only 3 or 4 are supported", e.Source, e.Channels)
}

// Source supplies raw texture file contents.
type Source interface {
	Load(name string) ([]byte, error)
}

// Device is the GPU side of texture management.
type Device interface {
	// Upload allocates a texture object, uploads the pixels and generates
	// mipmaps. It returns the texture handle.
	Upload(img *Image) (uint32, error)
	// Bind binds handle to texture unit.
	Bind(unit int, handle uint32)
	// Delete frees a texture object.
	Delete(handle uint32)
}

// Entry is a registered texture. Slot is the texture unit it binds to.
type Entry struct {
	Tag    string
	Handle uint32
	Slot   int
}

// Config configures a Registry.
type Config struct {
	FlipVertically bool
	// MaxUnits caps the number of textures; zero means MaxTextureUnits.
	MaxUnits int
}

// Registry maps tags to uploaded textures and their texture unit.
// It is filled once at scene load and read-only afterwards.
type Registry struct {
	source Source
	device Device
	config Config

	entries []Entry
	// index holds the first entry registered under each tag.
	index map[string]int
	log   *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(source Source, device Device, cfg Config) *Registry {
	if cfg.MaxUnits <= 0 || cfg.MaxUnits > MaxTextureUnits {
		cfg.MaxUnits = MaxTextureUnits
	}
	return &Registry{
		source: source,
		device: device,
		config: cfg,
		index:  make(map[string]int),
		log:    logger.Named("texture"),
	}
}

// Register loads name through the source and registers it under tag.
func (r *Registry) Register(name, tag string) error {
	if r.source == nil {
		return &DecodeError{Source: name, Err: errors.New("no texture source configured")}
	}
	data, err := r.source.Load(name)
	if err != nil {
		return &DecodeError{Source: name, Err: err}
	}
	return r.RegisterBytes(data, name, tag)
}

// RegisterBytes decodes data and registers it under tag. source names the
// data in errors and selects decoders that cannot sniff their format.
func (r *Registry) RegisterBytes(data []byte, source, tag string) error {
	if len(r.entries) >= r.config.MaxUnits {
		return fmt.Errorf("registering %s: %w", tag, ErrTooManyTextures)
	}

	img, err := Decode(data, DecodeOptions{
		FlipVertically: r.config.FlipVertically,
		Format:         FormatFromPath(source),
	})
	if err != nil {
		return &DecodeError{Source: source, Err: err}
	}
	return r.RegisterImage(img, source, tag)
}

// RegisterImage uploads an already decoded image under tag.
func (r *Registry) RegisterImage(img *Image, source, tag string) error {
	if len(r.entries) >= r.config.MaxUnits {
		return fmt.Errorf("registering %s: %w", tag, ErrTooManyTextures)
	}
	if img.Channels != 3 && img.Channels != 4 {
		return &UnsupportedFormatError{Source: source, Channels: img.Channels}
	}

	handle, err := r.device.Upload(img)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", source, err)
	}

	slot := len(r.entries)
	r.entries = append(r.entries, Entry{Tag: tag, Handle: handle, Slot: slot})
	if _, dup := r.index[tag]; dup {
		r.log.Warn("duplicate texture tag, first registration wins",
			zap.String("tag", tag), zap.String("source", source))
	} else {
		r.index[tag] = slot
	}

	r.log.Info("loaded image",
		zap.String("source", source),
		zap.String("tag", tag),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels),
		zap.Int("slot", slot),
	)
	return nil
}

// BindAll binds every registered texture to the unit matching its slot.
// Call once after registration and before drawing.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.device.Bind(e.Slot, e.Handle)
	}
}

// FindSlot returns the texture unit of tag, or -1 and false.
func (r *Registry) FindSlot(tag string) (int, bool) {
	i, ok := r.index[tag]
	if !ok {
		return -1, false
	}
	return r.entries[i].Slot, true
}

// FindHandle returns the GPU handle of tag, or 0 and false.
func (r *Registry) FindHandle(tag string) (uint32, bool) {
	i, ok := r.index[tag]
	if !ok {
		return 0, false
	}
	return r.entries[i].Handle, true
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the registered entries in slot order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Tags returns the registered tags in slot order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.Tag
	}
	return tags
}

// Release deletes every texture and empties the registry.
func (r *Registry) Release() {
	for _, e := range r.entries {
		r.device.Delete(e.Handle)
	}
	r.entries = nil
	r.index = make(map[string]int)
}
