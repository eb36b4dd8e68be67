package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/gym-scene/internal/logger"
)

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// GLProvider keeps one vertex array per primitive kind.
type GLProvider struct {
	meshes map[Kind]*glMesh
	log    *zap.Logger
}

// NewGLProvider creates a provider with nothing loaded.
func NewGLProvider() *GLProvider {
	return &GLProvider{
		meshes: make(map[Kind]*glMesh),
		log:    logger.Named("mesh"),
	}
}

func (p *GLProvider) LoadPlane() error    { return p.load(Plane) }
func (p *GLProvider) LoadBox() error      { return p.load(Box) }
func (p *GLProvider) LoadCylinder() error { return p.load(Cylinder) }
func (p *GLProvider) LoadSphere() error   { return p.load(Sphere) }

func (p *GLProvider) DrawPlane()    { p.draw(Plane) }
func (p *GLProvider) DrawBox()      { p.draw(Box) }
func (p *GLProvider) DrawCylinder() { p.draw(Cylinder) }
func (p *GLProvider) DrawSphere()   { p.draw(Sphere) }

// load uploads a primitive once; later calls are no-ops.
func (p *GLProvider) load(k Kind) error {
	if _, ok := p.meshes[k]; ok {
		return nil
	}

	geom, err := Generate(k)
	if err != nil {
		return err
	}
	if len(geom.Vertices) == 0 || len(geom.Indices) == 0 {
		return fmt.Errorf("empty %v geometry", k)
	}

	m := &glMesh{indexCount: int32(len(geom.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geom.Vertices)*VertexSize, unsafe.Pointer(&geom.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, VertexSize, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, VertexSize, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, VertexSize, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geom.Indices)*4, unsafe.Pointer(&geom.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	p.meshes[k] = m
	p.log.Debug("mesh loaded",
		zap.Stringer("kind", k),
		zap.Int("vertices", len(geom.Vertices)),
		zap.Int("indices", len(geom.Indices)),
	)
	return nil
}

func (p *GLProvider) draw(k Kind) {
	m, ok := p.meshes[k]
	if !ok {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Close frees every loaded mesh.
func (p *GLProvider) Close() {
	for k, m := range p.meshes {
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
		delete(p.meshes, k)
	}
}
