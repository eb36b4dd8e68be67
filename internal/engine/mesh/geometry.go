package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vertex is an interleaved mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// VertexSize is the byte stride of Vertex.
const VertexSize = 8 * 4

// Geometry is an indexed triangle list with counter-clockwise front faces.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// Tessellation of the curved primitives.
const (
	CylinderSegments = 36
	SphereStacks     = 18
	SphereSlices     = 36
)

// Generate builds the geometry of a primitive:
//   - Plane: 2x2 on XZ centered at the origin, facing +Y.
//   - Box: unit cube centered at the origin.
//   - Cylinder: radius 1, from y=0 to y=1, capped.
//   - Sphere: radius 1 centered at the origin.
func Generate(k Kind) (Geometry, error) {
	switch k {
	case Plane:
		return planeGeometry(), nil
	case Box:
		return boxGeometry(), nil
	case Cylinder:
		return cylinderGeometry(CylinderSegments), nil
	case Sphere:
		return sphereGeometry(SphereStacks, SphereSlices), nil
	}
	return Geometry{}, fmt.Errorf("no geometry for %v", k)
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (g Geometry) Bounds() (lo, hi [3]float32) {
	if len(g.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = g.Vertices[0].Position, g.Vertices[0].Position
	for _, v := range g.Vertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math32.Min(lo[i], v.Position[i])
			hi[i] = math32.Max(hi[i], v.Position[i])
		}
	}
	return lo, hi
}

func planeGeometry() Geometry {
	up := [3]float32{0, 1, 0}
	return Geometry{
		Vertices: []Vertex{
			{Position: [3]float32{-1, 0, 1}, Normal: up, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{1, 0, 1}, Normal: up, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{1, 0, -1}, Normal: up, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-1, 0, -1}, Normal: up, TexCoord: [2]float32{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func boxGeometry() Geometry {
	// normal, then two in-face axes with a x b == normal
	faces := [6][3][3]float32{
		{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
		{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
		{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
		{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	var g Geometry
	for _, f := range faces {
		n, a, b := f[0], f[1], f[2]
		base := uint32(len(g.Vertices))
		for _, c := range corners {
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = 0.5 * (n[i] + c[0]*a[i] + c[1]*b[i])
			}
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   n,
				TexCoord: [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

func cylinderGeometry(segments int) Geometry {
	var g Geometry
	step := 2 * math32.Pi / float32(segments)

	// side: bottom/top pairs, seam duplicated for texture wrap
	for i := 0; i <= segments; i++ {
		s, c := math32.Sincos(float32(i) * step)
		u := float32(i) / float32(segments)
		n := [3]float32{c, 0, s}
		g.Vertices = append(g.Vertices,
			Vertex{Position: [3]float32{c, 0, s}, Normal: n, TexCoord: [2]float32{u, 0}},
			Vertex{Position: [3]float32{c, 1, s}, Normal: n, TexCoord: [2]float32{u, 1}},
		)
	}
	for i := 0; i < segments; i++ {
		b0 := uint32(2 * i)
		t0, b1, t1 := b0+1, b0+2, b0+3
		g.Indices = append(g.Indices, b0, t0, b1, b1, t0, t1)
	}

	addCap := func(y, ny float32) {
		center := uint32(len(g.Vertices))
		n := [3]float32{0, ny, 0}
		g.Vertices = append(g.Vertices, Vertex{Position: [3]float32{0, y, 0}, Normal: n, TexCoord: [2]float32{0.5, 0.5}})
		for i := 0; i <= segments; i++ {
			s, c := math32.Sincos(float32(i) * step)
			g.Vertices = append(g.Vertices, Vertex{
				Position: [3]float32{c, y, s},
				Normal:   n,
				TexCoord: [2]float32{0.5 + c*0.5, 0.5 + s*0.5},
			})
		}
		for i := uint32(0); i < uint32(segments); i++ {
			p0, p1 := center+1+i, center+2+i
			if ny > 0 {
				g.Indices = append(g.Indices, center, p1, p0)
			} else {
				g.Indices = append(g.Indices, center, p0, p1)
			}
		}
	}
	addCap(1, 1)
	addCap(0, -1)

	return g
}

func sphereGeometry(stacks, slices int) Geometry {
	var g Geometry
	for st := 0; st <= stacks; st++ {
		sinPhi, cosPhi := math32.Sincos(math32.Pi * float32(st) / float32(stacks))
		for sl := 0; sl <= slices; sl++ {
			sinTheta, cosTheta := math32.Sincos(2 * math32.Pi * float32(sl) / float32(slices))
			p := [3]float32{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   p,
				TexCoord: [2]float32{float32(sl) / float32(slices), 1 - float32(st)/float32(stacks)},
			})
		}
	}

	row := uint32(slices + 1)
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			a := uint32(st)*row + uint32(sl)
			b := a + row
			// pole rows collapse one triangle of each quad
			if st != 0 {
				g.Indices = append(g.Indices, a, a+1, b)
			}
			if st != stacks-1 {
				g.Indices = append(g.Indices, a+1, b+1, b)
			}
		}
	}
	return g
}
