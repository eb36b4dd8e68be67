package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/gym-scene/internal/logger"
	"github.com/Faultbox/gym-scene/pkg/math"
)

// Program is a linked GL program implementing Uniforms. Writes go through
// glProgramUniform, so the program need not be bound when they happen.
type Program struct {
	ID uint32

	locations map[string]int32
	log       *zap.Logger
}

// NewProgram compiles and links a program.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		ID:        id,
		locations: make(map[string]int32),
		log:       logger.Named("shader"),
	}, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete frees the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// Location returns the cached location of name, -1 when the uniform is
// missing or optimized out.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		p.log.Debug("inactive uniform", zap.String("name", name))
	}
	p.locations[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc := p.Location(name); loc >= 0 {
		gl.ProgramUniformMatrix4fv(p.ID, loc, 1, false, &m[0])
	}
}

func (p *Program) SetVec2(name string, v [2]float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.ProgramUniform2f(p.ID, loc, v[0], v[1])
	}
}

func (p *Program) SetVec3(name string, v [3]float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.ProgramUniform3f(p.ID, loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetVec4(name string, v [4]float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.ProgramUniform4f(p.ID, loc, v[0], v[1], v[2], v[3])
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.ProgramUniform1f(p.ID, loc, v)
	}
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.Location(name); loc >= 0 {
		gl.ProgramUniform1i(p.ID, loc, v)
	}
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetSampler2D(name string, unit int32) {
	p.SetInt(name, unit)
}
