// Package shader provides OpenGL shader compilation and the uniform
// interface the scene renders through.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileError carries the driver's info log for a failed compile or link.
type CompileError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("shader %s failed: no info log", e.Stage)
	}
	return fmt.Sprintf("shader %s failed: %s", e.Stage, e.Log)
}

type stage struct {
	name   string
	kind   uint32
	source string
}

// CompileProgram compiles the vertex and fragment stages and links them.
// Failures are returned as *CompileError.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	stages := []stage{
		{"vertex", gl.VERTEX_SHADER, vertexSrc},
		{"fragment", gl.FRAGMENT_SHADER, fragmentSrc},
	}

	program := gl.CreateProgram()
	for _, s := range stages {
		id, err := compileStage(s)
		if err != nil {
			gl.DeleteProgram(program)
			return 0, err
		}
		gl.AttachShader(program, id)
		// Flagged for deletion; freed once the program lets go of it.
		defer gl.DeleteShader(id)
	}
	gl.LinkProgram(program)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		err := &CompileError{Stage: "link", Log: infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)}
		gl.DeleteProgram(program)
		return 0, err
	}
	return program, nil
}

func compileStage(s stage) (uint32, error) {
	id := gl.CreateShader(s.kind)
	src, free := gl.Strs(s.source + "\x00")
	gl.ShaderSource(id, 1, src, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		err := &CompileError{Stage: s.name, Log: infoLog(id, gl.GetShaderiv, gl.GetShaderInfoLog)}
		gl.DeleteShader(id)
		return 0, err
	}
	return id, nil
}

// infoLog reads a shader or program info log through the matching pair of
// GL getters.
func infoLog(id uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	param(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	read(id, n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}
