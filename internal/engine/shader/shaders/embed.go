// Package shaders embeds the GLSL sources of the scene program.
package shaders

import _ "embed"

// SceneVertex transforms mesh vertices by model, view and projection.
//
//go:embed scene.vert
var SceneVertex string

// SceneFragment shades with a texture or solid color, Phong point lights
// and a material.
//
//go:embed scene.frag
var SceneFragment string
