// Package shaders embeds the GLSL sources used by the example programs.
package shaders

import "embed"

//go:embed *.vert *.tesc *.tese *.geom *.frag
var FS embed.FS
