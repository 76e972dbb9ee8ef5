// Package assets embeds the GLSL sources so the binary runs from any directory.
package assets

import "embed"

// Shaders holds every program under shaders/.
//
//go:embed shaders/*.vert shaders/*.frag
var Shaders embed.FS
