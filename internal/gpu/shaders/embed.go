// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// RayTraceVertexShader emits a full-screen triangle from gl_VertexID.
//
//go:embed raytrace.vert
var RayTraceVertexShader string

// RayTraceFragmentShader traces spheres and triangles read from texture buffers.
//
//go:embed raytrace.frag
var RayTraceFragmentShader string

// LinesVertexShader is the vertex shader for debug overlay lines.
//
//go:embed lines.vert
var LinesVertexShader string

// LinesFragmentShader is the fragment shader for debug overlay lines.
//
//go:embed lines.frag
var LinesFragmentShader string
