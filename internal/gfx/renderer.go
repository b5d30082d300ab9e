package gfx

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// quadVerts is a unit quad centred on the origin, ordered for TRIANGLE_STRIP.
var quadVerts = [8]float32{
	-0.5, -0.5,
	0.5, -0.5,
	-0.5, 0.5,
	0.5, 0.5,
}

// Renderer owns the single quad program and its static geometry. Every draw
// differs only by the uOffset/uScale/uColor uniforms.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uOffset int32
	uScale  int32
	uColor  int32
}

// NewRenderer needs a current GL context with gl.Init already done.
func NewRenderer() (*Renderer, error) {
	prog, err := LinkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	r := &Renderer{prog: prog}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(prog)
	r.uOffset = gl.GetUniformLocation(prog, gl.Str("uOffset\x00"))
	r.uScale = gl.GetUniformLocation(prog, gl.Str("uScale\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	if r.uOffset < 0 || r.uScale < 0 || r.uColor < 0 {
		r.Destroy()
		return nil, fmt.Errorf("quad program: missing uniform (offset=%d scale=%d color=%d)", r.uOffset, r.uScale, r.uColor)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	r.vbo, r.vao, r.prog = 0, 0, 0
}

// SetViewport maps NDC onto the framebuffer. The window is fixed-size, so this
// is only needed once after the context is created.
func (r *Renderer) SetViewport(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
}

// Clear fills the framebuffer with color and binds the quad program for the frame.
func (r *Renderer) Clear(color mgl32.Vec3) {
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.ClearColor(color.X(), color.Y(), color.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawQuad draws the shared quad once with the given uniforms.
func (r *Renderer) DrawQuad(offset, scale mgl32.Vec2, color mgl32.Vec3) {
	gl.Uniform2f(r.uOffset, offset.X(), offset.Y())
	gl.Uniform2f(r.uScale, scale.X(), scale.Y())
	gl.Uniform3f(r.uColor, color.X(), color.Y(), color.Z())
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}
