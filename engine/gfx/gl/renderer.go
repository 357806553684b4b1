package glbackend

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/tri/engine/assets"
	"github.com/hubastard/tri/engine/core"
	"github.com/hubastard/tri/engine/gfx/shader"
)

// File names looked up in Config.ShaderDir.
const (
	VertexFile   = "triangle.vert"
	FragmentFile = "triangle.frag"
)

// Triangle is the geometry uploaded by Init, in clip space.
var Triangle = []mgl32.Vec3{
	{-0.7, -0.7, 0.0},
	{0.7, -0.7, 0.0},
	{0.0, 0.7, 0.0},
}

type RendererGL struct {
	win      core.Window
	cfg      core.Config
	program  *shader.Program
	position uint32
	vao      uint32
	vbo      uint32
}

func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win, cfg: cfg}
	if err := r.Init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	src := shader.DefaultSources
	if r.cfg.ShaderDir != "" {
		var err error
		src, err = assets.LoadSources(r.cfg.ShaderDir, VertexFile, FragmentFile)
		if err != nil {
			return err
		}
	}

	prog, err := shader.Build(NewGLContext(), src)
	if err != nil {
		return err
	}
	r.program = prog
	log.Printf("GL: program %d linked from %d shaders", prog.Handle(), len(prog.Shaders()))

	loc := gl.GetAttribLocation(prog.Handle(), gl.Str(shader.PositionAttrib+"\x00"))
	if loc < 0 {
		return fmt.Errorf("attribute %q not found in program %d", shader.PositionAttrib, prog.Handle())
	}
	r.position = uint32(loc)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Triangle)*3*4, gl.Ptr(Triangle), gl.STATIC_DRAW)

	// in vec3 position, tightly packed
	gl.VertexAttribPointerWithOffset(r.position, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(r.position)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != nil {
		r.program.Release()
		r.program = nil
	}
}

// Program returns the linked program, nil before Init succeeds.
func (r *RendererGL) Program() *shader.Program { return r.program }

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) DrawTriangle() {
	gl.UseProgram(r.program.Handle())
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(Triangle)))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}
