package shader

import (
	"strings"

	"github.com/hubastard/tri/engine/profiler"
)

// Shader is a compiled shader object. It belongs to the caller until a
// successful Link hands it to a Program.
type Shader struct {
	ctx      Context
	handle   uint32
	stage    Stage
	owner    *Program
	released bool
}

func (s *Shader) Handle() uint32 { return s.handle }
func (s *Shader) Stage() Stage   { return s.stage }

// Attached reports whether a program owns the shader.
func (s *Shader) Attached() bool { return s.owner != nil }

// Release deletes the shader object. It is a no-op once released and for
// shaders owned by a program; those go away with Program.Release.
func (s *Shader) Release() {
	if s == nil || s.released || s.owner != nil {
		return
	}
	s.ctx.DeleteShader(s.handle)
	s.released = true
}

// Compile makes one attempt at compiling src for the given stage.
// On failure the driver object is deleted before returning.
func Compile(ctx Context, stage Stage, src string) (*Shader, error) {
	defer profiler.Start("shader.Compile." + stage.String())()

	if strings.TrimSpace(strings.TrimRight(src, "\x00")) == "" {
		return nil, &Error{Kind: CompilationFailed, Stage: stage, Log: "empty " + stage.String() + " shader source"}
	}

	h := ctx.CreateShader(stage)
	if h == 0 {
		return nil, &Error{Kind: ResourceCreationFailed, Stage: stage, Log: MsgCreateShader}
	}
	ctx.ShaderSource(h, src)
	ctx.CompileShader(h)

	// An unreadable flag counts as a failed compile.
	if ok, err := ctx.CompileStatus(h); err != nil || !ok {
		log := ctx.ShaderInfoLog(h)
		if strings.TrimSpace(log) == "" {
			log = FallbackCompileLog
		}
		ctx.DeleteShader(h)
		return nil, &Error{Kind: CompilationFailed, Stage: stage, Log: log}
	}
	return &Shader{ctx: ctx, handle: h, stage: stage}, nil
}
