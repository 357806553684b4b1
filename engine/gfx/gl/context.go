package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/tri/engine/gfx/shader"
)

// GLContext drives the current OpenGL context for the shader pipeline.
// It must be used from the thread that owns the context.
type GLContext struct{}

var _ shader.Context = GLContext{}

func NewGLContext() GLContext { return GLContext{} }

func (GLContext) CreateShader(stage shader.Stage) uint32 {
	switch stage {
	case shader.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shader.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (GLContext) ShaderSource(sh uint32, src string) {
	// gl.Strs needs a null-terminated string
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
}

func (GLContext) CompileShader(sh uint32) { gl.CompileShader(sh) }

func (GLContext) CompileStatus(sh uint32) (bool, error) {
	clearErrors()
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if err := lastError("glGetShaderiv(COMPILE_STATUS)"); err != nil {
		return false, err
	}
	return status == gl.TRUE, nil
}

func (GLContext) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (GLContext) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (GLContext) CreateProgram() uint32 { return gl.CreateProgram() }

func (GLContext) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }

func (GLContext) LinkProgram(prog uint32) { gl.LinkProgram(prog) }

func (GLContext) LinkStatus(prog uint32) (bool, error) {
	clearErrors()
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if err := lastError("glGetProgramiv(LINK_STATUS)"); err != nil {
		return false, err
	}
	return status == gl.TRUE, nil
}

func (GLContext) ProgramInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (GLContext) DeleteProgram(prog uint32) { gl.DeleteProgram(prog) }

// clearErrors drops errors left over from earlier calls so lastError only
// sees the query that follows. Bounded in case there is no current context.
func clearErrors() {
	for i := 0; i < 16 && gl.GetError() != gl.NO_ERROR; i++ {
	}
}

func lastError(call string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error 0x%04X", call, code)
	}
	return nil
}
