package shader

import (
	"errors"
	"fmt"
	"strings"
)

// fakeContext is an in-memory driver. Sources compile when they contain a
// main function with balanced brackets; programs link when they hold one
// vertex and one fragment shader whose varyings agree.
type fakeContext struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	calls    map[string]int

	failCreateShader  bool
	failCreateProgram bool
	unreadableStatus  bool
	silentLogs        bool
}

type fakeShader struct {
	stage    Stage
	src      string
	compiled bool
	log      string
	deleted  bool
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
	deleted  bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		shaders:  map[uint32]*fakeShader{},
		programs: map[uint32]*fakeProgram{},
		calls:    map[string]int{},
	}
}

var errUnreadable = errors.New("fake: status unreadable")

func (c *fakeContext) CreateShader(stage Stage) uint32 {
	c.calls["CreateShader"]++
	if c.failCreateShader {
		return 0
	}
	c.next++
	c.shaders[c.next] = &fakeShader{stage: stage}
	return c.next
}

func (c *fakeContext) ShaderSource(shader uint32, src string) {
	c.calls["ShaderSource"]++
	c.shaders[shader].src = strings.TrimRight(src, "\x00")
}

func (c *fakeContext) CompileShader(shader uint32) {
	c.calls["CompileShader"]++
	sh := c.shaders[shader]
	if msg := checkSyntax(sh.src); msg != "" {
		sh.log = fmt.Sprintf("0:1(1): error: %s in %s shader", msg, sh.stage)
		return
	}
	sh.compiled = true
}

func (c *fakeContext) CompileStatus(shader uint32) (bool, error) {
	c.calls["CompileStatus"]++
	if c.unreadableStatus {
		return false, errUnreadable
	}
	return c.shaders[shader].compiled, nil
}

func (c *fakeContext) ShaderInfoLog(shader uint32) string {
	c.calls["ShaderInfoLog"]++
	if c.silentLogs {
		return ""
	}
	return c.shaders[shader].log
}

func (c *fakeContext) DeleteShader(shader uint32) {
	c.calls["DeleteShader"]++
	c.shaders[shader].deleted = true
}

func (c *fakeContext) CreateProgram() uint32 {
	c.calls["CreateProgram"]++
	if c.failCreateProgram {
		return 0
	}
	c.next++
	c.programs[c.next] = &fakeProgram{}
	return c.next
}

func (c *fakeContext) AttachShader(program, shader uint32) {
	c.calls["AttachShader"]++
	p := c.programs[program]
	p.attached = append(p.attached, shader)
}

func (c *fakeContext) LinkProgram(program uint32) {
	c.calls["LinkProgram"]++
	p := c.programs[program]
	var vs, fs *fakeShader
	for _, h := range p.attached {
		sh := c.shaders[h]
		if !sh.compiled || sh.deleted {
			p.log = fmt.Sprintf("error: shader %d is not compiled", h)
			return
		}
		switch sh.stage {
		case StageVertex:
			vs = sh
		case StageFragment:
			fs = sh
		}
	}
	switch {
	case vs == nil:
		p.log = "error: no vertex shader attached"
		return
	case fs == nil:
		p.log = "error: no fragment shader attached"
		return
	}
	outs := varyings(vs.src, "out")
	for name, typ := range varyings(fs.src, "in") {
		got, ok := outs[name]
		if !ok {
			p.log = fmt.Sprintf("error: fragment input '%s' is not written by the vertex shader", name)
			return
		}
		if got != typ {
			p.log = fmt.Sprintf("error: '%s' declared as %s in vertex and %s in fragment", name, got, typ)
			return
		}
	}
	p.linked = true
}

func (c *fakeContext) LinkStatus(program uint32) (bool, error) {
	c.calls["LinkStatus"]++
	if c.unreadableStatus {
		return false, errUnreadable
	}
	return c.programs[program].linked, nil
}

func (c *fakeContext) ProgramInfoLog(program uint32) string {
	c.calls["ProgramInfoLog"]++
	if c.silentLogs {
		return ""
	}
	return c.programs[program].log
}

func (c *fakeContext) DeleteProgram(program uint32) {
	c.calls["DeleteProgram"]++
	c.programs[program].deleted = true
}

func (c *fakeContext) liveShaders() int {
	n := 0
	for _, sh := range c.shaders {
		if !sh.deleted {
			n++
		}
	}
	return n
}

func (c *fakeContext) livePrograms() int {
	n := 0
	for _, p := range c.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

func checkSyntax(src string) string {
	if !strings.Contains(src, "void main") {
		return "missing main function"
	}
	depth := 0
	for _, r := range src {
		switch r {
		case '{', '(':
			depth++
		case '}', ')':
			depth--
		}
		if depth < 0 {
			return "unexpected closing bracket"
		}
	}
	if depth != 0 {
		return "syntax error, unexpected end of file"
	}
	return ""
}

// varyings maps "qual type name;" declarations to their types.
func varyings(src, qual string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(src, "\n") {
		f := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
		if len(f) == 3 && f[0] == qual {
			out[f[2]] = f[1]
		}
	}
	return out
}
