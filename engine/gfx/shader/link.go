package shader

import (
	"strconv"
	"strings"

	"github.com/hubastard/tri/engine/profiler"
)

// Program is a linked program object. It only exists fully linked.
type Program struct {
	ctx      Context
	handle   uint32
	shaders  []*Shader
	released bool
}

func (p *Program) Handle() uint32 { return p.handle }

// Shaders returns the attached shaders in attachment order.
func (p *Program) Shaders() []*Shader {
	out := make([]*Shader, len(p.shaders))
	copy(out, p.shaders)
	return out
}

// Release deletes the program and the shaders it owns.
func (p *Program) Release() {
	if p == nil || p.released {
		return
	}
	p.ctx.DeleteProgram(p.handle)
	for _, s := range p.shaders {
		s.owner = nil
		s.Release()
	}
	p.released = true
}

// Link attaches shaders in the given order and links them into a program.
// On failure the program object is deleted and the shaders remain the
// caller's to release.
func Link(ctx Context, shaders ...*Shader) (*Program, error) {
	defer profiler.Start("shader.Link")()

	if len(shaders) == 0 {
		return nil, &Error{Kind: LinkFailed, Log: "no shaders to link"}
	}
	seen := make(map[*Shader]bool, len(shaders))
	for i, s := range shaders {
		switch {
		case s == nil:
			return nil, &Error{Kind: LinkFailed, Log: "nil shader at index " + strconv.Itoa(i)}
		case s.released:
			return nil, &Error{Kind: LinkFailed, Stage: s.stage, Log: s.stage.String() + " shader was released"}
		case s.owner != nil:
			return nil, &Error{Kind: LinkFailed, Stage: s.stage, Log: s.stage.String() + " shader already belongs to a program"}
		case seen[s]:
			return nil, &Error{Kind: LinkFailed, Stage: s.stage, Log: s.stage.String() + " shader listed twice"}
		}
		seen[s] = true
	}

	h := ctx.CreateProgram()
	if h == 0 {
		return nil, &Error{Kind: ResourceCreationFailed, Log: MsgCreateProgram}
	}
	for _, s := range shaders {
		ctx.AttachShader(h, s.handle)
	}
	ctx.LinkProgram(h)

	if ok, err := ctx.LinkStatus(h); err != nil || !ok {
		log := ctx.ProgramInfoLog(h)
		if strings.TrimSpace(log) == "" {
			log = FallbackLinkLog
		}
		ctx.DeleteProgram(h)
		return nil, &Error{Kind: LinkFailed, Log: log}
	}

	p := &Program{ctx: ctx, handle: h, shaders: append([]*Shader(nil), shaders...)}
	for _, s := range shaders {
		s.owner = p
	}
	return p, nil
}

