package shader

// Sources is a vertex/fragment source pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// PositionAttrib is the per-vertex input of DefaultSources.
const PositionAttrib = "position"

// DefaultSources draws geometry from the position attribute in flat white.
var DefaultSources = Sources{
	Vertex: `
#version 330 core
layout(location=0) in vec3 position;
void main() {
    gl_Position = vec4(position, 1.0);
}
` + "\x00",
	Fragment: `
#version 330 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
` + "\x00",
}

// State is the progress of a Builder.
type State int

const (
	StateStart State = iota
	StateVertexCompiled
	StateBothCompiled
	StateLinked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateVertexCompiled:
		return "vertex-compiled"
	case StateBothCompiled:
		return "both-compiled"
	case StateLinked:
		return "linked"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Builder runs the compile/compile/link sequence once.
type Builder struct {
	ctx   Context
	src   Sources
	state State
	err   error
}

func NewBuilder(ctx Context, src Sources) *Builder {
	return &Builder{ctx: ctx, src: src}
}

func (b *Builder) State() State { return b.state }

// Err returns the error that moved the builder to StateFailed.
func (b *Builder) Err() error { return b.err }

// Build compiles the vertex stage, then the fragment stage, then links them.
// The first failure is returned as is and stops the sequence; shaders
// compiled before it are released.
func (b *Builder) Build() (*Program, error) {
	if b.state != StateStart {
		return nil, ErrBuilderUsed
	}

	vs, err := Compile(b.ctx, StageVertex, b.src.Vertex)
	if err != nil {
		return nil, b.fail(err)
	}
	b.state = StateVertexCompiled

	fs, err := Compile(b.ctx, StageFragment, b.src.Fragment)
	if err != nil {
		vs.Release()
		return nil, b.fail(err)
	}
	b.state = StateBothCompiled

	prog, err := Link(b.ctx, vs, fs)
	if err != nil {
		vs.Release()
		fs.Release()
		return nil, b.fail(err)
	}
	b.state = StateLinked
	return prog, nil
}

func (b *Builder) fail(err error) error {
	b.state = StateFailed
	b.err = err
	return err
}

// Build runs a fresh Builder over src.
func Build(ctx Context, src Sources) (*Program, error) {
	return NewBuilder(ctx, src).Build()
}

// BuildProgram builds DefaultSources.
func BuildProgram(ctx Context) (*Program, error) {
	return Build(ctx, DefaultSources)
}
