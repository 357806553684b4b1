// Package shader builds GPU programs from vertex and fragment sources.
//
// Every driver call that can fail is checked: object creation, compilation and
// linking each report a *Error instead of handing back an unusable handle.
// The driver itself is reached through Context so the pipeline can run against
// a fake in tests.
package shader

// Context is the subset of a graphics context the build pipeline needs.
// Handles follow OpenGL conventions: 0 never names a live object.
//
// A Context is not safe for concurrent use.
type Context interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	// CompileStatus reports the compile flag. A non-nil error means the flag
	// could not be read.
	CompileStatus(shader uint32) (bool, error)
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// LinkStatus reports the link flag. A non-nil error means the flag could
	// not be read.
	LinkStatus(program uint32) (bool, error)
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
}

// Stage selects the compilation target of a shader.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}
