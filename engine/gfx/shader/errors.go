package shader

import "errors"

// Sentinels matched with errors.Is against a *Error.
var (
	ErrResourceCreation = errors.New("shader: resource creation failed")
	ErrCompilation      = errors.New("shader: compilation failed")
	ErrLink             = errors.New("shader: link failed")

	// ErrBuilderUsed is returned by a Builder that already ran.
	ErrBuilderUsed = errors.New("shader: builder already used")
)

// Messages used when the driver gives nothing better.
const (
	MsgCreateShader    = "unable to create shader object"
	MsgCreateProgram   = "unable to create program object"
	FallbackCompileLog = "unknown error creating shader"
	FallbackLinkLog    = "unknown error creating program object"
)

type ErrorKind int

const (
	ResourceCreationFailed ErrorKind = iota + 1
	CompilationFailed
	LinkFailed
)

func (k ErrorKind) String() string {
	switch k {
	case ResourceCreationFailed:
		return "ResourceCreationFailed"
	case CompilationFailed:
		return "CompilationFailed"
	case LinkFailed:
		return "LinkFailed"
	default:
		return "Unknown"
	}
}

// Error is the failure of one pipeline step. Log holds the driver diagnostic
// (or a fixed fallback) and is also the error message, unchanged.
type Error struct {
	Kind  ErrorKind
	Stage Stage // meaningful for shader failures only
	Log   string
}

func (e *Error) Error() string { return e.Log }

func (e *Error) Unwrap() error {
	switch e.Kind {
	case ResourceCreationFailed:
		return ErrResourceCreation
	case CompilationFailed:
		return ErrCompilation
	case LinkFailed:
		return ErrLink
	}
	return nil
}

// KindOf returns the kind of a pipeline error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
