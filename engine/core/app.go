package core

import "github.com/hubastard/tri/engine/colors"

// Window abstraction. The window owns the graphics context.
type Window interface {
	WaitEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer abstraction.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	DrawTriangle()
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
}

func (EventKey) isEvent() {}

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Config for the run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
	// ShaderDir, when set, replaces the built-in shaders with the files
	// triangle.vert and triangle.frag from that directory.
	ShaderDir string
	// Hold keeps the window open after the frame is presented until the
	// user closes it.
	Hold bool
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.Title == "" {
		c.Title = "Triangle"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.ClearColor.IsZero() {
		c.ClearColor = colors.Black
	}
	return c
}
