package core

import (
	"fmt"
	"log"
	"runtime"
)

// Run creates the window and renderer, renders a single frame and presents
// it. With cfg.Hold it then waits for the window to be closed, presenting
// the same frame again after a resize.
func Run(cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	cfg = cfg.WithDefaults()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	present := func() {
		rend.Clear(cfg.ClearColor.RGBA())
		rend.DrawTriangle()
		win.SwapBuffers()
	}
	present()
	log.Printf("Frame presented (%dx%d)", w, h)

	if !cfg.Hold {
		return nil
	}

	win.SetEventCallback(func(ev Event) {
		switch e := ev.(type) {
		case EventResize:
			if e.W < 1 || e.H < 1 {
				return
			}
			rend.Resize(e.W, e.H)
			present()
		case EventKey:
			if e.Key == KeyEscape && e.Down {
				win.RequestClose()
			}
		case EventCloseRequested:
			win.RequestClose()
		}
	})
	for !win.ShouldClose() {
		win.WaitEvents()
	}
	log.Println("Window closed")
	return nil
}
