package main

import (
	"log"
	"runtime"

	"github.com/hubastard/tri/engine/colors"
	"github.com/hubastard/tri/engine/core"
	glbackend "github.com/hubastard/tri/engine/gfx/gl"
	"github.com/hubastard/tri/engine/platform"
	"github.com/hubastard/tri/engine/profiler"
)

// GLFW must run on the main OS thread.
func init() { runtime.LockOSThread() }

func main() {
	cfg := core.Config{
		Title:      "Triangle",
		Width:      800,
		Height:     600,
		VSync:      true,
		ClearColor: colors.Black,
		Hold:       true,
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	err := core.Run(cfg, newWindow, newRenderer)
	profiler.Report()
	if err != nil {
		log.Fatal(err)
	}
}
