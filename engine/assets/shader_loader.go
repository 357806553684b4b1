package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hubastard/tri/engine/gfx/shader"
)

// LoadShader reads a GLSL file from dir into a null-terminated string for OpenGL.
func LoadShader(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// LoadSources reads a vertex/fragment pair from dir.
func LoadSources(dir, vertName, fragName string) (shader.Sources, error) {
	vs, err := LoadShader(dir, vertName)
	if err != nil {
		return shader.Sources{}, err
	}
	fs, err := LoadShader(dir, fragName)
	if err != nil {
		return shader.Sources{}, err
	}
	return shader.Sources{Vertex: vs, Fragment: fs}, nil
}
