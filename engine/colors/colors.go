package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) RGBA() (r, g, b, a float32) { return c[0], c[1], c[2], c[3] }

// IsZero reports an unset color (all channels zero, including alpha).
func (c Color) IsZero() bool { return c == Color{} }
