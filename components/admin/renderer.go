package admin

import "io"

// Renderer is the template renderer contract the controller depends on.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}
