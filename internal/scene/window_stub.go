//go:build !sdl

package scene

import "errors"

// Window is unavailable without the sdl build tag.
type Window struct{}

// OpenWindow reports that the binary was built without SDL support.
func OpenWindow(title string, width, height int) (*Window, error) {
	return nil, errors.New("built without SDL support (rebuild with -tags sdl)")
}

// Draw is a no-op placeholder.
func (w *Window) Draw(sprites []*Sprite) error { return nil }

// Close is a no-op placeholder.
func (w *Window) Close() {}
