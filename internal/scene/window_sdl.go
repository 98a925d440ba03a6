//go:build sdl

package scene

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Window renders sprites into an SDL window as colored, scaled quads.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	width    int32
	height   int32
}

// OpenWindow initializes SDL video and opens a window.
func OpenWindow(title string, width, height int) (*Window, error) {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	win, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdl window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("sdl renderer: %w", err)
	}
	return &Window{window: win, renderer: renderer, width: int32(width), height: int32(height)}, nil
}

// Draw renders one frame of sprites.
func (w *Window) Draw(sprites []*Sprite) error {
	sdl.PumpEvents()
	if err := w.renderer.SetDrawColor(8, 8, 16, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}

	const baseSize = 48.0
	for _, s := range sprites {
		size := int32(baseSize * s.Scale())
		if size < 1 {
			size = 1
		}
		x, y := s.Position()
		r, g, b := s.ColorRGB()
		_ = w.renderer.SetDrawColor(r, g, b, uint8(s.Alpha()*255))
		rect := sdl.Rect{
			X: int32(x) - size/2,
			Y: int32(y) - size/2,
			W: size,
			H: size,
		}
		_ = w.renderer.FillRect(&rect)
	}

	w.renderer.Present()
	return nil
}

// Close tears down the renderer and window.
func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}
