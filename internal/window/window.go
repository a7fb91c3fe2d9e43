package window

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the raylib window.
type Options struct {
	Width      int
	Height     int
	Title      string
	Fullscreen bool
	TargetFPS  int
	// MSAA requests 4x multisampling for antialiased edges.
	MSAA bool
}

// Window is the raylib surface. It implements graphics.Host.
type Window struct{}

// Open creates the window and GL context. Fullscreen uses the primary monitor's size.
// ESC or the close button ends the loop.
func Open(o Options) *Window {
	var flags uint32 = rl.FlagWindowResizable
	if o.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if o.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	w, h := int32(o.Width), int32(o.Height)
	if o.Fullscreen {
		w, h = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(w, h, o.Title)
	rl.SetTargetFPS(int32(o.TargetFPS))
	return &Window{}
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool { return rl.WindowShouldClose() }

// Time is seconds since InitWindow.
func (w *Window) Time() float64 { return rl.GetTime() }

// BeginFrame starts drawing and clears to black.
func (w *Window) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

// EndFrame presents the frame.
func (w *Window) EndFrame() { rl.EndDrawing() }

// Close destroys the window and GL context.
func (w *Window) Close() { rl.CloseWindow() }
