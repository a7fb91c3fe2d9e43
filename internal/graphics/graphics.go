package graphics

// Host is the window side of the frame loop: it owns the surface, the clock and the
// per-frame begin/end. The raylib window implements it; tests use a fake.
type Host interface {
	ShouldClose() bool
	// Time is seconds since the host started.
	Time() float64
	BeginFrame()
	EndFrame()
}

// Run drives the loop until the host asks to close. Each frame it calls tick with the
// elapsed time (e.g. stepping the world and camera), then draw between BeginFrame and EndFrame.
// tick never sees time go backwards even if the host clock does.
func Run(host Host, tick func(t float64), draw func()) {
	runFrames(host, -1, tick, draw)
}

// RunFrames is Run limited to at most n frames. It returns the number of frames drawn.
func RunFrames(host Host, n int, tick func(t float64), draw func()) int {
	return runFrames(host, n, tick, draw)
}

func runFrames(host Host, n int, tick func(t float64), draw func()) int {
	var last float64
	frames := 0
	for (n < 0 || frames < n) && !host.ShouldClose() {
		t := host.Time()
		if t < last {
			t = last
		}
		last = t
		if tick != nil {
			tick(t)
		}

		host.BeginFrame()
		if draw != nil {
			draw()
		}
		host.EndFrame()
		frames++
	}
	return frames
}
