package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays in the top-right corner: FPS, heap size, the number
// of points in the scene and the latest log line. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowPoints   bool
	ShowLog      bool
	points       int
	logLines     func() []string
	frameCount   uint32
	lastFPS      string
	lastMem      string
	lastPoints   string
	lastLog      string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetPointCount sets the total shown by the points overlay.
func (d *Debug) SetPointCount(n int) {
	d.points = n
	d.lastPoints = ""
}

// SetLogSource sets where the log overlay reads lines from, e.g. Logger.Lines.
func (d *Debug) SetLogSource(lines func() []string) {
	d.logLines = lines
	d.lastLog = ""
}

// lines returns the overlay text that Draw would show, refreshing it when refresh is true.
func (d *Debug) lines(refresh bool) []string {
	var out []string
	if d.ShowFPS {
		if refresh || d.lastFPS == "" {
			d.lastFPS = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		out = append(out, d.lastFPS)
	}
	if d.ShowMemAlloc {
		if refresh || d.lastMem == "" {
			runtime.ReadMemStats(&d.memStats)
			d.lastMem = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		out = append(out, d.lastMem)
	}
	if d.ShowPoints {
		if d.lastPoints == "" {
			d.lastPoints = fmt.Sprintf("Points: %d", d.points)
		}
		out = append(out, d.lastPoints)
	}
	if d.ShowLog && d.logLines != nil {
		if refresh || d.lastLog == "" {
			if all := d.logLines(); len(all) > 0 {
				d.lastLog = all[len(all)-1]
			}
		}
		if d.lastLog != "" {
			out = append(out, d.lastLog)
		}
	}
	return out
}

// Draw renders enabled overlays right-aligned in green. Call after the 3D scene.
// Text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	lines := d.lines(d.frameCount%updateInterval == 0)
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
