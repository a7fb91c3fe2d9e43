package graphics

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeHost replays a fixed clock and closes after the last sample.
type fakeHost struct {
	times  []float64
	frame  int
	events []string
}

func (h *fakeHost) ShouldClose() bool { return h.frame >= len(h.times) }
func (h *fakeHost) Time() float64     { return h.times[h.frame] }
func (h *fakeHost) BeginFrame()       { h.events = append(h.events, "begin") }
func (h *fakeHost) EndFrame() {
	h.events = append(h.events, "end")
	h.frame++
}

func TestRun(t *testing.T) {
	Convey("Given a host with five frames", t, func() {
		host := &fakeHost{times: []float64{0, 0.016, 0.033, 0.05, 0.066}}
		var ticks []float64

		Convey("Run ticks then draws every frame until the host closes", func() {
			Run(host, func(t float64) {
				ticks = append(ticks, t)
				host.events = append(host.events, "tick")
			}, func() {
				host.events = append(host.events, "draw")
			})
			So(ticks, ShouldResemble, host.times)
			So(host.events[:4], ShouldResemble, []string{"tick", "begin", "draw", "end"})
			So(host.events, ShouldHaveLength, 20)
		})

		Convey("RunFrames stops after n frames", func() {
			n := RunFrames(host, 2, func(t float64) { ticks = append(ticks, t) }, nil)
			So(n, ShouldEqual, 2)
			So(ticks, ShouldResemble, []float64{0, 0.016})
		})
	})

	Convey("Time handed to tick never decreases", t, func() {
		host := &fakeHost{times: []float64{1, 2, 1.5, 3}}
		var ticks []float64
		Run(host, func(t float64) { ticks = append(ticks, t) }, nil)
		So(ticks, ShouldResemble, []float64{1, 2, 2, 3})
	})

	Convey("A host that is already closed draws nothing", t, func() {
		host := &fakeHost{}
		So(RunFrames(host, 10, nil, nil), ShouldEqual, 0)
		So(host.events, ShouldBeEmpty)
	})
}
