package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"saturn-scene/internal/sim"
)

// writeStats prints one row per point cloud with its size, material and bounds.
func writeStats(out io.Writer, w *sim.World, seed int64) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "seed %d\n", seed)
	fmt.Fprintln(tw, "CLOUD\tPOINTS\tSIZE\tOPACITY\tMIN\tMAX")
	for i, c := range w.Clouds() {
		lo, hi := c.Bounds()
		fmt.Fprintf(tw, "%s#%d\t%d\t%.2f\t%.2f\t(%.1f, %.1f, %.1f)\t(%.1f, %.1f, %.1f)\n",
			c.Name, i, c.Len(), c.Material.Size, c.Material.Opacity,
			lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
	}
	fmt.Fprintf(tw, "total\t%d\n", w.PointCount())
	fmt.Fprintf(tw, "moons\t%d\n", len(w.Moons))
	return tw.Flush()
}
