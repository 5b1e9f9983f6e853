package analysis

import (
	"fmt"

	"github.com/katalvlaran/gardencraft/enclosure"
)

// Report is the combined result of analyzing one grid.
type Report struct {
	Width, Height int
	// BorderCells is the number of Border cells (graph nodes).
	BorderCells int
	// Fences is the number of connected Border fragments.
	Fences int
	// ClosedLoops is the full loop count, without early exit.
	ClosedLoops int
	// SingleLoop is true iff ClosedLoops == 1.
	SingleLoop bool
	// Enclosure marks Border cells reached by the component walk.
	Enclosure *enclosure.Mask
	// Interior marks non-Border cells cut off from the grid edge.
	Interior *enclosure.Mask
}

// Summary renders the report's counts on one line.
func (r *Report) Summary() string {
	return fmt.Sprintf("%dx%d grid: %d border cells in %d fence(s), %d closed loop(s), single loop: %t, %d enclosed cell(s)",
		r.Width, r.Height, r.BorderCells, r.Fences, r.ClosedLoops, r.SingleLoop, r.Interior.Count())
}
