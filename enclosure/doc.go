// Package enclosure builds boolean masks over a farm.Grid from its Border graph.
//
// What:
//
//   - Mask is a read-only boolean grid with the same dimensions as its source.
//   - EnclosureMask marks every Border cell visited while walking every Border
//     component. It does not fill the area inside a fence.
//   - InteriorMask marks the non-Border cells that a fence cuts off from the
//     edge of the grid, i.e. the usable area a fence encloses.
//
// Complexity:
//
//   - EnclosureMask: O(V+E), Memory: O(W×H).
//   - InteriorMask:  O(W×H×4), Memory: O(W×H).
package enclosure
