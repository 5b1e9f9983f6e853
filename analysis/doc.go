// Package analysis runs the independent fence passes over one farm.Grid and
// collects them in a Report.
//
// The Border graph is built once; loop counting, the enclosure mask and the
// interior mask then read it concurrently. Nothing writes to the grid or the
// graph, so no locking is involved.
package analysis
