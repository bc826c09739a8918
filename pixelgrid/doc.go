// Package pixelgrid models a fixed-size rectangular canvas of single-character
// colours and the region operations an editor performs on it.
//
// What:
//
//   - Grid stores width×height colours row-major, addressed by 1-based Coord{X, Y}.
//   - Contains is the single bounds contract; At, Set, AdjacentSameColour and
//     FloodFill all refuse coordinates it rejects.
//   - FloodFill repaints the 4-connected same-colour region around a cell.
//   - Transpose swaps rows and columns; Render produces the line-based text form.
//
// Why:
//
//   - Text editors and terminal paint tools: "bucket fill" on a character canvas.
//   - Puzzle and board games: recolouring contiguous regions.
//
// Complexity:
//
//   - New, Clear, Clone, Transpose, Render: O(W×H) time and memory.
//   - Contains, At, Set, AdjacentSameColour:  O(1).
//   - FloodFill: O(R) time, O(R) memory, where R is the size of the filled region.
//
// Options:
//
//   - WithOnPaint: observe every repainted cell in paint order.
//
// Errors:
//
//   - ErrBadShape: width or height below 1.
//   - ErrOutOfBounds: a coordinate outside the grid was addressed.
//
// Concurrency:
//
//	A Grid is not safe for concurrent use. Callers that share one must
//	serialise access themselves.
package pixelgrid
