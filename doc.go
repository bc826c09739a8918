// Package pixgrid is a text-driven pixel-grid editor: a fixed-size canvas of
// single-character colours changed through single-letter commands.
//
// Packages:
//
//	pixelgrid/       — Grid storage, bounds, 4-neighbour adjacency, flood fill, transpose, rendering
//	editor/          — command parsing, validation and dispatch onto a Grid
//	internal/config/ — PIXEDIT_* settings from the environment and an optional .env file
//	cmd/pixedit/     — interactive REPL binary
//
// Quick ASCII example (I 3 4, L 2 3 A, F 1 1 B, S):
//
//	BBB
//	BBB
//	BAB
//	BBB
//
//	go install github.com/katalvlaran/pixgrid/cmd/pixedit@latest
package pixgrid
