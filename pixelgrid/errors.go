package pixelgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates a requested width or height below 1.
	ErrBadShape = errors.New("pixelgrid: width and height must be at least 1")
	// ErrOutOfBounds indicates a coordinate that fails Contains.
	ErrOutOfBounds = errors.New("pixelgrid: coordinate out of bounds")
)

// boundsErrorf attaches the method name and offending coordinate to ErrOutOfBounds.
func boundsErrorf(method string, c Coord) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, c.X, c.Y, ErrOutOfBounds)
}
