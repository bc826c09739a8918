package editor

import (
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/pixgrid/pixelgrid"
)

const helpCmd = "help"

// command describes one dispatchable letter.
type command struct {
	usage string
	desc  string
	arity int
	run   func(e *Editor, args []Arg) (string, error)
}

// commandOrder fixes the order commands are listed in the banner.
var commandOrder = []string{"I", "C", "L", "F", "T", "S", "X"}

var commands = map[string]command{
	"I": {usage: "I M N", desc: "Create a new M x N image with all pixels coloured white (O)", arity: 2, run: (*Editor).create},
	"C": {usage: "C", desc: "Clear the table, setting all pixels to white (O)", arity: 0, run: (*Editor).clear},
	"L": {usage: "L X Y C", desc: "Colour the pixel (X,Y) with colour C", arity: 3, run: (*Editor).colourPixel},
	"F": {usage: "F X Y C", desc: "Fill the region R with the colour C, where R is (X,Y) and every pixel sharing its colour and connected to it", arity: 3, run: (*Editor).fill},
	"T": {usage: "T", desc: "Transpose the image, swapping rows and columns", arity: 0, run: (*Editor).transpose},
	"S": {usage: "S", desc: "Show the contents of the current image", arity: 0, run: (*Editor).show},
	"X": {usage: "X", desc: "Terminate the session", arity: 0, run: (*Editor).quit},
}

func (e *Editor) create(args []Arg) (string, error) {
	var dims [2]int
	for i, a := range args {
		if !a.IsNum || a.Num < 1 {
			return "", reject("I", ErrInvalidCoordinates, "Invalid coordinates")
		}
		dims[i] = a.Num
	}
	if dims[0] > e.maxSize || dims[1] > e.maxSize {
		return "", reject("I", ErrMaxSize, "Maximum size is %d x %d", e.maxSize, e.maxSize)
	}
	g, err := pixelgrid.New(dims[0], dims[1])
	if err != nil {
		return "", reject("I", ErrInvalidCoordinates, "Invalid coordinates")
	}
	e.grid = g
	e.log.WithField("width", dims[0]).WithField("height", dims[1]).Debug("image created")
	return e.grid.Render(), nil
}

func (e *Editor) clear(_ []Arg) (string, error) {
	if e.grid != nil {
		e.grid.Clear()
	}
	return "", nil
}

func (e *Editor) colourPixel(args []Arg) (string, error) {
	c, colour, err := e.target("L", args)
	if err != nil {
		return "", err
	}
	if err := e.grid.Set(c, colour); err != nil {
		return "", reject("L", ErrInvalidCoordinates, "Invalid coordinates")
	}
	return "", nil
}

func (e *Editor) fill(args []Arg) (string, error) {
	c, colour, err := e.target("F", args)
	if err != nil {
		return "", err
	}
	painted := 0
	if err := e.grid.FloodFill(c, colour, pixelgrid.WithOnPaint(func(pixelgrid.Coord) { painted++ })); err != nil {
		return "", reject("F", ErrInvalidCoordinates, "Invalid coordinates")
	}
	e.log.WithField("x", c.X).WithField("y", c.Y).WithField("painted", painted).Debug("region filled")
	return "", nil
}

func (e *Editor) transpose(_ []Arg) (string, error) {
	if e.grid == nil {
		return "", reject("T", ErrNoImage, "Create an image first (I)")
	}
	e.grid.Transpose()
	return "", nil
}

func (e *Editor) show(_ []Arg) (string, error) {
	if e.grid == nil {
		return "", reject("S", ErrNoImage, "Create an image first (I)")
	}
	return e.grid.Render(), nil
}

func (e *Editor) quit(_ []Arg) (string, error) {
	return "", ErrQuit
}

// target validates the X Y C parameters shared by L and F against the current image.
func (e *Editor) target(cmd string, args []Arg) (pixelgrid.Coord, pixelgrid.Colour, error) {
	if e.grid == nil {
		return pixelgrid.Coord{}, 0, reject(cmd, ErrNoImage, "Create an image first (I)")
	}
	x, y := args[0], args[1]
	c := pixelgrid.Coord{X: x.Num, Y: y.Num}
	if !x.IsNum || !y.IsNum || !e.grid.Contains(c) {
		return pixelgrid.Coord{}, 0, reject(cmd, ErrInvalidCoordinates, "Invalid coordinates")
	}
	colour, ok := parseColour(args[2].Text)
	if !ok {
		return pixelgrid.Coord{}, 0, reject(cmd, ErrBadColour, "Colour must be a single character")
	}
	return c, colour, nil
}

// parseColour accepts exactly one printable, validly encoded character.
func parseColour(tok string) (pixelgrid.Colour, bool) {
	r, size := utf8.DecodeRuneInString(tok)
	if size != len(tok) || r == utf8.RuneError || !unicode.IsPrint(r) {
		return 0, false
	}
	return pixelgrid.Colour(r), true
}
