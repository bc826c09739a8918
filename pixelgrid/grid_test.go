package pixelgrid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pixgrid/pixelgrid"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New and Contains Tests
//----------------------------------------------------------------------------//

// TestNew_BadShape verifies that New rejects non-positive dimensions.
func TestNew_BadShape(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"NegativeWidth", -1, 2},
		{"NegativeBoth", -4, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := pixelgrid.New(tc.w, tc.h)
			require.ErrorIs(t, err, pixelgrid.ErrBadShape)
			require.Nil(t, g)
		})
	}
}

// TestNew_RenderDefault checks that a fresh grid renders height lines of
// width default colours for a range of shapes.
func TestNew_RenderDefault(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 3}, {3, 4}, {7, 1}, {1, 5}, {250, 250}} {
		g, err := pixelgrid.New(dims[0], dims[1])
		require.NoError(t, err)
		require.Equal(t, dims[0], g.Width())
		require.Equal(t, dims[1], g.Height())

		want := strings.Repeat(strings.Repeat("O", dims[0])+"\n", dims[1])
		require.Equal(t, want, g.Render())
	}
}

func TestRender_TwoByThree(t *testing.T) {
	g, err := pixelgrid.New(2, 3)
	require.NoError(t, err)
	require.Equal(t, "OO\nOO\nOO\n", g.Render())
	// Render is a pure read.
	require.Equal(t, g.Render(), g.Render())
	require.Equal(t, g.Render(), g.String())
}

// TestContains checks every boundary of a 3×2 grid.
func TestContains(t *testing.T) {
	g, err := pixelgrid.New(3, 2)
	require.NoError(t, err)

	valid := []pixelgrid.Coord{{X: 1, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 2}}
	for _, c := range valid {
		require.True(t, g.Contains(c), "Contains(%v)", c)
	}
	invalid := []pixelgrid.Coord{{X: 0, Y: 1}, {X: 4, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 3}, {X: -1, Y: -1}}
	for _, c := range invalid {
		require.False(t, g.Contains(c), "Contains(%v)", c)
	}
}

//----------------------------------------------------------------------------//
// At / Set Tests
//----------------------------------------------------------------------------//

// TestSetAt_Isolated verifies Set is observed by At and leaves every other cell alone.
func TestSetAt_Isolated(t *testing.T) {
	g, err := pixelgrid.New(3, 4)
	require.NoError(t, err)

	target := pixelgrid.Coord{X: 2, Y: 3}
	require.NoError(t, g.Set(target, 'A'))

	for y := 1; y <= g.Height(); y++ {
		for x := 1; x <= g.Width(); x++ {
			c := pixelgrid.Coord{X: x, Y: y}
			got, err := g.At(c)
			require.NoError(t, err)
			if c == target {
				require.Equal(t, pixelgrid.Colour('A'), got)
			} else {
				require.Equal(t, pixelgrid.DefaultColour, got, "cell %v", c)
			}
		}
	}
	require.Equal(t, "OOO\nOOO\nOAO\nOOO\n", g.Render())
}

func TestSetAt_OutOfBounds(t *testing.T) {
	g, err := pixelgrid.New(2, 2)
	require.NoError(t, err)
	before := g.Render()

	for _, c := range []pixelgrid.Coord{{X: 0, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 3}} {
		_, err := g.At(c)
		require.ErrorIs(t, err, pixelgrid.ErrOutOfBounds)
		require.ErrorIs(t, g.Set(c, 'Z'), pixelgrid.ErrOutOfBounds)
	}
	require.Equal(t, before, g.Render())
}

func TestSet_Unicode(t *testing.T) {
	g, err := pixelgrid.New(2, 1)
	require.NoError(t, err)
	require.NoError(t, g.Set(pixelgrid.Coord{X: 2, Y: 1}, '█'))
	require.Equal(t, "O█\n", g.Render())
}

//----------------------------------------------------------------------------//
// AdjacentSameColour Tests
//----------------------------------------------------------------------------//

// TestAdjacentSameColour_Order checks the fixed left, right, up, down enumeration.
func TestAdjacentSameColour_Order(t *testing.T) {
	g, err := pixelgrid.New(3, 3)
	require.NoError(t, err)

	got, err := g.AdjacentSameColour(pixelgrid.Coord{X: 2, Y: 2}, pixelgrid.DefaultColour)
	require.NoError(t, err)
	require.Equal(t, []pixelgrid.Coord{{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 3}}, got)
}

// TestAdjacentSameColour_FilterAndBounds verifies neighbours are dropped when
// they fall outside the grid or hold another colour.
func TestAdjacentSameColour_FilterAndBounds(t *testing.T) {
	g, err := pixelgrid.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(pixelgrid.Coord{X: 2, Y: 1}, 'A'))

	// Corner: only right and down exist; right is 'A'.
	got, err := g.AdjacentSameColour(pixelgrid.Coord{X: 1, Y: 1}, pixelgrid.DefaultColour)
	require.NoError(t, err)
	require.Equal(t, []pixelgrid.Coord{{X: 1, Y: 2}}, got)

	got, err = g.AdjacentSameColour(pixelgrid.Coord{X: 1, Y: 1}, 'A')
	require.NoError(t, err)
	require.Equal(t, []pixelgrid.Coord{{X: 2, Y: 1}}, got)

	got, err = g.AdjacentSameColour(pixelgrid.Coord{X: 3, Y: 3}, 'Q')
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = g.AdjacentSameColour(pixelgrid.Coord{X: 4, Y: 1}, 'A')
	require.ErrorIs(t, err, pixelgrid.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Clear / Clone Tests
//----------------------------------------------------------------------------//

func TestClearAndClone(t *testing.T) {
	g, err := pixelgrid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(pixelgrid.Coord{X: 1, Y: 2}, 'B'))

	cp := g.Clone()
	g.Clear()
	require.Equal(t, "OOO\nOOO\n", g.Render())
	require.Equal(t, "OOO\nBOO\n", cp.Render(), "clone must not share storage")
}
