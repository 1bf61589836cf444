package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridColumns(t *testing.T) {
	tests := []struct {
		n, widest, width int
		cols, rows       int
	}{
		{n: 10, widest: 8, width: 84, cols: 8, rows: 2},
		{n: 3, widest: 100, width: 80, cols: 1, rows: 3},
		{n: 0, widest: 0, width: 80, cols: 38, rows: 0},
		{n: 7, widest: 2, width: 4, cols: 1, rows: 7},
	}
	for _, tt := range tests {
		g := newGrid(tt.n, tt.widest, tt.width)
		assert.Equal(t, tt.cols, g.cols, "%+v", tt)
		assert.Equal(t, tt.rows, g.rows(), "%+v", tt)
	}
}

func TestGridMoveWrapsEverywhere(t *testing.T) {
	g := grid{n: 7, cols: 3, cellW: 4}
	// 0 1 2
	// 3 4 5
	// 6
	assert.Equal(t, 6, g.move(0, KeyUp))
	assert.Equal(t, 4, g.move(1, KeyUp))
	assert.Equal(t, 0, g.move(6, KeyDown))
	assert.Equal(t, 2, g.move(5, KeyDown))
	assert.Equal(t, 0, g.move(6, KeyRight))
	assert.Equal(t, 6, g.move(0, KeyLeft))
	assert.Equal(t, 3, g.move(2, KeyRight))
	assert.Equal(t, 3, g.move(3, KeyEnter))
}

func TestGridRenderWindowsLongLists(t *testing.T) {
	g := grid{n: 20, cols: 1, cellW: 4}
	cell := func(i int) string { return "c" }

	lines := g.render(cell, -1)
	assert.Len(t, lines, maxGridRows+1)
	assert.Equal(t, g.height(), len(lines))
	assert.Contains(t, lines[maxGridRows], "rows 1-8 of 20")

	lines = g.render(cell, 19)
	assert.Len(t, lines, maxGridRows+1)
	assert.Contains(t, lines[maxGridRows], "rows 13-20 of 20")
}
