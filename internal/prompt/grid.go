package prompt

import (
	"fmt"
	"strings"

	"github.com/moasq/nanoprompt/internal/terminal"
)

// maxGridRows caps the visible rows of a grid; longer grids scroll and show
// a position row underneath.
const maxGridRows = 8

// grid lays n equal-width cells out left to right, top to bottom.
type grid struct {
	n     int
	cols  int
	cellW int
}

// newGrid sizes a grid for cells whose widest content is widest columns.
// Each cell gets two columns of gutter.
func newGrid(n, widest, width int) grid {
	cellW := widest + 2
	cols := (width - 4) / cellW
	if cols < 1 {
		cols = 1
	}
	return grid{n: n, cols: cols, cellW: cellW}
}

func (g grid) rows() int {
	if g.n == 0 {
		return 0
	}
	return (g.n + g.cols - 1) / g.cols
}

// height is the number of rows render returns.
func (g grid) height() int {
	return gridHeight(g.rows())
}

func gridHeight(rows int) int {
	if rows > maxGridRows {
		return maxGridRows + 1
	}
	return rows
}

// move returns the index reached from i with one arrow key. Left and Right
// wrap across the whole list; Up and Down wrap within the column.
func (g grid) move(i int, kind KeyKind) int {
	if g.n == 0 {
		return 0
	}
	switch kind {
	case KeyRight:
		return (i + 1) % g.n
	case KeyLeft:
		return (i - 1 + g.n) % g.n
	case KeyDown:
		if j := i + g.cols; j < g.n {
			return j
		}
		return i % g.cols
	case KeyUp:
		if j := i - g.cols; j >= 0 {
			return j
		}
		col := i % g.cols
		return col + g.cols*((g.n-1-col)/g.cols)
	}
	return i
}

// contentWidth is the room a cell has for its content at the given width.
func (g grid) contentWidth(width int) int {
	w := g.cellW - 2
	if limit := width - 6; w > limit {
		w = limit
	}
	if w < 1 {
		w = 1
	}
	return w
}

// render draws the rows around selected (or the first rows when selected
// is negative). cell returns the styled content of cell i, already padded to
// contentWidth.
func (g grid) render(cell func(i int) string, selected int) []string {
	rows := g.rows()
	top := 0
	if selected >= 0 {
		if r := selected / g.cols; r >= maxGridRows {
			top = r - maxGridRows + 1
		}
	}
	end := top + maxGridRows
	if end > rows {
		end = rows
	}

	out := make([]string, 0, g.height())
	for r := top; r < end; r++ {
		var b strings.Builder
		b.WriteString("  ")
		for c := 0; c < g.cols; c++ {
			i := r*g.cols + c
			if i >= g.n {
				break
			}
			b.WriteString(cell(i))
			b.WriteString("  ")
		}
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	if rows > maxGridRows {
		out = append(out, "  "+terminal.Style(fmt.Sprintf("rows %d-%d of %d", top+1, end, rows), terminal.Dim))
	}
	return out
}
