package prompt

// region is the block of rows a prompt has drawn. It is cleared and redrawn
// in place on every state change so repeated renders never scroll.
type region struct {
	t *Terminal

	// height is the row count of the last frame.
	height int
	// cursor is the row inside the region the cursor rests on. After draw
	// it equals height: the cursor is parked on the row below the frame.
	cursor int
}

func (r *region) up(n int) {
	if n > 0 {
		r.t.writef("\033[%dA", n)
	}
}

// rewind clears every row of the last frame and leaves the cursor at its
// top-left corner.
func (r *region) rewind() {
	r.up(r.cursor)
	for i := 0; i < r.height; i++ {
		r.t.write("\r" + clearLine + "\n")
	}
	r.up(r.height)
	r.t.write("\r")
	r.height, r.cursor = 0, 0
}

// draw renders exactly height rows and parks the cursor below them. Missing
// lines are written as cleared blank rows and extra lines are dropped, so the
// frame size depends only on height.
func (r *region) draw(lines []string, height int) {
	r.rewind()
	width := r.t.Width()
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = fitLine(lines[i], width)
		}
		r.t.write("\r" + clearLine + line + "\r\n")
	}
	r.height, r.cursor = height, height
}

// drawAt renders lines without a trailing newline and places the cursor at
// (row, col) inside the frame. Used by the line editor, whose cursor sits on
// the input row.
func (r *region) drawAt(lines []string, row, col int) {
	r.rewind()
	width := r.t.Width()
	for i, line := range lines {
		if i > 0 {
			r.t.write("\r\n")
		}
		r.t.write("\r" + clearLine + fitLine(line, width))
	}
	r.height = len(lines)
	r.up(r.height - 1 - row)
	r.t.write("\r")
	if col > 0 {
		r.t.writef("\033[%dC", col)
	}
	r.cursor = row
}
