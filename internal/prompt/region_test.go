package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionDrawPadsToHeight(t *testing.T) {
	tt := newTestTerm()
	r := &region{t: tt.Terminal}

	r.draw([]string{"a", "b"}, 3)

	want := "\r" +
		"\r" + clearLine + "a\r\n" +
		"\r" + clearLine + "b\r\n" +
		"\r" + clearLine + "\r\n"
	assert.Equal(t, want, tt.out.String())
	assert.Equal(t, 3, r.height)
	assert.Equal(t, 3, r.cursor)
}

func TestRegionDrawDropsExtraLines(t *testing.T) {
	tt := newTestTerm()
	r := &region{t: tt.Terminal}

	r.draw([]string{"a", "b", "c"}, 2)

	assert.Equal(t, 2, strings.Count(tt.out.String(), "\r\n"))
	assert.NotContains(t, tt.out.String(), "c")
}

func TestRegionRedrawRewindsExactly(t *testing.T) {
	tt := newTestTerm()
	r := &region{t: tt.Terminal}
	r.draw([]string{"a", "b"}, 2)
	tt.out.Reset()

	r.rewind()

	want := "\033[2A" +
		"\r" + clearLine + "\n" +
		"\r" + clearLine + "\n" +
		"\033[2A\r"
	assert.Equal(t, want, tt.out.String())
	assert.Zero(t, r.height)
}

func TestRegionDrawAtPlacesCursor(t *testing.T) {
	tt := newTestTerm()
	r := &region{t: tt.Terminal}

	r.drawAt([]string{"> abc", "grid"}, 0, 4)

	out := tt.out.String()
	assert.True(t, strings.HasSuffix(out, "\033[1A\r\033[4C"), "got %q", out)
	assert.Equal(t, 2, r.height)
	assert.Equal(t, 0, r.cursor)

	tt.out.Reset()
	r.rewind()
	assert.Equal(t, "\r"+clearLine+"\n\r"+clearLine+"\n\033[2A\r", tt.out.String())
}

func TestRegionFitsLinesToWidth(t *testing.T) {
	tt := newTestTerm()
	tt.width = 10
	r := &region{t: tt.Terminal}

	r.draw([]string{strings.Repeat("x", 30)}, 1)

	assert.Contains(t, tt.out.String(), "xxxxxxxx"+ellipsis)
	assert.NotContains(t, tt.out.String(), "xxxxxxxxxx")
}
