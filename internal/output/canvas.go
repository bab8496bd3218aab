package output

import (
	"strings"
)

// BoxStyle defines the character set for drawing boxes
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

var (
	// ASCIIStyle uses simple ASCII characters for box drawing
	ASCIIStyle = BoxStyle{'+', '+', '+', '+', '-', '|'}

	// ASCIIFocusStyle marks the focused window in ASCII mode
	ASCIIFocusStyle = BoxStyle{'#', '#', '#', '#', '=', '#'}

	// UnicodeStyle uses Unicode box drawing characters
	UnicodeStyle = BoxStyle{'┌', '┐', '└', '┘', '─', '│'}

	// UnicodeFocusStyle marks the focused window with double lines
	UnicodeFocusStyle = BoxStyle{'╔', '╗', '╚', '╝', '═', '║'}
)

// boxStyles returns the normal and focused box styles for s
func (s Style) boxStyles() (normal, focused BoxStyle) {
	if s.ASCII {
		return ASCIIStyle, ASCIIFocusStyle
	}
	return UnicodeStyle, UnicodeFocusStyle
}

// Canvas is a fixed-size grid of runes
type Canvas struct {
	Width  int
	Height int
	cells  [][]rune
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", width))
	}
	return &Canvas{Width: width, Height: height, cells: cells}
}

// Set writes r at (x, y); positions outside the canvas are ignored
func (c *Canvas) Set(x, y int, r rune) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.cells[y][x] = r
	}
}

// At returns the rune at (x, y), or a space outside the canvas
func (c *Canvas) At(x, y int) rune {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		return c.cells[y][x]
	}
	return ' '
}

// DrawBox outlines a w x h box with its top-left corner at (x, y)
func (c *Canvas) DrawBox(x, y, w, h int, style BoxStyle) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1

	for i := x + 1; i < right; i++ {
		c.Set(i, y, style.Horizontal)
		c.Set(i, bottom, style.Horizontal)
	}
	for j := y + 1; j < bottom; j++ {
		c.Set(x, j, style.Vertical)
		c.Set(right, j, style.Vertical)
	}
	c.Set(x, y, style.TopLeft)
	c.Set(right, y, style.TopRight)
	c.Set(x, bottom, style.BottomLeft)
	c.Set(right, bottom, style.BottomRight)
}

// DrawText writes text starting at (x, y), clipped to maxWidth runes
func (c *Canvas) DrawText(x, y int, text string, maxWidth int) {
	text = truncate(text, maxWidth)
	for i, r := range []rune(text) {
		c.Set(x+i, y, r)
	}
}

// DrawTextCentered centers text in a field of the given width
func (c *Canvas) DrawTextCentered(x, y, width int, text string) {
	text = truncate(text, width)
	pad := (width - len([]rune(text))) / 2
	c.DrawText(x+pad, y, text, width)
}

// String renders the canvas with trailing spaces removed from each row
func (c *Canvas) String() string {
	rows := make([]string, len(c.cells))
	for y, row := range c.cells {
		rows[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(rows, "\n")
}
