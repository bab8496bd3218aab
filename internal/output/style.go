package output

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"
)

// Style controls rendering. It is passed explicitly to every renderer;
// nothing here reads or changes process-wide color state.
type Style struct {
	Color  bool
	ASCII  bool
	Width  int // Maximum line width, 0 for unlimited
	Height int // Canvas height for visualizations, 0 for automatic
}

// DefaultStyle detects terminal capabilities
func DefaultStyle() Style {
	width, height, _ := terminalSize(int(os.Stdout.Fd()))
	return Style{
		Color:  !color.NoColor,
		ASCII:  !supportsUnicode(),
		Width:  width,
		Height: height,
	}
}

// palette holds the colors used for one render
type palette struct {
	focused   *color.Color
	window    *color.Color
	workspace *color.Color
	output    *color.Color
	dim       *color.Color
}

func (s Style) palette() palette {
	p := palette{
		focused:   color.New(color.FgGreen, color.Bold),
		window:    color.New(color.FgWhite),
		workspace: color.New(color.FgYellow),
		output:    color.New(color.FgCyan, color.Bold),
		dim:       color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.focused, p.window, p.workspace, p.output, p.dim} {
		if s.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// terminalSize returns the dimensions of the terminal on fd. When fd is not
// a terminal it reports 0x0 so that piped output is never truncated.
func terminalSize(fd int) (width, height int, ok bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToUpper(os.Getenv(name))
		if v == "" {
			continue
		}
		return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
	}
	return false
}

// truncate shortens s to maxLen runes, marking the cut with "..."
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 || len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
