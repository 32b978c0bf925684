// Package lcd renders the lot status on a 16x2 character display emulated on
// a text stream.
package lcd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/sarchlab/parkinglot/device"
)

// Size of the display.
const (
	Columns = 16
	Rows    = 2
)

const ansiClearHome = "\x1b[H\x1b[2J"

// A Frame is the content of the display. Every line is exactly Columns
// characters long.
type Frame [Rows]string

// Blank returns an empty frame.
func Blank() Frame {
	var f Frame
	for i := range f {
		f[i] = strings.Repeat(" ", Columns)
	}

	return f
}

// Text returns a frame showing the two lines from the first column.
func Text(line0, line1 string) Frame {
	f := Blank()
	f.Print(0, 0, line0)
	f.Print(1, 0, line1)

	return f
}

// Status composes the status frame of the lot.
func Status(available, total int, spot1, spot2 device.SpotState) Frame {
	f := Blank()
	f.Print(0, 0, fmt.Sprintf("Available: %d/%d", available, total))
	f.Print(1, 0, "S1:"+spot1.String())
	f.Print(1, 8, "S2:"+spot2.String())

	return f
}

// Print writes text at the given row and column. Characters that fall off the
// display are dropped.
func (f *Frame) Print(row, col int, text string) {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return
	}

	line := []byte(f[row])
	for i := 0; i < len(text) && col+i < Columns; i++ {
		line[col+i] = text[i]
	}

	f[row] = string(line)
}

// Line returns a row without the trailing padding.
func (f Frame) Line(row int) string {
	return strings.TrimRight(f[row], " ")
}

func (f Frame) String() string {
	border := "+" + strings.Repeat("-", Columns) + "+"

	return fmt.Sprintf("%s\n|%s|\n|%s|\n%s\n", border, f[0], f[1], border)
}

// LCD writes frames to a stream. It implements device.Display.
type LCD struct {
	lock    sync.Mutex
	w       io.Writer
	ansi    bool
	frame   Frame
	written bool
}

// New creates an LCD that writes to w. When w is a terminal, each frame
// replaces the previous one on screen.
func New(w io.Writer) *LCD {
	l := &LCD{w: w, frame: Blank()}

	if f, ok := w.(*os.File); ok {
		l.ansi = term.IsTerminal(int(f.Fd()))
	}

	return l
}

// WithANSI forces the screen redraw on or off.
func (l *LCD) WithANSI(ansi bool) *LCD {
	l.ansi = ansi
	return l
}

// Render shows the lot status.
func (l *LCD) Render(available, total int, spot1, spot2 device.SpotState) {
	l.Show(Status(available, total, spot1, spot2))
}

// Show clears the display and shows f. Without screen redraw, a frame equal
// to the one on display is not written again.
func (l *LCD) Show(f Frame) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if !l.ansi && l.written && f == l.frame {
		return
	}

	l.frame = f
	l.written = true

	if l.ansi {
		fmt.Fprint(l.w, ansiClearHome)
	}

	fmt.Fprint(l.w, f.String())
}

// Frame returns what is on display.
func (l *LCD) Frame() Frame {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.frame
}

// Banner shows the startup screen.
func Banner(l *LCD) {
	l.Show(Text("Smart Parking", "System v1.2"))
}

// Ready shows the screen that ends the startup.
func Ready(l *LCD) {
	l.Show(Text("System Ready!", ""))
}
