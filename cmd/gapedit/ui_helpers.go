package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"example.com/gapbuffer/pkg/concat"
	"example.com/gapbuffer/pkg/config"
)

// cell is one rune placed on the text area.
type cell struct {
	x, y int
	r    rune
}

// layout places the runes of v on a grid of the given width, wrapping long
// lines, and returns the grid position of the cursor.
func layout(v concat.View[rune], cursor, width int) (cells []cell, cx, cy int) {
	if width < 1 {
		width = 1
	}
	cells = make([]cell, 0, v.Len())
	x, y := 0, 0
	for i, r := range v.All() {
		if r == '\n' {
			if i == cursor {
				cx, cy = x, y
			}
			x, y = 0, y+1
			continue
		}
		r, w := displayRune(r)
		if x+w > width {
			x, y = 0, y+1
		}
		if i == cursor {
			cx, cy = x, y
		}
		cells = append(cells, cell{x: x, y: y, r: r})
		x += w
	}
	if cursor >= v.Len() {
		if x >= width {
			x, y = 0, y+1
		}
		cx, cy = x, y
	}
	return cells, cx, cy
}

// displayRune maps r to what is drawn and the number of columns it takes.
func displayRune(r rune) (rune, int) {
	if r == '\t' {
		return ' ', 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return '?', 1
	}
	return r, w
}

// drawUI renders the buffer content and a status bar.
func drawUI(s tcell.Screen, e *editor) {
	th := e.cfg.Theme
	base := tcell.StyleDefault.Background(th.UIBackground).Foreground(th.UIForeground)
	s.SetStyle(base)
	s.Clear()

	width, height := s.Size()
	textHeight := height - 1

	cells, cx, cy := layout(e.buf.View(), e.buf.Cursor(), width)
	// Scroll so the cursor row stays visible.
	top := 0
	if cy >= textHeight {
		top = cy - textHeight + 1
	}
	for _, c := range cells {
		if y := c.y - top; y >= 0 && y < textHeight {
			s.SetContent(c.x, y, c.r, nil, base)
		}
	}
	if y := cy - top; y >= 0 && y < textHeight {
		r, _, _, _ := s.GetContent(cx, y)
		if r == 0 {
			r = ' '
		}
		s.SetContent(cx, y, r, nil, tcell.StyleDefault.Foreground(th.CursorText).Background(th.CursorBG))
		s.ShowCursor(cx, y)
	}

	quit := e.cfg.Keymap["quit"]
	status := fmt.Sprintf(" len %d  cursor %d  cap %d  gap %d | %s quit  F1 help",
		e.buf.Len(), e.buf.Cursor(), e.buf.Cap(), e.buf.GapLen(), quit)
	drawStatus(s, status, th)
	s.Show()
}

func drawStatus(s tcell.Screen, status string, th config.Theme) {
	width, height := s.Size()
	style := tcell.StyleDefault.Foreground(th.StatusForeground).Background(th.StatusBackground)
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		s.SetContent(x, height-1, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		s.SetContent(x, height-1, ' ', nil, style)
	}
}

// drawHelp renders a help screen listing the key bindings.
func drawHelp(s tcell.Screen, cfg *config.Config) {
	width, height := s.Size()
	s.Clear()
	s.SetStyle(tcell.StyleDefault)
	lines := []string{"Help:"}
	for _, cmd := range config.Commands {
		if kb, ok := cfg.Keymap[cmd]; ok {
			lines = append(lines, fmt.Sprintf("- %-7s %s", cmd, kb))
		}
	}
	lines = append(lines, "- arrows, Home, End move the cursor", "- press any key to return")
	y := (height - len(lines)) / 2
	for i, line := range lines {
		x := (width - len(line)) / 2
		for j, r := range line {
			s.SetContent(x+j, y+i, r, nil, tcell.StyleDefault.Foreground(cfg.Theme.UIForeground))
		}
	}
	s.Show()
}
