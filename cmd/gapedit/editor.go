package main

import (
	"github.com/gdamore/tcell/v2"

	"example.com/gapbuffer/pkg/buffer"
	"example.com/gapbuffer/pkg/config"
	"example.com/gapbuffer/pkg/history"
	"example.com/gapbuffer/pkg/logs"
)

// editor holds the state of one editing session: the text lives in a rune
// gap buffer whose cursor is the editing point.
type editor struct {
	buf  *buffer.GapBuffer[rune]
	cfg  *config.Config
	log  *logs.Logger
	kill history.KillRing[rune]
	help bool
	quit bool
}

func newEditor(text string, cfg *config.Config, log *logs.Logger) *editor {
	return &editor{buf: buffer.FromString(text), cfg: cfg, log: log}
}

// handleKey applies a key event to the buffer.
func (e *editor) handleKey(ev *tcell.EventKey) {
	if e.help {
		// Any key closes the help screen.
		e.help = false
		return
	}
	if cmd := e.cfg.Command(ev); cmd != "" {
		e.runCommand(cmd)
		return
	}

	cur := e.buf.Cursor()
	var err error
	switch ev.Key() {
	case tcell.KeyRune:
		e.buf.InsertAtCursor(ev.Rune())
	case tcell.KeyEnter:
		e.buf.InsertAtCursor('\n')
	case tcell.KeyTab:
		e.buf.InsertAtCursor('\t')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		_, err = e.buf.DeleteBackward(1)
	case tcell.KeyDelete:
		_, err = e.buf.DeleteForward(1)
	case tcell.KeyLeft:
		if cur > 0 {
			err = e.buf.SetCursor(cur - 1)
		}
	case tcell.KeyRight:
		if cur < e.buf.Len() {
			err = e.buf.SetCursor(cur + 1)
		}
	case tcell.KeyHome:
		err = e.buf.SetCursor(0)
	case tcell.KeyEnd:
		err = e.buf.SetCursor(e.buf.Len())
	case tcell.KeyF1:
		e.help = true
		return
	default:
		return
	}
	e.logEdit(ev.Name(), err)
}

func (e *editor) runCommand(cmd string) {
	var err error
	cur := e.buf.Cursor()
	switch cmd {
	case "quit":
		e.quit = true
	case "clear":
		e.buf.Clear()
	case "home":
		err = e.buf.SetCursor(0)
	case "end":
		err = e.buf.SetCursor(e.buf.Len())
	case "kill":
		e.kill.Push(e.buf.View().Slice()[cur:])
		err = e.buf.RemoveAfter(cur, e.buf.Len()-cur)
	case "discard":
		e.kill.Push(e.buf.View().Slice()[:cur])
		err = e.buf.RemoveBefore(cur, cur)
	case "yank":
		e.buf.InsertAtCursor(e.kill.Current()...)
	}
	e.logEdit(cmd, err)
}

func (e *editor) logEdit(action string, err error) {
	fields := map[string]any{
		"action":     action,
		"cursor":     e.buf.Cursor(),
		"buffer_len": e.buf.Len(),
		"cap":        e.buf.Cap(),
	}
	if err != nil {
		fields["err"] = err.Error()
	}
	e.log.Event("edit", fields)
}
