package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/errors"
	"github.com/spf13/pflag"

	"example.com/gapbuffer/pkg/config"
	"example.com/gapbuffer/pkg/logs"
)

// gapedit is a minimal terminal editor over a rune gap buffer. It
// initializes a screen with tcell, renders the buffer with a status bar,
// and edits at the cursor until the quit binding is pressed.
func main() {
	var (
		flagConfig = pflag.StringP("config", "c", "", "Config file; defaults to ~/.gapbuf/config.yaml")
	)
	pflag.Parse()

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %s\n", err)
		os.Exit(1)
	}

	text := ""
	if pflag.NArg() > 0 {
		data, err := os.ReadFile(pflag.Arg(0))
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "error reading %s: %s\n", pflag.Arg(0), err)
			os.Exit(1)
		}
		text = string(data)
	}

	logger := openLog(cfg)
	defer logger.Close()

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err = s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer s.Fini()

	e := newEditor(text, cfg, logger)
	logger.Event("start", map[string]any{"buffer_len": e.buf.Len()})
	loop(s, e)
}

// loop redraws and dispatches events until the editor quits.
func loop(s tcell.Screen, e *editor) {
	for !e.quit {
		if e.help {
			drawHelp(s, e.cfg)
		} else {
			drawUI(s, e)
		}
		switch ev := s.PollEvent().(type) {
		case *tcell.EventKey:
			e.handleKey(ev)
		case *tcell.EventResize:
			s.Sync()
		case nil:
			// Screen finalized.
			return
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg, err := config.LoadDefault()
		return cfg, errors.Trace(err)
	}
	cfg, err := config.Load(path)
	return cfg, errors.Trace(err)
}

// openLog prefers the config's log settings and falls back to the
// environment.
func openLog(cfg *config.Config) *logs.Logger {
	if cfg.Log.File != "" {
		return logs.NewFile(cfg.Log.File)
	}
	if cfg.Log.Enabled {
		return logs.NewFile("gapedit.log")
	}
	return logs.NewFromEnv()
}
