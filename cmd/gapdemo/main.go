package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/pflag"

	"example.com/gapbuffer/pkg/buffer"
	"example.com/gapbuffer/pkg/logs"
	"example.com/gapbuffer/pkg/script"
)

func main() {
	var (
		flagScript = pflag.StringP("script", "s", "", "YAML script to run; the built-in demonstration script is used when empty")
		flagQuiet  = pflag.BoolP("quiet", "q", false, "Only print failed steps")
	)
	pflag.Parse()

	logger := logs.NewFromEnv()
	defer logger.Close()

	ok, err := run(os.Stdout, logger, *flagScript, *flagQuiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

// run executes the script and prints one line per step. It returns whether
// every step passed.
func run(w io.Writer, logger *logs.Logger, path string, quiet bool) (bool, error) {
	s := script.Default()
	if path != "" {
		var err error
		s, err = script.Load(path)
		if err != nil {
			return false, errors.Trace(err)
		}
	}

	gb := buffer.New[rune]()
	results := script.Run(gb, s)

	for _, r := range results {
		fields := map[string]any{
			"step":   r.Index,
			"op":     r.Step.Op,
			"passed": r.Passed,
			"len":    len([]rune(r.Got)),
			"got":    r.Got,
		}
		if r.Err != nil {
			fields["err"] = r.Err.Error()
		}
		logger.Event("step", fields)

		if quiet && r.Passed {
			continue
		}
		status := "passed"
		if !r.Passed {
			status = "failed"
		}
		fmt.Fprintf(w, "test %d %s\n", r.Index, status)
		if !r.Passed {
			fmt.Fprintf(w, "  %s: %s\n", r.Step.Op, strings.Join(r.Failures, "; "))
		}
	}

	st := gb.Stats()
	logger.Event("done", map[string]any{
		"script": s.Name,
		"steps":  len(results),
		"cap":    gb.Cap(),
		"grows":  st.Grows,
		"moved":  st.Moved,
	})
	return script.Passed(results), nil
}
