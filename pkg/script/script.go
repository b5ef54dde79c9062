// Package script describes scripted edit sessions for a rune gap buffer and
// checks their outcome step by step.
//
// A script is a YAML document:
//
//	name: example
//	steps:
//	  - op: push_back
//	    data: "gap buffer"
//	    want: "gap buffer"
//	  - op: remove
//	    index: 0
//	    count: 100
//	    want_empty: true
//
// Every step runs one operation and then checks the expectations it sets.
package script

import (
	_ "embed"
	"os"
	"unicode/utf8"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// Operation names accepted in Step.Op.
const (
	OpPushBack       = "push_back"
	OpPushFront      = "push_front"
	OpInsert         = "insert"
	OpInsertCursor   = "insert_cursor"
	OpRemove         = "remove"
	OpRemoveBefore   = "remove_before"
	OpRemoveAfter    = "remove_after"
	OpRemovePrefix   = "remove_prefix"
	OpRemoveSuffix   = "remove_suffix"
	OpClear          = "clear"
	OpSetCursor      = "set_cursor"
	OpDeleteBackward = "delete_backward"
	OpDeleteForward  = "delete_forward"
	OpCheck          = "check"
)

var knownOps = map[string]struct{}{
	OpPushBack:       {},
	OpPushFront:      {},
	OpInsert:         {},
	OpInsertCursor:   {},
	OpRemove:         {},
	OpRemoveBefore:   {},
	OpRemoveAfter:    {},
	OpRemovePrefix:   {},
	OpRemoveSuffix:   {},
	OpClear:          {},
	OpSetCursor:      {},
	OpDeleteBackward: {},
	OpDeleteForward:  {},
	OpCheck:          {},
}

// Step is one operation plus the state expected after it.
type Step struct {
	Op    string `yaml:"op"`
	Index int    `yaml:"index,omitempty"`
	Count int    `yaml:"count,omitempty"`
	Data  string `yaml:"data,omitempty"`

	// Expectations; nil means "don't check".
	Want       *string `yaml:"want,omitempty"`
	WantLen    *int    `yaml:"want_len,omitempty"`
	WantEmpty  *bool   `yaml:"want_empty,omitempty"`
	WantFront  *string `yaml:"want_front,omitempty"`
	WantBack   *string `yaml:"want_back,omitempty"`
	WantCursor *int    `yaml:"want_cursor,omitempty"`

	// WantErr names the error the operation must fail with: one of
	// "out_of_range", "empty", "negative_count". Empty means the operation
	// must succeed.
	WantErr string `yaml:"want_err,omitempty"`
}

// Script is a named sequence of steps run against one buffer.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load reads and validates a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, errors.Trace(err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, errors.Annotatef(err, "script %s", path)
	}
	return s, nil
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Script{}, errors.Annotate(err, "parsing yaml")
	}
	if err := s.Validate(); err != nil {
		return Script{}, errors.Trace(err)
	}
	return s, nil
}

// Validate checks that every step names a known operation and that its
// expectations are well formed.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("script has no steps")
	}
	for i, st := range s.Steps {
		if _, ok := knownOps[st.Op]; !ok {
			return errors.Errorf("step %d: unknown op %q", i, st.Op)
		}
		if st.WantErr != "" {
			if _, ok := errorsByName[st.WantErr]; !ok {
				return errors.Errorf("step %d: unknown want_err %q", i, st.WantErr)
			}
		}
		for _, r := range []*string{st.WantFront, st.WantBack} {
			if r != nil && utf8.RuneCountInString(*r) != 1 {
				return errors.Errorf("step %d: want_front/want_back must be a single character, got %q", i, *r)
			}
		}
	}
	return nil
}

//go:embed default.yaml
var defaultScript []byte

// Default returns the built-in demonstration script.
func Default() Script {
	s, err := Parse(defaultScript)
	if err != nil {
		panic(errors.ErrorStack(err))
	}
	return s
}
