package script

import (
	"fmt"

	"github.com/juju/errors"

	"example.com/gapbuffer/pkg/buffer"
)

var errorsByName = map[string]error{
	"out_of_range":   buffer.ErrOutOfRange,
	"empty":          buffer.ErrEmpty,
	"negative_count": buffer.ErrNegativeCount,
}

// Result is the outcome of one step.
type Result struct {
	Index  int
	Step   Step
	Passed bool
	// Got is the buffer content after the step.
	Got string
	// Err is the error returned by the operation, if any.
	Err error
	// Failures lists every expectation that did not hold.
	Failures []string
}

// Run executes the steps of s in order against seq. A failed step does not
// stop the run; every step yields one Result.
func Run(seq buffer.Sequence[rune], s Script) []Result {
	results := make([]Result, 0, len(s.Steps))
	for i, st := range s.Steps {
		err := apply(seq, st)
		res := Result{
			Index: i,
			Step:  st,
			Got:   buffer.String(seq),
			Err:   err,
		}
		res.Failures = check(seq, st, err)
		res.Passed = len(res.Failures) == 0
		results = append(results, res)
	}
	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

func apply(seq buffer.Sequence[rune], st Step) error {
	data := []rune(st.Data)
	switch st.Op {
	case OpPushBack:
		seq.PushBack(data...)
	case OpPushFront:
		seq.PushFront(data...)
	case OpInsert:
		return seq.Insert(st.Index, data...)
	case OpInsertCursor:
		seq.InsertAtCursor(data...)
	case OpRemove:
		return seq.Remove(st.Index, st.Count)
	case OpRemoveBefore:
		return seq.RemoveBefore(st.Index, st.Count)
	case OpRemoveAfter:
		return seq.RemoveAfter(st.Index, st.Count)
	case OpRemovePrefix:
		return seq.RemovePrefix(st.Count)
	case OpRemoveSuffix:
		return seq.RemoveSuffix(st.Count)
	case OpClear:
		seq.Clear()
	case OpSetCursor:
		return seq.SetCursor(st.Index)
	case OpDeleteBackward:
		_, err := seq.DeleteBackward(st.Count)
		return err
	case OpDeleteForward:
		_, err := seq.DeleteForward(st.Count)
		return err
	case OpCheck:
	default:
		return errors.Errorf("unknown op %q", st.Op)
	}
	return nil
}

func check(seq buffer.Sequence[rune], st Step, opErr error) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if st.WantErr != "" {
		if want := errorsByName[st.WantErr]; !errors.Is(opErr, want) {
			fail("error: want %s, got %v", st.WantErr, opErr)
		}
	} else if opErr != nil {
		fail("unexpected error: %v", opErr)
	}

	if st.Want != nil {
		if got := buffer.String(seq); got != *st.Want {
			fail("content: want %q, got %q", *st.Want, got)
		}
	}
	if st.WantLen != nil && seq.Len() != *st.WantLen {
		fail("len: want %d, got %d", *st.WantLen, seq.Len())
	}
	if st.WantEmpty != nil && seq.Empty() != *st.WantEmpty {
		fail("empty: want %v, got %v", *st.WantEmpty, seq.Empty())
	}
	if st.WantCursor != nil && seq.Cursor() != *st.WantCursor {
		fail("cursor: want %d, got %d", *st.WantCursor, seq.Cursor())
	}
	if st.WantFront != nil {
		checkElem(fail, "front", *st.WantFront, seq.Front)
	}
	if st.WantBack != nil {
		checkElem(fail, "back", *st.WantBack, seq.Back)
	}
	return failures
}

func checkElem(fail func(string, ...any), what, want string, get func() (*rune, error)) {
	p, err := get()
	if err != nil {
		fail("%s: %v", what, err)
		return
	}
	if string(*p) != want {
		fail("%s: want %q, got %q", what, want, string(*p))
	}
}
