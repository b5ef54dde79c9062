package buffer

import (
	"github.com/juju/errors"

	"example.com/gapbuffer/pkg/concat"
)

// GapBuffer is a gap-buffer implementation for elements of any type.
// The underlying slice stores elements with a gap between gapStart and
// gapEnd; the content is buf[:gapStart] followed by buf[gapEnd:].
//
// The cursor is gapStart: inserting at the cursor costs only the copy of
// the inserted elements, and moving the cursor costs the number of elements
// it crosses. This makes edits clustered around one place cheap.
//
// The zero value is an empty buffer ready to use. A GapBuffer is not safe
// for concurrent use.
type GapBuffer[T any] struct {
	buf      []T
	gapStart int
	gapEnd   int

	stats Stats
}

// Stats counts the work done by a GapBuffer's storage management.
type Stats struct {
	// Grows is the number of reallocations of the backing store.
	Grows int
	// Moved is the number of elements copied by reallocations and cursor
	// relocations. Copies of inserted data are not counted.
	Moved int
}

// New creates an empty GapBuffer.
func New[T any]() *GapBuffer[T] {
	return &GapBuffer[T]{}
}

// NewWithCapacity creates an empty GapBuffer whose backing store already
// holds room for n elements.
func NewWithCapacity[T any](n int) *GapBuffer[T] {
	if n < 0 {
		n = 0
	}
	return &GapBuffer[T]{buf: make([]T, n), gapEnd: n}
}

// NewFrom initializes a GapBuffer holding a copy of data, with the cursor
// placed after the last element.
func NewFrom[T any](data ...T) *GapBuffer[T] {
	buf := make([]T, len(data))
	copy(buf, data)
	return &GapBuffer[T]{buf: buf, gapStart: len(buf), gapEnd: len(buf)}
}

// Len returns the logical length (excluding the gap).
func (g *GapBuffer[T]) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// Empty reports whether the buffer has no content.
func (g *GapBuffer[T]) Empty() bool { return g.Len() == 0 }

// Cap returns the size of the backing store.
func (g *GapBuffer[T]) Cap() int { return len(g.buf) }

// GapLen returns the number of free slots in the gap.
func (g *GapBuffer[T]) GapLen() int { return g.gapEnd - g.gapStart }

// Cursor returns the logical index at which InsertAtCursor places data.
func (g *GapBuffer[T]) Cursor() int { return g.gapStart }

// Stats returns the storage counters accumulated so far.
func (g *GapBuffer[T]) Stats() Stats { return g.stats }

// View returns the content as one logical sequence over the two sides of
// the gap. The view shares memory with the buffer: writes through it change
// the content, and it must not be used after the next mutating call.
func (g *GapBuffer[T]) View() concat.View[T] {
	return concat.Of(g.buf[:g.gapStart:g.gapStart], g.buf[g.gapEnd:])
}

// Front returns a pointer to the first element. The pointer is valid until
// the next mutating call.
func (g *GapBuffer[T]) Front() (*T, error) {
	if g.Empty() {
		return nil, errors.Annotate(ErrEmpty, "front")
	}
	if g.gapStart == 0 {
		return &g.buf[g.gapEnd], nil
	}
	return &g.buf[0], nil
}

// Back returns a pointer to the last element. The pointer is valid until
// the next mutating call.
func (g *GapBuffer[T]) Back() (*T, error) {
	if g.Empty() {
		return nil, errors.Annotate(ErrEmpty, "back")
	}
	if g.gapEnd == len(g.buf) {
		return &g.buf[g.gapStart-1], nil
	}
	return &g.buf[len(g.buf)-1], nil
}

// At returns a pointer to the element at logical index i. The pointer is
// valid until the next mutating call.
func (g *GapBuffer[T]) At(i int) (*T, error) {
	if i < 0 || i >= g.Len() {
		return nil, errors.Annotatef(ErrOutOfRange, "element %d of %d", i, g.Len())
	}
	return &g.buf[g.raw(i)], nil
}

// Set replaces the element at logical index i.
func (g *GapBuffer[T]) Set(i int, v T) error {
	p, err := g.At(i)
	if err != nil {
		return errors.Trace(err)
	}
	*p = v
	return nil
}

// raw maps a logical index to its offset in the backing store.
func (g *GapBuffer[T]) raw(i int) int {
	if i < g.gapStart {
		return i
	}
	return g.gapEnd + (i - g.gapStart)
}

// Insert inserts data so that it starts at logical index (0..Len()). The
// element previously at index, if any, follows the inserted run.
func (g *GapBuffer[T]) Insert(index int, data ...T) error {
	if err := g.checkPos(index); err != nil {
		return errors.Annotate(err, "insert")
	}
	g.insert(index, data)
	return nil
}

// InsertAtCursor inserts data at the cursor without relocating the gap.
func (g *GapBuffer[T]) InsertAtCursor(data ...T) {
	g.insert(g.gapStart, data)
}

// PushFront inserts data before the first element.
func (g *GapBuffer[T]) PushFront(data ...T) { g.insert(0, data) }

// PushBack inserts data after the last element.
func (g *GapBuffer[T]) PushBack(data ...T) { g.insert(g.Len(), data) }

func (g *GapBuffer[T]) insert(index int, data []T) {
	// Grow before relocating so the relocation works on the final store.
	g.enlargeByAtLeast(len(data) - g.GapLen())
	g.moveCursorTo(index)
	copy(g.buf[g.gapStart:], data)
	g.gapStart += len(data)
}

// Remove removes a run of elements next to index. A non-negative count
// removes up to count elements starting at index (see RemoveAfter); a
// negative count removes up to -count elements ending just before index
// (see RemoveBefore).
func (g *GapBuffer[T]) Remove(index, count int) error {
	if count < 0 {
		return g.RemoveBefore(index, -count)
	}
	return g.RemoveAfter(index, count)
}

// RemoveAfter removes the elements [index, index+count). The count is
// clamped so the run never extends past the end. The cursor ends up at
// index.
func (g *GapBuffer[T]) RemoveAfter(index, count int) error {
	if err := g.checkPos(index); err != nil {
		return errors.Annotate(err, "remove after")
	}
	if count < 0 {
		return errors.Annotatef(ErrNegativeCount, "remove after %d: count %d", index, count)
	}
	count = min(count, g.Len()-index)
	g.removeRange(index, index+count)
	return nil
}

// RemoveBefore removes the elements [index-count, index). The count is
// clamped so the run never extends past the start. The cursor ends up at
// the first position of the removed run.
func (g *GapBuffer[T]) RemoveBefore(index, count int) error {
	if err := g.checkPos(index); err != nil {
		return errors.Annotate(err, "remove before")
	}
	if count < 0 {
		return errors.Annotatef(ErrNegativeCount, "remove before %d: count %d", index, count)
	}
	count = min(count, index)
	g.removeRange(index-count, index)
	return nil
}

// RemovePrefix removes up to count elements from the start.
func (g *GapBuffer[T]) RemovePrefix(count int) error {
	if count < 0 {
		return errors.Annotatef(ErrNegativeCount, "remove prefix: count %d", count)
	}
	return g.RemoveAfter(0, count)
}

// RemoveSuffix removes up to count elements from the end.
func (g *GapBuffer[T]) RemoveSuffix(count int) error {
	if count < 0 {
		return errors.Annotatef(ErrNegativeCount, "remove suffix: count %d", count)
	}
	return g.RemoveBefore(g.Len(), count)
}

// removeRange removes [from, to) by relocating the cursor to whichever edge
// of the run is closer and widening the gap over the run. Both paths leave
// the cursor at from.
func (g *GapBuffer[T]) removeRange(from, to int) {
	if from == to {
		return
	}
	if abs(g.gapStart-from) <= abs(g.gapStart-to) {
		g.moveCursorTo(from)
		g.deleteForward(to - from)
		return
	}
	g.moveCursorTo(to)
	g.deleteBackward(to - from)
}

// DeleteBackward removes up to count elements immediately before the
// cursor, like a backspace key. It returns the number of removed elements.
func (g *GapBuffer[T]) DeleteBackward(count int) (int, error) {
	if count < 0 {
		return 0, errors.Annotatef(ErrNegativeCount, "delete backward: count %d", count)
	}
	count = min(count, g.gapStart)
	g.deleteBackward(count)
	return count, nil
}

// DeleteForward removes up to count elements immediately after the cursor,
// like a delete key. It returns the number of removed elements.
func (g *GapBuffer[T]) DeleteForward(count int) (int, error) {
	if count < 0 {
		return 0, errors.Annotatef(ErrNegativeCount, "delete forward: count %d", count)
	}
	count = min(count, len(g.buf)-g.gapEnd)
	g.deleteForward(count)
	return count, nil
}

// deleteBackward widens the gap to the left by count slots. Callers
// guarantee count <= gapStart.
func (g *GapBuffer[T]) deleteBackward(count int) {
	clear(g.buf[g.gapStart-count : g.gapStart])
	g.gapStart -= count
}

// deleteForward widens the gap to the right by count slots. Callers
// guarantee gapEnd+count <= len(buf).
func (g *GapBuffer[T]) deleteForward(count int) {
	clear(g.buf[g.gapEnd : g.gapEnd+count])
	g.gapEnd += count
}

// SetCursor moves the gap so that the cursor is at index (0..Len()).
func (g *GapBuffer[T]) SetCursor(index int) error {
	if err := g.checkPos(index); err != nil {
		return errors.Annotate(err, "set cursor")
	}
	g.moveCursorTo(index)
	return nil
}

// Clear removes all content. The backing store is kept for reuse and
// becomes one large gap.
func (g *GapBuffer[T]) Clear() {
	clear(g.buf)
	g.gapStart = 0
	g.gapEnd = len(g.buf)
}

func (g *GapBuffer[T]) checkPos(index int) error {
	if index < 0 || index > g.Len() {
		return errors.Annotatef(ErrOutOfRange, "position %d, length %d", index, g.Len())
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
