package buffer

import "example.com/gapbuffer/pkg/concat"

// Sequence defines the editable sequence operations used by the drivers.
// Positions and counts are logical indices into the content, never raw
// offsets into a backing store.
type Sequence[T any] interface {
	Len() int
	Empty() bool
	Cursor() int
	View() concat.View[T]
	Front() (*T, error)
	Back() (*T, error)

	Insert(index int, data ...T) error
	InsertAtCursor(data ...T)
	PushFront(data ...T)
	PushBack(data ...T)

	Remove(index, count int) error
	RemoveBefore(index, count int) error
	RemoveAfter(index, count int) error
	RemovePrefix(count int) error
	RemoveSuffix(count int) error
	DeleteBackward(count int) (int, error)
	DeleteForward(count int) (int, error)

	SetCursor(index int) error
	Clear()
}

var _ Sequence[rune] = (*GapBuffer[rune])(nil)
