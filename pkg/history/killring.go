// Package history keeps runs of elements removed from a buffer so they can
// be inserted again later.
package history

// KillRing stores a small history of killed runs, most recent first.
type KillRing[T any] struct {
	entries [][]T
	pos     int
}

const killRingMax = 10

// Push adds a killed run to the ring. Empty runs are ignored.
func (k *KillRing[T]) Push(run []T) {
	if len(run) == 0 {
		return
	}
	if k.entries == nil {
		k.entries = make([][]T, 0, killRingMax)
	}
	if len(k.entries) < killRingMax {
		k.entries = append(k.entries, nil)
	}
	copy(k.entries[1:], k.entries[:len(k.entries)-1])
	k.entries[0] = append([]T(nil), run...)
	k.pos = 0
}

// Rotate moves to the next entry in the ring.
func (k *KillRing[T]) Rotate() bool {
	if len(k.entries) <= 1 {
		return false
	}
	k.pos = (k.pos + 1) % len(k.entries)
	return true
}

// Current returns the current killed run, or nil when the ring is empty.
func (k *KillRing[T]) Current() []T {
	if len(k.entries) == 0 {
		return nil
	}
	return k.entries[k.pos]
}

// Len returns the number of entries in the ring.
func (k *KillRing[T]) Len() int { return len(k.entries) }
