package buffer

// moveCursorTo moves the gap so that gapStart == index. Callers validate
// index against 0..Len().
func (g *GapBuffer[T]) moveCursorTo(index int) {
	switch {
	case index == g.gapStart:
		return
	case index > g.gapStart:
		g.moveCursorRight(index - g.gapStart)
	default:
		g.moveCursorLeft(g.gapStart - index)
	}
}

// moveCursorRight slides the gap right by n, copying the n elements after
// the gap into the space it vacates.
func (g *GapBuffer[T]) moveCursorRight(n int) {
	g.enlargeByAtLeast(g.gapEnd + n - len(g.buf))
	oldEnd := g.gapEnd
	copy(g.buf[g.gapStart:], g.buf[oldEnd:oldEnd+n])
	g.gapStart += n
	g.gapEnd += n
	// Sources that ended up inside the new gap.
	clear(g.buf[max(oldEnd, g.gapStart):g.gapEnd])
	g.stats.Moved += n
}

// moveCursorLeft slides the gap left by n, copying the n elements before
// the gap to just before its end. copy handles the overlap when n exceeds
// the gap length.
func (g *GapBuffer[T]) moveCursorLeft(n int) {
	oldStart := g.gapStart
	copy(g.buf[g.gapEnd-n:g.gapEnd], g.buf[oldStart-n:oldStart])
	g.gapStart -= n
	g.gapEnd -= n
	clear(g.buf[g.gapStart:min(oldStart, g.gapEnd)])
	g.stats.Moved += n
}

// enlargeByAtLeast grows the backing store by at least n slots, all of
// which join the gap. The store at least doubles, which keeps the cost of a
// run of appends linear. The new store is fully populated before it
// replaces the old one, so a failed allocation leaves the buffer intact.
func (g *GapBuffer[T]) enlargeByAtLeast(n int) bool {
	if n <= 0 {
		return false
	}
	oldCap := len(g.buf)
	newCap := 2 * max(n, oldCap)
	tail := oldCap - g.gapEnd

	buf := make([]T, newCap)
	copy(buf, g.buf[:g.gapStart])
	copy(buf[newCap-tail:], g.buf[g.gapEnd:])

	g.buf = buf
	g.gapEnd = newCap - tail
	g.stats.Grows++
	g.stats.Moved += g.gapStart + tail
	return true
}
