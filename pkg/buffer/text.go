package buffer

// FromString initializes a rune GapBuffer with the provided text, with the
// cursor placed after the last rune.
func FromString(s string) *GapBuffer[rune] {
	return NewFrom([]rune(s)...)
}

// String returns the content of a rune sequence as a string.
func String(s Sequence[rune]) string {
	v := s.View()
	return string(v.AppendTo(make([]rune, 0, v.Len())))
}
