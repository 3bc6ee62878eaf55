package transducer

import "strings"

// Line is one output line: the emitted text plus the duration notes
// appended to it after it was emitted.
type Line struct {
	Text       string
	Annotation string
}

// String returns the line as it is printed.
func (l Line) String() string {
	return l.Text + l.Annotation
}

type entry struct {
	text  string
	notes strings.Builder
}

// Buffer is an append-only sequence of lines whose annotations can still
// grow after the line was pushed. Notes addressed to an index that has not
// been pushed yet are held until that line arrives.
type Buffer struct {
	entries  []*entry
	deferred map[int][]string
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{deferred: map[int][]string{}}
}

// Len returns the number of lines pushed so far.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Push appends a line and returns its index.
func (b *Buffer) Push(text string) int {
	e := &entry{text: text}
	idx := len(b.entries)
	b.entries = append(b.entries, e)
	if held, ok := b.deferred[idx]; ok {
		for _, s := range held {
			e.notes.WriteString(s)
		}
		delete(b.deferred, idx)
	}
	return idx
}

// Annotate appends suffix to the notes of the line at idx.
func (b *Buffer) Annotate(idx int, suffix string) {
	if idx < 0 {
		return
	}
	if idx < len(b.entries) {
		b.entries[idx].notes.WriteString(suffix)
		return
	}
	b.deferred[idx] = append(b.deferred[idx], suffix)
}

// Dangling returns how many notes are still waiting for a line that was
// never pushed.
func (b *Buffer) Dangling() int {
	n := 0
	for _, held := range b.deferred {
		n += len(held)
	}
	return n
}

// Lines returns a snapshot of the buffer.
func (b *Buffer) Lines() []Line {
	out := make([]Line, len(b.entries))
	for i, e := range b.entries {
		out[i] = Line{Text: e.text, Annotation: e.notes.String()}
	}
	return out
}
