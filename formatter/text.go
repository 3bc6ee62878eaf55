package formatter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/theoremus-urban-solutions/ekitan-modify/transducer"
)

// ColorMode selects when duration notes are highlighted.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// ParseColorMode maps a flag or config value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorOn, ColorOff:
		return ColorMode(s), nil
	case "":
		return ColorAuto, nil
	}
	return "", fmt.Errorf("unknown color mode %q (auto|on|off)", s)
}

// TextWriter renders annotated lines.
type TextWriter struct {
	w     io.Writer
	notes *color.Color
}

// NewTextWriter creates a writer. In auto mode notes are colored only when
// terminal is true.
func NewTextWriter(w io.Writer, mode ColorMode, terminal bool) *TextWriter {
	notes := color.New(color.FgCyan)
	if mode == ColorOn || (mode == ColorAuto && terminal) {
		notes.EnableColor()
	} else {
		notes.DisableColor()
	}
	return &TextWriter{w: w, notes: notes}
}

// Write prints one line per entry, each newline-terminated.
func (tw *TextWriter) Write(lines []transducer.Line) error {
	bw := bufio.NewWriter(tw.w)
	for _, l := range lines {
		if _, err := bw.WriteString(l.Text); err != nil {
			return err
		}
		if l.Annotation != "" {
			if _, err := bw.WriteString(tw.notes.Sprint(l.Annotation)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
