// Package monitor formats raw memory for display. It's the presentation side of
// cpu.Processor.ReadRange and knows nothing about the CPU itself.
package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// BytesPerRow is the number of bytes shown on each dump line.
const BytesPerRow = 16

// Options controls Format/Dump output.
type Options struct {
	// Color highlights non-zero bytes.
	Color bool
	// Mark is an address to show inverted (e.g. the current PC). Only used if HasMark is set.
	Mark    uint16
	HasMark bool
}

// Format returns data as rows of BytesPerRow bytes where each row is prefixed
// by the address of its first byte. from is the address of data[0].
func Format(from uint16, data []uint8, opts Options) string {
	nonZero := color.New(color.FgYellow)
	mark := color.New(color.ReverseVideo)
	addr := color.New(color.FgCyan)
	for _, c := range []*color.Color{nonZero, mark, addr} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var b strings.Builder
	for i, v := range data {
		a := from + uint16(i)
		switch {
		case i%BytesPerRow == 0:
			if i != 0 {
				b.WriteString("\n")
			}
			b.WriteString(addr.Sprintf("%.4X:", a))
			b.WriteString(" ")
		default:
			b.WriteString(" ")
		}
		s := fmt.Sprintf("%.2X", v)
		switch {
		case opts.HasMark && a == opts.Mark:
			s = mark.Sprint(s)
		case v != 0x00:
			s = nonZero.Sprint(s)
		}
		b.WriteString(s)
	}
	if len(data) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// Dump writes Format output to w.
func Dump(w io.Writer, from uint16, data []uint8, opts Options) error {
	_, err := io.WriteString(w, Format(from, data, opts))
	return err
}
