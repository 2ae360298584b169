package monitor

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestFormat(t *testing.T) {
	data := make([]uint8, 18)
	data[0] = 0xA9
	data[1] = 0x01
	data[17] = 0xFF
	want := "8000: A9 01 00 00 00 00 00 00 00 00 00 00 00 00 00 00\n" +
		"8010: 00 FF\n"
	if got := Format(0x8000, data, Options{}); got != want {
		t.Errorf("Format wrong.\nGot:\n%s\nwant:\n%s", got, want)
	}
	if got := Format(0x8000, nil, Options{}); got != "" {
		t.Errorf("empty data gave %q", got)
	}
}

func TestFormatColor(t *testing.T) {
	data := []uint8{0x00, 0x01, 0x00}
	plain := Format(0x0200, data, Options{})
	colored := Format(0x0200, data, Options{Color: true, Mark: 0x0202, HasMark: true})
	if !strings.Contains(colored, "\x1b[") {
		t.Fatalf("no color escapes in %q", colored)
	}
	if got := ansi.ReplaceAllString(colored, ""); got != plain {
		t.Errorf("colored output differs once escapes removed.\nGot  %q\nwant %q", got, plain)
	}
	// Zero bytes which aren't the mark stay plain.
	if !strings.Contains(colored, " 00 ") {
		t.Errorf("zero byte got colored: %q", colored)
	}
}

func TestDump(t *testing.T) {
	var b bytes.Buffer
	if err := Dump(&b, 0xFFFF, []uint8{0x42}, Options{}); err != nil {
		t.Fatalf("Dump error: %v", err)
	}
	if got, want := b.String(), "FFFF: 42\n"; got != want {
		t.Errorf("Dump got %q want %q", got, want)
	}
}
