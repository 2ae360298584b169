// Package listing parses hand assembled 6502 listings
// of the form:
//
// XXXX OP A1 A2	comments
//
// Where XXXX is the address field and OP is the opcode
// A1,A2 are then optional params as needed. Anything after
// a tab or a (*) marker is a comment and lines which don't
// start with an address are skipped.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var addrLine = regexp.MustCompile(`^[0-9A-Fa-f]{4}( |$)`)

// Program is an assembled image. Bytes start at Origin and any gaps
// between listed addresses are zero filled.
type Program struct {
	Origin uint16
	Bytes  []uint8
}

// ParseError describes a listing line which couldn't be assembled.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

// Error implements the interface for error types.
func (e ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Parse reads a listing and returns the assembled program.
func Parse(r io.Reader) (*Program, error) {
	scanner := bufio.NewScanner(r)
	var p *Program
	l := 0
	for scanner.Scan() {
		t := scanner.Text()
		l++
		if !addrLine.MatchString(t) {
			continue
		}
		line := t
		if i := strings.Index(line, "\t"); i >= 0 {
			line = line[:i]
		}
		if i := strings.Index(line, "(*)"); i >= 0 {
			line = line[:i]
		}
		a, err := strconv.ParseUint(line[:4], 16, 16)
		if err != nil {
			return nil, ParseError{l, t, fmt.Sprintf("bad address - %v", err)}
		}
		addr := uint16(a)

		// Should be 1-3 tokens
		toks := strings.Fields(line[4:])
		if len(toks) == 0 {
			continue
		}
		if len(toks) > 3 {
			return nil, ParseError{l, t, fmt.Sprintf("%d bytes on one line, max is 3", len(toks))}
		}
		if p == nil {
			p = &Program{Origin: addr}
		}
		end := int(p.Origin) + len(p.Bytes)
		if int(addr) < end {
			return nil, ParseError{l, t, fmt.Sprintf("address %.4X overlaps previous line ending at %.4X", addr, end)}
		}
		for end < int(addr) {
			p.Bytes = append(p.Bytes, 0x00)
			end++
		}
		for _, v := range toks {
			b, err := strconv.ParseUint(v, 16, 8)
			if err != nil {
				return nil, ParseError{l, t, fmt.Sprintf("bad byte %q - %v", v, err)}
			}
			p.Bytes = append(p.Bytes, uint8(b))
		}
		if int(p.Origin)+len(p.Bytes) > 0x10000 {
			return nil, ParseError{l, t, "program runs past 0xFFFF"}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ParseError{l, "", "no assembled lines found"}
	}
	return p, nil
}
