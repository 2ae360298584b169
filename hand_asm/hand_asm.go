// hand_asm takes a filename and produces a bin file
// from parsing the output as a hand assembled file
// of the form:
//
// XXXX OP A1 A2	comments
//
// Where XXXX is the address field and OP is the opcode
// A1,A2 are then optional params as needed.
//
// The bin holds the bytes from the first listed address on,
// ready for run6502 which loads it at 0x8000.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/AbdellatifTensai/NesEmulator/listing"
)

var (
	offset = flag.Int("offset", 0x0000, "Offset to start writing assembled data. Everything prior is zero filled.")
	origin = flag.Bool("origin", false, "If set zero fill up to the listing's first address instead of using --offset.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("Invalid command: %s [--offset N | --origin] <input> <output>", os.Args[0])
	}
	fn := flag.Args()[0]
	out := flag.Args()[1]

	in, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %q for input - %v", fn, err)
	}
	p, err := listing.Parse(in)
	in.Close()
	if err != nil {
		log.Fatalf("Can't process %q - %v", fn, err)
	}

	pad := *offset
	if *origin {
		pad = int(p.Origin)
	}
	if pad < 0 || pad+len(p.Bytes) > 0x10000 {
		log.Fatalf("Offset %d with %d bytes doesn't fit in 64k", pad, len(p.Bytes))
	}
	output := make([]byte, pad, pad+len(p.Bytes))
	output = append(output, p.Bytes...)

	of, err := os.Create(out)
	if err != nil {
		log.Fatalf("Can't open output %q - %v", out, err)
	}
	n, err := of.Write(output)
	if got, want := n, len(output); got != want {
		log.Fatalf("Short write to %q. Got %d and want %d", out, got, want)
	}
	if err != nil {
		log.Fatalf("Got error writing to %q - %v", out, err)
	}
	if err := of.Close(); err != nil {
		log.Fatalf("Error closing %q - %v", out, err)
	}
	log.Printf("Wrote %d bytes (origin %.4X) to %q", len(output), p.Origin, out)
}
