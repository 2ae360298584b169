// disassembler takes a filename and load's it and then
// disassembles it to stdout starting at the first instruction.
// If --listing is set the file is a hand assembled listing and
// the load offset and start PC come from its first address.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AbdellatifTensai/NesEmulator/disassemble"
	"github.com/AbdellatifTensai/NesEmulator/listing"
	"github.com/AbdellatifTensai/NesEmulator/memory"
)

var (
	startPC   = flag.Int("start_pc", 0x8000, "PC value to start disassembling")
	offset    = flag.Int("offset", 0x8000, "Offset into RAM to start loading data. All other RAM will be zero'd out. Ignored for listings.")
	isListing = flag.Bool("listing", false, "If set the input is a hand assembled listing instead of a raw binary.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset> -listing] <filename>", os.Args[0])
	}
	if *offset < 0 || *offset > 0xFFFF || *startPC < 0 || *startPC > 0xFFFF {
		log.Fatal("--offset/--start_pc out of range. Must be between 0-65535")
	}
	fn := flag.Args()[0]

	b, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	pc := uint16(*startPC)
	if *isListing {
		p, err := listing.Parse(bytes.NewReader(b))
		if err != nil {
			log.Fatalf("Can't assemble %s - %v", fn, err)
		}
		*offset = int(p.Origin)
		pc = p.Origin
		b = p.Bytes
	}
	max := 65536 - *offset
	if l := len(b); l > max {
		log.Printf("Length %d at offset %d too long, truncating to 64k", l, *offset)
		b = b[:max]
	}
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", len(b), pc)

	r := memory.NewFlat()
	r.Load(uint16(*offset), b)
	cnt := 0
	// Can't base it on PC since it may rollover so just disassemble until we run out of buffer.
	for cnt < len(b) {
		dis, off := disassemble.Step(pc, r)
		pc += uint16(off)
		cnt += off
		fmt.Printf("%s\n", dis)
	}
}
