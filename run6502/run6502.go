// run6502 takes a filename, loads it at 0x8000, points the
// reset vector at it and runs until BRK (or an illegal opcode).
// Afterwards the registers and a range of memory are printed.
//
// By default the file is a raw binary. With --listing it's treated
// as a hand assembled listing (see the listing package) and the
// assembled bytes are loaded instead.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AbdellatifTensai/NesEmulator/cpu"
	"github.com/AbdellatifTensai/NesEmulator/disassemble"
	"github.com/AbdellatifTensai/NesEmulator/listing"
	"github.com/AbdellatifTensai/NesEmulator/memory"
	"github.com/AbdellatifTensai/NesEmulator/monitor"
	"github.com/fatih/color"
)

var (
	isListing       = flag.Bool("listing", false, "If set the input is a hand assembled listing instead of a raw binary.")
	maxInstructions = flag.Int("max_instructions", 0, "If non-zero stop after this many instructions even if the CPU hasn't halted.")
	trace           = flag.Bool("trace", false, "If set print each instruction before it executes.")
	dumpFrom        = flag.Int("dump_from", 0x8000, "First address of the memory dump printed after the run.")
	dumpTo          = flag.Int("dump_to", 0x80FF, "Last address (inclusive) of the memory dump printed after the run.")
	useColor        = flag.Bool("color", !color.NoColor, "Highlight non-zero bytes and the final PC in the memory dump.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [--listing] [--trace] [--max_instructions N] <filename>", os.Args[0])
	}
	if *dumpFrom < 0 || *dumpFrom > 0xFFFF || *dumpTo < 0 || *dumpTo > 0xFFFF {
		log.Fatal("--dump_from/--dump_to out of range. Must be between 0-65535")
	}
	fn := flag.Args()[0]
	b, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	if *isListing {
		p, err := listing.Parse(bytes.NewReader(b))
		if err != nil {
			log.Fatalf("Can't assemble %s - %v", fn, err)
		}
		if p.Origin != cpu.LOAD_ADDRESS {
			log.Printf("Listing origin %.4X isn't %.4X, absolute addresses in it may be wrong", p.Origin, cpu.LOAD_ADDRESS)
		}
		b = p.Bytes
	}

	c, err := cpu.Init(memory.NewFlat())
	if err != nil {
		log.Fatalf("Can't initialize cpu - %v", err)
	}

	if !*trace && *maxInstructions == 0 {
		err = c.LoadResetRun(b)
	} else {
		err = stepped(c, b)
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	if !*useColor {
		color.NoColor = true
	}
	status := green(c.State().String())
	if err != nil {
		status = red(fmt.Sprintf("%v", err))
	}
	fmt.Printf("%s\n%s cycles: %d\n", status, c, c.Cycles)

	from, to := uint16(*dumpFrom), uint16(*dumpTo)
	opts := monitor.Options{Color: *useColor, Mark: c.PC, HasMark: true}
	if err := monitor.Dump(os.Stdout, from, c.ReadRange(from, to), opts); err != nil {
		log.Fatalf("Can't write dump - %v", err)
	}
	if err != nil {
		os.Exit(1)
	}
}

// stepped runs the program one instruction at a time so it can be traced and/or bounded.
func stepped(c *cpu.Processor, prog []uint8) error {
	if err := c.Load(prog); err != nil {
		return err
	}
	c.Reset()
	for n := 0; c.State() != cpu.STATE_HALTED; n++ {
		if *maxInstructions > 0 && n >= *maxInstructions {
			log.Printf("Stopped after %d instructions without halting", n)
			return nil
		}
		if *trace {
			dis, _ := disassemble.Step(c.PC, c.Ram)
			fmt.Printf("%s %s\n", dis, c)
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
