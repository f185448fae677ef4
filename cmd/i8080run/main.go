// main.go - demo ROM runner for the i8080 core
//
// i8080run loads one or more raw ROM segments at caller-chosen addresses
// and steps the core until it halts or a step limit is reached, printing
// final register state. It exists to exercise the core package end to
// end, the same role cmd/ie32to64 plays for the IE32/IE64 CPU pair: a
// small, independent command, not a production machine.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/intuitionamiga/i8080"
)

// segment is one -load flag: a ROM file path and the address it loads at.
type segment struct {
	addr uint16
	path string
}

// segmentList collects repeated -load addr=path flags.
type segmentList []segment

func (s *segmentList) String() string {
	parts := make([]string, len(*s))
	for i, seg := range *s {
		parts[i] = fmt.Sprintf("0x%04X=%s", seg.addr, seg.path)
	}
	return strings.Join(parts, ",")
}

func (s *segmentList) Set(value string) error {
	addrStr, path, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("expected addr=path, got %q", value)
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(addrStr, "0x"), 16, 16)
	if err != nil {
		return fmt.Errorf("bad load address %q: %w", addrStr, err)
	}
	*s = append(*s, segment{addr: uint16(addr), path: path})
	return nil
}

// stderrBus is a Bus that logs port activity instead of driving real
// hardware; machine-specific I/O devices are outside the core's scope,
// so this is the entire demo's "machine."
type stderrBus struct{}

func (stderrBus) In(port byte) byte {
	fmt.Fprintf(os.Stderr, "IN  port 0x%02X -> 0x00\n", port)
	return 0
}

func (stderrBus) Out(port byte, value byte) {
	fmt.Fprintf(os.Stderr, "OUT port 0x%02X <- 0x%02X\n", port, value)
}

func main() {
	var segs segmentList
	flag.Var(&segs, "load", "addr=path segment to load, repeatable (e.g. -load 0x0000=invaders.h)")
	entry := flag.String("entry", "0x0000", "initial PC")
	maxSteps := flag.Uint64("max-steps", 10_000_000, "stop after this many instructions even if not halted")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: i8080run [options]\n\nLoads raw ROM segments and runs the i8080 core until it halts.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  i8080run -load 0x0000=invaders.h -load 0x0800=invaders.g -load 0x1000=invaders.f -load 0x1800=invaders.e\n")
	}
	flag.Parse()

	if len(segs) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	entryAddr, err := strconv.ParseUint(strings.TrimPrefix(*entry, "0x"), 16, 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: bad -entry %q: %v\n", *entry, err)
		os.Exit(1)
	}

	cpu := i8080.NewWithBus(stderrBus{})
	for _, seg := range segs {
		bytes, err := os.ReadFile(seg.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %v\n", seg.path, err)
			os.Exit(1)
		}
		cpu.Load(seg.addr, bytes)
	}
	cpu.PC = uint16(entryAddr)

	var steps uint64
	for !cpu.IsHalted() && steps < *maxSteps {
		cpu.Step()
		steps++
	}

	fmt.Printf("stopped after %d instructions (halted=%v)\n", steps, cpu.IsHalted())
	fmt.Printf("PC=0x%04X SP=0x%04X A=0x%02X B=0x%02X C=0x%02X D=0x%02X E=0x%02X H=0x%02X L=0x%02X\n",
		cpu.PC, cpu.SP, cpu.A, cpu.B, cpu.C, cpu.D, cpu.E, cpu.H, cpu.L)
	fmt.Printf("Z=%v S=%v P=%v CY=%v AC=%v\n", cpu.Z, cpu.S, cpu.P, cpu.CY, cpu.AC)
}
