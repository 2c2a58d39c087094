// Command spinorsh is an interactive/scripted shell over the flash
// core: list/info/probe/erase/read/write against one bound device.
//
// Without -dev, spinorsh binds an internal/simflash simulator so the
// whole command surface can be exercised without hardware; with -dev, it
// binds a real Gobot sysfs SPI adaptor through internal/gobotspi.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"gobot.io/x/gobot/v2/platforms/raspi"

	"spinor"
	"spinor/config"
	"spinor/internal/gobotspi"
	"spinor/internal/simflash"
)

// exit codes: 0 success, 1 device failure, 2 usage.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// shell holds the one active device binding: an explicit
// selected-device field rather than package-level state.
type shell struct {
	out     *os.File
	chip    *spinor.Chip
	devName string
}

func main() {
	devPath := flag.String("dev", "", "bind a real Gobot Raspberry Pi SPI adaptor instead of simulating; value is a label only")
	bus := flag.Int("bus", 0, "SPI bus number for -dev")
	cs := flag.Int("cs", 0, "SPI chip-select line for -dev")
	part := flag.String("part", "", "simflash part to simulate when -dev is omitted (defaults to config.SimflashPart, then w25q64-equivalent)")
	cmdStr := flag.String("cmd", "", "single command to run, instead of an interactive session")
	flag.Parse()

	sh := &shell{out: os.Stdout}
	if err := sh.bind(*devPath, *bus, *cs, *part); err != nil {
		fmt.Fprintf(os.Stderr, "spinorsh: %v\n", err)
		os.Exit(exitFail)
	}

	if *cmdStr != "" {
		os.Exit(sh.dispatch(strings.Fields(*cmdStr)))
	}
	if args := flag.Args(); len(args) > 0 {
		os.Exit(sh.dispatch(args))
	}
	os.Exit(sh.repl())
}

// bind attaches the shell's transport: a real Gobot SPI adaptor if devPath
// is set, otherwise a simulated part so the shell is immediately usable.
func (sh *shell) bind(devPath string, bus, cs int, part string) error {
	var t spinor.Transport
	if devPath != "" {
		adaptor := raspi.NewAdaptor()
		conn, err := adaptor.GetSpiConnection(bus, cs, 0, 8, 500000)
		if err != nil {
			return fmt.Errorf("open spi bus %d cs %d: %w", bus, cs, err)
		}
		t = gobotspi.New(conn, spinor.ReadModeBase, spinor.WriteModeSingleByte, 0)
		sh.devName = devPath
	} else {
		if part == "" {
			part = config.SimflashPart()
		}
		t = simflash.New(simPartByName(part))
		sh.devName = "simflash"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	chip, err := spinor.Probe(ctx, t, spinor.DualSingle)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	sh.chip = chip
	return nil
}

// simPartByName returns the named simulated part, defaulting to a
// w25q64-equivalent geometry when name is empty or unrecognized.
func simPartByName(name string) simflash.Part {
	switch name {
	case "n25q512":
		return simflash.Part{
			ID: [6]byte{0x20, 0xba, 0x20}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 1024, PageSize: 256,
			ReadModes: spinor.ReadModeFull, WriteModes: spinor.WriteModeSingleByte | spinor.WriteModeQuad,
		}
	default:
		return simflash.Part{
			ID: [6]byte{0xef, 0x40, 0x17}, IDLen: 3,
			SectorSize: 64 * 1024, NSectors: 128, PageSize: 256,
			ReadModes: spinor.ReadModeFull, WriteModes: spinor.WriteModeSingleByte | spinor.WriteModeQuad,
			XIP: true,
		}
	}
}

// repl runs an interactive session, reading lines from stdin. Under a
// real tty it prints a prompt; under redirection it reads silently, the
// way a REPL built for both interactive and scripted use should.
func (sh *shell) repl() int {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)
	last := exitOK
	for {
		if interactive {
			fmt.Fprint(sh.out, "spinorsh> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		last = sh.dispatch(strings.Fields(line))
	}
	return last
}

// dispatch runs one command: a switch over the parsed command word.
func (sh *shell) dispatch(args []string) int {
	if len(args) == 0 {
		return exitUsage
	}
	switch args[0] {
	case "help":
		fmt.Fprintln(sh.out, "commands: list info probe erase <offset> <len> read <file> <from> <len> write <file> <to> <len>")
		return exitOK
	case "list":
		return sh.cmdList()
	case "info":
		return sh.cmdInfo()
	case "probe":
		return sh.cmdProbe()
	case "erase":
		return sh.cmdErase(args[1:])
	case "read":
		return sh.cmdRead(args[1:])
	case "write":
		return sh.cmdWrite(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "spinorsh: unknown command %q\n", args[0])
		return exitUsage
	}
}

func (sh *shell) cmdList() int {
	if sh.chip == nil {
		fmt.Fprintln(sh.out, "no device bound")
		return exitOK
	}
	fmt.Fprintf(sh.out, "%s: %s\n", sh.devName, sh.chip.Info().Name)
	return exitOK
}

func (sh *shell) cmdInfo() int {
	if sh.chip == nil {
		fmt.Fprintln(os.Stderr, "spinorsh: no device selected")
		return exitFail
	}
	info := sh.chip.Info()
	fmt.Fprintf(sh.out, "device      : %s\n", info.Name)
	fmt.Fprintf(sh.out, "page size   : %d\n", info.PageSize)
	fmt.Fprintf(sh.out, "erase size  : %d\n", info.EraseSize)
	fmt.Fprintf(sh.out, "total size  : %d\n", info.TotalSize)
	fmt.Fprintf(sh.out, "read mode   : %s\n", info.ReadMode)
	return exitOK
}

func (sh *shell) cmdProbe() int {
	if sh.chip == nil {
		fmt.Fprintln(os.Stderr, "spinorsh: nothing bound to probe")
		return exitFail
	}
	fmt.Fprintf(sh.out, "probed %s\n", sh.chip.Info().Name)
	return exitOK
}

// mtdParseLen rounds len up to the next multiple of align when it is
// given as "+N" (e.g. "+0x2000").
func mtdParseLen(s string, align uint64) (uint64, error) {
	roundUp := strings.HasPrefix(s, "+")
	s = strings.TrimPrefix(s, "+")
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, err
	}
	if roundUp && align > 0 && n%align != 0 {
		n += align - n%align
	}
	return n, nil
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

func (sh *shell) cmdErase(args []string) int {
	if sh.chip == nil {
		fmt.Fprintln(os.Stderr, "spinorsh: no device selected")
		return exitFail
	}
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: erase <offset> <len>")
		return exitUsage
	}
	offset, err := parseUint(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: bad offset:", err)
		return exitUsage
	}
	length, err := mtdParseLen(args[1], uint64(sh.chip.State.EraseSize))
	if err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: bad len:", err)
		return exitUsage
	}
	req := &spinor.EraseRequest{Offset: offset, Length: length}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sh.chip.Erase(ctx, req); err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: erase failed:", err)
		return exitFail
	}
	fmt.Fprintf(sh.out, "erased %d bytes at 0x%x\n", length, offset)
	return exitOK
}

func (sh *shell) cmdRead(args []string) int {
	if sh.chip == nil {
		fmt.Fprintln(os.Stderr, "spinorsh: no device selected")
		return exitFail
	}
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: read <file> <from> <len>")
		return exitUsage
	}
	from, err := parseUint(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: bad from:", err)
		return exitUsage
	}
	length, err := parseUint(args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: bad len:", err)
		return exitUsage
	}
	buf := make([]byte, length)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sh.chip.ReadAt(ctx, from, buf); err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: read failed:", err)
		return exitFail
	}
	if err := os.WriteFile(args[0], buf, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: write output file:", err)
		return exitFail
	}
	fmt.Fprintf(sh.out, "read %d bytes from 0x%x into %s\n", length, from, args[0])
	return exitOK
}

func (sh *shell) cmdWrite(args []string) int {
	if sh.chip == nil {
		fmt.Fprintln(os.Stderr, "spinorsh: no device selected")
		return exitFail
	}
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: write <file> <to> <len>")
		return exitUsage
	}
	to, err := parseUint(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: bad to:", err)
		return exitUsage
	}
	length, err := parseUint(args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: bad len:", err)
		return exitUsage
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: read input file:", err)
		return exitFail
	}
	if uint64(len(data)) < length {
		length = uint64(len(data))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sh.chip.ProgramAt(ctx, to, data[:length]); err != nil {
		fmt.Fprintln(os.Stderr, "spinorsh: write failed:", err)
		return exitFail
	}
	fmt.Fprintf(sh.out, "wrote %d bytes to 0x%x from %s\n", length, to, args[0])
	return exitOK
}
