// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/diagnostics"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/modalflag"
	"golang.org/x/term"
)

// Sentinel errors returned by Execute().
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
	ErrValue          = errors.New("not an 8-bit value")
)

const prompt = "> "

// the maximum number of bytes displayed by a single PEEK
const maxPeek = 0x100

// Monitor is an interactive command line for inspecting and modifying an
// address space.
type Monitor struct {
	mem *memory.AddressSpace
	out io.Writer

	// diagnostics are queued during a command and echoed to the output when
	// the command has finished
	echo    bool
	events  *diagnostics.Channel
	dropped uint64
}

// the number of diagnostic events that can be echoed for a single command
const eventQueueSize = 64

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mem *memory.AddressSpace, output io.Writer) *Monitor {
	mon := &Monitor{
		mem:    mem,
		out:    output,
		events: diagnostics.NewChannel(eventQueueSize),
	}
	mem.SetDiagnostics(mon)
	return mon
}

// Diagnostic implements the diagnostics.Sink interface. Events are queued
// without blocking.
func (mon *Monitor) Diagnostic(ev diagnostics.Event) {
	if mon.echo {
		mon.events.Diagnostic(ev)
	}
}

// write queued diagnostic events to the output
func (mon *Monitor) echoDiagnostics() {
	for {
		select {
		case ev := <-mon.events.Events():
			fmt.Fprintf(mon.out, "! %s\n", ev)
		default:
			if d := mon.events.Dropped(); d > mon.dropped {
				fmt.Fprintf(mon.out, "! %d more events\n", d-mon.dropped)
				mon.dropped = d
			}
			return
		}
	}
}

// Run the monitor until the QUIT command or the end of the input. If the
// input is a terminal it is put into raw mode and line editing is
// available.
func (mon *Monitor) Run(input io.Reader) error {
	if f, ok := input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return mon.runTerminal(f)
	}

	scanner := bufio.NewScanner(input)
	return mon.loop(func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	})
}

func (mon *Monitor) runTerminal(f *os.File) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer term.Restore(fd, state)

	// the terminal handles line endings while in raw mode so all output must
	// go through it
	rw := struct {
		io.Reader
		io.Writer
	}{f, mon.out}
	t := term.NewTerminal(rw, prompt)

	out := mon.out
	mon.out = t
	defer func() {
		mon.out = out
	}()

	return mon.loop(t.ReadLine)
}

func (mon *Monitor) loop(readLine func() (string, error)) error {
	for {
		input, err := readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("monitor: %w", err)
		}

		quit, err := mon.Execute(input)
		if err != nil {
			fmt.Fprintf(mon.out, "* %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Execute a single line of input. Returns true if the QUIT command has been
// given.
func (mon *Monitor) Execute(input string) (bool, error) {
	defer mon.echoDiagnostics()

	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return false, nil
	}

	cmd, ok := keyword(tokens[0])
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, tokens[0])
	}
	args := tokens[1:]

	switch cmd {
	case cmdQuit:
		return true, nil

	case cmdHelp:
		return false, mon.help(args)

	case cmdPeek:
		return false, mon.peek(args)

	case cmdPoke:
		return false, mon.poke(args)

	case cmdRead:
		if len(args) != 1 {
			return false, fmt.Errorf("%w: %s", ErrArguments, cmd)
		}
		a, err := modalflag.ParseAddress(args[0])
		if err != nil {
			return false, err
		}
		fmt.Fprintf(mon.out, "%04x: %02x\n", a, mon.mem.Read(a))

	case cmdWrite:
		if len(args) != 2 {
			return false, fmt.Errorf("%w: %s", ErrArguments, cmd)
		}
		a, err := modalflag.ParseAddress(args[0])
		if err != nil {
			return false, err
		}
		v, err := parseValue(args[1])
		if err != nil {
			return false, err
		}
		mon.mem.Write(a, v)

	case cmdDecode:
		if len(args) != 1 {
			return false, fmt.Errorf("%w: %s", ErrArguments, cmd)
		}
		a, err := modalflag.ParseAddress(args[0])
		if err != nil {
			return false, err
		}
		fmt.Fprintf(mon.out, "read:  %s\n", memorymap.MapAddress(a, memorymap.Read))
		fmt.Fprintf(mon.out, "write: %s\n", memorymap.MapAddress(a, memorymap.Write))

	case cmdBanks:
		fmt.Fprintln(mon.out, mon.mem.Cart.MappedBanks())

	case cmdCart:
		fmt.Fprintln(mon.out, mon.mem.Cart)
		fmt.Fprintln(mon.out, mon.mem.Cart.Header)

	case cmdRAM:
		ram := mon.mem.Cart.GetRAM()
		if len(ram) == 0 {
			fmt.Fprintln(mon.out, "cartridge has no RAM")
		}
		for _, r := range ram {
			s := r.Label
			if r.Mapped {
				s = fmt.Sprintf("%s (mapped)", s)
			}
			fmt.Fprintln(mon.out, s)
			hexDump(mon.out, r.Origin, r.Data)
		}

	case cmdMap:
		fmt.Fprintln(mon.out, mon.mem)

	case cmdMMIO:
		fmt.Fprint(mon.out, mon.mem.MMIO().Summary())

	case cmdDiag:
		switch len(args) {
		case 0:
			mon.echo = !mon.echo
		case 1:
			switch strings.ToUpper(args[0]) {
			case "ON":
				mon.echo = true
			case "OFF":
				mon.echo = false
			default:
				return false, fmt.Errorf("%w: %s", ErrArguments, cmd)
			}
		default:
			return false, fmt.Errorf("%w: %s", ErrArguments, cmd)
		}
		if mon.echo {
			fmt.Fprintln(mon.out, "diagnostics: on")
		} else {
			fmt.Fprintln(mon.out, "diagnostics: off")
		}

	case cmdLog:
		n := 10
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return false, fmt.Errorf("%w: %s", ErrArguments, cmd)
			}
		}
		logger.Tail(mon.out, n)

	case cmdReset:
		mon.mem.Reset()
	}

	return false, nil
}

func (mon *Monitor) help(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(mon.out, strings.Join(commandList(), " "))
		return nil
	}
	cmd, ok := keyword(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	fmt.Fprintln(mon.out, helps[cmd])
	return nil
}

func (mon *Monitor) peek(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: %s", ErrArguments, cmdPeek)
	}

	a, err := modalflag.ParseAddress(args[0])
	if err != nil {
		return err
	}

	n := 1
	if len(args) == 2 {
		n, err = strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s", ErrArguments, cmdPeek)
		}
		n = min(n, maxPeek)
	}

	if n == 1 {
		v, err := mon.mem.Peek(a)
		if err != nil {
			return err
		}
		fmt.Fprintf(mon.out, "%04x: %02x  %s\n", a, v, memorymap.MapAddress(a, memorymap.Read))
		return nil
	}

	data := make([]uint8, 0, n)
	for i := 0; i < n; i++ {
		v, err := mon.mem.Peek(a + uint16(i))
		if err != nil {
			return err
		}
		data = append(data, v)
	}
	hexDump(mon.out, a, data)

	return nil
}

func (mon *Monitor) poke(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: %s", ErrArguments, cmdPoke)
	}

	a, err := modalflag.ParseAddress(args[0])
	if err != nil {
		return err
	}

	for i, s := range args[1:] {
		v, err := parseValue(s)
		if err != nil {
			return err
		}
		err = mon.mem.Poke(a+uint16(i), v)
		if err != nil {
			return err
		}
	}

	return nil
}

// parse an 8-bit value. hexadecimal is assumed in the same way as addresses
func parseValue(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrValue, s)
	}
	return uint8(v), nil
}

func hexDump(out io.Writer, origin uint16, data []uint8) {
	var s strings.Builder
	for i, v := range data {
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x:", origin+uint16(i)))
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	if len(data) > 0 {
		s.WriteString("\n")
	}
	io.WriteString(out, s.String())
}
