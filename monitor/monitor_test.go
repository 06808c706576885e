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

package monitor_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/diagnostics"
	"github.com/jetsetilly/gopherdmg/monitor"
	"github.com/jetsetilly/gopherdmg/test"
)

func newMonitor(t *testing.T) (*monitor.Monitor, *strings.Builder) {
	t.Helper()

	// MBC1 with RAM and four banks of ROM
	data := make([]uint8, 4*0x4000)
	data[0x147] = 0x03
	data[0x149] = 0x03

	mem, err := memory.NewAddressSpace(nil, data, "")
	test.DemandSuccess(t, err)

	out := &strings.Builder{}
	return monitor.NewMonitor(mem, out), out
}

func TestPeekPoke(t *testing.T) {
	mon, out := newMonitor(t)

	_, err := mon.Execute("poke c000 12 $34")
	test.ExpectSuccess(t, err)

	_, err = mon.Execute("peek c000 2")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "c000: 12 34\n")

	out.Reset()
	_, err = mon.Execute("P 0xc001")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "c001: 34"))

	_, err = mon.Execute("poke 0000 01")
	test.ExpectFailure(t, err)

	_, err = mon.Execute("poke c000 100")
	test.ExpectSuccess(t, errors.Is(err, monitor.ErrValue))

	_, err = mon.Execute("peek")
	test.ExpectSuccess(t, errors.Is(err, monitor.ErrArguments))
}

func TestBankSwitch(t *testing.T) {
	mon, out := newMonitor(t)

	_, err := mon.Execute("write 2000 03")
	test.ExpectSuccess(t, err)
	_, err = mon.Execute("banks")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "ROMX: 3"))

	out.Reset()
	_, err = mon.Execute("reset")
	test.ExpectSuccess(t, err)
	_, err = mon.Execute("banks")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "ROMX: 1"))
}

func TestKeywords(t *testing.T) {
	mon, _ := newMonitor(t)

	quit, err := mon.Execute("")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)

	_, err = mon.Execute("jump 0100")
	test.ExpectSuccess(t, errors.Is(err, monitor.ErrUnknownCommand))

	// ambiguous between READ and RESET
	_, err = mon.Execute("re 0100")
	test.ExpectSuccess(t, errors.Is(err, monitor.ErrUnknownCommand))

	quit, err = mon.Execute("QUIT")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	quit, err = mon.Execute("q")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)
}

func TestDiagnostics(t *testing.T) {
	mon, out := newMonitor(t)

	_, err := mon.Execute("read e000")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, strings.Contains(out.String(), "!"))

	_, err = mon.Execute("diagnostics on")
	test.ExpectSuccess(t, err)
	out.Reset()
	_, err = mon.Execute("read e000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "e000: 00\n! echo read at e000\n")

	// events beyond the queue size are counted but not listed
	for i := 0; i < 100; i++ {
		mon.Diagnostic(diagnostics.Event{Address: 0xe000, Kind: diagnostics.Echo})
	}
	out.Reset()
	_, err = mon.Execute("")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "! 36 more events\n"))

	// peek never generates a diagnostic
	out.Reset()
	_, err = mon.Execute("peek e000")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, strings.Contains(out.String(), "!"))
}

func TestDecode(t *testing.T) {
	mon, out := newMonitor(t)

	_, err := mon.Execute("decode 2000")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "bank control"))
}

func TestRun(t *testing.T) {
	mon, out := newMonitor(t)

	script := "poke c000 aa\npeek c000\npoke 0000 01\nquit\npeek c001\n"
	err := mon.Run(strings.NewReader(script))
	test.ExpectSuccess(t, err)

	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, "c000: aa"))
	test.ExpectSuccess(t, strings.Contains(s, "* "))
	test.ExpectFailure(t, strings.Contains(s, "c001"))

	// end of input without a quit command is not an error
	err = mon.Run(strings.NewReader("peek c000"))
	test.ExpectSuccess(t, err)
}
