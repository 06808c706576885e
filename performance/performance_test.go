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

package performance_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/performance"
	"github.com/jetsetilly/gopherdmg/test"
)

type flatMemory struct {
	data   [0x10000]uint8
	reads  int
	writes int
}

func (m *flatMemory) Read(address uint16) uint8 {
	m.reads++
	return m.data[address]
}

func (m *flatMemory) Write(address uint16, data uint8) {
	m.writes++
	m.data[address] = data
}

func TestSweep(t *testing.T) {
	m := &flatMemory{}
	n := performance.Sweep(m)
	test.ExpectEquality(t, n, 0x20000)
	test.ExpectEquality(t, m.reads, 0x10000)
	test.ExpectEquality(t, m.writes, 0x10000)
}

func TestCheck(t *testing.T) {
	m := &flatMemory{}
	var w strings.Builder

	res, err := performance.Check(&w, performance.ProfileNone, m, "50ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Sweeps > 0)
	test.ExpectEquality(t, res.Accesses, res.Sweeps*0x20000)
	test.ExpectSuccess(t, res.Rate() > 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "accesses per second"))

	_, err = performance.Check(nil, performance.ProfileNone, m, "five seconds")
	test.ExpectFailure(t, err)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, _ = performance.ParseProfileString("all")
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectSuccess(t, errors.Is(err, performance.ErrProfile))
}

func TestRunProfiler(t *testing.T) {
	ran := false
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	sentinel := errors.New("test error")
	err = performance.RunProfiler(performance.ProfileNone, "test", func() error {
		return sentinel
	})
	test.ExpectSuccess(t, errors.Is(err, sentinel))
}
