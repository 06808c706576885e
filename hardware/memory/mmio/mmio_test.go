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

package mmio_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/memory/mmio"
	"github.com/jetsetilly/gopherdmg/test"
)

type block struct {
	data  [0x10]uint8
	reads int
}

func (b *block) Read(address uint16) uint8 {
	b.reads++
	return b.data[address&0x0f]
}

func (b *block) Write(address uint16, data uint8) {
	b.data[address&0x0f] = data
}

func TestUnregistered(t *testing.T) {
	tab := mmio.NewTable()
	for a := 0xff00; a <= 0xffff; a++ {
		v, ok := tab.Dispatch(uint16(a))
		test.ExpectEquality(t, v, uint8(0xff))
		test.ExpectFailure(t, ok)
		test.ExpectFailure(t, tab.DispatchWrite(uint16(a), 0x00))
	}

	// addresses outside the MMIO area are never registered
	test.ExpectEquality(t, tab.DispatchRead(0x0000), uint8(0xff))
	test.ExpectFailure(t, tab.DispatchWrite(0xc000, 0x00))
	test.ExpectFailure(t, tab.Registered(0xc000))
}

func TestRegister(t *testing.T) {
	tab := mmio.NewTable()

	var div uint8
	var divWrites int
	err := tab.Register(memorymap.DIV, func() uint8 { return div }, func(_ uint8) {
		divWrites++
		div = 0
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tab.Registered(memorymap.DIV))

	div = 0x42
	v, ok := tab.Dispatch(memorymap.DIV)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x42))

	test.ExpectSuccess(t, tab.DispatchWrite(memorymap.DIV, 0x99))
	test.ExpectEquality(t, divWrites, 1)
	test.ExpectEquality(t, tab.DispatchRead(memorymap.DIV), uint8(0x00))

	err = tab.Register(memorymap.DIV, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, mmio.ErrAlreadyRegistered))

	// the original registration is intact
	div = 0x10
	test.ExpectEquality(t, tab.DispatchRead(memorymap.DIV), uint8(0x10))

	err = tab.Register(0xfe00, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, mmio.ErrNotMMIO))
}

func TestNilEffects(t *testing.T) {
	tab := mmio.NewTable()

	var dma uint8
	test.DemandSuccess(t, tab.Register(memorymap.DMA, nil, func(v uint8) { dma = v }))
	test.DemandSuccess(t, tab.Register(memorymap.LY, func() uint8 { return 0x90 }, nil))

	v, ok := tab.Dispatch(memorymap.DMA)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0xff))
	tab.DispatchWrite(memorymap.DMA, 0xc1)
	test.ExpectEquality(t, dma, uint8(0xc1))

	test.ExpectSuccess(t, tab.DispatchWrite(memorymap.LY, 0x00))
	test.ExpectEquality(t, tab.DispatchRead(memorymap.LY), uint8(0x90))
}

func TestRegisterRange(t *testing.T) {
	tab := mmio.NewTable()
	wave := &block{}

	test.DemandSuccess(t, tab.RegisterRange(memorymap.OriginWave, memorymap.MemtopWave, wave))
	tab.DispatchWrite(0xff33, 0x5a)
	test.ExpectEquality(t, wave.data[3], uint8(0x5a))
	test.ExpectEquality(t, tab.DispatchRead(0xff33), uint8(0x5a))
	test.ExpectEquality(t, wave.reads, 1)

	// overlapping range is refused completely
	err := tab.RegisterRange(0xff2f, 0xff30, &block{})
	test.ExpectSuccess(t, errors.Is(err, mmio.ErrAlreadyRegistered))
	test.ExpectFailure(t, tab.Registered(0xff2f))

	test.ExpectFailure(t, tab.RegisterRange(0xff40, 0xff3f, &block{}))
	test.ExpectSuccess(t, errors.Is(tab.RegisterRange(0xfe00, 0xff01, &block{}), mmio.ErrNotMMIO))
}

func TestSeal(t *testing.T) {
	tab := mmio.NewTable()
	test.DemandSuccess(t, tab.Register(memorymap.IE, nil, nil))
	tab.Seal()
	test.ExpectSuccess(t, tab.Sealed())
	test.ExpectSuccess(t, errors.Is(tab.Register(memorymap.IF, nil, nil), mmio.ErrSealed))
	test.ExpectSuccess(t, errors.Is(tab.RegisterRange(0xff80, 0xfffe, &block{}), mmio.ErrSealed))
	test.ExpectSuccess(t, tab.Registered(memorymap.IE))
}

func TestSummary(t *testing.T) {
	tab := mmio.NewTable()
	test.DemandSuccess(t, tab.Register(memorymap.DIV, func() uint8 { return 0 }, nil))
	test.DemandSuccess(t, tab.Register(memorymap.DMA, nil, func(uint8) {}))
	test.DemandSuccess(t, tab.RegisterRange(memorymap.OriginHRAM, memorymap.MemtopHRAM, &block{}))
	test.DemandSuccess(t, tab.Register(memorymap.IE, func() uint8 { return 0 }, func(uint8) {}))

	expected := "ff04\tDIV (read only)\nff46\tDMA (write only)\nff80 -> fffe\nffff\tIE\n"
	test.ExpectEquality(t, tab.Summary(), expected)
}
