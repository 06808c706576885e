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

package regions_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherdmg/environment"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/regions"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestRAM(t *testing.T) {
	ram := regions.NewRAM(nil, "OAM", 0xfe00, 0x100)
	test.ExpectEquality(t, ram.Memtop(), uint16(0xfeff))

	ram.Write(0xfe10, 0x42)
	test.ExpectEquality(t, ram.Read(0xfe10), uint8(0x42))
	test.ExpectEquality(t, ram.Data[0x10], uint8(0x42))

	v, err := ram.Peek(0xfe10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	_, err = ram.Peek(0xff00)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, bus.AddressError))

	ram.Reset()
	test.ExpectEquality(t, ram.Read(0xfe10), uint8(0x00))
}

func TestRandomReset(t *testing.T) {
	env := environment.NewEnvironment(environment.MainEmulation)
	env.Normalise()
	env.RandomState = true

	ram := regions.NewRAM(env, "VRAM", 0x8000, 0x2000)
	ram.Reset()

	// it's possible but vanishingly unlikely for a random fill of 8k to be all
	// zero
	zero := true
	for _, v := range ram.Data {
		if v != 0 {
			zero = false
			break
		}
	}
	test.ExpectFailure(t, zero)
}

func TestWRAMBanks(t *testing.T) {
	ram := regions.NewWRAM(nil)
	test.ExpectEquality(t, ram.Bank(), 1)

	ram.Write(0xd000, 0x11)
	ram.SelectBank(2)
	test.ExpectEquality(t, ram.Read(0xd000), uint8(0x00))
	ram.Write(0xd000, 0x22)

	ram.SelectBank(0)
	test.ExpectEquality(t, ram.Bank(), 1)
	test.ExpectEquality(t, ram.Read(0xd000), uint8(0x11))
	test.ExpectEquality(t, ram.BankRegister(), uint8(0xf9))

	// only three bits are used
	ram.SelectBank(0x0a)
	test.ExpectEquality(t, ram.Bank(), 2)
	test.ExpectEquality(t, ram.Read(0xd000), uint8(0x22))

	// bank 0 is not affected by bank selection
	ram.Write(0xc000, 0x33)
	ram.SelectBank(7)
	test.ExpectEquality(t, ram.Read(0xc000), uint8(0x33))
	test.ExpectEquality(t, ram.Data[7*0x1000], uint8(0x00))
}

func TestBankedPadding(t *testing.T) {
	b := regions.NewBankedFromData("ROM", 0x4000, make([]uint8, 0x2000), 0xff)
	test.DemandEquality(t, b.NumBanks(), 1)
	test.ExpectEquality(t, b.Len(), 0x4000)
	test.ExpectEquality(t, b.Read(0x1fff, 0xff), uint8(0x00))
	test.ExpectEquality(t, b.Read(0x2000, 0xff), uint8(0xff))
	test.ExpectEquality(t, b.Read(0x3fff, 0xff), uint8(0xff))

	b = regions.NewBankedFromData("ROM", 0x4000, make([]uint8, 0x4001), 0xff)
	test.ExpectEquality(t, b.NumBanks(), 2)

	b = regions.NewBankedFromData("ROM", 0x4000, nil, 0xff)
	test.ExpectEquality(t, b.NumBanks(), 1)
}

func TestBankedWrap(t *testing.T) {
	b := regions.NewBanked("SRAM", 0x2000, 4, 0x00)
	test.ExpectEquality(t, b.Offset(1, 0xa010), 0x2000+0x0010)
	test.ExpectEquality(t, b.Offset(5, 0xa010), 0x2000+0x0010)
	test.ExpectEquality(t, b.Offset(4, 0x0000), 0)

	b.Write(b.Offset(3, 0xbfff), 0x99)
	test.ExpectEquality(t, b.Bank(3)[0x1fff], uint8(0x99))
	test.ExpectEquality(t, b.Bank(7)[0x1fff], uint8(0x99))

	empty := regions.NewBanked("SRAM", 0x2000, 0, 0x00)
	test.ExpectEquality(t, empty.NumBanks(), 0)
	test.ExpectEquality(t, empty.Read(empty.Offset(3, 0xa000), 0xff), uint8(0xff))
	empty.Write(0, 0x10)
}
