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

package cartridge_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/test"
)

// makeROM creates cartridge data with the specified number of banks. The
// first two bytes of every bank are the bank number.
func makeROM(banks int, cartType uint8, romSize uint8, ramSize uint8) []uint8 {
	data := make([]uint8, banks*0x4000)
	for b := 0; b < banks; b++ {
		data[b*0x4000] = uint8(b)
		data[b*0x4000+1] = uint8(b >> 8)
	}

	copy(data[0x134:], "TESTCART")
	data[0x147] = cartType
	data[0x148] = romSize
	data[0x149] = ramSize

	var chk uint8
	for i := 0x134; i <= 0x14c; i++ {
		chk = chk - data[i] - 1
	}
	data[0x14d] = chk

	return data
}

func attach(t *testing.T, data []uint8, mapping string) *cartridge.Cartridge {
	t.Helper()
	cart := cartridge.NewCartridge(nil)
	err := cart.Attach(cartridgeloader.NewLoaderFromData("test", data, mapping))
	test.DemandSuccess(t, err)
	return cart
}

func bank(cart *cartridge.Cartridge, address uint16) int {
	return int(cart.Read(address)) | int(cart.Read(address+1))<<8
}

func TestHeader(t *testing.T) {
	hdr := cartridge.ParseHeader(makeROM(2, 0x13, 0x01, 0x03))
	test.ExpectEquality(t, hdr.Title, "TESTCART")
	test.ExpectEquality(t, hdr.Type, uint8(0x13))
	test.ExpectSuccess(t, hdr.ChecksumOK())
	test.ExpectFailure(t, hdr.IsCGB())

	n, ok := hdr.ROMBanks()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 4)

	n, ok = hdr.RAMBytes()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 0x8000)

	test.ExpectEquality(t, cartridge.TypeName(0x13), "MBC3+RAM+BATTERY")
	test.ExpectEquality(t, cartridge.TypeName(0xfc), "unknown")

	// missing header bytes are the fill value
	hdr = cartridge.ParseHeader(nil)
	test.ExpectEquality(t, hdr.Type, uint8(0xff))
	test.ExpectEquality(t, hdr.Title, "")
	_, ok = hdr.ROMBanks()
	test.ExpectFailure(t, ok)
}

func TestPadding(t *testing.T) {
	data := make([]uint8, 0x100)
	data[0] = 0x31
	cart := attach(t, data, "")

	test.ExpectEquality(t, cart.NumBanks(), 1)
	test.ExpectEquality(t, cart.ID(), "ROM")
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0x31))
	test.ExpectEquality(t, cart.Read(0x00ff), uint8(0x00))
	test.ExpectEquality(t, cart.Read(0x0100), uint8(0xff))
	test.ExpectEquality(t, cart.Read(0x3fff), uint8(0xff))

	// only one bank so the switchable area mirrors bank zero
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x31))

	// no RAM
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
	cart.Write(0xa000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))

	// an image with no data at all is also accepted
	cart = attach(t, nil, "")
	test.ExpectEquality(t, cart.NumBanks(), 1)
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0xff))
}

func TestROMWithRAM(t *testing.T) {
	cart := attach(t, makeROM(2, 0x08, 0x00, 0x02), "")
	test.ExpectEquality(t, bank(cart, 0x4000), 1)

	// ROM is never written
	cart.Write(0x4000, 0x99)
	test.ExpectEquality(t, bank(cart, 0x4000), 1)

	// RAM is always enabled
	cart.Write(0xa123, 0x42)
	test.ExpectEquality(t, cart.Read(0xa123), uint8(0x42))
}

func TestMBC1(t *testing.T) {
	cart := attach(t, makeROM(64, 0x03, 0x05, 0x03), "")
	test.DemandEquality(t, cart.ID(), "MBC1")

	test.ExpectEquality(t, bank(cart, 0x4000), 1)
	test.ExpectEquality(t, bank(cart, 0x0000), 0)

	cart.Write(0x2000, 0x05)
	test.ExpectEquality(t, bank(cart, 0x4000), 5)

	// zero selects bank one
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, bank(cart, 0x4000), 1)

	// only five bits are used
	cart.Write(0x3fff, 0xe3)
	test.ExpectEquality(t, bank(cart, 0x4000), 3)

	// secondary register
	cart.Write(0x4000, 0x01)
	test.ExpectEquality(t, bank(cart, 0x4000), 0x23)
	test.ExpectEquality(t, bank(cart, 0x0000), 0)

	// mode 1 maps the secondary register to the fixed area
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, bank(cart, 0x0000), 0x20)
	test.ExpectEquality(t, cart.GetBank(0x0000).Number, 0x20)

	cart.Reset()
	test.ExpectEquality(t, bank(cart, 0x4000), 1)
	test.ExpectEquality(t, bank(cart, 0x0000), 0)
}

func TestROMBankWrap(t *testing.T) {
	cart := attach(t, makeROM(8, 0x01, 0x02, 0x00), "")
	cart.Write(0x2000, 0x1f)
	test.ExpectEquality(t, bank(cart, 0x4000), 7)
	cart.Write(0x2000, 0x09)
	test.ExpectEquality(t, bank(cart, 0x4000), 1)

	// header declares more banks than the data has. this is not an error
	cart = attach(t, makeROM(4, 0x01, 0x05, 0x00), "")
	test.ExpectEquality(t, cart.NumBanks(), 4)
	cart.Write(0x2000, 0x06)
	test.ExpectEquality(t, bank(cart, 0x4000), 2)
}

func TestRAMEnable(t *testing.T) {
	cart := attach(t, makeROM(4, 0x03, 0x01, 0x02), "")

	// RAM is disabled on power-on
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
	cart.Write(0xa000, 0x42)
	_, ok := cart.TranslateRAM(0xa000)
	test.ExpectFailure(t, ok)

	cart.Write(0x0000, 0x0a)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x00))
	cart.Write(0xa000, 0x42)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x42))

	// values other than 0x?a and 0x?0 do not change the latch
	cart.Write(0x1fff, 0x05)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x42))
	cart.Write(0x0000, 0xff)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x42))

	cart.Write(0x0000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
	cart.Write(0xa000, 0x11)

	// upper nibble is ignored
	cart.Write(0x0000, 0x5a)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x42))

	cart.Write(0x0000, 0x30)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
}

func TestMBC1RAMBanks(t *testing.T) {
	cart := attach(t, makeROM(4, 0x03, 0x01, 0x03), "")
	test.DemandEquality(t, cart.NumRAMBanks(), 4)

	cart.Write(0x0000, 0x0a)
	cart.Write(0x6000, 0x01)
	for b := uint8(0); b < 4; b++ {
		cart.Write(0x4000, b)
		cart.Write(0xb000, 0x10+b)
	}

	cart.Write(0x4000, 0x02)
	test.ExpectEquality(t, cart.Read(0xb000), uint8(0x12))
	test.ExpectEquality(t, cart.GetBank(0xb000).String(), "2R")

	// in mode zero RAM bank zero is always selected
	cart.Write(0x6000, 0x00)
	test.ExpectEquality(t, cart.Read(0xb000), uint8(0x10))

	ram := cart.GetRAM()
	test.DemandEquality(t, len(ram), 4)
	test.ExpectEquality(t, ram[3].Data[0x1000], uint8(0x13))
	test.ExpectSuccess(t, ram[0].Mapped)
	test.ExpectFailure(t, ram[3].Mapped)

	cart.PutRAM(3, 0x1000, 0x77)
	cart.Write(0x6000, 0x01)
	cart.Write(0x4000, 0x03)
	test.ExpectEquality(t, cart.Read(0xb000), uint8(0x77))
}

func TestSmallRAMMirror(t *testing.T) {
	cart := attach(t, makeROM(2, 0x02, 0x00, 0x01), "")
	cart.Write(0x0000, 0x0a)
	cart.Write(0xa010, 0x5e)
	test.ExpectEquality(t, cart.Read(0xa810), uint8(0x5e))
	test.ExpectEquality(t, cart.Read(0xb810), uint8(0x5e))
}

func TestMBC2(t *testing.T) {
	cart := attach(t, makeROM(16, 0x06, 0x03, 0x00), "")
	test.DemandEquality(t, cart.ID(), "MBC2")

	// address bit 8 selects the ROM bank register
	cart.Write(0x2100, 0x03)
	test.ExpectEquality(t, bank(cart, 0x4000), 3)
	cart.Write(0x0100, 0x00)
	test.ExpectEquality(t, bank(cart, 0x4000), 1)

	// address bit 8 clear is the RAM enable register
	cart.Write(0x2000, 0x0a)
	test.ExpectEquality(t, bank(cart, 0x4000), 1)

	cart.Write(0xa000, 0x35)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xf5))

	// 512 half-bytes mirrored through the RAM window
	test.ExpectEquality(t, cart.Read(0xa200), uint8(0xf5))
	test.ExpectEquality(t, cart.Read(0xbe00), uint8(0xf5))
	test.ExpectEquality(t, len(cart.RAMData()), 0x200)

	// writes to 0x4000 to 0x7fff do nothing
	cart.Write(0x4000, 0x05)
	test.ExpectEquality(t, bank(cart, 0x4000), 1)
}

func TestMBC3(t *testing.T) {
	cart := attach(t, makeROM(128, 0x10, 0x06, 0x03), "")
	test.DemandEquality(t, cart.ID(), "MBC3")

	cart.Write(0x2000, 0x7f)
	test.ExpectEquality(t, bank(cart, 0x4000), 0x7f)
	cart.Write(0x2000, 0x80)
	test.ExpectEquality(t, bank(cart, 0x4000), 1)

	cart.Write(0x0000, 0x0a)
	cart.Write(0x4000, 0x03)
	cart.Write(0xa000, 0x33)
	cart.Write(0x4000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x00))
	cart.Write(0x4000, 0x03)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x33))
}

func TestMBC3Clock(t *testing.T) {
	cart := attach(t, makeROM(4, 0x10, 0x01, 0x02), "")
	cart.Write(0x0000, 0x0a)

	// select the seconds register
	cart.Write(0x4000, 0x08)
	cart.Write(0xa000, 0x3b)

	// latched value has not changed yet. unimplemented bits read as one
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xc0))

	cart.Write(0x6000, 0x00)
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xfb))

	// RAM bank 0 is unaffected by the clock register
	cart.Write(0x4000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x00))

	// latch requires 0x00 then 0x01
	cart.Write(0x4000, 0x09)
	cart.Write(0xa000, 0x15)
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xc0))
	cart.Write(0x6000, 0x00)
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xd5))
}

func TestMBC5(t *testing.T) {
	cart := attach(t, makeROM(4, 0x1b, 0x01, 0x04), "")
	test.DemandEquality(t, cart.ID(), "MBC5")

	// bank zero can be selected in the switchable area
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, bank(cart, 0x4000), 0)

	// ninth bit
	cart.Write(0x3000, 0x01)
	cart.Write(0x2000, 0x02)
	test.ExpectEquality(t, cart.GetBank(0x4000).Number, 2)

	cart.Write(0x0000, 0x0a)
	cart.Write(0x4000, 0x0f)
	cart.Write(0xa000, 0xf0)
	cart.Write(0x4000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x00))
	cart.Write(0x4000, 0x0f)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xf0))
}

func TestMBC5Rumble(t *testing.T) {
	cart := attach(t, makeROM(4, 0x1d, 0x01, 0x03), "")
	cart.Write(0x0000, 0x0a)
	cart.Write(0x4000, 0x01)
	cart.Write(0xa000, 0x11)

	// motor bit is not part of the bank number
	cart.Write(0x4000, 0x09)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x11))

	rumble, ok := cart.Mapper().(interface{ Rumble() bool })
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, rumble.Rumble())
	cart.Write(0x4000, 0x01)
	test.ExpectFailure(t, rumble.Rumble())
}

func TestInvalidHeader(t *testing.T) {
	cart := cartridge.NewCartridge(nil)

	err := cart.Attach(cartridgeloader.NewLoaderFromData("test", makeROM(2, 0x03, 0x00, 0x00), ""))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrInvalidHeader))

	err = cart.Attach(cartridgeloader.NewLoaderFromData("test", makeROM(2, 0x09, 0x00, 0x07), ""))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrInvalidHeader))

	// failed attach leaves the cartridge unchanged
	test.ExpectEquality(t, cart.Filename, "ejected")

	// MBC2 RAM is built in so the RAM size code is ignored
	err = cart.Attach(cartridgeloader.NewLoaderFromData("test", makeROM(2, 0x05, 0x00, 0x02), ""))
	test.ExpectSuccess(t, err)

	err = cart.Attach(cartridgeloader.NewLoaderFromData("test", makeROM(2, 0x00, 0x00, 0x00), "MBC4"))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnknownMapping))
}

func TestUnknownType(t *testing.T) {
	cart := attach(t, makeROM(2, 0xfc, 0x00, 0x00), "")
	test.ExpectEquality(t, cart.ID(), "ROM")
}

func TestForcedMapping(t *testing.T) {
	cart := attach(t, makeROM(4, 0x00, 0x01, 0x00), "mbc5")
	test.ExpectEquality(t, cart.ID(), "MBC5")
	cart.Write(0x2000, 0x03)
	test.ExpectEquality(t, bank(cart, 0x4000), 3)
}

func TestPeekPoke(t *testing.T) {
	cart := attach(t, makeROM(4, 0x03, 0x01, 0x02), "")

	// poking ROM is refused
	err := cart.Poke(0x0100, 0x00)
	test.ExpectSuccess(t, errors.Is(err, bus.AddressError))

	// poking disabled RAM is refused
	err = cart.Poke(0xa000, 0x00)
	test.ExpectFailure(t, err)

	cart.Write(0x0000, 0x0a)
	test.ExpectSuccess(t, cart.Poke(0xa000, 0x99))
	v, err := cart.Peek(0xa000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x99))

	_, err = cart.Peek(0x8000)
	test.ExpectSuccess(t, errors.Is(err, bus.AddressError))

	test.ExpectSuccess(t, cart.Patch(0x4000, 0xee))
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0xee))
	test.ExpectFailure(t, cart.Patch(0x10000, 0xee))
}

func TestGetBank(t *testing.T) {
	cart := attach(t, makeROM(4, 0x01, 0x01, 0x00), "")
	test.ExpectEquality(t, cart.GetBank(0x4000).String(), "1")
	test.ExpectEquality(t, cart.GetBank(0xa000).String(), "0R (disabled)")
	test.ExpectEquality(t, cart.GetBank(0xc000).String(), "-")
	test.ExpectEquality(t, cart.MappedBanks(), "ROM0: 0 ROMX: 1")
}
