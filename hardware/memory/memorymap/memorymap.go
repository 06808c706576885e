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

package memorymap

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/memory/diagnostics"
)

// Access is the intent of a memory access.
type Access int

// List of valid Access values.
const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	if a == Write {
		return "write"
	}
	return "read"
}

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Unmapped:
		return "Unmapped"
	case ROM:
		return "ROM"
	case VRAM:
		return "VRAM"
	case SRAM:
		return "SRAM"
	case WRAM:
		return "WRAM"
	case OAM:
		return "OAM"
	case MMIO:
		return "MMIO"
	}

	return "undefined"
}

// The different memory areas of the handheld.
const (
	Unmapped Area = iota
	ROM
	VRAM
	SRAM
	WRAM
	OAM
	MMIO
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and translating the address into the primary range
// is all handled by the MapAddress() function.
//
// ROM0 is the fixed bank and ROMX is the switchable bank. Bank-control
// registers overlay the same addresses for writes.
const (
	OriginROM0      = uint16(0x0000)
	MemtopROM0      = uint16(0x3fff)
	OriginROMX      = uint16(0x4000)
	MemtopROMX      = uint16(0x7fff)
	OriginVRAM      = uint16(0x8000)
	MemtopVRAM      = uint16(0x9fff)
	OriginSRAM      = uint16(0xa000)
	MemtopSRAM      = uint16(0xbfff)
	OriginWRAM      = uint16(0xc000)
	MemtopWRAM      = uint16(0xdfff)
	OriginEcho      = uint16(0xe000)
	MemtopEcho      = uint16(0xfdff)
	OriginOAM       = uint16(0xfe00)
	MemtopOAM       = uint16(0xfe9f)
	OriginUnusedOAM = uint16(0xfea0)
	MemtopUnusedOAM = uint16(0xfeff)
	OriginMMIO      = uint16(0xff00)
	MemtopMMIO      = uint16(0xffff)
)

// Sizes of the fixed areas.
const (
	BankSizeROM  = 0x4000
	BankSizeSRAM = 0x2000
	SizeVRAM     = int(MemtopVRAM-OriginVRAM) + 1
	SizeOAM      = 0x100
	BankSizeWRAM = 0x1000
	SizeWRAM     = BankSizeWRAM * 8
)

// EchoOffset is the distance between an echo address and the work RAM address
// it aliases.
const EchoOffset = OriginEcho - OriginWRAM

// Fill is the value returned by reads that are not driven by anything.
const Fill = uint8(0xff)

// Target is the result of decoding an address.
type Target struct {
	// the area that owns the address
	Area Area

	// the address normalised to the primary range for the area. for echo
	// addresses this is the work RAM address that is aliased
	Address uint16

	// writes to the ROM area are bank-control register writes. the value is
	// never stored
	BankControl bool

	// the diagnostic event that should be emitted for this access. is
	// diagnostics.None for the vast majority of addresses
	Diagnostic diagnostics.Kind
}

func (t Target) String() string {
	s := fmt.Sprintf("%s %04x", t.Area, t.Address)
	if t.BankControl {
		s = fmt.Sprintf("%s (bank control)", s)
	}
	if t.Diagnostic != diagnostics.None {
		s = fmt.Sprintf("%s [%s]", s, t.Diagnostic)
	}
	return s
}

// MapAddress decodes the address for the specified access. Every address in
// the 16-bit address space is classified. The function has no side effects.
func MapAddress(address uint16, access Access) Target {
	// note that the order of these filters is important
	switch {
	case address <= MemtopROMX:
		return Target{Area: ROM, Address: address, BankControl: access == Write}

	case address <= MemtopVRAM:
		return Target{Area: VRAM, Address: address}

	case address <= MemtopSRAM:
		return Target{Area: SRAM, Address: address}

	case address <= MemtopWRAM:
		return Target{Area: WRAM, Address: address}

	case address <= MemtopEcho:
		return Target{Area: WRAM, Address: address - EchoOffset, Diagnostic: diagnostics.Echo}

	case address <= MemtopOAM:
		return Target{Area: OAM, Address: address}

	case address <= MemtopUnusedOAM:
		return Target{Area: Unmapped, Address: address, Diagnostic: diagnostics.UnusedOAM}
	}

	// everything else is in MMIO space. whether the address is mapped depends
	// on the registration table
	return Target{Area: MMIO, Address: address}
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address uint16, area Area) bool {
	return MapAddress(address, Read).Area == area
}
