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

package regions

import (
	"encoding/hex"
	"fmt"

	"github.com/jetsetilly/gopherdmg/environment"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// WRAM is the work RAM. It is 0x8000 bytes divided into eight banks of 0x1000
// bytes. Bank 0 is always mapped to 0xc000. The switchable bank is mapped to
// 0xd000.
//
// On hardware without bank switching the switchable bank is always bank 1,
// which is the default.
type WRAM struct {
	env *environment.Environment

	Data [memorymap.SizeWRAM]uint8

	bank int
}

// NewWRAM is the preferred method of initialisation for the WRAM type.
func NewWRAM(env *environment.Environment) *WRAM {
	return &WRAM{
		env:  env,
		bank: 1,
	}
}

func (ram *WRAM) String() string {
	return fmt.Sprintf("WRAM [bank %d]\n%s", ram.bank, hex.Dump(ram.Data[:]))
}

// Reset contents of WRAM and select bank 1.
func (ram *WRAM) Reset() {
	reset(ram.env, ram.Data[:])
	ram.bank = 1
}

// Bank returns the bank mapped to 0xd000.
func (ram *WRAM) Bank() int {
	return ram.bank
}

// SelectBank changes the bank mapped to 0xd000. Only the lowest three bits of
// the value are used. Selecting bank zero selects bank one.
func (ram *WRAM) SelectBank(bank uint8) {
	ram.bank = int(bank & 0x07)
	if ram.bank == 0 {
		ram.bank = 1
	}
}

// BankRegister returns the value read from the bank select register. Unused
// bits read as one.
func (ram *WRAM) BankRegister() uint8 {
	return 0xf8 | uint8(ram.bank)
}

// index returns the offset into the Data array for the address. address
// should be in the primary range (echo addresses normalised) but any value is
// handled safely.
func (ram *WRAM) index(address uint16) int {
	offset := int(address-memorymap.OriginWRAM) & (2*memorymap.BankSizeWRAM - 1)
	if offset >= memorymap.BankSizeWRAM {
		return ram.bank*memorymap.BankSizeWRAM + (offset - memorymap.BankSizeWRAM)
	}
	return offset
}

// Read the value at the address.
func (ram *WRAM) Read(address uint16) uint8 {
	return ram.Data[ram.index(address)]
}

// Write the value to the address.
func (ram *WRAM) Write(address uint16, data uint8) {
	ram.Data[ram.index(address)] = data
}

// Peek implements the bus.DebugBus interface.
func (ram *WRAM) Peek(address uint16) (uint8, error) {
	if address < memorymap.OriginWRAM || address > memorymap.MemtopWRAM {
		return 0, fmt.Errorf("WRAM: %w: %04x", bus.AddressError, address)
	}
	return ram.Read(address), nil
}

// Poke implements the bus.DebugBus interface.
func (ram *WRAM) Poke(address uint16, data uint8) error {
	if address < memorymap.OriginWRAM || address > memorymap.MemtopWRAM {
		return fmt.Errorf("WRAM: %w: %04x", bus.AddressError, address)
	}
	ram.Write(address, data)
	return nil
}
