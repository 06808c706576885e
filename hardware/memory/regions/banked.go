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
)

// Banked is an ordered sequence of equal-sized banks. It is used for
// cartridge ROM and cartridge RAM. The banks are backed by a single slice so
// a physical offset can address any byte in any bank.
//
// Offsets are always wrapped into the size of the region. A Banked region
// with no banks reads as the fill value.
type Banked struct {
	label    string
	bankSize int
	data     []uint8
}

// NewBanked creates a region with the number of banks specified. All bytes are
// initialised to the fill value.
func NewBanked(label string, bankSize int, numBanks int, fill uint8) *Banked {
	b := &Banked{
		label:    label,
		bankSize: bankSize,
		data:     make([]uint8, bankSize*numBanks),
	}
	for i := range b.data {
		b.data[i] = fill
	}
	return b
}

// NewBankedFromData creates a region from existing data. The data is padded
// with the fill value to a multiple of the bank size and to at least one bank.
func NewBankedFromData(label string, bankSize int, data []uint8, fill uint8) *Banked {
	numBanks := (len(data) + bankSize - 1) / bankSize
	if numBanks == 0 {
		numBanks = 1
	}
	b := NewBanked(label, bankSize, numBanks, fill)
	copy(b.data, data)
	return b
}

// Label returns the name of the region.
func (b *Banked) Label() string {
	return b.label
}

func (b *Banked) String() string {
	return fmt.Sprintf("%s [%d x %#04x]", b.label, b.NumBanks(), b.bankSize)
}

// BankSize returns the size of each bank.
func (b *Banked) BankSize() int {
	return b.bankSize
}

// NumBanks returns the number of banks in the region.
func (b *Banked) NumBanks() int {
	if b.bankSize == 0 {
		return 0
	}
	return len(b.data) / b.bankSize
}

// Len returns the total number of bytes in the region.
func (b *Banked) Len() int {
	return len(b.data)
}

// Offset returns the physical offset of address in bank. The bank number is
// wrapped modulo the number of banks, mirroring how hardware ignores the
// high-order bank bits beyond the memory physically present.
func (b *Banked) Offset(bank int, address uint16) int {
	n := b.NumBanks()
	if n == 0 {
		return 0
	}
	bank %= n
	if bank < 0 {
		bank += n
	}
	return bank*b.bankSize + int(address)%b.bankSize
}

// Read the byte at the physical offset.
func (b *Banked) Read(offset int, fill uint8) uint8 {
	if len(b.data) == 0 {
		return fill
	}
	return b.data[offset%len(b.data)]
}

// Write the byte at the physical offset.
func (b *Banked) Write(offset int, data uint8) {
	if len(b.data) == 0 {
		return
	}
	b.data[offset%len(b.data)] = data
}

// Bank returns a copy of the bank's data.
func (b *Banked) Bank(bank int) []uint8 {
	n := b.NumBanks()
	if n == 0 {
		return nil
	}
	bank %= n
	c := make([]uint8, b.bankSize)
	copy(c, b.data[bank*b.bankSize:])
	return c
}

// Data returns the underlying data. Changes to the returned slice are changes
// to the region. This is intended for save-RAM collaborators that load and
// persist battery backed RAM.
func (b *Banked) Data() []uint8 {
	return b.data
}

// Dump returns a hex dump of the bank.
func (b *Banked) Dump(bank int) string {
	return hex.Dump(b.Bank(bank))
}
