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

// Package cartridge fully implements loading of cartridge data and the bank
// controllers found in handheld cartridges.
//
// The Cartridge type owns the ROM and RAM data. The bank controller, or
// mapper, owns the bank-control registers and decides which bank of ROM or
// RAM is visible at an address. The following mappers are supported:
//
//	ROM	no bank controller
//	MBC1
//	MBC2	with built in 4-bit RAM
//	MBC3	with a real-time clock that does not advance
//	MBC5	with rumble
//
// Unknown cartridge types are treated as ROM only.
//
// Writes to the ROM area are always bank-control writes. The ROM data can
// only be changed with Patch().
//
// Bank numbers larger than the number of banks in the cartridge wrap around.
// An image smaller than declared in the header is not an error for this
// reason.
//
// RAM enable registers are set by writing a value with a low nibble of 0x0a
// and cleared by writing a value with a low nibble of 0x00. Other values do
// not change the register.
package cartridge
