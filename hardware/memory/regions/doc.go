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

// Package regions contains the storage for every byte of emulated memory. The
// types in this package have no behaviour beyond storage; they do not know
// anything about bank selection registers or how the CPU sees them.
//
// RAM is used for the fixed regions (VRAM, OAM and HRAM). WRAM is the work
// RAM, with its switchable upper half. Banked is used for cartridge ROM and
// cartridge RAM.
//
// None of the types will panic for any address or offset. Out of range values
// are wrapped into the region.
package regions
