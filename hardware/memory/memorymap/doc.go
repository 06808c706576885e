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

// Package memorymap is the address decoder. The MapAddress() function
// classifies every address in the 16-bit address space into an Area, along
// with the address normalised for that area. The echo of work RAM is
// normalised to the work RAM address it aliases.
//
// The package also defines the origin and memtop constants for each area and
// the addresses of the MMIO registers.
//
// The decoder does not know about bank selection or about which MMIO
// addresses have handlers. That is the concern of the cartridge and mmio
// packages respectively.
package memorymap
