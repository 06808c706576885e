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

// Package mmio implements the register table for the memory mapped I/O area
// (0xff00 to 0xffff). The table holds no device logic; it routes reads and
// writes to the effects registered by the devices that own the registers.
//
// Registration happens once while the machine is being assembled. Registering
// an address twice is an error, as is registering after the table has been
// sealed.
//
//	tab := mmio.NewTable()
//	err := tab.Register(memorymap.DIV, timer.ReadDIV, timer.ResetDIV)
//
// Dispatching to an address with no handler reads memorymap.Fill and ignores
// writes. Dispatching never panics.
package mmio
