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

// Package bus defines the memory bus concept. There are two buses: the CPUBus
// which is used by the emulated CPU for every instruction fetch, data read and
// data write; and the DebugBus which is used by tools that need to inspect
// memory without disturbing the emulation.
//
// The distinction is important because accesses on the CPUBus can have side
// effects. Writing to a cartridge ROM address changes the selected bank and
// writing to an MMIO address changes device state.
package bus
