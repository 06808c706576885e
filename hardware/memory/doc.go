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

// Package memory implements the address space of the handheld. The
// AddressSpace type is the only entry point for the CPU; every read and write
// passes through it.
//
// Every 16-bit address resolves to something. Read() and Write() can not fail
// and will not panic. Addresses that are architecturally questionable (the
// echo of work RAM, the unused area after OAM and MMIO addresses with no
// registered device) produce a diagnostic event, which by default is added
// to the central log.
//
// The unused area after OAM (0xfea0 to 0xfeff) is treated as unmapped by the
// CPU: reads return 0xff and writes are dropped. The debugger functions Peek()
// and Poke() reach the OAM storage behind the area, so a value poked there is
// seen by Peek() but not by Read().
//
// External devices (timer, video, audio, input, interrupts) register their
// registers with the table returned by MMIO() while the machine is being
// assembled. The table is sealed on the first memory access.
//
//	mem, err := memory.Open(env, cartridgeloader.NewLoader("roms/Tetris.gb", "AUTO"))
//	if err != nil {
//		return err
//	}
//	err = mem.MMIO().Register(memorymap.DIV, timer.ReadDIV, timer.ResetDIV)
//
// The AddressSpace is not safe for concurrent use. It should be owned by the
// goroutine that runs the CPU.
package memory
