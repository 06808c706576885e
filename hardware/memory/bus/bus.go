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

package bus

import "errors"

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The AddressSpace type implements this interface and maps the address to
// the correct memory area, meaning that the CPU need not care which part of
// memory it is accessing.
//
// Neither function can fail. Every address in the 16-bit address space
// resolves to something, even if that something is a fixed fill value.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebugBus defines the meta-operations for the memory system. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
//
// Peek and Poke do not cause side effects. Poking an address in the
// bank-control range does not change the selected bank, for example.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// AddressError is returned by DebugBus implementations when the address
// cannot be peeked or poked.
var AddressError = errors.New("inaccessible address")
