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
)

// RAM is a fixed size region of memory at a fixed origin. It is used for
// video RAM, OAM and high RAM.
//
// The size of the region need not match the size of the address range. OAM
// for example is 0x100 bytes but only 0xa0 bytes are visible to the CPU.
type RAM struct {
	env *environment.Environment

	label  string
	origin uint16
	memtop uint16

	Data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(env *environment.Environment, label string, origin uint16, size int) *RAM {
	return &RAM{
		env:    env,
		label:  label,
		origin: origin,
		memtop: origin + uint16(size-1),
		Data:   make([]uint8, size),
	}
}

// Label returns the name of the region.
func (ram *RAM) Label() string {
	return ram.label
}

// Origin returns the lowest address of the region.
func (ram *RAM) Origin() uint16 {
	return ram.origin
}

// Memtop returns the highest address of the region.
func (ram *RAM) Memtop() uint16 {
	return ram.memtop
}

func (ram *RAM) String() string {
	return fmt.Sprintf("%s [%04x -> %04x]\n%s", ram.label, ram.origin, ram.memtop, hex.Dump(ram.Data))
}

// Reset contents of RAM. Contents will be zero unless the environment asks
// for random power-on state.
func (ram *RAM) Reset() {
	reset(ram.env, ram.Data)
}

// index returns the offset into the Data array for the address. the address
// is wrapped into the size of the region so that no address can index
// outside the array.
func (ram *RAM) index(address uint16) int {
	return int(address-ram.origin) % len(ram.Data)
}

// Read the value at the address.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.Data[ram.index(address)]
}

// Write the value to the address.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.Data[ram.index(address)] = data
}

// Peek implements the bus.DebugBus interface.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	if address < ram.origin || int(address-ram.origin) >= len(ram.Data) {
		return 0, fmt.Errorf("%s: %w: %04x", ram.label, bus.AddressError, address)
	}
	return ram.Read(address), nil
}

// Poke implements the bus.DebugBus interface.
func (ram *RAM) Poke(address uint16, data uint8) error {
	if address < ram.origin || int(address-ram.origin) >= len(ram.Data) {
		return fmt.Errorf("%s: %w: %04x", ram.label, bus.AddressError, address)
	}
	ram.Write(address, data)
	return nil
}

func reset(env *environment.Environment, data []uint8) {
	if env != nil && env.RandomState {
		env.Random.Fill(data)
		return
	}
	clear(data)
}
