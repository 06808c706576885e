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

package mmio

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// Sentinel errors returned by the registration functions.
var (
	ErrAlreadyRegistered = errors.New("address already registered")
	ErrNotMMIO           = errors.New("address not in MMIO area")
	ErrSealed            = errors.New("registration table is sealed")
)

// ReadEffect is called when the CPU reads a register. The returned value is
// the value seen by the CPU. A read effect may change the state of the device
// and is never called by the debugger.
type ReadEffect func() uint8

// WriteEffect is called when the CPU writes a register.
type WriteEffect func(data uint8)

// Device is implemented by collaborators that own a contiguous block of
// registers. The address is the full 16-bit address.
type Device interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

type handler struct {
	registered bool
	read       ReadEffect
	write      WriteEffect
}

const numRegisters = int(memorymap.MemtopMMIO-memorymap.OriginMMIO) + 1

// Table is the register table for the MMIO area. The zero value is ready to
// use.
type Table struct {
	handlers [numRegisters]handler
	sealed   bool
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{}
}

func index(address uint16) (int, error) {
	if address < memorymap.OriginMMIO {
		return 0, fmt.Errorf("mmio: %w: %04x", ErrNotMMIO, address)
	}
	return int(address - memorymap.OriginMMIO), nil
}

// Register the read and write effects for an address. Either effect can be
// nil. A register with no read effect reads as memorymap.Fill. A register
// with no write effect ignores writes.
//
// An address can only be registered once.
func (tab *Table) Register(address uint16, read ReadEffect, write WriteEffect) error {
	if tab.sealed {
		return fmt.Errorf("mmio: %w", ErrSealed)
	}

	idx, err := index(address)
	if err != nil {
		return err
	}

	if tab.handlers[idx].registered {
		return fmt.Errorf("mmio: %w: %04x", ErrAlreadyRegistered, address)
	}

	tab.handlers[idx] = handler{
		registered: true,
		read:       read,
		write:      write,
	}

	return nil
}

// RegisterRange registers a device for every address in the range, inclusive
// of memtop. If any address in the range is already registered then no
// address is registered.
func (tab *Table) RegisterRange(origin uint16, memtop uint16, dev Device) error {
	if tab.sealed {
		return fmt.Errorf("mmio: %w", ErrSealed)
	}

	if memtop < origin {
		return fmt.Errorf("mmio: range %04x -> %04x is empty", origin, memtop)
	}

	if _, err := index(origin); err != nil {
		return err
	}

	for a := int(origin); a <= int(memtop); a++ {
		if tab.handlers[a-int(memorymap.OriginMMIO)].registered {
			return fmt.Errorf("mmio: %w: %04x", ErrAlreadyRegistered, a)
		}
	}

	for a := int(origin); a <= int(memtop); a++ {
		address := uint16(a)
		tab.handlers[a-int(memorymap.OriginMMIO)] = handler{
			registered: true,
			read:       func() uint8 { return dev.Read(address) },
			write:      func(data uint8) { dev.Write(address, data) },
		}
	}

	return nil
}

// Seal the table. No more registrations will be accepted.
func (tab *Table) Seal() {
	tab.sealed = true
}

// Sealed returns true if the table has been sealed.
func (tab *Table) Sealed() bool {
	return tab.sealed
}

// Registered returns true if a handler is registered for the address.
func (tab *Table) Registered(address uint16) bool {
	if address < memorymap.OriginMMIO {
		return false
	}
	return tab.handlers[address-memorymap.OriginMMIO].registered
}

// Dispatch a read to the register at address. The bool is false if no handler
// is registered. In that case the value is memorymap.Fill.
func (tab *Table) Dispatch(address uint16) (uint8, bool) {
	if address < memorymap.OriginMMIO {
		return memorymap.Fill, false
	}
	h := &tab.handlers[address-memorymap.OriginMMIO]
	if !h.registered {
		return memorymap.Fill, false
	}
	if h.read == nil {
		return memorymap.Fill, true
	}
	return h.read(), true
}

// DispatchRead is the same as Dispatch but without the registration flag.
func (tab *Table) DispatchRead(address uint16) uint8 {
	v, _ := tab.Dispatch(address)
	return v
}

// DispatchWrite sends the value to the register at address. Returns false if
// no handler is registered, in which case the write has no effect.
func (tab *Table) DispatchWrite(address uint16, data uint8) bool {
	if address < memorymap.OriginMMIO {
		return false
	}
	h := &tab.handlers[address-memorymap.OriginMMIO]
	if !h.registered {
		return false
	}
	if h.write != nil {
		h.write(data)
	}
	return true
}
