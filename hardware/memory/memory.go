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

package memory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/environment"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/memory/diagnostics"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/memory/mmio"
	"github.com/jetsetilly/gopherdmg/hardware/memory/regions"
	"github.com/jetsetilly/gopherdmg/logger"
)

// ErrIO is returned by Open() when the cartridge data can not be loaded.
var ErrIO = errors.New("cartridge data could not be loaded")

// AddressSpace is the top-level memory type. It owns every byte of emulated
// memory and is the only route the CPU has to memory and to the MMIO
// registers.
type AddressSpace struct {
	env *environment.Environment

	Cart *cartridge.Cartridge
	VRAM *regions.RAM
	WRAM *regions.WRAM
	OAM  *regions.RAM
	HRAM *regions.RAM

	mmio *mmio.Table
	diag diagnostics.Sink

	// boot ROM is overlaid on the cartridge at 0x0000 until the program
	// writes a non-zero value to the BOOT register
	boot       []uint8
	bootMapped bool
}

// Open is the preferred method of initialisation for the AddressSpace type.
// The cartridge data is loaded by the cartridgeloader.
//
// Errors returned can be tested with errors.Is() for ErrIO,
// cartridge.ErrInvalidHeader or cartridge.ErrUnknownMapping.
func Open(env *environment.Environment, cartload cartridgeloader.Loader) (*AddressSpace, error) {
	if err := cartload.Load(); err != nil {
		return nil, fmt.Errorf("memory: %w: %w", ErrIO, err)
	}

	mem := &AddressSpace{
		env:  env,
		Cart: cartridge.NewCartridge(env),
		VRAM: regions.NewRAM(env, "VRAM", memorymap.OriginVRAM, memorymap.SizeVRAM),
		WRAM: regions.NewWRAM(env),
		OAM:  regions.NewRAM(env, "OAM", memorymap.OriginOAM, memorymap.SizeOAM),
		HRAM: regions.NewRAM(env, "HRAM", memorymap.OriginHRAM, int(memorymap.MemtopHRAM-memorymap.OriginHRAM)+1),
		mmio: mmio.NewTable(),
		diag: diagnostics.NewLogging(env),
	}

	if err := mem.Cart.Attach(cartload); err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	if err := mem.registerMMIO(); err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	mem.Reset()

	logger.Logf(env, "memory", "attached %s (%s)", cartload.ShortName(), mem.Cart.ID())

	return mem, nil
}

// NewAddressSpace creates an AddressSpace from data that is already in
// memory. The mapping argument is the same as for cartridgeloader.NewLoader().
func NewAddressSpace(env *environment.Environment, data []uint8, mapping string) (*AddressSpace, error) {
	return Open(env, cartridgeloader.NewLoaderFromData("", data, mapping))
}

// registerMMIO registers the MMIO addresses that are part of the memory
// system rather than an external device.
func (mem *AddressSpace) registerMMIO() error {
	err := mem.mmio.RegisterRange(memorymap.OriginHRAM, memorymap.MemtopHRAM, mem.HRAM)
	if err != nil {
		return err
	}

	err = mem.mmio.Register(memorymap.BOOT, nil, func(data uint8) {
		if data != 0x00 {
			mem.bootMapped = false
		}
	})
	if err != nil {
		return err
	}

	// the WRAM bank register is only present on colour hardware. we treat
	// the colour flag in the cartridge header as an indication that the
	// hardware is colour capable
	if mem.Cart.Header.IsCGB() {
		err = mem.mmio.Register(memorymap.SVBK, mem.WRAM.BankRegister, mem.WRAM.SelectBank)
		if err != nil {
			return err
		}
	}

	return nil
}

func (mem *AddressSpace) String() string {
	s := strings.Builder{}
	s.WriteString(memorymap.Summary())
	s.WriteString("\n")
	s.WriteString(mem.mmio.Summary())
	return s.String()
}

// MMIO returns the register table. External devices register their
// registers with the table while the machine is being assembled. The table is
// sealed on the first call to Read() or Write().
func (mem *AddressSpace) MMIO() *mmio.Table {
	return mem.mmio
}

// SetDiagnostics sets the sink that receives diagnostic events. A nil sink
// discards all events. The default sink adds events to the central log.
func (mem *AddressSpace) SetDiagnostics(sink diagnostics.Sink) {
	if sink == nil {
		sink = diagnostics.Discard
	}
	mem.diag = sink
}

// AttachBootROM overlays the boot ROM on the cartridge at address 0x0000. It
// is unmapped when the program writes a non-zero value to the BOOT register.
func (mem *AddressSpace) AttachBootROM(data []uint8) error {
	if len(data) != bootROMSize {
		return fmt.Errorf("memory: boot ROM must be %d bytes not %d", bootROMSize, len(data))
	}
	mem.boot = make([]uint8, bootROMSize)
	copy(mem.boot, data)
	mem.bootMapped = true
	return nil
}

// BootROMMapped returns true if the boot ROM is currently overlaid on the
// cartridge.
func (mem *AddressSpace) BootROMMapped() bool {
	return mem.bootMapped
}

const bootROMSize = 0x100

// Reset returns the memory system to its power-on state. Volatile memory is
// cleared (or randomised depending on the environment). Cartridge RAM is not
// changed.
func (mem *AddressSpace) Reset() {
	mem.Cart.Reset()
	mem.VRAM.Reset()
	mem.WRAM.Reset()
	mem.OAM.Reset()
	mem.HRAM.Reset()
	mem.bootMapped = mem.boot != nil
}

func (mem *AddressSpace) diagnostic(address uint16, write bool, kind diagnostics.Kind) {
	mem.diag.Diagnostic(diagnostics.Event{Address: address, Write: write, Kind: kind})
}

// Read implements the bus.CPUBus interface.
func (mem *AddressSpace) Read(address uint16) uint8 {
	if !mem.mmio.Sealed() {
		mem.mmio.Seal()
	}

	t := memorymap.MapAddress(address, memorymap.Read)

	switch t.Area {
	case memorymap.ROM:
		if mem.bootMapped && int(address) < len(mem.boot) {
			return mem.boot[address]
		}
		return mem.Cart.Read(address)
	case memorymap.VRAM:
		return mem.VRAM.Read(address)
	case memorymap.SRAM:
		return mem.Cart.Read(address)
	case memorymap.WRAM:
		if t.Diagnostic != diagnostics.None {
			mem.diagnostic(address, false, t.Diagnostic)
		}
		return mem.WRAM.Read(t.Address)
	case memorymap.OAM:
		return mem.OAM.Read(address)
	case memorymap.MMIO:
		v, ok := mem.mmio.Dispatch(address)
		if !ok {
			mem.diagnostic(address, false, diagnostics.Unmapped)
		}
		return v
	}

	mem.diagnostic(address, false, t.Diagnostic)
	return memorymap.Fill
}

// Write implements the bus.CPUBus interface.
func (mem *AddressSpace) Write(address uint16, data uint8) {
	if !mem.mmio.Sealed() {
		mem.mmio.Seal()
	}

	t := memorymap.MapAddress(address, memorymap.Write)

	switch t.Area {
	case memorymap.ROM:
		mem.Cart.BankControl(address, data)
	case memorymap.VRAM:
		mem.VRAM.Write(address, data)
	case memorymap.SRAM:
		mem.Cart.Write(address, data)
	case memorymap.WRAM:
		if t.Diagnostic != diagnostics.None {
			mem.diagnostic(address, true, t.Diagnostic)
		}
		mem.WRAM.Write(t.Address, data)
	case memorymap.OAM:
		mem.OAM.Write(address, data)
	case memorymap.MMIO:
		if !mem.mmio.DispatchWrite(address, data) {
			mem.diagnostic(address, true, diagnostics.Unmapped)
		}
	default:
		mem.diagnostic(address, true, t.Diagnostic)
	}
}

// ReadWord reads a 16-bit little-endian value. The high byte is read from
// the address after the low byte, wrapping at 0xffff.
func (mem *AddressSpace) ReadWord(address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a 16-bit little-endian value. The low byte is written
// first.
func (mem *AddressSpace) WriteWord(address uint16, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}

// Peek implements the bus.DebugBus interface. Peek never produces diagnostic
// events and never changes the state of the cartridge.
//
// The unused area of OAM can be peeked. High RAM is the only part of the MMIO
// area that can be peeked. Reading any other register would call the read
// effect of the device, which may change the state of the device.
func (mem *AddressSpace) Peek(address uint16) (uint8, error) {
	t := memorymap.MapAddress(address, memorymap.Read)

	switch t.Area {
	case memorymap.ROM:
		if mem.bootMapped && int(address) < len(mem.boot) {
			return mem.boot[address], nil
		}
		return mem.Cart.Peek(address)
	case memorymap.VRAM:
		return mem.VRAM.Peek(address)
	case memorymap.SRAM:
		return mem.Cart.Peek(address)
	case memorymap.WRAM:
		return mem.WRAM.Peek(t.Address)
	case memorymap.OAM:
		return mem.OAM.Peek(address)
	case memorymap.MMIO:
		if address >= memorymap.OriginHRAM && address <= memorymap.MemtopHRAM {
			return mem.HRAM.Peek(address)
		}
		return 0, fmt.Errorf("memory: %w: %04x is a register", bus.AddressError, address)
	}

	if t.Diagnostic == diagnostics.UnusedOAM {
		return mem.OAM.Peek(address)
	}

	return 0, fmt.Errorf("memory: %w: %04x", bus.AddressError, address)
}

// Poke implements the bus.DebugBus interface. ROM and the bank-control
// registers can not be poked. Poking MMIO is only possible for high RAM.
func (mem *AddressSpace) Poke(address uint16, data uint8) error {
	t := memorymap.MapAddress(address, memorymap.Write)

	switch t.Area {
	case memorymap.ROM:
		return fmt.Errorf("memory: %w: %04x is ROM", bus.AddressError, address)
	case memorymap.VRAM:
		return mem.VRAM.Poke(address, data)
	case memorymap.SRAM:
		return mem.Cart.Poke(address, data)
	case memorymap.WRAM:
		return mem.WRAM.Poke(t.Address, data)
	case memorymap.OAM:
		return mem.OAM.Poke(address, data)
	case memorymap.MMIO:
		if address >= memorymap.OriginHRAM && address <= memorymap.MemtopHRAM {
			return mem.HRAM.Poke(address, data)
		}
		return fmt.Errorf("memory: %w: %04x is a register", bus.AddressError, address)
	}

	if t.Diagnostic == diagnostics.UnusedOAM {
		return mem.OAM.Poke(address, data)
	}

	return fmt.Errorf("memory: %w: %04x", bus.AddressError, address)
}
