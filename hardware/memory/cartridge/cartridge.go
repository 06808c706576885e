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

package cartridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/environment"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/memory/regions"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinel errors returned when attaching a cartridge.
var (
	ErrInvalidHeader  = errors.New("invalid cartridge header")
	ErrUnknownMapping = errors.New("unknown cartridge mapping")
)

// Cartridge defines the information and operations for a cartridge. It owns
// the ROM and RAM data and the mapper that holds the bank-control registers.
type Cartridge struct {
	env *environment.Environment

	Filename string
	Hash     string
	Header   Header

	rom *regions.Banked
	ram *regions.Banked

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.CartMapper

	// optional mapper interfaces. nil if the mapper does not implement them
	width mapper.CartRAMWidth
	clock mapper.CartClock
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge will be empty until Attach() is called successfully.
func NewCartridge(env *environment.Environment) *Cartridge {
	cart := &Cartridge{env: env}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// ID returns the ID of the mapper.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Mapper returns the mapper in use by the cartridge. Intended for inspection
// by developer tools.
func (cart *Cartridge) Mapper() mapper.CartMapper {
	return cart.mapper
}

// Eject removes the cartridge data. Unlike real hardware the cartridge is
// replaced with a single bank of ROM containing the fill value.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.Hash = ""
	cart.Header = ParseHeader(nil)
	cart.rom = regions.NewBanked("ROM", memorymap.BankSizeROM, 1, memorymap.Fill)
	cart.ram = regions.NewBanked("SRAM", memorymap.BankSizeSRAM, 0, memorymap.Fill)
	cart.setMapper(newROM())
}

func (cart *Cartridge) setMapper(m mapper.CartMapper) {
	cart.mapper = m
	cart.width, _ = m.(mapper.CartRAMWidth)
	cart.clock, _ = m.(mapper.CartClock)
}

// Attach the loaded cartridge data. The loader's Load() function will be
// called if it has not been called already.
//
// The data is padded with the fill value to a multiple of the ROM bank size.
// The mapper is chosen by the cartridge header unless the loader specifies a
// mapping.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	rom := regions.NewBankedFromData("ROM", memorymap.BankSizeROM, cartload.Data, memorymap.Fill)
	hdr := ParseHeader(rom.Data())

	m, err := selectMapper(cart.env, hdr, cartload.Mapping)
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	ram, err := newRAM(cart.env, hdr, m)
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	if !hdr.ChecksumOK() {
		logger.Logf(cart.env, "cartridge", "header checksum is %02x but should be %02x", hdr.Checksum, hdr.ComputedChecksum)
	}

	if n, ok := hdr.ROMBanks(); !ok {
		logger.Logf(cart.env, "cartridge", "unknown ROM size code %02x", hdr.ROMSize)
	} else if n != rom.NumBanks() {
		logger.Logf(cart.env, "cartridge", "header declares %d ROM banks but data has %d", n, rom.NumBanks())
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.Header = hdr
	cart.rom = rom
	cart.ram = ram
	cart.setMapper(m)

	return nil
}

// newRAM creates the cartridge RAM for the header and mapper. RAM smaller
// than the RAM window is mirrored throughout the window.
func newRAM(env *environment.Environment, hdr Header, m mapper.CartMapper) (*regions.Banked, error) {
	if sz, ok := m.(mapper.CartRAMSize); ok {
		if hdr.RAMSize != 0x00 {
			logger.Logf(env, "cartridge", "%s has built-in RAM. ignoring RAM size code %02x", m.ID(), hdr.RAMSize)
		}
		return regions.NewBanked("SRAM", sz.RAMSize(), 1, 0x00), nil
	}

	n, ok := hdr.RAMBytes()
	if !ok {
		if typeRequiresRAM(hdr.Type) {
			return nil, fmt.Errorf("%w: unknown RAM size code %02x", ErrInvalidHeader, hdr.RAMSize)
		}
		logger.Logf(env, "cartridge", "unknown RAM size code %02x. no RAM attached", hdr.RAMSize)
		n = 0
	} else if n == 0 && typeRequiresRAM(hdr.Type) {
		return nil, fmt.Errorf("%w: %s declares no RAM", ErrInvalidHeader, TypeName(hdr.Type))
	}

	if n == 0 {
		return regions.NewBanked("SRAM", memorymap.BankSizeSRAM, 0, 0x00), nil
	}

	if n < memorymap.BankSizeSRAM {
		return regions.NewBanked("SRAM", n, 1, 0x00), nil
	}

	return regions.NewBanked("SRAM", memorymap.BankSizeSRAM, n/memorymap.BankSizeSRAM, 0x00), nil
}

// Reset the bank-control registers. Cartridge RAM is battery backed (or
// treated as if it is) and is not changed.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// TranslateROM returns the offset into the ROM data for an address in the
// range 0x0000 to 0x7fff. The offset is always a valid index into the ROM.
func (cart *Cartridge) TranslateROM(address uint16) int {
	return cart.rom.Offset(cart.mapper.ROMBank(address), address)
}

// TranslateRAM returns the offset into the RAM data for an address in the
// range 0xa000 to 0xbfff. Returns false if RAM is disabled or the cartridge
// has no RAM.
func (cart *Cartridge) TranslateRAM(address uint16) (int, bool) {
	if cart.ram.Len() == 0 {
		return 0, false
	}
	bank, ok := cart.mapper.RAMBank()
	if !ok {
		return 0, false
	}
	return cart.ram.Offset(bank, address), true
}

// BankControl handles a write to the bank-control registers. The address
// should be in the range 0x0000 to 0x7fff. ROM is never written to.
func (cart *Cartridge) BankControl(address uint16, data uint8) {
	cart.mapper.BankControl(address, data)
}

// Read the cartridge at the address. The address should be in the ROM area
// or the SRAM area.
func (cart *Cartridge) Read(address uint16) uint8 {
	if address <= memorymap.MemtopROMX {
		return cart.rom.Read(cart.TranslateROM(address), memorymap.Fill)
	}

	if cart.clock != nil {
		if v, ok := cart.clock.ReadClock(); ok {
			return v
		}
	}

	offset, ok := cart.TranslateRAM(address)
	if !ok {
		return memorymap.Fill
	}

	v := cart.ram.Read(offset, memorymap.Fill)
	if cart.width != nil {
		v |= ^cart.width.RAMMask()
	}
	return v
}

// Write to the cartridge at the address. Writes to the ROM area are
// bank-control writes.
func (cart *Cartridge) Write(address uint16, data uint8) {
	if address <= memorymap.MemtopROMX {
		cart.BankControl(address, data)
		return
	}

	if cart.clock != nil {
		if cart.clock.WriteClock(data) {
			return
		}
	}

	offset, ok := cart.TranslateRAM(address)
	if !ok {
		return
	}

	if cart.width != nil {
		data &= cart.width.RAMMask()
	}
	cart.ram.Write(offset, data)
}

// Peek implements the bus.DebugBus interface. Reads have no side effects on
// the cartridge so Peek is the same as Read.
func (cart *Cartridge) Peek(address uint16) (uint8, error) {
	if !cart.isCartAddress(address) {
		return 0, fmt.Errorf("cartridge: %w: %04x", bus.AddressError, address)
	}
	return cart.Read(address), nil
}

// Poke implements the bus.DebugBus interface. Only cartridge RAM can be
// poked. The bank-control registers are not affected.
func (cart *Cartridge) Poke(address uint16, data uint8) error {
	if address < memorymap.OriginSRAM || address > memorymap.MemtopSRAM {
		return fmt.Errorf("cartridge: %w: %04x", bus.AddressError, address)
	}

	if cart.clock != nil {
		if cart.clock.WriteClock(data) {
			return nil
		}
	}

	offset, ok := cart.TranslateRAM(address)
	if !ok {
		return fmt.Errorf("cartridge: RAM is not enabled: %w: %04x", bus.AddressError, address)
	}

	if cart.width != nil {
		data &= cart.width.RAMMask()
	}
	cart.ram.Write(offset, data)

	return nil
}

// Patch writes to the ROM data. The offset is measured from the start of the
// ROM data and is not affected by the current bank.
func (cart *Cartridge) Patch(offset int, data uint8) error {
	if offset < 0 || offset >= cart.rom.Len() {
		return fmt.Errorf("cartridge: patch offset too high (%#x)", offset)
	}
	cart.rom.Write(offset, data)
	return nil
}

func (cart *Cartridge) isCartAddress(address uint16) bool {
	return address <= memorymap.MemtopROMX || (address >= memorymap.OriginSRAM && address <= memorymap.MemtopSRAM)
}

// NumBanks returns the number of ROM banks in the cartridge data.
func (cart *Cartridge) NumBanks() int {
	return cart.rom.NumBanks()
}

// NumRAMBanks returns the number of RAM banks in the cartridge.
func (cart *Cartridge) NumRAMBanks() int {
	return cart.ram.NumBanks()
}

// GetBank returns the bank mapped at the address.
func (cart *Cartridge) GetBank(address uint16) mapper.BankInfo {
	if address <= memorymap.MemtopROMX {
		return mapper.BankInfo{Number: cart.TranslateROM(address) / cart.rom.BankSize()}
	}

	if address >= memorymap.OriginSRAM && address <= memorymap.MemtopSRAM {
		if cart.ram.Len() == 0 {
			return mapper.BankInfo{IsRAM: true, Disabled: true}
		}
		bank, ok := cart.mapper.RAMBank()
		return mapper.BankInfo{
			Number:   cart.ram.Offset(bank, address) / cart.ram.BankSize(),
			IsRAM:    true,
			Disabled: !ok,
		}
	}

	return mapper.BankInfo{NonCart: true}
}

// MappedBanks returns a string summary of the banks currently mapped.
func (cart *Cartridge) MappedBanks() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("ROM0: %s ROMX: %s", cart.GetBank(memorymap.OriginROM0), cart.GetBank(memorymap.OriginROMX)))
	if cart.ram.Len() > 0 {
		s.WriteString(fmt.Sprintf(" SRAM: %s", cart.GetBank(memorymap.OriginSRAM)))
	}
	return s.String()
}

// GetRAM implements the mapper.CartRAMbus interface.
func (cart *Cartridge) GetRAM() []mapper.CartRAM {
	n := cart.ram.NumBanks()
	if n == 0 {
		return nil
	}

	current, enabled := cart.mapper.RAMBank()
	current %= n

	r := make([]mapper.CartRAM, n)
	for b := range r {
		r[b] = mapper.CartRAM{
			Label:  fmt.Sprintf("SRAM %d", b),
			Origin: memorymap.OriginSRAM,
			Data:   cart.ram.Bank(b),
			Mapped: enabled && b == current,
		}
	}
	return r
}

// PutRAM implements the mapper.CartRAMbus interface.
func (cart *Cartridge) PutRAM(bank int, idx int, data uint8) {
	if cart.ram.Len() == 0 {
		return
	}
	cart.ram.Write(cart.ram.Offset(bank, uint16(idx)), data)
}

// RAMData returns the cartridge RAM. Changes to the returned slice are
// changes to the cartridge RAM. Intended for loading and saving battery
// backed RAM.
func (cart *Cartridge) RAMData() []uint8 {
	return cart.ram.Data()
}

// ROMData returns the ROM data after padding. The returned slice should not
// be changed.
func (cart *Cartridge) ROMData() []uint8 {
	return cart.rom.Data()
}

func ramEnable(latch bool, data uint8) bool {
	switch data & 0x0f {
	case 0x0a:
		return true
	case 0x00:
		return false
	}
	return latch
}

func ramStatus(enabled bool) string {
	if enabled {
		return "ram enabled"
	}
	return "ram disabled"
}
