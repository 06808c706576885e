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

package mapper

// CartMapper implementations hold the bank-control registers of a cartridge
// and translate CPU addresses into bank numbers. Implementations do not hold
// the ROM or RAM data; that is the job of the Cartridge type.
//
// Bank numbers returned by the mapper are not limited by the number of banks
// present in the cartridge. The Cartridge type wraps the bank number into the
// available banks.
type CartMapper interface {
	ID() string
	String() string

	// reset registers to their power-on state
	Reset()

	// the ROM bank mapped to the address. the address will be in the range
	// 0x0000 to 0x7fff
	ROMBank(address uint16) int

	// the RAM bank mapped to 0xa000 to 0xbfff. returns false if RAM is
	// currently disabled
	RAMBank() (int, bool)

	// write to the bank-control registers. the address will be in the range
	// 0x0000 to 0x7fff
	BankControl(address uint16, data uint8)
}

// CartRAMWidth is implemented by mappers where cartridge RAM is narrower than
// eight bits. Bits outside the mask read as one and are not stored.
type CartRAMWidth interface {
	RAMMask() uint8
}

// CartRAMSize is implemented by mappers with RAM built in to the controller.
// The size returned overrides the size declared in the cartridge header.
type CartRAMSize interface {
	RAMSize() int
}

// CartClock is implemented by mappers with a real-time clock accessible
// through the RAM window.
type CartClock interface {
	// ReadClock returns false if a clock register is not currently mapped
	ReadClock() (uint8, bool)

	// WriteClock returns false if a clock register is not currently mapped
	WriteClock(data uint8) bool
}

// CartRumble is implemented by mappers that drive a rumble motor.
type CartRumble interface {
	Rumble() bool
}

// CartRAMbus is implemented by types that have an addressable RAM area.
//
// Note that for convenience, a Cartridge will implement this interface but
// have no RAM for the specific cartridge. In these case GetRAM() will return
// nil.
type CartRAMbus interface {
	GetRAM() []CartRAM

	// Update the value at the index of the specified RAM bank. Note that this
	// is not the address; it refers to the Data array as returned by GetRAM()
	PutRAM(bank int, idx int, data uint8)
}

// CartRAM represents a single bank of cartridge RAM. The Origin field
// specifies the address of the lowest byte in RAM when the bank is mapped.
// The Data field is a copy of the actual bytes in the cartridge RAM.
type CartRAM struct {
	Label  string
	Origin uint16
	Data   []uint8
	Mapped bool
}
