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
	"fmt"
)

// mbc3 has a seven bit ROM bank register and a real-time clock. The clock
// registers are mapped into the RAM window by writing 0x08 to 0x0c to the
// RAM bank register.
//
//	0x0000 to 0x1fff	RAM and clock enable
//	0x2000 to 0x3fff	ROM bank
//	0x4000 to 0x5fff	RAM bank or clock register select
//	0x6000 to 0x7fff	latch clock data
//
// The clock does not advance. The registers can be written and latched like
// the real thing but the values only change when the program changes them.
//
// cartridges types:
//   - 0x0f MBC3+TIMER+BATTERY
//   - 0x10 MBC3+TIMER+RAM+BATTERY
//   - 0x11 MBC3
//   - 0x12 MBC3+RAM
//   - 0x13 MBC3+RAM+BATTERY
type mbc3 struct {
	mappingID string
	state     *mbc3State
}

// clock registers in the order they are selected (0x08 to 0x0c)
const (
	rtcSeconds = iota
	rtcMinutes
	rtcHours
	rtcDayLow
	rtcDayHigh
	numRTC
)

// the bits in each clock register that are implemented
var rtcMasks = [numRTC]uint8{0x3f, 0x3f, 0x1f, 0xff, 0xc1}

type mbc3State struct {
	ramEnabled bool
	romBank    uint8

	// 0x00 to 0x07 selects a RAM bank. 0x08 to 0x0c selects a clock register
	ramSelect uint8

	// live and latched clock registers. reads of a clock register always
	// return the latched value
	rtc     [numRTC]uint8
	latched [numRTC]uint8

	// last value written to the latch register. the clock is latched by
	// writing 0x00 followed by 0x01
	latch uint8
}

func newMBC3() *mbc3 {
	cart := &mbc3{
		mappingID: "MBC3",
		state:     &mbc3State{},
	}
	cart.Reset()
	return cart
}

func (cart *mbc3) String() string {
	sel := fmt.Sprintf("ram %d", cart.state.ramSelect)
	if cart.clockSelected() {
		sel = fmt.Sprintf("clock %02x", cart.state.ramSelect)
	}
	return fmt.Sprintf("%s [rom %d, %s, %s]", cart.mappingID, cart.state.romBank, sel, ramStatus(cart.state.ramEnabled))
}

// ID implements the mapper.CartMapper interface.
func (cart *mbc3) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface. The clock registers are
// battery backed and are not reset.
func (cart *mbc3) Reset() {
	cart.state.ramEnabled = false
	cart.state.romBank = 1
	cart.state.ramSelect = 0
	cart.state.latch = 0xff
}

func (cart *mbc3) clockSelected() bool {
	return cart.state.ramSelect >= 0x08 && cart.state.ramSelect <= 0x0c
}

// ROMBank implements the mapper.CartMapper interface.
func (cart *mbc3) ROMBank(address uint16) int {
	if address < 0x4000 {
		return 0
	}
	return int(cart.state.romBank)
}

// RAMBank implements the mapper.CartMapper interface.
func (cart *mbc3) RAMBank() (int, bool) {
	if cart.state.ramSelect > 0x07 {
		return 0, false
	}
	return int(cart.state.ramSelect), cart.state.ramEnabled
}

// BankControl implements the mapper.CartMapper interface.
func (cart *mbc3) BankControl(address uint16, data uint8) {
	switch {
	case address <= 0x1fff:
		cart.state.ramEnabled = ramEnable(cart.state.ramEnabled, data)
	case address <= 0x3fff:
		cart.state.romBank = data & 0x7f
		if cart.state.romBank == 0 {
			cart.state.romBank = 1
		}
	case address <= 0x5fff:
		cart.state.ramSelect = data & 0x0f
	default:
		if cart.state.latch == 0x00 && data == 0x01 {
			cart.state.latched = cart.state.rtc
		}
		cart.state.latch = data
	}
}

// ReadClock implements the mapper.CartClock interface.
func (cart *mbc3) ReadClock() (uint8, bool) {
	if !cart.clockSelected() {
		return 0, false
	}
	if !cart.state.ramEnabled {
		return 0xff, true
	}
	r := cart.state.ramSelect - 0x08
	return cart.state.latched[r] | ^rtcMasks[r], true
}

// WriteClock implements the mapper.CartClock interface.
func (cart *mbc3) WriteClock(data uint8) bool {
	if !cart.clockSelected() {
		return false
	}
	if cart.state.ramEnabled {
		r := cart.state.ramSelect - 0x08
		cart.state.rtc[r] = data & rtcMasks[r]
	}
	return true
}
