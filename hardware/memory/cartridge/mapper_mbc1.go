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

// mbc1 is the first and most common bank controller.
//
//	0x0000 to 0x1fff	RAM enable
//	0x2000 to 0x3fff	ROM bank (lower five bits)
//	0x4000 to 0x5fff	secondary bank register (two bits)
//	0x6000 to 0x7fff	banking mode
//
// In mode 0 the secondary register supplies bits 5 and 6 of the switchable
// ROM bank only. In mode 1 it also selects the RAM bank and the bank mapped
// to 0x0000 to 0x3fff.
//
// cartridges types:
//   - 0x01 MBC1
//   - 0x02 MBC1+RAM
//   - 0x03 MBC1+RAM+BATTERY
type mbc1 struct {
	mappingID string

	// the state is the only part of the mapper that changes
	state *mbc1State
}

type mbc1State struct {
	ramEnabled bool
	bank1      uint8
	bank2      uint8
	mode       uint8
}

func newMBC1() *mbc1 {
	cart := &mbc1{
		mappingID: "MBC1",
		state:     &mbc1State{},
	}
	cart.Reset()
	return cart
}

func (cart *mbc1) String() string {
	return fmt.Sprintf("%s [rom %d, ram %d, mode %d, %s]", cart.mappingID,
		cart.ROMBank(0x4000), cart.state.bank2, cart.state.mode, ramStatus(cart.state.ramEnabled))
}

// ID implements the mapper.CartMapper interface.
func (cart *mbc1) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc1) Reset() {
	*cart.state = mbc1State{bank1: 1}
}

// ROMBank implements the mapper.CartMapper interface.
func (cart *mbc1) ROMBank(address uint16) int {
	if address < 0x4000 {
		if cart.state.mode == 1 {
			return int(cart.state.bank2) << 5
		}
		return 0
	}
	return int(cart.state.bank2)<<5 | int(cart.state.bank1)
}

// RAMBank implements the mapper.CartMapper interface.
func (cart *mbc1) RAMBank() (int, bool) {
	if cart.state.mode == 1 {
		return int(cart.state.bank2), cart.state.ramEnabled
	}
	return 0, cart.state.ramEnabled
}

// BankControl implements the mapper.CartMapper interface.
func (cart *mbc1) BankControl(address uint16, data uint8) {
	switch {
	case address <= 0x1fff:
		cart.state.ramEnabled = ramEnable(cart.state.ramEnabled, data)
	case address <= 0x3fff:
		// a value of zero selects bank one. the zero test happens before any
		// other bits are added to the bank number, which is why banks 0x20,
		// 0x40 and 0x60 can not be selected in the switchable area
		cart.state.bank1 = data & 0x1f
		if cart.state.bank1 == 0 {
			cart.state.bank1 = 1
		}
	case address <= 0x5fff:
		cart.state.bank2 = data & 0x03
	default:
		cart.state.mode = data & 0x01
	}
}
