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

// mbc2 has 512 half-bytes of RAM built in to the controller. There are two
// registers, both in the range 0x0000 to 0x3fff. Bit 8 of the address
// decides which register is written.
//
// The 512 bytes of RAM are mirrored throughout 0xa000 to 0xbfff.
//
// cartridges types:
//   - 0x05 MBC2
//   - 0x06 MBC2+BATTERY
type mbc2 struct {
	mappingID string
	state     *mbc2State
}

type mbc2State struct {
	ramEnabled bool
	bank       uint8
}

const mbc2RAMSize = 0x200

func newMBC2() *mbc2 {
	cart := &mbc2{
		mappingID: "MBC2",
		state:     &mbc2State{},
	}
	cart.Reset()
	return cart
}

func (cart *mbc2) String() string {
	return fmt.Sprintf("%s [rom %d, %s]", cart.mappingID, cart.state.bank, ramStatus(cart.state.ramEnabled))
}

// ID implements the mapper.CartMapper interface.
func (cart *mbc2) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc2) Reset() {
	*cart.state = mbc2State{bank: 1}
}

// ROMBank implements the mapper.CartMapper interface.
func (cart *mbc2) ROMBank(address uint16) int {
	if address < 0x4000 {
		return 0
	}
	return int(cart.state.bank)
}

// RAMBank implements the mapper.CartMapper interface.
func (cart *mbc2) RAMBank() (int, bool) {
	return 0, cart.state.ramEnabled
}

// BankControl implements the mapper.CartMapper interface.
func (cart *mbc2) BankControl(address uint16, data uint8) {
	if address > 0x3fff {
		return
	}
	if address&0x0100 == 0x0000 {
		cart.state.ramEnabled = ramEnable(cart.state.ramEnabled, data)
		return
	}
	cart.state.bank = data & 0x0f
	if cart.state.bank == 0 {
		cart.state.bank = 1
	}
}

// RAMMask implements the mapper.CartRAMWidth interface.
func (cart *mbc2) RAMMask() uint8 {
	return 0x0f
}

// RAMSize implements the mapper.CartRAMSize interface.
func (cart *mbc2) RAMSize() int {
	return mbc2RAMSize
}
