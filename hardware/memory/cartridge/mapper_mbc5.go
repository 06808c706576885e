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

// mbc5 has a nine bit ROM bank register and a four bit RAM bank register.
// Unlike the other controllers, bank zero can be selected in the switchable
// ROM area.
//
//	0x0000 to 0x1fff	RAM enable
//	0x2000 to 0x2fff	ROM bank (lower eight bits)
//	0x3000 to 0x3fff	ROM bank (bit 8)
//	0x4000 to 0x5fff	RAM bank
//
// On rumble cartridges, bit 3 of the RAM bank register drives the motor and
// is not part of the bank number.
//
// cartridges types:
//   - 0x19 MBC5
//   - 0x1a MBC5+RAM
//   - 0x1b MBC5+RAM+BATTERY
//   - 0x1c MBC5+RUMBLE
//   - 0x1d MBC5+RUMBLE+RAM
//   - 0x1e MBC5+RUMBLE+RAM+BATTERY
type mbc5 struct {
	mappingID string
	rumble    bool
	state     *mbc5State
}

type mbc5State struct {
	ramEnabled bool
	romBank    uint16
	ramBank    uint8
	motor      bool
}

func newMBC5(rumble bool) *mbc5 {
	cart := &mbc5{
		mappingID: "MBC5",
		rumble:    rumble,
		state:     &mbc5State{},
	}
	cart.Reset()
	return cart
}

func (cart *mbc5) String() string {
	s := fmt.Sprintf("%s [rom %d, ram %d, %s", cart.mappingID, cart.state.romBank, cart.state.ramBank, ramStatus(cart.state.ramEnabled))
	if cart.rumble && cart.state.motor {
		s = fmt.Sprintf("%s, rumble", s)
	}
	return s + "]"
}

// ID implements the mapper.CartMapper interface.
func (cart *mbc5) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc5) Reset() {
	*cart.state = mbc5State{romBank: 1}
}

// ROMBank implements the mapper.CartMapper interface.
func (cart *mbc5) ROMBank(address uint16) int {
	if address < 0x4000 {
		return 0
	}
	return int(cart.state.romBank)
}

// RAMBank implements the mapper.CartMapper interface.
func (cart *mbc5) RAMBank() (int, bool) {
	return int(cart.state.ramBank), cart.state.ramEnabled
}

// BankControl implements the mapper.CartMapper interface.
func (cart *mbc5) BankControl(address uint16, data uint8) {
	switch {
	case address <= 0x1fff:
		cart.state.ramEnabled = ramEnable(cart.state.ramEnabled, data)
	case address <= 0x2fff:
		cart.state.romBank = cart.state.romBank&0x100 | uint16(data)
	case address <= 0x3fff:
		cart.state.romBank = cart.state.romBank&0x0ff | uint16(data&0x01)<<8
	case address <= 0x5fff:
		if cart.rumble {
			cart.state.motor = data&0x08 == 0x08
			cart.state.ramBank = data & 0x07
		} else {
			cart.state.ramBank = data & 0x0f
		}
	}
}

// Rumble implements the mapper.CartRumble interface.
func (cart *mbc5) Rumble() bool {
	return cart.rumble && cart.state.motor
}
