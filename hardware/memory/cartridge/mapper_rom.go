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

// rom is the mapper for cartridges without a bank controller. The two banks
// of ROM are fixed and any RAM is permanently enabled.
//
// cartridges types:
//   - 0x00 ROM
//   - 0x08 ROM+RAM
//   - 0x09 ROM+RAM+BATTERY
type rom struct {
	mappingID string
}

func newROM() *rom {
	return &rom{mappingID: "ROM"}
}

func (cart *rom) String() string {
	return fmt.Sprintf("%s [fixed]", cart.mappingID)
}

// ID implements the mapper.CartMapper interface.
func (cart *rom) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface.
func (cart *rom) Reset() {
}

// ROMBank implements the mapper.CartMapper interface.
func (cart *rom) ROMBank(address uint16) int {
	return int(address >> 14)
}

// RAMBank implements the mapper.CartMapper interface.
func (cart *rom) RAMBank() (int, bool) {
	return 0, true
}

// BankControl implements the mapper.CartMapper interface.
func (cart *rom) BankControl(_ uint16, _ uint8) {
}
