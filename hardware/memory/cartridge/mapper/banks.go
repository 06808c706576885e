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

import (
	"fmt"
)

// BankInfo is used to identify a cartridge bank.
type BankInfo struct {
	Number int

	// is cartridge bank writable
	IsRAM bool

	// RAM bank is not currently enabled. reads will return the fill value
	// and writes are ignored
	Disabled bool

	// the address used to generate the BankInfo is not a cartridge address
	NonCart bool
}

func (b BankInfo) String() string {
	if b.NonCart {
		return "-"
	}
	if b.IsRAM {
		if b.Disabled {
			return fmt.Sprintf("%dR (disabled)", b.Number)
		}
		return fmt.Sprintf("%dR", b.Number)
	}
	return fmt.Sprintf("%d", b.Number)
}
