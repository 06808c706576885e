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

package modalflag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrAddress is returned by ParseAddress() when the string is not a valid
// 16-bit address.
var ErrAddress = errors.New("not a 16-bit address")

// ParseAddress converts a string to a 16-bit address. Addresses are always
// hexadecimal. They can be prefixed with "0x" or "$" but a prefix is not
// required.
func ParseAddress(s string) (uint16, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.TrimPrefix(t, "0x")
	t = strings.TrimPrefix(t, "$")
	if t == "" {
		return 0, fmt.Errorf("%w: %q", ErrAddress, s)
	}

	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrAddress, s)
	}

	return uint16(v), nil
}

// addressValue implements the flag.Value interface.
type addressValue uint16

func (a *addressValue) String() string {
	return fmt.Sprintf("%04x", uint16(*a))
}

func (a *addressValue) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addressValue(v)
	return nil
}
