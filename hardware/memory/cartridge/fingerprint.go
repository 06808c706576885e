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
	"strings"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/environment"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Mappings lists the mapping names accepted by Attach().
var Mappings = []string{"ROM", "MBC1", "MBC2", "MBC3", "MBC5"}

// selectMapper returns the mapper indicated by the mapping argument or, if
// mapping is AUTO or empty, by the cartridge type in the header.
func selectMapper(env *environment.Environment, hdr Header, mapping string) (mapper.CartMapper, error) {
	mapping = strings.ToUpper(strings.TrimSpace(mapping))

	switch mapping {
	case "", cartridgeloader.AutoMapping:
		return fingerprint(env, hdr), nil
	case "ROM":
		return newROM(), nil
	case "MBC1":
		return newMBC1(), nil
	case "MBC2":
		return newMBC2(), nil
	case "MBC3":
		return newMBC3(), nil
	case "MBC5":
		return newMBC5(hdr.Type >= 0x1c && hdr.Type <= 0x1e), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownMapping, mapping)
}

// fingerprint uses the cartridge type in the header to decide the mapper.
// Unknown types are treated as ROM only.
func fingerprint(env *environment.Environment, hdr Header) mapper.CartMapper {
	switch hdr.Type {
	case 0x00, 0x08, 0x09:
		return newROM()
	case 0x01, 0x02, 0x03:
		return newMBC1()
	case 0x05, 0x06:
		return newMBC2()
	case 0x0f, 0x10, 0x11, 0x12, 0x13:
		return newMBC3()
	case 0x19, 0x1a, 0x1b:
		return newMBC5(false)
	case 0x1c, 0x1d, 0x1e:
		return newMBC5(true)
	}

	logger.Logf(env, "cartridge", "unsupported cartridge type %02x. using ROM mapping", hdr.Type)
	return newROM()
}
