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
)

// Location of the header fields in bank 0.
const (
	headerTitle          = 0x0134
	headerCGB            = 0x0143
	headerType           = 0x0147
	headerROMSize        = 0x0148
	headerRAMSize        = 0x0149
	headerChecksum       = 0x014d
	headerChecksumOrigin = 0x0134
	headerChecksumMemtop = 0x014c
)

// Header is the cartridge metadata found at 0x0134 to 0x014f.
type Header struct {
	Title string

	// colour support flag. bit 7 is set for colour enhanced or colour only
	// cartridges
	CGB uint8

	// cartridge type. identifies the bank controller and any additional
	// hardware
	Type uint8

	// size codes for ROM and RAM
	ROMSize uint8
	RAMSize uint8

	// the checksum stored in the header and the value computed from the
	// header bytes
	Checksum         uint8
	ComputedChecksum uint8
}

// ParseHeader reads the header from cartridge data. Any header bytes missing
// from the data are treated as the fill value.
func ParseHeader(data []uint8) Header {
	b := func(i int) uint8 {
		if i < len(data) {
			return data[i]
		}
		return 0xff
	}

	var h Header

	// the title is upper case ASCII padded with zero. the last bytes of the
	// title area are reused by later cartridges for the manufacturer code and
	// CGB flag so we stop at the first non-printable byte
	title := strings.Builder{}
	for i := headerTitle; i < headerCGB; i++ {
		c := b(i)
		if c < 0x20 || c > 0x7e {
			break
		}
		title.WriteByte(c)
	}
	h.Title = strings.TrimSpace(title.String())

	h.CGB = b(headerCGB)
	h.Type = b(headerType)
	h.ROMSize = b(headerROMSize)
	h.RAMSize = b(headerRAMSize)
	h.Checksum = b(headerChecksum)

	for i := headerChecksumOrigin; i <= headerChecksumMemtop; i++ {
		h.ComputedChecksum = h.ComputedChecksum - b(i) - 1
	}

	return h
}

func (h Header) String() string {
	s := strings.Builder{}
	title := h.Title
	if title == "" {
		title = "(untitled)"
	}
	s.WriteString(fmt.Sprintf("%s\n", title))
	s.WriteString(fmt.Sprintf("type: %02x %s\n", h.Type, TypeName(h.Type)))

	if n, ok := h.ROMBanks(); ok {
		s.WriteString(fmt.Sprintf("rom: %d banks\n", n))
	} else {
		s.WriteString(fmt.Sprintf("rom: unknown size code %02x\n", h.ROMSize))
	}

	if n, ok := h.RAMBytes(); ok {
		s.WriteString(fmt.Sprintf("ram: %d bytes\n", n))
	} else {
		s.WriteString(fmt.Sprintf("ram: unknown size code %02x\n", h.RAMSize))
	}

	if h.IsCGB() {
		s.WriteString("colour supported\n")
	}

	if h.ChecksumOK() {
		s.WriteString(fmt.Sprintf("checksum: %02x", h.Checksum))
	} else {
		s.WriteString(fmt.Sprintf("checksum: %02x (expected %02x)", h.Checksum, h.ComputedChecksum))
	}

	return s.String()
}

// ChecksumOK returns true if the stored header checksum matches the computed
// value.
func (h Header) ChecksumOK() bool {
	return h.Checksum == h.ComputedChecksum
}

// IsCGB returns true if the cartridge supports colour hardware.
func (h Header) IsCGB() bool {
	return h.CGB&0x80 == 0x80
}

// ROMBanks returns the number of 16k ROM banks declared by the header.
// Returns false if the size code is not recognised.
func (h Header) ROMBanks() (int, bool) {
	if h.ROMSize > 0x08 {
		return 0, false
	}
	return 2 << h.ROMSize, true
}

// RAMBytes returns the number of bytes of RAM declared by the header. Returns
// false if the size code is not recognised.
func (h Header) RAMBytes() (int, bool) {
	switch h.RAMSize {
	case 0x00:
		return 0, true
	case 0x01:
		return 0x800, true
	case 0x02:
		return 0x2000, true
	case 0x03:
		return 0x8000, true
	case 0x04:
		return 0x20000, true
	case 0x05:
		return 0x10000, true
	}
	return 0, false
}

// the cartridge types that are known to the emulation
var typeNames = map[uint8]string{
	0x00: "ROM",
	0x01: "MBC1",
	0x02: "MBC1+RAM",
	0x03: "MBC1+RAM+BATTERY",
	0x05: "MBC2",
	0x06: "MBC2+BATTERY",
	0x08: "ROM+RAM",
	0x09: "ROM+RAM+BATTERY",
	0x0f: "MBC3+TIMER+BATTERY",
	0x10: "MBC3+TIMER+RAM+BATTERY",
	0x11: "MBC3",
	0x12: "MBC3+RAM",
	0x13: "MBC3+RAM+BATTERY",
	0x19: "MBC5",
	0x1a: "MBC5+RAM",
	0x1b: "MBC5+RAM+BATTERY",
	0x1c: "MBC5+RUMBLE",
	0x1d: "MBC5+RUMBLE+RAM",
	0x1e: "MBC5+RUMBLE+RAM+BATTERY",
}

// TypeName returns the name of the cartridge type. Returns "unknown" for
// types that the emulation does not support.
func TypeName(t uint8) string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// typeRequiresRAM returns true if the cartridge type declares external RAM.
func typeRequiresRAM(t uint8) bool {
	switch t {
	case 0x02, 0x03, 0x08, 0x09, 0x10, 0x12, 0x13, 0x1a, 0x1b, 0x1d, 0x1e:
		return true
	}
	return false
}
