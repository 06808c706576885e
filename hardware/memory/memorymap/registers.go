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

package memorymap

// Addresses of the registers in the MMIO page. The memory core does not
// implement most of these. They are listed so that collaborators registering
// handlers, and tools displaying the memory map, can refer to them by name.
const (
	P1   = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)
	IF   = uint16(0xff0f)

	NR10 = uint16(0xff10)
	NR52 = uint16(0xff26)

	OriginWave = uint16(0xff30)
	MemtopWave = uint16(0xff3f)

	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)
	DMA  = uint16(0xff46)
	BGP  = uint16(0xff47)
	OBP0 = uint16(0xff48)
	OBP1 = uint16(0xff49)
	WY   = uint16(0xff4a)
	WX   = uint16(0xff4b)
	KEY1 = uint16(0xff4d)
	VBK  = uint16(0xff4f)

	// writing a non-zero value unmaps the boot ROM
	BOOT = uint16(0xff50)

	// work RAM bank select (colour hardware only)
	SVBK = uint16(0xff70)

	OriginHRAM = uint16(0xff80)
	MemtopHRAM = uint16(0xfffe)

	IE = uint16(0xffff)
)

// RegisterNames maps MMIO addresses to their canonical names.
var RegisterNames = map[uint16]string{
	P1:   "P1",
	SB:   "SB",
	SC:   "SC",
	DIV:  "DIV",
	TIMA: "TIMA",
	TMA:  "TMA",
	TAC:  "TAC",
	IF:   "IF",
	NR10: "NR10",
	NR52: "NR52",
	LCDC: "LCDC",
	STAT: "STAT",
	SCY:  "SCY",
	SCX:  "SCX",
	LY:   "LY",
	LYC:  "LYC",
	DMA:  "DMA",
	BGP:  "BGP",
	OBP0: "OBP0",
	OBP1: "OBP1",
	WY:   "WY",
	WX:   "WX",
	KEY1: "KEY1",
	VBK:  "VBK",
	BOOT: "BOOT",
	SVBK: "SVBK",
	IE:   "IE",
}
