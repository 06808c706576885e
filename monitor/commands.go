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

package monitor

import (
	"sort"
	"strings"
)

// monitor keywords
const (
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdRead   = "READ"
	cmdWrite  = "WRITE"
	cmdDecode = "DECODE"
	cmdBanks  = "BANKS"
	cmdCart   = "CARTRIDGE"
	cmdRAM    = "RAM"
	cmdMap    = "MAP"
	cmdMMIO   = "MMIO"
	cmdDiag   = "DIAGNOSTICS"
	cmdLog    = "LOG"
	cmdReset  = "RESET"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

var helps = map[string]string{
	cmdPeek:   "Inspect memory without side effects. PEEK address [count]",
	cmdPoke:   "Modify memory without side effects. POKE address value [value...]",
	cmdRead:   "Read memory as the CPU would. READ address",
	cmdWrite:  "Write memory as the CPU would. WRITE address value",
	cmdDecode: "Show how an address is decoded for reads and writes. DECODE address",
	cmdBanks:  "Display the currently mapped cartridge banks",
	cmdCart:   "Display information about the cartridge",
	cmdRAM:    "Display the contents of cartridge RAM",
	cmdMap:    "Display the memory map",
	cmdMMIO:   "Display the registered MMIO addresses",
	cmdDiag:   "Echo diagnostic events to the terminal. DIAGNOSTICS [ON|OFF]",
	cmdLog:    "Display the most recent log entries. LOG [count]",
	cmdReset:  "Reset the address space",
	cmdHelp:   "Display help for a command. HELP [command]",
	cmdQuit:   "Leave the monitor",
}

// abbreviations for the most commonly used commands
var aliases = map[string]string{
	"P": cmdPeek,
	"R": cmdRead,
	"W": cmdWrite,
	"B": cmdBanks,
	"Q": cmdQuit,
}

func commandList() []string {
	l := make([]string, 0, len(helps))
	for k := range helps {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}

// normalise the command keyword, resolving aliases and unique prefixes.
// returns false if the keyword is unknown or ambiguous
func keyword(s string) (string, bool) {
	s = strings.ToUpper(s)
	if a, ok := aliases[s]; ok {
		return a, true
	}
	if _, ok := helps[s]; ok {
		return s, true
	}

	var match string
	for _, c := range commandList() {
		if strings.HasPrefix(c, s) {
			if match != "" {
				return "", false
			}
			match = c
		}
	}
	return match, match != ""
}
