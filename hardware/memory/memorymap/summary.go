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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in
// memory. Useful for debugging.
func Summary() string {
	s := strings.Builder{}

	label := func(t Target) string {
		l := t.Area.String()
		if t.Diagnostic != 0 {
			l = fmt.Sprintf("%s (%s)", l, t.Diagnostic)
		}
		return l
	}

	// look up area of first address in memory
	current := label(MapAddress(0, Read))
	sa := 0

	for a := 1; a <= int(MemtopMMIO); a++ {
		area := label(MapAddress(uint16(a), Read))

		// if the area has changed print out the summary line and update the
		// current area and start address of the area
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current))
			current = area
			sa = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, MemtopMMIO, current))

	return s.String()
}
