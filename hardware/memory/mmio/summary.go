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

package mmio

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// Summary returns a list of every registered address. Contiguous addresses
// without a register name are collapsed into a single line.
func (tab *Table) Summary() string {
	s := strings.Builder{}

	start := -1
	flush := func(end int) {
		if start == -1 {
			return
		}
		if start == end {
			s.WriteString(fmt.Sprintf("%04x\n", start))
		} else {
			s.WriteString(fmt.Sprintf("%04x -> %04x\n", start, end))
		}
		start = -1
	}

	for i := range tab.handlers {
		a := i + int(memorymap.OriginMMIO)
		if !tab.handlers[i].registered {
			flush(a - 1)
			continue
		}

		if n, ok := memorymap.RegisterNames[uint16(a)]; ok {
			flush(a - 1)
			s.WriteString(fmt.Sprintf("%04x\t%s", a, n))
			if tab.handlers[i].read == nil {
				s.WriteString(" (write only)")
			} else if tab.handlers[i].write == nil {
				s.WriteString(" (read only)")
			}
			s.WriteString("\n")
			continue
		}

		if start == -1 {
			start = a
		}
	}
	flush(int(memorymap.MemtopMMIO))

	return s.String()
}
