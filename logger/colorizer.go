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

package logger

import (
	"io"
	"strings"
)

// terminal pens used by the Colorizer.
const (
	normalPen = "\033[0m"
	tagPen    = "\033[2;36m"
	repeatPen = "\033[2;33m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is printed with a dim pen and repeat counts are highlighted.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.Builder{}

	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}

		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			s.WriteString(l)
			continue
		}

		s.WriteString(tagPen)
		s.WriteString(tag)
		s.WriteString(":")
		s.WriteString(normalPen)
		s.WriteString(" ")

		if i := strings.LastIndex(detail, " (repeat x"); i >= 0 {
			s.WriteString(detail[:i])
			s.WriteString(repeatPen)
			s.WriteString(strings.TrimSuffix(detail[i:], "\n"))
			s.WriteString(normalPen)
			if strings.HasSuffix(detail, "\n") {
				s.WriteString("\n")
			}
		} else {
			s.WriteString(detail)
		}
	}

	_, err = c.out.Write([]byte(s.String()))
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
