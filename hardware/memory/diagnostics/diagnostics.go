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

package diagnostics

import "fmt"

// Kind identifies the reason for a diagnostic event.
type Kind int

// List of valid Kind values.
const (
	None Kind = iota

	// access through the echo of work RAM (0xe000 to 0xfdff). the access
	// succeeds but the range is deprecated by hardware documentation
	Echo

	// access to the unused area after OAM (0xfea0 to 0xfeff)
	UnusedOAM

	// access to an MMIO address that has no registered handler
	Unmapped
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Echo:
		return "echo"
	case UnusedOAM:
		return "unused OAM"
	case Unmapped:
		return "unmapped"
	}
	return "unknown"
}

// Event is emitted by the memory core when an access is architecturally
// questionable. It is never an error.
type Event struct {
	Address uint16
	Write   bool
	Kind    Kind
}

func (ev Event) String() string {
	if ev.Write {
		return fmt.Sprintf("%s write at %04x", ev.Kind, ev.Address)
	}
	return fmt.Sprintf("%s read at %04x", ev.Kind, ev.Address)
}

// Sink implementations receive diagnostic events. Implementations must not
// block; Diagnostic() is called from inside a memory access.
type Sink interface {
	Diagnostic(Event)
}
