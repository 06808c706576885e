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

// Package diagnostics defines the events emitted by the memory core when the
// CPU accesses a deprecated or unmapped part of the address space.
//
// Real software probes these areas and so the accesses must succeed. But it is
// useful for a developer to know about them. Events are sent to a Sink, which
// is supplied by whoever assembles the machine. The Logging sink is the
// default.
package diagnostics
