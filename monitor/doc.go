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

// Package monitor implements a simple interactive command line for the
// address space. Memory can be inspected and modified with or without side
// effects, the cartridge banks can be switched with CPU writes and the
// diagnostic events generated by those writes can be echoed to the terminal.
//
// When the input is a terminal, the golang.org/x/term package provides line
// editing and command history.
package monitor
