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

// Package logger is the central log for the memory core and the tools built
// around it. There is a single central log but private logs can be created
// with NewLogger(), which is useful for testing.
//
// Log entries are tagged, usually with the name of the package making the
// entry. Consecutive identical entries are folded into one with a repeat
// count, which is important for the memory core because a program that
// probes an unmapped address in a loop would otherwise flood the log.
//
// Every logging request must be accompanied by a Permission. The
// environment.Environment type implements the Permission interface so that
// only the main emulation is allowed to log. Use logger.Allow when there is
// no environment to hand.
package logger
