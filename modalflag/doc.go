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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet Parse() is called with the arguments, with
// modalflag the arguments are given to NewArgs() and Parse() is called with
// no arguments. This allows the same argument list to be parsed in stages,
// one stage per mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "MAP", "PEEK")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "PEEK":
//		md.NewMode()
//		bank := md.AddInt("bank", 1, "ROM bank to select before peeking")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		peek(*bank, md.RemainingArgs())
//	}
//
// The first sub-mode is the default and is selected if the first argument
// after the flags is not a sub-mode. Sub-mode comparisons are case
// insensitive and Mode() always returns the mode in upper case.
//
// Addresses given on the command line should be parsed with ParseAddress() or
// added as a flag with AddAddress(). Addresses are always hexadecimal.
package modalflag
