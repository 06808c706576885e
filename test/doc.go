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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report failure with t.Fatalf() and
// should be used when subsequent tests depend on the value being correct.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. It is worth describing how they handle the
// nil type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// All functions accept optional tags which are prepended to any failure
// message. This is useful when a test is run over a range of addresses.
package test
