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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/random"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestFill(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	da := make([]uint8, 64)
	db := make([]uint8, 64)
	a.Fill(da)
	b.Fill(db)
	for i := range da {
		test.ExpectEquality(t, da[i], db[i], i)
	}

	// reseeding restarts the sequence
	a.Reseed()
	dc := make([]uint8, 64)
	a.Fill(dc)
	for i := range da {
		test.ExpectEquality(t, da[i], dc[i], i)
	}
}
