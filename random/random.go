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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// The Random type can be set to use a zero seed, which makes the sequence of
// numbers predictable. This is useful for tests and for comparing two
// emulations.
package random

import (
	"math/rand"
	"time"
)

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a source of random numbers for the emulation.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	src *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// Reseed restarts the sequence of random numbers. The seed is the base seed
// unless ZeroSeed is set.
func (rnd *Random) Reseed() {
	if rnd.ZeroSeed {
		rnd.src = rand.New(rand.NewSource(0))
	} else {
		rnd.src = rand.New(rand.NewSource(baseSeed))
	}
}

// Intn returns a random number in the range [0, n). The sequence is started
// on first use.
func (rnd *Random) Intn(n int) int {
	if rnd.src == nil {
		rnd.Reseed()
	}
	return rnd.src.Intn(n)
}

// Fill writes random bytes to the supplied slice.
func (rnd *Random) Fill(data []uint8) {
	for i := range data {
		data[i] = uint8(rnd.Intn(0x100))
	}
}
