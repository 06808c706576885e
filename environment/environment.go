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

// Package environment describes the context an emulated machine runs in. More
// than one machine can exist in the same process (for example, a main
// emulation and a thumbnail preview) and each has its own Environment.
package environment

import (
	"github.com/jetsetilly/gopherdmg/random"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// volatile memory is filled with random values on reset rather than zero.
	// real hardware powers up with indeterminate RAM contents
	RandomState bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
func NewEnvironment(label Label) *Environment {
	return &Environment{
		Label:  label,
		Random: random.NewRandom(),
	}
}

// Normalise ensures the environment is in a known default state. Useful for
// regression tests where output must be predictable.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Random.Reseed()
	env.RandomState = false
}

// IsMainEmulation returns true if the environment is the main emulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env == nil || env.IsMainEmulation()
}
