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

// Package version reports the version of the application. The version number
// is set at link time by the makefile. When it is not set, the build
// information embedded by the Go toolchain is used to describe the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherDMG"

// set with -ldflags "-X github.com/jetsetilly/gopherdmg/version.number=v0.1.0"
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if the binary was built from a
// repository without the version number being set and "local" if there is
// no version control information at all.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

func init() {
	version, revision = describe(number, readBuildSettings())
}

type buildSettings struct {
	vcs      bool
	revision string
	modified bool
}

func readBuildSettings() buildSettings {
	var b buildSettings

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			b.vcs = true
		case "vcs.revision":
			b.revision = s.Value
		case "vcs.modified":
			b.modified = s.Value == "true"
		}
	}

	return b
}

func describe(number string, b buildSettings) (string, string) {
	rev := "no revision information"
	if b.revision != "" {
		rev = b.revision
		if b.modified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	if number != "" {
		return number, rev
	}
	if b.vcs {
		return "unreleased", rev
	}
	return "local", rev
}
