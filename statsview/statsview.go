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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is the address the stats server listens on if no address is
// given to Launch().
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// Launch a new goroutine running the stats server. The returned function
// stops the server.
func Launch(output io.Writer, addr string) (stop func()) {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()

	if output != nil {
		fmt.Fprintf(output, "stats server available at %s\n", URL(addr))
	}

	return mgr.Stop
}

// URL returns the address of the stats page for the server address.
func URL(addr string) string {
	if addr == "" {
		addr = DefaultAddress
	}
	return fmt.Sprintf("http://%s%s", addr, url)
}
