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

package cartridgeloader_test

import (
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestMappingFromExtension(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/Tetris.gb", "").Mapping, "AUTO")
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/Tetris.GBC", "auto").Mapping, "AUTO")
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/test.mbc3", "").Mapping, "MBC3")
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/test.mbc3", "mbc1").Mapping, "MBC1")
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/test", "").Mapping, "AUTO")
}

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader("roms/Tetris.gb", "")
	test.ExpectEquality(t, cl.ShortName(), "Tetris")
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0x01, 0x02}, 0o644))

	cl := cartridgeloader.NewLoader(fn, "")
	test.ExpectFailure(t, cl.HasLoaded())
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 3)
	test.ExpectEquality(t, cl.Hash, "0c7a623fd2bbc05b06423be359e4021d36e721ad")

	// loading with the correct hash succeeds
	cl2 := cartridgeloader.NewLoader(fn, "")
	cl2.Hash = cl.Hash
	test.ExpectSuccess(t, cl2.Load())

	// loading with the wrong hash fails
	cl3 := cartridgeloader.NewLoader(fn, "")
	cl3.Hash = "0000000000000000000000000000000000000000"
	err := cl3.Load()
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrUnexpectedHash))
}

func TestLoadMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.gb"), "")
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadEmptyFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.gb")
	test.DemandSuccess(t, os.WriteFile(fn, nil, 0o644))

	cl := cartridgeloader.NewLoader(fn, "")
	test.ExpectSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 0)
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.gb" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0xaa, 0xbb})
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL+"/test.gb", "")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 2)
	test.ExpectEquality(t, cl.Data[1], uint8(0xbb))

	cl = cartridgeloader.NewLoader(srv.URL+"/missing.gb", "")
	test.ExpectFailure(t, cl.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	cl := cartridgeloader.NewLoader("ftp://example.com/test.gb", "")
	err := cl.Load()
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrUnsupportedScheme))
}

func TestFromData(t *testing.T) {
	cl := cartridgeloader.NewLoaderFromData("memory", []byte{0x01}, "MBC5")
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.Mapping, "MBC5")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Data[0], uint8(0x01))
	test.ExpectEquality(t, len(cl.Hash), 40)
}
