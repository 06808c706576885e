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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

// Sentinel errors returned by Load().
var (
	ErrUnexpectedHash    = errors.New("unexpected hash value")
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")
)

// Loader is used to specify the cartridge to use when creating an address
// space. It also permits the caller to specify the mapping of the cartridge
// (if necessary. the cartridge header is normally good enough).
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// empty string or "AUTO" indicates that the cartridge header should be
	// used to decide the mapping
	Mapping string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte

	loaded bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument will be used to set the Mapping field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
//
// File extensions ".MBC1", ".MBC2", ".MBC3" and ".MBC5" force the named
// mapping. File extensions ".GB", ".GBC", ".DMG" and ".BIN" set the Mapping
// field to "AUTO".
//
// Alphabetic characters in file extensions can be in upper or lower case or a
// mixture of both.
func NewLoader(filename string, mapping string) Loader {
	cl := Loader{
		Filename: filename,
		Mapping:  AutoMapping,
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != AutoMapping && mapping != "" {
		cl.Mapping = mapping
	} else {
		ext := strings.ToUpper(path.Ext(filename))
		switch ext {
		case ".GB", ".GBC", ".DMG", ".BIN":
			cl.Mapping = AutoMapping
		case ".ROM", ".MBC1", ".MBC2", ".MBC3", ".MBC5":
			cl.Mapping = ext[1:]
		}
	}

	return cl
}

// NewLoaderFromData is like NewLoader() but the data is supplied rather than
// loaded. The name argument is used as the Filename field. Calling Load() on
// the returned Loader will generate the hash.
func NewLoaderFromData(name string, data []byte, mapping string) Loader {
	cl := NewLoader(name, mapping)
	cl.Data = data
	cl.loaded = true
	return cl
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called or if the
// Loader was created with NewLoaderFromData().
func (cl Loader) HasLoaded() bool {
	return cl.loaded
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if !cl.loaded {
		scheme := "file"

		url, err := url.Parse(cl.Filename)
		if err == nil {
			scheme = url.Scheme
		}

		switch scheme {
		case "http", "https":
			resp, err := http.Get(cl.Filename)
			if err != nil {
				return fmt.Errorf("cartridgeloader: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("cartridgeloader: %s: %s", cl.Filename, resp.Status)
			}

			cl.Data, err = io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("cartridgeloader: %w", err)
			}

		case "file", "":
			cl.Data, err = os.ReadFile(cl.Filename)
			if err != nil {
				return fmt.Errorf("cartridgeloader: %w", err)
			}

		default:
			return fmt.Errorf("cartridgeloader: %w: %s", ErrUnsupportedScheme, scheme)
		}

		cl.loaded = true
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return fmt.Errorf("cartridgeloader: %w", ErrUnexpectedHash)
	}

	cl.Hash = hash

	return nil
}
