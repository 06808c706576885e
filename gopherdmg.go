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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/environment"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/diagnostics"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/modalflag"
	"github.com/jetsetilly/gopherdmg/monitor"
	"github.com/jetsetilly/gopherdmg/performance"
	"github.com/jetsetilly/gopherdmg/statsview"
	"github.com/jetsetilly/gopherdmg/version"
	"golang.org/x/term"
)

// exit codes
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

var errWriteList = errors.New("badly formed write list")

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("INFO", "MAP", "PEEK", "MONITOR", "MEMVIZ", "PROFILE", "VERSION")

	echo := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *echo {
		setEcho(output)
		defer logger.SetEcho(nil, false)
	}

	switch md.Mode() {
	case "INFO":
		err = info(md)

	case "MAP":
		err = memmap(md)

	case "PEEK":
		err = peek(md)

	case "MONITOR":
		err = monitorMode(md, input)

	case "MEMVIZ":
		err = memvizMode(md)

	case "PROFILE":
		err = profile(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

// log output is colorized when stdout is a terminal
func setEcho(output io.Writer) {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output), false)
		return
	}
	logger.SetEcho(output, false)
}

// open the cartridge named by the first remaining argument. the environment
// used for the main emulation is created here
func open(md *modalflag.Modes, mapping string, hash string, randomState bool) (*memory.AddressSpace, error) {
	if len(md.RemainingArgs()) == 0 {
		return nil, fmt.Errorf("cartridge required for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0), mapping)
	cartload.Hash = hash

	env := environment.NewEnvironment(environment.MainEmulation)
	env.RandomState = randomState
	return memory.Open(env, cartload)
}

// apply a comma separated list of address=value CPU writes. used to select
// banks before inspecting memory
func applyWrites(mem *memory.AddressSpace, list string) error {
	if list == "" {
		return nil
	}

	for _, w := range strings.Split(list, ",") {
		a, v, ok := strings.Cut(w, "=")
		if !ok {
			return fmt.Errorf("%w: %s", errWriteList, w)
		}
		address, err := modalflag.ParseAddress(a)
		if err != nil {
			return fmt.Errorf("%w: %w", errWriteList, err)
		}
		value, err := modalflag.ParseAddress(v)
		if err != nil || value > 0xff {
			return fmt.Errorf("%w: %s", errWriteList, w)
		}
		mem.Write(address, uint8(value))
	}

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")
	hash := md.AddString("hash", "", "expected SHA1 hash of cartridge data")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mem, err := open(md, *mapping, *hash, false)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, mem.Cart)
	fmt.Fprintln(md.Output, mem.Cart.Header)
	fmt.Fprintf(md.Output, "sha1: %s\n", mem.Cart.Hash)
	fmt.Fprintf(md.Output, "%d ROM banks, %d RAM banks\n", mem.Cart.NumBanks(), mem.Cart.NumRAMBanks())
	fmt.Fprintln(md.Output, mem.Cart.MappedBanks())

	return nil
}

func memmap(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var mem *memory.AddressSpace

	switch len(md.RemainingArgs()) {
	case 0:
		// the memory map can be shown without a cartridge. the registered
		// MMIO addresses will be those of a monochrome cartridge
		mem, err = memory.NewAddressSpace(nil, nil, *mapping)
	case 1:
		mem, err = open(md, *mapping, "", false)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(md.Output, mem)

	return nil
}

func peek(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("addresses are hexadecimal with an optional 0x or $ prefix")

	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")
	writes := md.AddString("write", "", "CPU writes to make before peeking. eg. 2000=03,0000=0a")
	decode := md.AddBool("decode", false, "show how each address is decoded")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) < 2 {
		return fmt.Errorf("cartridge and at least one address required for %s mode", md)
	}

	mem, err := open(md, *mapping, "", false)
	if err != nil {
		return err
	}

	err = applyWrites(mem, *writes)
	if err != nil {
		return err
	}

	for _, arg := range md.RemainingArgs()[1:] {
		a, err := modalflag.ParseAddress(arg)
		if err != nil {
			return err
		}

		v, err := mem.Peek(a)
		if err != nil {
			fmt.Fprintf(md.Output, "%04x: %v\n", a, err)
			continue
		}

		if *decode {
			fmt.Fprintf(md.Output, "%04x: %02x  %s\n", a, v, memorymap.MapAddress(a, memorymap.Read))
		} else {
			fmt.Fprintf(md.Output, "%04x: %02x\n", a, v)
		}
	}

	return nil
}

func monitorMode(md *modalflag.Modes, input io.Reader) error {
	md.NewMode()

	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")
	random := md.AddBool("random", false, "randomise volatile memory on reset")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mem, err := open(md, *mapping, "", *random)
	if err != nil {
		return err
	}

	mon := monitor.NewMonitor(mem, md.Output)
	fmt.Fprintln(md.Output, mem.Cart)
	return mon.Run(input)
}

func memvizMode(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")
	writes := md.AddString("write", "", "CPU writes to make before visualising. eg. 2000=03")
	out := md.AddString("out", "", "write graphviz output to file rather than stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mem, err := open(md, *mapping, "", false)
	if err != nil {
		return err
	}

	err = applyWrites(mem, *writes)
	if err != nil {
		return err
	}

	w := md.Output
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	// the mapper holds the complete bank-control state of the cartridge
	memviz.Map(w, mem.Cart.Mapper())

	return nil
}

func profile(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", cartridgeloader.AutoMapping, "force use of cartridge mapping")
	duration := md.AddString("duration", "5s", "run duration")
	profiles := md.AddString("profile", "NONE", "profiles to generate: CPU, MEM, TRACE, ALL")
	stats := md.AddBool("statsview", false, "run stats server during profiling")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address for stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profiles)
	if err != nil {
		return err
	}

	mem, err := open(md, *mapping, "", false)
	if err != nil {
		return err
	}
	mem.SetDiagnostics(diagnostics.Discard)

	if *stats {
		stop := statsview.Launch(md.Output, *statsAddr)
		defer stop()
	}

	_, err = performance.Check(md.Output, prf, mem, *duration)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
