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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
)

// sentinel error returned by the sweep loop
var timedOut = errors.New("performance timed out")

// the number of sweeps between checks of the timer channel. checking the
// channel on every access is measurably expensive
const performanceBrake = 16

// Result of a performance check.
type Result struct {
	// number of complete sweeps of the address space
	Sweeps int

	// total number of reads and writes
	Accesses int

	Duration time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f million accesses per second (%d sweeps in %.2f seconds)",
		r.Rate()/1000000, r.Sweeps, r.Duration.Seconds())
}

// Rate returns the number of accesses per second.
func (r Result) Rate() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Accesses) / r.Duration.Seconds()
}

// Sweep reads every address in the address space, writing the value back to
// the same address. Writes to the bank-control range change the selected
// bank, which is intended.
//
// Returns the number of accesses made.
func Sweep(mem bus.CPUBus) int {
	a := uint16(0)
	for {
		mem.Write(a, mem.Read(a))
		if a == 0xffff {
			break
		}
		a++
	}
	return 0x20000
}

// Check the performance of the memory system. The address space is swept
// repeatedly for the specified duration, with the profiles requested.
func Check(output io.Writer, profile Profile, mem bus.CPUBus, duration string) (Result, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Result{}, fmt.Errorf("performance: %w", err)
	}

	var res Result

	runner := func() error {
		timerChan := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		startTime := time.Now()
		defer func() {
			res.Duration = time.Since(startTime)
		}()

		brake := 0
		for {
			res.Accesses += Sweep(mem)
			res.Sweeps++

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return timedOut
				default:
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return res, fmt.Errorf("performance: %w", err)
	}

	if output != nil {
		fmt.Fprintln(output, res)
	}

	return res, nil
}
