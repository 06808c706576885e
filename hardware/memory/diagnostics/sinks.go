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

package diagnostics

import (
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopherdmg/logger"
)

// Discard is a Sink that ignores all events.
var Discard Sink = discard{}

type discard struct{}

func (discard) Diagnostic(Event) {}

// the number of events that can be waiting to be added to the central log.
// events arriving when the queue is full are dropped
const loggingQueueSize = 256

type logRequest struct {
	perm  logger.Permission
	ev    Event
	flush chan struct{}
}

// a single goroutine adds queued events to the central log for every Logging
// sink. the logger takes a lock and may echo to a slow writer so it must
// never be called from inside a memory access
var (
	loggingQueue   chan logRequest
	loggingDropped atomic.Uint64
	loggingStart   sync.Once
)

func drainLoggingQueue() {
	for r := range loggingQueue {
		if r.flush != nil {
			close(r.flush)
			continue
		}
		logger.Log(r.perm, "memory", r.ev)
	}
}

// Logging is a Sink that adds events to the central log. Repeated identical
// events are folded by the logger so a program probing the same address in a
// loop produces a single entry with a repeat count.
//
// Events are queued and added to the log by a background goroutine. The
// Diagnostic() function never blocks.
type Logging struct {
	perm logger.Permission
}

// NewLogging is the preferred method of initialisation for the Logging type.
// A nil permission is treated as logger.Allow.
func NewLogging(perm logger.Permission) *Logging {
	if perm == nil {
		perm = logger.Allow
	}
	loggingStart.Do(func() {
		loggingQueue = make(chan logRequest, loggingQueueSize)
		go drainLoggingQueue()
	})
	return &Logging{perm: perm}
}

// Diagnostic implements the Sink interface.
func (l *Logging) Diagnostic(ev Event) {
	if l.perm != logger.Allow && !l.perm.AllowLogging() {
		return
	}
	select {
	case loggingQueue <- logRequest{perm: l.perm, ev: ev}:
	default:
		loggingDropped.Add(1)
	}
}

// Flush waits until every event queued before the call has been added to the
// log. Flush can block and must not be called from inside a memory access.
func (l *Logging) Flush() {
	done := make(chan struct{})
	loggingQueue <- logRequest{flush: done}
	<-done
}

// Dropped returns the number of events, across all Logging sinks, that were
// dropped because the queue was full.
func (l *Logging) Dropped() uint64 {
	return loggingDropped.Load()
}

// Channel is a Sink that forwards events to a buffered channel. If the channel
// is full the event is dropped and the drop is counted.
type Channel struct {
	events  chan Event
	dropped atomic.Uint64
}

// NewChannel is the preferred method of initialisation for the Channel type.
func NewChannel(size int) *Channel {
	return &Channel{
		events: make(chan Event, size),
	}
}

// Diagnostic implements the Sink interface.
func (c *Channel) Diagnostic(ev Event) {
	select {
	case c.events <- ev:
	default:
		c.dropped.Add(1)
	}
}

// Events returns the receive side of the channel.
func (c *Channel) Events() <-chan Event {
	return c.events
}

// Dropped returns the number of events that could not be queued.
func (c *Channel) Dropped() uint64 {
	return c.dropped.Load()
}
