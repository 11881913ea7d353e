// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
)

// the number of cycles a write can be performed after BA has been pulled low.
// the CPU only stops on a read cycle and can perform at most three writes in a
// row
const writeWindow = 3

// Scripted is an implementation of the Core interface that performs the bus
// accesses in a list of events.
type Scripted struct {
	clk Clock
	mem bus.CPUBus
	pen LightPen

	Events []Event
	next   int

	// the number of consecutive cycles BA has been low
	baLow int

	irq bool

	// the number of times the IRQ line has been asserted
	IRQEdges int

	Cycles uint64

	// the number of cycles in which a due access could not be performed
	Stalls uint64
}

// NewScripted is the preferred method of initialisation for the Scripted
// type. The pen argument can be nil, in which case Pen events have no effect.
func NewScripted(clk Clock, mem bus.CPUBus, pen LightPen, events []Event) *Scripted {
	return &Scripted{
		clk:    clk,
		mem:    mem,
		pen:    pen,
		Events: events,
	}
}

// Reset implements the Core interface. Events are made ready to be performed
// again.
//
// Event cycles are clock cycles so the script only replays with its original
// timing if the clock is also reset.
func (s *Scripted) Reset() {
	for i := range s.Events {
		s.Events[i].Done = false
		s.Events[i].DoneAt = 0
		s.Events[i].Result = 0
		s.Events[i].Stalled = 0
	}
	s.next = 0
	s.baLow = 0
	s.irq = false
	s.IRQEdges = 0
	s.Cycles = 0
	s.Stalls = 0
}

// Finished returns true if every event has been performed.
func (s *Scripted) Finished() bool {
	return s.next >= len(s.Events)
}

// Cycle implements the Core interface.
func (s *Scripted) Cycle(ba bool, irq bool) {
	s.Cycles++

	if irq && !s.irq {
		s.IRQEdges++
	}
	s.irq = irq

	if ba {
		s.baLow++
	} else {
		s.baLow = 0
	}

	now := s.clk.Now()

	for s.next < len(s.Events) {
		e := &s.Events[s.next]
		if e.Cycle > now {
			return
		}

		switch e.Access {
		case Pen:
			if s.pen != nil {
				s.pen.SetLightPenState(e.Value != 0)
			}
			s.done(e, now)
			continue

		case Read:
			if ba {
				e.Stalled++
				s.Stalls++
				return
			}
			e.Result = s.mem.Read(e.Address)

		case Write:
			if s.baLow > writeWindow {
				e.Stalled++
				s.Stalls++
				return
			}
			s.mem.Write(e.Address, e.Value)
		}

		s.done(e, now)
		return
	}
}

func (s *Scripted) done(e *Event, now uint64) {
	e.Done = true
	e.DoneAt = now
	s.next++
}
