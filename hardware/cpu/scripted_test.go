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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/test"
)

type clock struct {
	now uint64
}

func (c *clock) Now() uint64 {
	return c.now
}

type access struct {
	cycle   uint64
	address uint16
	data    uint8
}

type memory struct {
	clk    *clock
	data   [0x10000]uint8
	writes []access
}

func (m *memory) Read(address uint16) uint8 {
	return m.data[address]
}

func (m *memory) Write(address uint16, data uint8) {
	m.data[address] = data
	m.writes = append(m.writes, access{cycle: m.clk.now, address: address, data: data})
}

type pen struct {
	low     bool
	changes int
}

func (p *pen) SetLightPenState(low bool) {
	p.low = low
	p.changes++
}

func newScripted(t *testing.T, script string) (*cpu.Scripted, *clock, *memory, *pen) {
	t.Helper()
	events, err := cpu.ParseScript(strings.NewReader(script))
	test.DemandSuccess(t, err)

	clk := &clock{}
	mem := &memory{clk: clk}
	p := &pen{}
	return cpu.NewScripted(clk, mem, p, events), clk, mem, p
}

// run the CPU for the number of cycles. ba is called with the clock value for
// every cycle.
func run(s *cpu.Scripted, clk *clock, n int, ba func(uint64) bool) {
	for range n {
		clk.now++
		s.Cycle(ba(clk.now), false)
	}
}

func never(_ uint64) bool {
	return false
}

func TestOneAccessPerCycle(t *testing.T) {
	s, clk, mem, _ := newScripted(t, `
2 w $1000 1
2 w $1001 2
2 r $1000
5 r $1001`)
	mem.data[0x1000] = 0xff

	run(s, clk, 10, never)
	test.DemandSuccess(t, s.Finished())

	test.ExpectEquality(t, len(mem.writes), 2)
	test.ExpectEquality(t, mem.writes[0].cycle, uint64(2))
	test.ExpectEquality(t, mem.writes[1].cycle, uint64(3))

	test.ExpectEquality(t, s.Events[2].DoneAt, uint64(4))
	test.ExpectEquality(t, s.Events[2].Result, uint8(1))
	test.ExpectEquality(t, s.Events[3].DoneAt, uint64(5))
	test.ExpectEquality(t, s.Events[3].Result, uint8(2))
	test.ExpectEquality(t, s.Stalls, uint64(0))
	test.ExpectEquality(t, s.Cycles, uint64(10))
}

func TestReadStall(t *testing.T) {
	s, clk, mem, _ := newScripted(t, "3 r $2000")
	mem.data[0x2000] = 0x55

	// BA is low for cycles 2 to 6
	run(s, clk, 10, func(c uint64) bool {
		return c >= 2 && c <= 6
	})

	test.DemandSuccess(t, s.Finished())
	test.ExpectEquality(t, s.Events[0].DoneAt, uint64(7))
	test.ExpectEquality(t, s.Events[0].Stalled, 4)
	test.ExpectEquality(t, s.Events[0].Result, uint8(0x55))
	test.ExpectEquality(t, s.Events[0].String(), "3 r $2000 = $55 @ 7 (stalled 4)")
}

func TestWriteWindow(t *testing.T) {
	s, clk, mem, _ := newScripted(t, `
1 w $3000 1
1 w $3001 2
1 w $3002 3
1 w $3003 4`)

	// BA is low from the first cycle. the first three writes are allowed
	run(s, clk, 10, func(c uint64) bool {
		return c <= 5
	})

	test.DemandSuccess(t, s.Finished())
	test.DemandEquality(t, len(mem.writes), 4)
	test.ExpectEquality(t, mem.writes[0].cycle, uint64(1))
	test.ExpectEquality(t, mem.writes[1].cycle, uint64(2))
	test.ExpectEquality(t, mem.writes[2].cycle, uint64(3))
	test.ExpectEquality(t, mem.writes[3].cycle, uint64(6))
	test.ExpectEquality(t, s.Events[3].Stalled, 2)
	test.ExpectEquality(t, s.Stalls, uint64(2))
}

func TestWriteWindowAfterRead(t *testing.T) {
	s, clk, mem, _ := newScripted(t, `
1 w $3000 1
1 r $3000
1 w $3001 2`)

	// BA goes low on the second cycle. the read is stalled and the write
	// behind it is not performed even though it would be inside the window
	run(s, clk, 8, func(c uint64) bool {
		return c >= 2 && c <= 4
	})

	test.DemandSuccess(t, s.Finished())
	test.ExpectEquality(t, s.Events[1].DoneAt, uint64(5))
	test.ExpectEquality(t, mem.writes[1].cycle, uint64(6))
}

func TestPenEvents(t *testing.T) {
	s, clk, mem, p := newScripted(t, `
2 pen 1
2 w $1000 1
4 pen 0`)

	run(s, clk, 5, never)

	test.DemandSuccess(t, s.Finished())
	test.ExpectEquality(t, p.changes, 2)
	test.ExpectEquality(t, p.low, false)

	// the pen change does not use the bus
	test.ExpectEquality(t, s.Events[0].DoneAt, uint64(2))
	test.ExpectEquality(t, mem.writes[0].cycle, uint64(2))
	test.ExpectEquality(t, s.Events[2].DoneAt, uint64(4))
}

func TestIRQEdges(t *testing.T) {
	s, _, _, _ := newScripted(t, "")
	for _, irq := range []bool{false, true, true, false, true, false, false, true} {
		s.Cycle(false, irq)
	}
	test.ExpectEquality(t, s.IRQEdges, 3)
	test.ExpectSuccess(t, s.Finished())
}

func TestScriptedReset(t *testing.T) {
	s, clk, mem, _ := newScripted(t, "1 w $1000 1\n1 r $1000")
	run(s, clk, 3, never)
	test.DemandSuccess(t, s.Finished())
	test.ExpectEquality(t, s.Events[0].DoneAt, uint64(1))
	test.ExpectEquality(t, s.Events[1].DoneAt, uint64(2))

	s.Reset()
	test.ExpectFailure(t, s.Finished())
	test.ExpectEquality(t, s.Events[1].Done, false)
	test.ExpectEquality(t, s.Events[1].DoneAt, uint64(0))
	test.ExpectEquality(t, s.Cycles, uint64(0))

	// the replay must reproduce the timing of the first run when the clock
	// is rewound with it
	clk.now = 0
	mem.data[0x1000] = 0
	mem.writes = mem.writes[:0]
	run(s, clk, 2, never)
	test.DemandSuccess(t, s.Finished())
	test.ExpectEquality(t, s.Events[0].DoneAt, uint64(1))
	test.ExpectEquality(t, s.Events[1].Result, uint8(1))
	test.ExpectEquality(t, s.Events[1].DoneAt, uint64(2))
	test.DemandEquality(t, len(mem.writes), 1)
	test.ExpectEquality(t, mem.writes[0].cycle, uint64(1))
}

func TestScriptedResetClockRunning(t *testing.T) {
	s, clk, _, _ := newScripted(t, "1 w $1000 1\n1 r $1000")
	run(s, clk, 3, never)
	test.DemandSuccess(t, s.Finished())

	// event cycles are clock cycles. without a rewind every event is already
	// due and they complete one per cycle
	s.Reset()
	run(s, clk, 2, never)
	test.DemandSuccess(t, s.Finished())
	test.ExpectEquality(t, s.Events[0].DoneAt, uint64(4))
	test.ExpectEquality(t, s.Events[1].DoneAt, uint64(5))
}

func TestIdle(t *testing.T) {
	var c cpu.Idle
	c.Cycle(true, false)
	c.Cycle(false, true)
	test.ExpectEquality(t, c.Cycles, uint64(2))
	test.ExpectEquality(t, c.Stalls, uint64(1))
	c.Reset()
	test.ExpectEquality(t, c.Cycles, uint64(0))
}
