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

package vicii_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/assert"
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/vicii"
	"github.com/jetsetilly/gopher64/test"
)

type peer struct {
	arb      *vicii.Arbiter
	detached bool
}

func (p *peer) AttachArbiter(arb *vicii.Arbiter) {
	p.arb = arb
}

func (p *peer) DetachArbiter() {
	p.arb = nil
	p.detached = true
}

func newPeer(t *testing.T, m *machine, flag *bus.BALow) *peer {
	t.Helper()
	p := &peer{}
	test.DemandSuccess(t, m.vic.RegisterDMAPeer(p, flag, bus.BALowVICII))
	test.DemandSuccess(t, p.arb != nil)
	return p
}

func TestRegistration(t *testing.T) {
	m := newMachine(t)
	p := newPeer(t, m, nil)

	if !assert.Enabled {
		err := m.vic.RegisterDMAPeer(&peer{}, nil, bus.BALowVICII)
		test.ExpectSuccess(t, curated.Is(err, vicii.PeerAlreadyRegistered))
	}

	err := m.vic.UnregisterDMAPeer(&peer{})
	test.ExpectSuccess(t, curated.Is(err, vicii.PeerNotRegistered))

	test.ExpectSuccess(t, m.vic.UnregisterDMAPeer(p))
	test.ExpectSuccess(t, p.detached)

	// a new peer can be registered once the old one has gone
	newPeer(t, m, nil)
}

func TestSharedFlag(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x1b)

	// the DMA bit is not owned by the VIC-II and must be left alone
	flag := bus.BALowDMA
	p := newPeer(t, m, &flag)

	m.advance(t, 0x33, 11)
	test.ExpectFailure(t, flag.Held(bus.BALowVICII))
	test.ExpectFailure(t, p.arb.Check())

	m.step()
	test.ExpectSuccess(t, flag.Held(bus.BALowVICII))
	test.ExpectSuccess(t, flag.Held(bus.BALowDMA))
	test.ExpectSuccess(t, p.arb.Check())

	test.ExpectSuccess(t, m.vic.UnregisterDMAPeer(p))
	test.ExpectEquality(t, flag, bus.BALowDMA)
}

func TestWriteLeadIn(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x1b)
	p := newPeer(t, m, nil)

	m.advance(t, 0x33, 11)
	start := m.clk.Now()

	// the first write cycle with BA low is allowed
	p.arb.WriteCycle()
	test.ExpectEquality(t, m.vic.RasterCycle, 11)
	test.ExpectSuccess(t, p.arb.Check())
	test.ExpectFailure(t, p.arb.LastCycle())
	test.ExpectEquality(t, p.arb.Steals, uint64(0))

	// the second is stolen and the bus is given back at the end of the
	// video matrix fetches
	p.arb.WriteCycle()
	test.ExpectSuccess(t, p.arb.LastCycle())
	test.ExpectEquality(t, p.arb.Steals, uint64(1))
	test.ExpectEquality(t, p.arb.StolenTotal, uint64(42))
	test.ExpectEquality(t, m.vic.RasterCycle, 54)
	test.ExpectFailure(t, p.arb.Check())
	test.ExpectEquality(t, m.clk.Now()-start, uint64(44))

	p.arb.WriteCycle()
	test.ExpectFailure(t, p.arb.LastCycle())
	test.ExpectEquality(t, p.arb.Steals, uint64(1))
}

func TestReadSteal(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x1b)
	p := newPeer(t, m, nil)

	m.advance(t, 0x33, 11)

	p.arb.ReadCycle()
	test.ExpectEquality(t, p.arb.Steals, uint64(1))
	test.ExpectEquality(t, p.arb.StolenTotal, uint64(43))
	test.ExpectEquality(t, m.vic.RasterCycle, 54)
	test.ExpectFailure(t, p.arb.Check())

	// no steal when BA is high
	p.arb.ReadCycle()
	test.ExpectEquality(t, p.arb.Steals, uint64(1))
}

func TestSpriteLateBA(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x15, 0x01)
	m.vic.Write(0x01, 0x40)
	p := newPeer(t, m, nil)

	m.advance(t, 0x40, 53)
	test.ExpectFailure(t, p.arb.Advance())
	test.ExpectEquality(t, m.vic.RasterCycle, 53)

	// BA is low at the end of the cycle but the DMA peer can still use it
	test.ExpectFailure(t, p.arb.Advance())
	test.ExpectSuccess(t, m.vic.BA)
	test.ExpectSuccess(t, p.arb.Check())

	test.ExpectSuccess(t, p.arb.Advance())
}

func TestArbiterReset(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x1b)
	p := newPeer(t, m, nil)

	m.advance(t, 0x33, 11)
	p.arb.WriteCycle()

	// the lead-in count does not survive a reset
	m.vic.Reset()
	m.vic.Write(0x11, 0x1b)
	m.advance(t, 0x33, 12)
	p.arb.WriteCycle()
	test.ExpectEquality(t, p.arb.Steals, uint64(0))
	test.ExpectFailure(t, p.arb.LastCycle())
}
