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

package vicii

import (
	"github.com/jetsetilly/gopher64/assert"
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/logger"
)

// Sentinal errors returned by RegisterDMAPeer() and UnregisterDMAPeer().
const (
	PeerAlreadyRegistered = "vicii: a DMA peer is already registered"
	PeerNotRegistered     = "vicii: DMA peer is not registered"
)

// the number of DMA peers that can be registered at once
const maxPeers = 1

// a write by a DMA peer can continue for this many cycles after BA has been
// pulled low. the cycle after is stolen
const writeLeadIn = 1

// DMAPeer is implemented by devices other than the CPU that can take the bus.
type DMAPeer interface {
	// AttachArbiter is called when the peer is registered
	AttachArbiter(arb *Arbiter)

	// DetachArbiter is called when the peer is unregistered. The arbiter
	// must not be used after this call
	DetachArbiter()
}

// Arbiter is given to a registered DMA peer. It is the only means by which
// the peer advances the clock while it has the bus.
type Arbiter struct {
	vic  *VICII
	peer DMAPeer

	// the shared flag is written by the VIC-II every cycle. the peer only
	// reads it
	flag *bus.BALow
	mask bus.BALow

	// the number of consecutive cycles BA has been seen low by a write
	delay int

	// the most recent write cycle was stolen
	lastCycle bool

	// statistics
	Steals      uint64
	StolenTotal uint64
}

// RegisterDMAPeer registers a device with the VIC-II. The flag is updated
// with the state of BA, using the bits in the mask, every cycle. The flag
// argument can be nil in which case the Arbiter uses a private flag.
//
// Only one peer can be registered at a time. It is a programming error to
// register a second peer.
func (vic *VICII) RegisterDMAPeer(peer DMAPeer, flag *bus.BALow, mask bus.BALow) error {
	assert.Check(len(vic.arbiters) < maxPeers, "too many DMA peers")
	if len(vic.arbiters) >= maxPeers {
		return curated.Errorf(PeerAlreadyRegistered)
	}

	if flag == nil {
		flag = new(bus.BALow)
	}

	arb := &Arbiter{
		vic:  vic,
		peer: peer,
		flag: flag,
		mask: mask,
	}
	arb.flag.Update(arb.mask, vic.BA)

	vic.arbiters = append(vic.arbiters, arb)
	peer.AttachArbiter(arb)

	logger.Logf(vic.env, "vicii", "registered DMA peer (mask %02x)", uint8(mask))

	return nil
}

// UnregisterDMAPeer removes a previously registered device. The bits in the
// shared flag are cleared.
func (vic *VICII) UnregisterDMAPeer(peer DMAPeer) error {
	for i, arb := range vic.arbiters {
		if arb.peer == peer {
			arb.flag.Update(arb.mask, false)
			vic.arbiters = append(vic.arbiters[:i], vic.arbiters[i+1:]...)
			peer.DetachArbiter()
			return nil
		}
	}
	return curated.Errorf(PeerNotRegistered)
}

// Reset the handshake state of the arbiter.
func (arb *Arbiter) Reset() {
	arb.delay = 0
	arb.lastCycle = false
}

// Check returns true if the VIC-II is holding BA low.
func (arb *Arbiter) Check() bool {
	return arb.flag.Held(arb.mask)
}

// Steal advances the clock and the VIC-II until the VIC-II releases the bus.
func (arb *Arbiter) Steal() {
	arb.Steals++
	for {
		arb.vic.clk.Tick()
		arb.StolenTotal++
		if !arb.vic.Step() {
			return
		}
	}
}

// Advance the clock and the VIC-II by one cycle on behalf of the DMA peer.
// Returns true if BA is low at the end of the cycle.
//
// BA for sprite zero is pulled low later than for other DMA and a DMA peer
// can use the cycle in which it is first pulled low. The CPU cannot.
func (arb *Arbiter) Advance() bool {
	late := arb.vic.spriteLateBA()
	arb.vic.clk.Tick()
	return arb.vic.Step() && !late
}

// ReadCycle should be called by the DMA peer after every read access. The bus
// is given up immediately if BA is low.
func (arb *Arbiter) ReadCycle() {
	if arb.Advance() {
		arb.Steal()
	}
}

// WriteCycle should be called by the DMA peer after every write access. Write
// accesses can continue for a short time after BA has been pulled low.
func (arb *Arbiter) WriteCycle() {
	if arb.Advance() {
		arb.delay++
	} else {
		arb.delay = 0
	}

	arb.lastCycle = arb.delay > writeLeadIn
	if arb.lastCycle {
		arb.Steal()
		arb.delay = 0
	}
}

// LastCycle returns true if the most recent write cycle ended with the bus
// being stolen.
func (arb *Arbiter) LastCycle() bool {
	return arb.lastCycle
}
