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

package cycles

import (
	"fmt"
	"strings"
)

// Fetch is the memory access made by the VIC-II in phi1 of a cycle.
type Fetch int

// List of fetch types. Where a cycle is eligible for more than one fetch
// type, the type with the lowest value wins.
const (
	FetchGraphics Fetch = iota
	FetchSpritePointer
	FetchSpriteData
	FetchRefresh
	FetchIdle
)

func (f Fetch) String() string {
	switch f {
	case FetchGraphics:
		return "g"
	case FetchSpritePointer:
		return "p"
	case FetchSpriteData:
		return "s"
	case FetchRefresh:
		return "r"
	case FetchIdle:
		return "i"
	}
	return "?"
}

// Event is a bit field of the events that happen in a cycle.
type Event uint32

// List of events.
const (
	// the line has ended. a new line begins in the same cycle
	LineStart Event = 1 << iota

	// the start of a new frame happens in this cycle if it has been armed by
	// the end of the last line in the frame
	FrameStart

	// VC is loaded from VCBASE
	UpdateVC

	// RC is advanced or the chip enters the idle state
	UpdateRC

	// sprite MCBASE is loaded from MC
	UpdateMCBase

	// writing to the sprite Y expansion register crunches MC
	SpriteCrunch

	// sprite DMA is switched on for sprites with a matching Y coordinate
	CheckSpriteDMA

	// the sprite expansion flip-flop is toggled
	CheckSpriteExpansion

	// sprite display eligibility is decided and MC is loaded from MCBASE
	CheckSpriteDisplay

	// BA is pulled low on a bad line
	MatrixBA

	// the character and colour matrix is read in phi2 on a bad line
	MatrixFetch

	// the left edge of the main border in 40 column and 38 column modes
	BorderLeft40
	BorderLeft38

	// the right edge of the main border in 38 column and 40 column modes
	BorderRight38
	BorderRight40

	// a write to the vertical scroll register on a bad line can crash the
	// data bus in this cycle
	VSPWindow

	// the cycle before sprite zero BA is pulled low. the state of BA in the
	// next cycle is not visible to DMA devices that check this cycle
	SpriteLateBA
)

var eventNames = []string{
	"LineStart",
	"FrameStart",
	"UpdateVC",
	"UpdateRC",
	"UpdateMCBase",
	"SpriteCrunch",
	"CheckSpriteDMA",
	"CheckSpriteExpansion",
	"CheckSpriteDisplay",
	"MatrixBA",
	"MatrixFetch",
	"BorderLeft40",
	"BorderLeft38",
	"BorderRight38",
	"BorderRight40",
	"VSPWindow",
	"SpriteLateBA",
}

func (e Event) String() string {
	s := strings.Builder{}
	for i, n := range eventNames {
		if e&(1<<i) != 0 {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(n)
		}
	}
	return s.String()
}

// Descriptor describes a single cycle.
type Descriptor struct {
	// zero based index of the cycle in the line
	Index int

	// the phi1 fetch. the Sprite field is only meaningful for the sprite
	// fetch types
	Fetch  Fetch
	Sprite int

	Events Event

	// the sprites that hold BA low if their DMA is active
	SpriteBA uint8

	// the X coordinate of the first pixel of the cycle
	XPos int
}

// Is returns true if all the events are set for the cycle.
func (d *Descriptor) Is(e Event) bool {
	return d.Events&e == e
}

// Cycle returns the one based cycle number.
func (d *Descriptor) Cycle() int {
	return d.Index + 1
}

func (d Descriptor) String() string {
	var f string
	switch d.Fetch {
	case FetchSpritePointer, FetchSpriteData:
		f = fmt.Sprintf("%s%d", d.Fetch, d.Sprite)
	default:
		f = d.Fetch.String()
	}
	return fmt.Sprintf("%02d %s x=%03x ba=%08b %s", d.Cycle(), f, d.XPos, d.SpriteBA, d.Events)
}
