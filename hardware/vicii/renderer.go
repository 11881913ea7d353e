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
	"github.com/jetsetilly/gopher64/hardware/memory/addresses"
	"github.com/jetsetilly/gopher64/hardware/vicii/cycles"
)

// CycleState is the state of the VIC-II given to the renderer every cycle.
type CycleState struct {
	Line  int
	Cycle int
	XPos  int

	// the phi1 access made in the cycle and the value read
	Fetch cycles.Fetch
	Data  uint8

	// graphics data in the idle state is drawn differently to graphics data
	// in the display state
	Idle bool

	// the video matrix and colour values for the graphics data. only
	// meaningful if Fetch is FetchGraphics and Idle is false
	Char  uint8
	Color uint8

	// the delayed control register 1 and the current control register 2.
	// together they decide the display mode
	CR1 uint8
	CR2 uint8

	MainBorder    bool
	VBorder       bool
	SpriteDisplay uint8
}

// LineState is the state of the VIC-II given to the renderer at the end of
// every line.
type LineState struct {
	Line int

	// true if the line was a bad line. Matrix and Color are only meaningful
	// if this is true
	BadLine bool
	Matrix  [40]uint8
	Color   [40]uint8

	// the graphics data fetched in the display state
	Graphics [40]uint8

	SpriteDisplay uint8
	Sprites       [NumSprites][3]uint8

	// the register values at the end of the line
	Registers [NumRegisters]uint8
}

// Renderer is implemented by types that can create an image from the state of
// the VIC-II. The state arguments must not be retained after the function
// returns.
type Renderer interface {
	DrawCycle(state *CycleState)
	EndLine(state *LineState)
}

func (vic *VICII) drawCycle(d *cycles.Descriptor) {
	if vic.renderer == nil {
		return
	}

	c := &vic.cycle
	c.Line = vic.RasterLine
	c.Cycle = d.Index
	c.XPos = d.XPos
	c.Fetch = d.Fetch
	c.Data = vic.LastReadPhi1
	c.Idle = vic.IdleState
	c.Char = 0
	c.Color = 0
	if d.Fetch == cycles.FetchGraphics && !vic.IdleState && vic.VMLI > 0 {
		// the graphics fetch has already advanced VMLI
		i := (vic.VMLI - 1) % len(vic.VBuf)
		c.Char = vic.VBuf[i]
		c.Color = vic.CBuf[i]
	}
	c.CR1 = vic.Reg11Delay
	c.CR2 = vic.Registers[addresses.CR2]
	c.MainBorder = vic.MainBorder
	c.VBorder = vic.VBorder
	c.SpriteDisplay = vic.SpriteDisplayBits

	vic.renderer.DrawCycle(c)
}
