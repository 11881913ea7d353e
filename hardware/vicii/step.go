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

// the value the prefetch counter is reset to when BA is high. it is one more
// than the number of cycles BA must be low before phi2 can be used because it
// is decremented in the first cycle BA is low
const prefetchReset = 3 + 1

// Step advances the VIC-II by one cycle. Returns true if BA is low.
//
// Step must only be called on a configured VIC-II.
func (vic *VICII) Step() bool {
	if vic.table == nil {
		panic("vicii: step called before configuration")
	}
	vic.owner.Claim()

	// phi2 sprite fetches belong to the previous cycle
	vic.fetchPhi2(vic.desc)

	vic.RasterCycle++
	if vic.RasterCycle >= vic.table.CyclesPerLine {
		vic.RasterCycle = 0
	}
	vic.desc = vic.table.Descriptor(vic.RasterCycle)
	d := vic.desc

	vic.LastReadPhi1 = vic.fetchPhi1(d)

	vic.checkHBorder(d)
	vic.drawCycle(d)

	if d.Is(cycles.LineStart) {
		vic.endOfLine()
		vic.startOfLine()
	}

	if vic.StartOfFrame {
		if d.Is(cycles.FrameStart) {
			vic.startOfFrame()
		}
	} else if d.Is(cycles.LineStart) {
		vic.RasterLine++
	}

	if vic.RasterLine == vic.RasterIRQLine {
		if !vic.RasterIRQTriggered {
			vic.setIRQ(IRQRaster)
			vic.RasterIRQTriggered = true
		}
	} else {
		vic.RasterIRQTriggered = false
	}

	vic.checkVBorderTop()
	vic.checkVBorderBottom()
	if d.Is(cycles.LineStart) {
		vic.VBorder = vic.SetVBorder
	}

	if d.Is(cycles.UpdateMCBase) {
		vic.updateMCBase()
	}
	if d.Is(cycles.CheckSpriteDMA) {
		vic.checkSpriteDMA()
	}
	if d.Is(cycles.CheckSpriteExpansion) {
		vic.checkSpriteExpansion()
	}
	if d.Is(cycles.CheckSpriteDisplay) {
		vic.checkSpriteDisplay()
	}

	vspMayCrash := !vic.BadLine && vic.IdleState

	// display enable is sampled on every cycle of the first DMA line
	if vic.RasterLine == vic.Config.DMA.Top && !vic.AllowBadLines {
		vic.AllowBadLines = vic.Registers[addresses.CR1]&cr1DEN == cr1DEN
	}

	if vic.AllowBadLines {
		vic.checkBadLine()
	}

	if vic.BadLine && vspMayCrash && d.Is(cycles.VSPWindow) {
		vic.vsp.handle(vic)
	}
	vic.vsp.ysmoothOld = vic.YSmooth

	if d.Is(cycles.UpdateVC) {
		vic.VC = vic.VCBase
		vic.VMLI = 0
		if vic.BadLine {
			vic.RC = 0
		}
	}

	if d.Is(cycles.UpdateRC) {
		if vic.RC == 7 {
			vic.IdleState = true
			vic.VCBase = vic.VC
		}
		if !vic.IdleState || vic.BadLine {
			vic.RC = (vic.RC + 1) & 0x07
			vic.IdleState = false
		}
	}

	ba := vic.BadLine && d.Is(cycles.MatrixBA)
	ba = ba || vic.SpriteDMA&d.SpriteBA != 0

	if ba {
		if vic.PrefetchCycles > 0 {
			vic.PrefetchCycles--
		}
	} else {
		vic.PrefetchCycles = prefetchReset
	}

	if vic.BadLine && d.Is(cycles.MatrixFetch) {
		vic.fetchMatrix()
	}

	// the bus floats unless it is driven by a register access before the
	// next cycle
	vic.LastBusPhi2 = 0xff

	vic.Reg11Delay = vic.Registers[addresses.CR1]

	if vic.LightPen.Scheduled && vic.LightPen.TriggerCycle == vic.clk.Now() {
		vic.LightPen.Scheduled = false
		vic.triggerLightPen(false)
	}

	vic.BA = ba
	for _, arb := range vic.arbiters {
		arb.flag.Update(arb.mask, ba)
	}

	return ba
}

// checkBadLine should only be called when bad lines are allowed.
func (vic *VICII) checkBadLine() {
	if uint8(vic.RasterLine)&0x07 == vic.YSmooth {
		vic.BadLine = true
		vic.IdleState = false
	} else {
		vic.BadLine = false
	}
}

func (vic *VICII) endOfLine() {
	vic.line.Line = vic.RasterLine
	vic.line.SpriteDisplay = vic.SpriteDisplayBits
	for i := range vic.Sprites {
		vic.line.Sprites[i] = vic.Sprites[i].Data
	}
	vic.line.Registers = vic.Registers

	if vic.renderer != nil {
		vic.renderer.EndLine(&vic.line)
	}
	vic.line = LineState{}

	if vic.RasterLine == vic.Config.ScreenHeight-1 {
		vic.StartOfFrame = true
	}
}

// called with the raster line still set to the line that has just ended.
func (vic *VICII) startOfLine() {
	if vic.RasterLine == vic.Config.DMA.Top && !vic.AllowBadLines && vic.Registers[addresses.CR1]&cr1DEN == cr1DEN {
		vic.AllowBadLines = true
	}

	if vic.RasterLine == vic.Config.DMA.Bottom {
		vic.AllowBadLines = false
	}

	vic.BadLine = false
}

func (vic *VICII) startOfFrame() {
	vic.StartOfFrame = false
	vic.Frame++
	vic.RasterLine = 0
	vic.RefreshCounter = 0xff
	vic.AllowBadLines = false
	vic.VCBase = 0
	vic.VC = 0
	vic.LightPen.Triggered = false

	if vic.LightPen.State {
		if vic.Model.ColorLatency {
			vic.LightPen.XExtraBits = 2
		} else {
			vic.LightPen.XExtraBits = 1
		}
		vic.triggerLightPen(true)
	}
}
