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

// SetLightPenState sets the state of the light pen input. True indicates that
// the line is held low. The latch is triggered on the transition to low.
func (vic *VICII) SetLightPenState(low bool) {
	if low && !vic.LightPen.State {
		vic.LightPen.State = true
		vic.triggerLightPen(false)
		return
	}
	vic.LightPen.State = low
}

// ScheduleLightPen arranges for the light pen latch to be triggered at the end
// of the cycle that ends with the clock at the specified value.
func (vic *VICII) ScheduleLightPen(cycle uint64) {
	vic.LightPen.Scheduled = true
	vic.LightPen.TriggerCycle = cycle
}

func (vic *VICII) triggerLightPen(retrigger bool) {
	if vic.LightPen.Triggered {
		return
	}
	vic.LightPen.Triggered = true

	// the latch cannot be triggered on the last line of the frame except in
	// the first cycle
	if vic.RasterLine == vic.Config.ScreenHeight-1 && vic.RasterCycle > 0 {
		return
	}

	x := vic.desc.XPos
	if retrigger {
		x += vic.LightPen.XExtraBits
		vic.LightPen.XExtraBits = 0
	}

	vic.LightPen.X = uint8(x >> 1)
	vic.LightPen.Y = uint8(vic.RasterLine)

	vic.setIRQ(IRQLightPen)
}
