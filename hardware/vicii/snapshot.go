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

// Plumb a previously taken copy of the chip state, as returned by State().
// The configuration of the VIC-II must be the same as when the copy was taken.
//
// The state of the line being handed to the renderer is not part of the
// ChipState and will be incomplete until the end of the next line.
func (vic *VICII) Plumb(state ChipState) {
	vic.ChipState = state
	vic.desc = vic.table.Descriptor(vic.RasterCycle)
	vic.line = LineState{Line: vic.RasterLine}
	vic.vsp.ysmoothOld = vic.YSmooth
	for _, arb := range vic.arbiters {
		arb.Reset()
	}
}
