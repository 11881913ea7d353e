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

// the display window selected by the RSEL bit.
func (vic *VICII) displayWindow() Window {
	if vic.Registers[addresses.CR1]&cr1RSEL == cr1RSEL {
		return vic.Config.Rows25
	}
	return vic.Config.Rows24
}

func (vic *VICII) checkVBorderTop() {
	if vic.RasterLine == vic.displayWindow().Top && vic.Registers[addresses.CR1]&cr1DEN == cr1DEN {
		vic.VBorder = false
		vic.SetVBorder = false
	}
}

func (vic *VICII) checkVBorderBottom() {
	if vic.RasterLine == vic.displayWindow().Bottom {
		vic.SetVBorder = true
	}
}

func (vic *VICII) checkHBorder(d *cycles.Descriptor) {
	csel := vic.Registers[addresses.CR2]&cr2CSEL == cr2CSEL

	if (csel && d.Is(cycles.BorderLeft40)) || (!csel && d.Is(cycles.BorderLeft38)) {
		vic.checkVBorderBottom()
		vic.VBorder = vic.SetVBorder
		if !vic.VBorder {
			vic.MainBorder = false
		}
	}

	if (csel && d.Is(cycles.BorderRight40)) || (!csel && d.Is(cycles.BorderRight38)) {
		vic.MainBorder = true
	}
}
