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

package addresses

// DataMasks are the bits driven by the VIC-II for each register in the
// mirror. Bits not in the mask always read as one.
var DataMasks = [VICIIMirror]uint8{
	// sprite positions
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,

	0xff, // MSBX
	0xff, // CR1
	0xff, // RASTER
	0xff, // LPX
	0xff, // LPY
	0xff, // MXE
	0x3f, // CR2
	0xff, // MXYE
	0xfe, // VMCB
	0x8f, // IRQ
	0x0f, // IRQEN
	0xff, // MXDP
	0xff, // MXMC
	0xff, // MXXE
	0xff, // MXM
	0xff, // MXD

	// colour registers
	0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f,
	0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f,

	// unconnected
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00,
}
