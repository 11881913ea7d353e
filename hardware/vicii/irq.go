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

// Interrupt sources. The values are the bits in the interrupt status and
// mask registers.
const (
	IRQRaster           = uint8(0x01)
	IRQSpriteBackground = uint8(0x02)
	IRQSpriteSprite     = uint8(0x04)
	IRQLightPen         = uint8(0x08)
)

// the bit in the interrupt status register that is set when any enabled
// interrupt is pending.
const irqAny = uint8(0x80)

func (vic *VICII) setIRQ(source uint8) {
	vic.IRQStatus |= source
}

// IRQ returns the state of the IRQ line. True if the line is asserted.
func (vic *VICII) IRQ() bool {
	return vic.IRQStatus&vic.IRQMask&0x0f != 0
}

// ReportCollisions is called by the renderer when sprite collisions are
// detected. An interrupt is raised for a collision type only if there were no
// collisions of that type waiting to be read.
func (vic *VICII) ReportCollisions(spriteSprite uint8, spriteBackground uint8) {
	if spriteSprite != 0 {
		if vic.SpriteSpriteCollisions == 0 {
			vic.setIRQ(IRQSpriteSprite)
		}
		vic.SpriteSpriteCollisions |= spriteSprite
	}

	if spriteBackground != 0 {
		if vic.SpriteBackgroundCollisions == 0 {
			vic.setIRQ(IRQSpriteBackground)
		}
		vic.SpriteBackgroundCollisions |= spriteBackground
	}
}

// the raster interrupt can fire when the compare line is changed to the
// current line.
func (vic *VICII) setRasterIRQLine(line int) {
	vic.RasterIRQLine = line
	if vic.RasterLine == vic.RasterIRQLine {
		if !vic.RasterIRQTriggered {
			vic.setIRQ(IRQRaster)
			vic.RasterIRQTriggered = true
		}
	}
}
