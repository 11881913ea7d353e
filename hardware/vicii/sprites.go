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

// the Y coordinate register of the sprite
func (vic *VICII) spriteY(s int) uint8 {
	return vic.Registers[int(addresses.M0Y)+s*2]
}

func (vic *VICII) checkSpriteDMA() {
	enable := vic.Registers[addresses.MXE]
	y := uint8(vic.RasterLine)

	for s := range NumSprites {
		b := uint8(1) << s
		if enable&b == b && vic.spriteY(s) == y && vic.SpriteDMA&b == 0 {
			vic.SpriteDMA |= b
			vic.Sprites[s].MCBase = 0
			vic.Sprites[s].ExpFlop = true
		}
	}
}

func (vic *VICII) checkSpriteExpansion() {
	exp := vic.Registers[addresses.MXYE]
	for s := range NumSprites {
		b := uint8(1) << s
		if vic.SpriteDMA&b == b && exp&b == b {
			vic.Sprites[s].ExpFlop = !vic.Sprites[s].ExpFlop
		}
	}
}

func (vic *VICII) updateMCBase() {
	for s := range NumSprites {
		spr := &vic.Sprites[s]
		if spr.ExpFlop {
			spr.MCBase = spr.MC
			if spr.MCBase == 63 {
				vic.SpriteDMA &^= 1 << s
			}
		}
	}
}

// display eligibility is kept for as long as DMA is active.
func (vic *VICII) checkSpriteDisplay() {
	enable := vic.Registers[addresses.MXE]
	y := uint8(vic.RasterLine)

	for s := range NumSprites {
		b := uint8(1) << s
		vic.Sprites[s].MC = vic.Sprites[s].MCBase

		if vic.SpriteDMA&b == b {
			if enable&b == b && vic.spriteY(s) == y {
				vic.SpriteDisplayBits |= b
			}
		} else {
			vic.SpriteDisplayBits &^= b
		}
	}
}

// writeMXYE handles the side-effects of writing to the Y expansion register.
// Clearing the expansion bit while the flip-flop is clear sets the
// flip-flop. If this happens in the cycle before MCBASE is updated then MC is
// crunched.
func (vic *VICII) writeMXYE(data uint8, crunch bool) {
	for s := range NumSprites {
		b := uint8(1) << s
		spr := &vic.Sprites[s]
		if data&b == 0 && !spr.ExpFlop {
			if crunch {
				spr.MC = (0x2a & (spr.MCBase & spr.MC)) | (0x15 & (spr.MCBase | spr.MC))
			}
			spr.ExpFlop = true
		}
	}
	vic.Registers[addresses.MXYE] = data
}

// spriteLateBA returns true if sprite zero DMA will be switched on in the
// next cycle. BA for the sprite is pulled low late and a DMA device checking
// for BA in this cycle will not see it.
func (vic *VICII) spriteLateBA() bool {
	return vic.desc.Is(cycles.SpriteLateBA) &&
		vic.Registers[addresses.MXE]&0x01 == 0x01 &&
		vic.spriteY(0) == uint8(vic.RasterLine) &&
		vic.SpriteDMA&0x01 == 0x00
}
