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

package vicii_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/test"
)

func TestSpriteDMA(t *testing.T) {
	m := newMachine(t)

	// sprite pointer for sprite zero with the video matrix at $0000
	m.ram.data[0x03f8] = 0x80
	m.ram.data[0x2000] = 0xaa
	m.ram.data[0x2001] = 0xbb
	m.ram.data[0x2002] = 0xcc

	m.vic.Write(0x15, 0x01)
	m.vic.Write(0x01, 0x40)

	m.advance(t, 0x40, 54)
	test.ExpectEquality(t, m.vic.SpriteDMA, uint8(0x00))
	test.ExpectFailure(t, m.vic.BA)

	m.step()
	test.ExpectEquality(t, m.vic.SpriteDMA, uint8(0x01))
	test.ExpectEquality(t, m.vic.Sprites[0].MCBase, uint8(0))
	test.ExpectSuccess(t, m.vic.Sprites[0].ExpFlop)

	// BA is held for the sprite fetches
	test.ExpectSuccess(t, m.vic.BA)

	m.advance(t, 0x40, 58)
	test.ExpectEquality(t, m.vic.SpriteDisplayBits, uint8(0x01))

	m.advance(t, 0x40, 60)
	test.ExpectEquality(t, m.vic.Sprites[0].Pointer, uint8(0x80))
	test.ExpectEquality(t, m.vic.Sprites[0].Data, [3]uint8{0xaa, 0xbb, 0xcc})
	test.ExpectEquality(t, m.vic.Sprites[0].MC, uint8(3))
	test.ExpectFailure(t, m.vic.BA)

	m.advance(t, 0x41, 16)
	test.ExpectEquality(t, m.vic.Sprites[0].MCBase, uint8(3))

	m.advance(t, 0x55, 15)
	test.ExpectEquality(t, m.vic.SpriteDMA, uint8(0x01))
	test.ExpectEquality(t, m.vic.Sprites[0].MCBase, uint8(60))

	m.step()
	test.ExpectEquality(t, m.vic.SpriteDMA, uint8(0x00))
	test.ExpectEquality(t, m.vic.Sprites[0].MCBase, uint8(63))

	// display bit remains until the display check in the same line
	test.ExpectEquality(t, m.vic.SpriteDisplayBits, uint8(0x01))
	m.advance(t, 0x55, 58)
	test.ExpectEquality(t, m.vic.SpriteDisplayBits, uint8(0x00))
}

func TestSpriteExpansion(t *testing.T) {
	m := newMachine(t)

	m.vic.Write(0x15, 0x01)
	m.vic.Write(0x17, 0x01)
	m.vic.Write(0x01, 0x40)

	// a Y expanded sprite is displayed for twice the number of lines
	m.advance(t, 0x55, 16)
	test.ExpectEquality(t, m.vic.SpriteDMA, uint8(0x01))

	m.advance(t, 0x6a, 15)
	test.ExpectEquality(t, m.vic.SpriteDMA, uint8(0x01))
	m.step()
	test.ExpectEquality(t, m.vic.SpriteDMA, uint8(0x00))
	test.ExpectEquality(t, m.vic.Sprites[0].MCBase, uint8(63))
}

func TestSpriteCrunch(t *testing.T) {
	m := newMachine(t)

	m.vic.Write(0x15, 0x01)
	m.vic.Write(0x17, 0x01)
	m.vic.Write(0x01, 0x40)

	// on the line after DMA starts the expansion flip-flop is clear
	m.advance(t, 0x41, 15)
	test.ExpectFailure(t, m.vic.Sprites[0].ExpFlop)
	test.ExpectEquality(t, m.vic.Sprites[0].MCBase, uint8(0))
	test.ExpectEquality(t, m.vic.Sprites[0].MC, uint8(3))

	// clearing the expansion bit in the cycle before the MCBASE update
	// crunches MC
	m.vic.Write(0x17, 0x00)
	test.ExpectSuccess(t, m.vic.Sprites[0].ExpFlop)
	test.ExpectEquality(t, m.vic.Sprites[0].MC, uint8(1))

	m.step()
	test.ExpectEquality(t, m.vic.Sprites[0].MCBase, uint8(1))
}

func TestSpriteNoCrunch(t *testing.T) {
	m := newMachine(t)

	m.vic.Write(0x15, 0x01)
	m.vic.Write(0x17, 0x01)
	m.vic.Write(0x01, 0x40)

	// clearing the expansion bit outside of the crunch cycle sets the
	// flip-flop without touching MC
	m.advance(t, 0x41, 10)
	m.vic.Write(0x17, 0x00)
	test.ExpectSuccess(t, m.vic.Sprites[0].ExpFlop)
	test.ExpectEquality(t, m.vic.Sprites[0].MC, uint8(3))

	m.advance(t, 0x41, 16)
	test.ExpectEquality(t, m.vic.Sprites[0].MCBase, uint8(3))
}
