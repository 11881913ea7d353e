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

func TestVBorderTwentyFiveRows(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x1b)

	m.advance(t, 0x32, 63)
	test.ExpectSuccess(t, m.vic.VBorder)

	// top of the display window is checked on every cycle of the line
	m.advance(t, 0x33, 1)
	test.ExpectFailure(t, m.vic.VBorder)
	test.ExpectFailure(t, m.vic.SetVBorder)

	m.advance(t, 0xfa, 63)
	test.ExpectFailure(t, m.vic.VBorder)

	m.advance(t, 0xfb, 1)
	test.ExpectSuccess(t, m.vic.VBorder)
	test.ExpectSuccess(t, m.vic.SetVBorder)

	// vertical border prevents the main border from opening
	m.advance(t, 0xfb, 18)
	test.ExpectSuccess(t, m.vic.MainBorder)
}

func TestVBorderTwentyFourRows(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x13)

	m.advance(t, 0x33, 1)
	test.ExpectSuccess(t, m.vic.VBorder)

	m.advance(t, 0x37, 1)
	test.ExpectFailure(t, m.vic.VBorder)

	m.advance(t, 0xf6, 63)
	test.ExpectFailure(t, m.vic.VBorder)

	m.advance(t, 0xf7, 1)
	test.ExpectSuccess(t, m.vic.VBorder)
}

func TestVBorderDisplayDisabled(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x0b)

	m.advance(t, 0x33, 1)
	test.ExpectSuccess(t, m.vic.VBorder)
	test.ExpectSuccess(t, m.vic.SetVBorder)

	m.advance(t, 0x80, 30)
	test.ExpectSuccess(t, m.vic.VBorder)
	test.ExpectSuccess(t, m.vic.MainBorder)
}

func TestVBorderBottomAppliedAtLineStart(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x1b)

	// switching to 24 rows on the last line of the smaller window arms the
	// bottom border but the border flag only follows on the next line
	m.advance(t, 0xf7, 30)
	m.vic.Write(0x11, 0x13)
	m.advance(t, 0xf7, 40)
	test.ExpectSuccess(t, m.vic.SetVBorder)
	test.ExpectFailure(t, m.vic.VBorder)

	m.advance(t, 0xf8, 1)
	test.ExpectSuccess(t, m.vic.VBorder)
}

func TestMainBorderThirtyEightColumns(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x1b)
	m.vic.Write(0x16, 0x00)

	m.advance(t, 0x33, 17)
	test.ExpectSuccess(t, m.vic.MainBorder)

	m.advance(t, 0x33, 18)
	test.ExpectFailure(t, m.vic.MainBorder)

	m.advance(t, 0x33, 55)
	test.ExpectFailure(t, m.vic.MainBorder)

	m.advance(t, 0x33, 56)
	test.ExpectSuccess(t, m.vic.MainBorder)
}

func TestMainBorderFortyColumns(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x1b)
	m.vic.Write(0x16, 0x08)

	m.advance(t, 0x33, 16)
	test.ExpectSuccess(t, m.vic.MainBorder)

	m.advance(t, 0x33, 17)
	test.ExpectFailure(t, m.vic.MainBorder)

	m.advance(t, 0x33, 56)
	test.ExpectFailure(t, m.vic.MainBorder)

	m.advance(t, 0x33, 57)
	test.ExpectSuccess(t, m.vic.MainBorder)
}

func TestMainBorderClosedInVBorder(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x11, 0x1b)
	m.vic.Write(0x16, 0x08)

	m.advance(t, 0x20, 17)
	test.ExpectSuccess(t, m.vic.VBorder)
	test.ExpectSuccess(t, m.vic.MainBorder)

	m.advance(t, 0x20, 40)
	test.ExpectSuccess(t, m.vic.MainBorder)
}
