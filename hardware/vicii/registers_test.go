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

	"github.com/jetsetilly/gopher64/hardware/vicii"
	"github.com/jetsetilly/gopher64/test"
)

func TestRegisterReadMasks(t *testing.T) {
	m := newMachine(t)

	m.vic.Write(0x20, 0x06)
	test.ExpectEquality(t, m.vic.Read(0x20), uint8(0xf6))

	// registers are mirrored every 64 bytes
	test.ExpectEquality(t, m.vic.Read(0x60), uint8(0xf6))
	test.ExpectEquality(t, m.vic.Read(0x3fe0), uint8(0xf6))

	// unconnected registers
	test.ExpectEquality(t, m.vic.Read(0x2f), uint8(0xff))
	test.ExpectEquality(t, m.vic.Read(0x3f), uint8(0xff))

	m.vic.Write(0x16, 0x00)
	test.ExpectEquality(t, m.vic.Read(0x16), uint8(0xc0))
	m.vic.Write(0x18, 0x00)
	test.ExpectEquality(t, m.vic.Read(0x18), uint8(0x01))
	test.ExpectEquality(t, m.vic.Read(0x19), uint8(0x70))

	m.vic.Write(0x1a, 0xff)
	test.ExpectEquality(t, m.vic.Read(0x1a), uint8(0xff))
	test.ExpectEquality(t, m.vic.IRQMask, uint8(0x0f))

	// bit 7 of CR1 is the ninth bit of the current raster line
	m.vic.Write(0x11, 0x9b)
	test.ExpectEquality(t, m.vic.Read(0x11), uint8(0x1b))
	test.ExpectEquality(t, m.vic.RasterIRQLine, 0x100)
	m.advance(t, 0x100, 5)
	test.ExpectEquality(t, m.vic.Read(0x11), uint8(0x9b))
	test.ExpectEquality(t, m.vic.Read(0x12), uint8(0x00))
}

func TestLightPenRegistersReadOnly(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x13, 0x12)
	m.vic.Write(0x14, 0x34)
	test.ExpectEquality(t, m.vic.Read(0x13), uint8(0x00))
	test.ExpectEquality(t, m.vic.Read(0x14), uint8(0x00))
}

func TestRasterCompareWrite(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x1a, 0x01)

	// setting the compare line to the current line raises the interrupt
	m.vic.Write(0x12, 0x00)
	test.ExpectSuccess(t, m.vic.IRQ())
	test.ExpectEquality(t, m.vic.Read(0x19), uint8(0xf1))

	m.vic.Write(0x19, 0x01)
	test.ExpectFailure(t, m.vic.IRQ())
	test.ExpectEquality(t, m.vic.Read(0x19), uint8(0x70))

	// but only once per line
	m.vic.Write(0x12, 0x00)
	test.ExpectFailure(t, m.vic.IRQ())
}

func TestRasterIRQ(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x1a, 0x01)
	m.vic.Write(0x12, 0x40)

	for !m.vic.IRQ() {
		m.step()
		test.DemandSuccess(t, m.vic.RasterLine <= 0x40)
	}
	test.ExpectEquality(t, m.vic.RasterLine, 0x40)
	test.ExpectEquality(t, m.vic.RasterCycle, 0)

	// acknowledged interrupt is not raised again on the same line
	m.vic.Write(0x19, 0x01)
	for range 62 {
		m.step()
		test.ExpectFailure(t, m.vic.IRQ())
	}

	// line zero starts one cycle later than the other lines
	m.vic.Write(0x12, 0x00)
	for !m.vic.IRQ() {
		m.step()
	}
	test.ExpectEquality(t, m.vic.RasterLine, 0)
	test.ExpectEquality(t, m.vic.RasterCycle, 1)
}

func TestRasterIRQMasked(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x12, 0x40)

	m.advance(t, 0x40, 2)
	test.ExpectFailure(t, m.vic.IRQ())
	test.ExpectEquality(t, m.vic.IRQStatus, vicii.IRQRaster)
	test.ExpectEquality(t, m.vic.Read(0x19), uint8(0x71))

	// enabling the interrupt source asserts the line
	m.vic.Write(0x1a, 0x01)
	test.ExpectSuccess(t, m.vic.IRQ())
}

func TestCollisions(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x1a, 0x0f)

	m.vic.ReportCollisions(0x03, 0x00)
	test.ExpectEquality(t, m.vic.IRQStatus, vicii.IRQSpriteSprite)
	test.ExpectSuccess(t, m.vic.IRQ())
	m.vic.Write(0x19, 0x04)

	// no interrupt while earlier collisions are waiting to be read
	m.vic.ReportCollisions(0x04, 0x00)
	test.ExpectEquality(t, m.vic.IRQStatus, uint8(0x00))

	// peeking does not clear the register
	test.ExpectEquality(t, m.vic.Peek(0x1e), uint8(0x07))
	test.ExpectEquality(t, m.vic.Peek(0x1e), uint8(0x07))

	test.ExpectEquality(t, m.vic.Read(0x1e), uint8(0x07))
	test.ExpectEquality(t, m.vic.Read(0x1e), uint8(0x00))

	m.vic.ReportCollisions(0x01, 0x00)
	test.ExpectEquality(t, m.vic.IRQStatus, vicii.IRQSpriteSprite)
	m.vic.Write(0x19, 0x0f)

	m.vic.ReportCollisions(0x00, 0x80)
	test.ExpectEquality(t, m.vic.IRQStatus, vicii.IRQSpriteBackground)
	test.ExpectEquality(t, m.vic.Read(0x1f), uint8(0x80))
	test.ExpectEquality(t, m.vic.Read(0x1f), uint8(0x00))
	test.ExpectEquality(t, m.vic.Read(0x1e), uint8(0x01))

	// the collision registers cannot be written
	m.vic.Write(0x1e, 0xff)
	m.vic.Write(0x1f, 0xff)
	test.ExpectEquality(t, m.vic.Read(0x1e), uint8(0x00))
	test.ExpectEquality(t, m.vic.Read(0x1f), uint8(0x00))
}

func TestLightPen(t *testing.T) {
	m := newMachine(t)
	m.vic.Write(0x1a, 0x08)

	m.advance(t, 0x80, 21)
	m.vic.SetLightPenState(true)
	test.ExpectEquality(t, m.vic.Read(0x13), uint8(30))
	test.ExpectEquality(t, m.vic.Read(0x14), uint8(0x80))
	test.ExpectSuccess(t, m.vic.IRQ())
	m.vic.Write(0x19, 0x08)

	// only one trigger per frame
	m.vic.SetLightPenState(false)
	m.advance(t, 0x90, 5)
	m.vic.SetLightPenState(true)
	test.ExpectEquality(t, m.vic.Read(0x13), uint8(30))
	test.ExpectEquality(t, m.vic.Read(0x14), uint8(0x80))
	test.ExpectFailure(t, m.vic.IRQ())

	// a light pen held at the start of a frame retriggers the latch
	m.advance(t, 0, 2)
	test.ExpectEquality(t, m.vic.Read(0x13), uint8(206))
	test.ExpectEquality(t, m.vic.Read(0x14), uint8(0))
	test.ExpectSuccess(t, m.vic.IRQ())
}

func TestLightPenLastLine(t *testing.T) {
	m := newMachine(t)

	m.advance(t, 311, 10)
	m.vic.SetLightPenState(true)
	test.ExpectSuccess(t, m.vic.LightPen.Triggered)
	test.ExpectEquality(t, m.vic.LightPen.Y, uint8(0))
	test.ExpectEquality(t, m.vic.IRQStatus&vicii.IRQLightPen, uint8(0))
}

func TestLightPenScheduled(t *testing.T) {
	m := newMachine(t)

	m.advance(t, 0x10, 5)
	m.vic.ScheduleLightPen(m.clk.Now() + 5)
	for range 4 {
		m.step()
		test.ExpectFailure(t, m.vic.LightPen.Triggered)
	}
	m.step()
	test.ExpectSuccess(t, m.vic.LightPen.Triggered)
	test.ExpectEquality(t, m.vic.LightPen.X, uint8(238))
	test.ExpectEquality(t, m.vic.LightPen.Y, uint8(0x10))
	test.ExpectEquality(t, m.vic.IRQStatus&vicii.IRQLightPen, vicii.IRQLightPen)
}
