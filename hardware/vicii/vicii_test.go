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

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/vicii"
	"github.com/jetsetilly/gopher64/hardware/vicii/cycles"
	"github.com/jetsetilly/gopher64/test"
)

// testRAM is a flat 16K of video memory and 1K of colour RAM.
type testRAM struct {
	data  [0x10000]uint8
	color [0x400]uint8
}

func (ram *testRAM) VideoRead(address uint16) uint8 {
	return ram.data[address&0x3fff]
}

func (ram *testRAM) ColorRead(address uint16) uint8 {
	return ram.color[address&0x3ff]
}

func (ram *testRAM) Peek(address uint16) (uint8, error) {
	return ram.data[address], nil
}

func (ram *testRAM) Poke(address uint16, value uint8) error {
	ram.data[address] = value
	return nil
}

type machine struct {
	env *environment.Environment
	clk *clocks.Clock
	ram *testRAM
	vic *vicii.VICII
}

func newMachine(t *testing.T) *machine {
	t.Helper()

	m := &machine{
		clk: &clocks.Clock{},
		ram: &testRAM{},
	}

	var err error
	m.env, err = environment.NewEnvironment(environment.MainEmulation, m.clk, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.env.Normalise())

	m.vic, err = vicii.NewVICII(m.env, m.clk, m.ram, m.ram, vicii.Config{Model: "6569"})
	test.DemandSuccess(t, err)

	return m
}

// step advances the clock and the VIC-II by one cycle.
func (m *machine) step() bool {
	m.clk.Tick()
	return m.vic.Step()
}

// advance until the VIC-II has just completed the specified cycle. The cycle
// number is one based.
func (m *machine) advance(t *testing.T, line int, cycle int) {
	t.Helper()
	for range 63 * 312 * 2 {
		m.step()
		if m.vic.RasterLine == line && m.vic.RasterCycle == cycle-1 {
			return
		}
	}
	t.Fatalf("line %d cycle %d never reached", line, cycle)
}

func TestDefaultConfiguration(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.vic.Config.Model, "6569")
	test.ExpectEquality(t, m.vic.Config.CyclesPerLine, 63)
	test.ExpectEquality(t, m.vic.Config.ScreenHeight, 312)
	test.ExpectEquality(t, m.vic.Config.DMA, vicii.Window{Top: 0x30, Bottom: 0xf7})
	test.ExpectEquality(t, m.vic.Config.Rows25, vicii.Window{Top: 0x33, Bottom: 0xfb})
	test.ExpectEquality(t, m.vic.Config.Rows24, vicii.Window{Top: 0x37, Bottom: 0xf7})

	// reset state
	test.ExpectEquality(t, m.vic.RasterLine, 0)
	test.ExpectEquality(t, m.vic.RasterCycle, 1)
	test.ExpectEquality(t, m.vic.RefreshCounter, uint8(0xff))
	test.ExpectSuccess(t, m.vic.IdleState)
}

func TestNoEnvironment(t *testing.T) {
	vic, err := vicii.NewVICII(nil, &clocks.Clock{}, &testRAM{}, nil, vicii.Config{Model: "6569"})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, vicii.NoEnvironment))
	test.ExpectEquality(t, vic == nil, true)
}

func TestConfigurationErrors(t *testing.T) {
	m := newMachine(t)

	err := m.vic.Configure(vicii.Config{Model: "6567R8"})
	test.ExpectSuccess(t, curated.Is(err, cycles.UnverifiedModel))

	err = m.vic.Configure(vicii.Config{Model: "VIC-I"})
	test.ExpectSuccess(t, curated.Is(err, cycles.UnknownModel))

	err = m.vic.Configure(vicii.Config{Model: "6569", CyclesPerLine: 65})
	test.ExpectSuccess(t, curated.Is(err, vicii.InvalidGeometry))

	err = m.vic.Configure(vicii.Config{Model: "6569", ScreenHeight: 600})
	test.ExpectSuccess(t, curated.Is(err, vicii.InvalidGeometry))

	err = m.vic.Configure(vicii.Config{Model: "6569", DMA: vicii.Window{Top: 0xf7, Bottom: 0x30}})
	test.ExpectSuccess(t, curated.Is(err, vicii.InvalidWindow))

	err = m.vic.Configure(vicii.Config{Model: "6569", Rows25: vicii.Window{Top: 0x33, Bottom: 312}})
	test.ExpectSuccess(t, curated.Is(err, vicii.InvalidWindow))

	// a failed configuration leaves the previous configuration in place
	test.ExpectEquality(t, m.vic.Config.Model, "6569")
	test.ExpectEquality(t, m.vic.Config.CyclesPerLine, 63)

	err = m.vic.Configure(vicii.Config{Model: "8565R2"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.vic.Config.Model, "8565")
	test.ExpectSuccess(t, m.vic.Model.ColorLatency)
}

func TestUnconfiguredStep(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	var vic vicii.VICII
	vic.Step()
}

func TestFrameWraparound(t *testing.T) {
	m := newMachine(t)

	// display enabled so that the video counter moves
	m.vic.Write(0x11, 0x1b)

	for range 63*312 - 1 {
		m.step()
	}
	test.ExpectEquality(t, m.vic.RasterLine, 311)
	test.ExpectInequality(t, m.vic.VCBase, 0)
	test.ExpectSuccess(t, m.vic.StartOfFrame)

	m.step()
	test.ExpectEquality(t, m.vic.RasterLine, 0)
	test.ExpectEquality(t, m.vic.RasterCycle, 1)
	test.ExpectEquality(t, m.vic.VCBase, uint16(0))
	test.ExpectEquality(t, m.vic.VC, uint16(0))
	test.ExpectEquality(t, m.vic.RefreshCounter, uint8(0xff))
	test.ExpectFailure(t, m.vic.AllowBadLines)
	test.ExpectFailure(t, m.vic.StartOfFrame)
}

func TestFrameWraparoundFromReset(t *testing.T) {
	m := newMachine(t)
	for range 63 * 312 {
		m.step()
	}
	test.ExpectEquality(t, m.vic.RasterLine, 0)
	test.ExpectEquality(t, m.vic.VCBase, uint16(0))
	test.ExpectEquality(t, m.vic.RefreshCounter, uint8(0xff))
}

type traceEntry struct {
	line  int
	cycle int
	ba    bool
	irq   bool
}

func runTrace(t *testing.T) []traceEntry {
	m := newMachine(t)

	writes := map[int][2]uint8{
		10:    {0x11, 0x1b},
		20:    {0x1a, 0x0f},
		30:    {0x12, 0x40},
		40:    {0x15, 0x05},
		50:    {0x01, 0x50},
		60:    {0x05, 0x60},
		70:    {0x17, 0x04},
		9000:  {0x11, 0x1c},
		12000: {0x19, 0x0f},
		15000: {0x11, 0x3b},
	}

	var trace []traceEntry
	for i := range 63 * 312 * 2 {
		if w, ok := writes[i]; ok {
			m.vic.Write(uint16(w[0]), w[1])
		}
		ba := m.step()
		trace = append(trace, traceEntry{
			line:  m.vic.RasterLine,
			cycle: m.vic.RasterCycle,
			ba:    ba,
			irq:   m.vic.IRQ(),
		})
	}

	return trace
}

func TestDeterminism(t *testing.T) {
	a := runTrace(t)
	b := runTrace(t)
	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		if !test.ExpectEquality(t, a[i], b[i], i) {
			return
		}
	}
}
