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
	"fmt"

	"github.com/jetsetilly/gopher64/assert"
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/memory/addresses"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/vicii/cycles"
	"github.com/jetsetilly/gopher64/logger"
)

// NumRegisters is the number of connected registers in the VIC-II.
const NumRegisters = int(addresses.NumVICIIRegisters)

// NumSprites is the number of hardware sprites.
const NumSprites = 8

// Sprite is the state of a single sprite channel.
type Sprite struct {
	// the data counter and its base value
	MC     uint8
	MCBase uint8

	// the Y expansion flip-flop
	ExpFlop bool

	// the most recently fetched sprite pointer and the three bytes of
	// sprite data for the current line
	Pointer uint8
	Data    [3]uint8
}

// LightPen is the state of the light pen latch.
type LightPen struct {
	// the state of the light pen input. true if the line is held low
	State bool

	// the latch can only be triggered once per frame
	Triggered bool

	// a trigger that will fire on a specific clock cycle
	Scheduled    bool
	TriggerCycle uint64

	// offset added to the X coordinate when the latch is retriggered at the
	// start of a frame
	XExtraBits int

	// the latched coordinates
	X uint8
	Y uint8
}

// ChipState is the entire mutable state of the VIC-II.
type ChipState struct {
	// the position of the raster. cycle is zero based
	RasterCycle int
	RasterLine  int

	// values written to the registers. the values returned by reading the
	// registers are often different. see Read() and Peek()
	Registers [NumRegisters]uint8

	IdleState     bool
	BadLine       bool
	AllowBadLines bool

	RefreshCounter uint8

	VC     uint16
	VCBase uint16
	RC     uint8
	VMLI   int

	// the video matrix and colour line buffers
	VBuf [40]uint8
	CBuf [40]uint8

	// border flip-flops
	VBorder    bool
	SetVBorder bool
	MainBorder bool

	Sprites           [NumSprites]Sprite
	SpriteDMA         uint8
	SpriteDisplayBits uint8

	// counts the cycles since BA was pulled low. the VIC-II cannot use phi2
	// until three cycles after BA has gone low
	PrefetchCycles int

	// the value last seen on the data bus in each phase
	LastReadPhi1 uint8
	LastBusPhi2  uint8

	// the raster compare line and the latch that prevents the raster
	// interrupt from firing more than once on a line
	RasterIRQLine      int
	RasterIRQTriggered bool

	// interrupt status and mask. only the lower four bits are used
	IRQStatus uint8
	IRQMask   uint8

	SpriteSpriteCollisions     uint8
	SpriteBackgroundCollisions uint8

	LightPen LightPen

	// the start of frame happens on a different cycle to the start of a line
	StartOfFrame bool

	// number of frames started since reset
	Frame int

	// vertical scroll value
	YSmooth uint8

	// the control register delayed by one cycle. used by the graphics fetch
	Reg11Delay uint8

	// the state of BA as returned by the most recent call to Step()
	BA bool
}

// VICII is the VIC-II video chip.
type VICII struct {
	env  *environment.Environment
	clk  *clocks.Clock
	mem  bus.VideoBus
	dram bus.DebugBus

	owner assert.Owner

	// the resolved configuration and the chip model
	Config Config
	Model  cycles.Model

	table *cycles.Table
	desc  *cycles.Descriptor

	ChipState

	renderer Renderer
	cycle    CycleState
	line     LineState

	arbiters []*Arbiter
	vsp      vspBug
}

// NewVICII is the preferred method of initialisation for the VICII type. The
// environment must not be nil.
//
// The dram argument is used to model the memory corruption caused by the
// VSP bug. It can be nil in which case no corruption will occur.
func NewVICII(env *environment.Environment, clk *clocks.Clock, mem bus.VideoBus, dram bus.DebugBus, cfg Config) (*VICII, error) {
	if env == nil {
		return nil, curated.Errorf(NoEnvironment)
	}

	vic := &VICII{
		env:  env,
		clk:  clk,
		mem:  mem,
		dram: dram,
	}

	vic.vsp.rnd = env.Random

	if err := vic.Configure(cfg); err != nil {
		return nil, err
	}

	return vic, nil
}

// Configure the VIC-II. Builds the cycle descriptor table for the model and
// resets the chip. An error is returned if the configuration is invalid, in
// which case the existing configuration is unchanged.
func (vic *VICII) Configure(cfg Config) error {
	cfg, model, err := cfg.resolve()
	if err != nil {
		return err
	}

	table, err := cycles.NewTable(model, cfg.CyclesPerLine)
	if err != nil {
		return err
	}

	vic.Config = cfg
	vic.Model = model
	vic.table = table

	logger.Logf(vic.env, "vicii", "configured as %s", cfg)

	vic.Reset()

	return nil
}

// Reset the VIC-II to the power-on state. The raster is positioned at the
// start of frame cycle of the first line.
func (vic *VICII) Reset() {
	vic.ChipState = ChipState{}

	vic.RasterCycle = vic.table.Find(cycles.FrameStart)
	vic.desc = vic.table.Descriptor(vic.RasterCycle)

	vic.IdleState = true
	vic.RefreshCounter = 0xff
	vic.VBorder = true
	vic.SetVBorder = true
	vic.MainBorder = true
	vic.PrefetchCycles = prefetchReset
	vic.LastBusPhi2 = 0xff

	vic.line = LineState{}
	vic.vsp.init(vic)

	for _, arb := range vic.arbiters {
		arb.Reset()
	}
}

// Table returns the cycle descriptor table in use.
func (vic *VICII) Table() *cycles.Table {
	return vic.table
}

// Descriptor returns the descriptor of the current cycle.
func (vic *VICII) Descriptor() cycles.Descriptor {
	return *vic.desc
}

// State returns a copy of the chip state.
func (vic *VICII) State() ChipState {
	return vic.ChipState
}

// SetRenderer attaches a renderer to the VIC-II. A nil argument removes any
// existing renderer.
func (vic *VICII) SetRenderer(r Renderer) {
	vic.renderer = r
}

// MachineInfoTerse returns the VIC-II information in terse format.
func (vic *VICII) MachineInfoTerse() string {
	return fmt.Sprintf("line=%03d cycle=%02d ba=%v", vic.RasterLine, vic.desc.Cycle(), vic.BA)
}

// MachineInfo returns the VIC-II information in verbose format.
func (vic *VICII) MachineInfo() string {
	idle := "display"
	if vic.IdleState {
		idle = "idle"
	}
	return fmt.Sprintf("%s\n%s bad=%v allow=%v vc=%03x vcbase=%03x rc=%d vmli=%02d\nsprite dma=%08b display=%08b",
		vic.MachineInfoTerse(), idle, vic.BadLine, vic.AllowBadLines, vic.VC, vic.VCBase, vic.RC, vic.VMLI,
		vic.SpriteDMA, vic.SpriteDisplayBits)
}

func (vic *VICII) String() string {
	return vic.MachineInfo()
}
