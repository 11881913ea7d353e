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

package hardware

import (
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/hardware/reu"
	"github.com/jetsetilly/gopher64/hardware/vicii"
	"github.com/jetsetilly/gopher64/logger"
)

// C64 struct is the main container for the emulated components of the C64.
type C64 struct {
	Env *environment.Environment

	Clock *clocks.Clock
	Mem   *memory.Memory
	VIC   *vicii.VICII

	// the REU is nil if no REU is attached
	REU *reu.REU

	CPU cpu.Core

	// the shared BA flag. the VIC-II owns the BALowVICII bit and the REU owns
	// the BALowDMA bit
	BA bus.BALow
}

// NewC64 creates a new C64 and everything associated with the hardware. The
// VIC-II model and the size of the REU are taken from the preferences.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created.
func NewC64(label environment.Label, prefs *preferences.Preferences) (*C64, error) {
	c64 := &C64{
		Clock: &clocks.Clock{},
		CPU:   &cpu.Idle{},
	}

	var err error

	c64.Env, err = environment.NewEnvironment(label, c64.Clock, prefs)
	if err != nil {
		return nil, err
	}

	c64.Mem = memory.NewMemory(c64.Env)

	cfg := vicii.Config{Model: c64.Env.Prefs.Model.Get().(string)}
	c64.VIC, err = vicii.NewVICII(c64.Env, c64.Clock, c64.Mem, c64.Mem, cfg)
	if err != nil {
		return nil, err
	}
	c64.Mem.AttachVICII(c64.VIC)

	err = c64.AttachREU(c64.Env.Prefs.REUSize.Get().(int))
	if err != nil {
		return nil, err
	}

	return c64, nil
}

// AttachREU attaches an REU of the specified size in kilobytes, replacing any
// REU that is already attached. A size of zero removes the REU.
func (c64 *C64) AttachREU(sizeKB int) error {
	if c64.REU != nil {
		if err := c64.VIC.UnregisterDMAPeer(c64.REU); err != nil {
			return err
		}
		c64.Mem.AttachExpansion(nil)
		c64.REU = nil
		c64.BA.Update(bus.BALowDMA, false)
		logger.Log(c64.Env, "c64", "REU removed")
	}

	if sizeKB == 0 {
		return nil
	}

	r, err := reu.NewREU(c64.Env, c64.Mem, &c64.BA, sizeKB)
	if err != nil {
		return err
	}

	if err := c64.VIC.RegisterDMAPeer(r, &c64.BA, bus.BALowVICII); err != nil {
		return err
	}
	c64.Mem.AttachExpansion(r)
	c64.REU = r

	return nil
}

// AttachCPU replaces the CPU.
func (c64 *C64) AttachCPU(core cpu.Core) {
	c64.CPU = core
}

// Reset the C64 to the power-on state. The random number generator is
// reseeded so that a reset machine behaves in the same way as a newly created
// one. The contents of the REU are not changed.
func (c64 *C64) Reset() {
	c64.Env.Reseed()
	c64.Clock.Reset()
	c64.Mem.Reset()
	c64.BA = 0
	c64.VIC.Reset()
	if c64.REU != nil {
		c64.REU.Reset()
	}
	c64.CPU.Reset()
}

// IRQ returns the level of the IRQ line. The line is asserted by either the
// VIC-II or the REU.
func (c64 *C64) IRQ() bool {
	if c64.REU != nil && c64.REU.IRQ() {
		return true
	}
	return c64.VIC.IRQ()
}

// MachineInfoTerse returns the C64 information in terse format.
func (c64 *C64) MachineInfoTerse() string {
	s := c64.VIC.MachineInfoTerse()
	if c64.REU != nil {
		s = s + " " + c64.REU.String()
	}
	return s
}

// MachineInfo returns the C64 information in verbose format.
func (c64 *C64) MachineInfo() string {
	s := c64.VIC.MachineInfo()
	if c64.REU != nil {
		s = s + "\n" + c64.REU.String()
	}
	return s
}

func (c64 *C64) String() string {
	return c64.MachineInfoTerse()
}
