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

package reu

import (
	"fmt"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/addresses"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/vicii"
	"github.com/jetsetilly/gopher64/logger"
)

// Sentinal error returned by NewREU().
const (
	UnsupportedSize = "reu: unsupported size (%dK)"
)

// SupportedSizes lists the REU sizes in kilobytes.
var SupportedSizes = []int{128, 256, 512, 1024, 2048, 4096, 8192, 16384}

// the register file is mirrored every 32 bytes
const mirror = 0x20

// status register bits
const (
	statusIRQ     = uint8(0x80)
	statusEOB     = uint8(0x40)
	statusVerify  = uint8(0x20)
	status256K    = uint8(0x10)
	statusCleared = statusIRQ | statusEOB | statusVerify
)

// command register bits
const (
	cmdExecute      = uint8(0x80)
	cmdAutoload     = uint8(0x20)
	cmdFF00Disabled = uint8(0x10)
	cmdTypeMask     = uint8(0x03)
)

// interrupt mask register bits
const (
	irqEnabled = uint8(0x80)
	irqEOB     = uint8(0x40)
	irqVerify  = uint8(0x20)
	irqUnused  = uint8(0x1f)
)

// address control register bits
const (
	ctrlFixC64 = uint8(0x80)
	ctrlFixREU = uint8(0x40)
	ctrlUnused = uint8(0x3f)
)

// the bits of the bank register that can never be read back
const bankReadMask = uint8(0xf8)

// TransferType is the type of transfer selected by the command register.
type TransferType uint8

// List of valid TransferType values.
const (
	ToREU TransferType = iota
	FromREU
	Swap
	Verify
)

func (t TransferType) String() string {
	switch t {
	case ToREU:
		return "to REU"
	case FromREU:
		return "from REU"
	case Swap:
		return "swap"
	case Verify:
		return "verify"
	}
	return "unknown"
}

// Registers is the register file of the REC chip. The shadow registers hold
// the values last written by the CPU and are used by autoload.
type Registers struct {
	Status  uint8
	Command uint8

	C64Addr uint16
	REUAddr uint16
	Bank    uint8
	Length  uint16

	IRQMask     uint8
	AddrControl uint8

	C64AddrShadow uint16
	REUAddrShadow uint16
	BankShadow    uint8
	LengthShadow  uint16
}

// REU is the RAM Expansion Unit.
type REU struct {
	env *environment.Environment
	mem bus.DMABus

	// the shared BA flag. the REU owns the BALowDMA bit
	ba *bus.BALow

	// given by the VIC-II on registration
	arb *vicii.Arbiter

	sizeKB int
	ram    ram

	Registers

	// a transfer is armed and waiting for a write to $FF00
	armed bool

	// a transfer is waiting for the bus
	pending bool

	// a transfer is in progress. registers are not accessible
	active bool

	// statistics
	Transfers uint64
	Bytes     uint64
}

// NewREU is the preferred method of initialisation for the REU type. The size
// is in kilobytes and must be one of the values in SupportedSizes. The ba
// argument is the shared BA flag that is also given to the VIC-II. It can be
// nil, in which case the REU uses a private flag.
func NewREU(env *environment.Environment, mem bus.DMABus, ba *bus.BALow, sizeKB int) (*REU, error) {
	supported := false
	for _, s := range SupportedSizes {
		if s == sizeKB {
			supported = true
			break
		}
	}
	if !supported {
		return nil, curated.Errorf(UnsupportedSize, sizeKB)
	}

	if ba == nil {
		ba = new(bus.BALow)
	}

	reu := &REU{
		env:    env,
		mem:    mem,
		ba:     ba,
		sizeKB: sizeKB,
		ram:    newRAM(sizeKB),
	}
	reu.Reset()

	logger.Logf(env, "reu", "%dK attached", sizeKB)

	return reu, nil
}

// Reset the register file. The contents of RAM are not changed.
func (reu *REU) Reset() {
	reu.Registers = Registers{
		Status:        reu.ram.statusPreset,
		Command:       cmdFF00Disabled,
		Length:        0xffff,
		LengthShadow:  0xffff,
		Bank:          reu.ram.bankUnused,
		BankShadow:    reu.ram.bankUnused,
		IRQMask:       irqUnused,
		AddrControl:   ctrlUnused,
	}
	reu.armed = false
	reu.pending = false
	reu.active = false
	reu.ba.Update(bus.BALowDMA, false)
	if reu.arb != nil {
		reu.arb.Reset()
	}
}

// Size returns the size of the REU in kilobytes.
func (reu *REU) Size() int {
	return reu.sizeKB
}

// AttachArbiter is an implementation of the vicii.DMAPeer interface.
func (reu *REU) AttachArbiter(arb *vicii.Arbiter) {
	reu.arb = arb
}

// DetachArbiter is an implementation of the vicii.DMAPeer interface.
func (reu *REU) DetachArbiter() {
	reu.arb = nil
}

// IRQ returns the state of the REU interrupt line. True if the line is
// asserted.
func (reu *REU) IRQ() bool {
	return reu.Status&statusIRQ == statusIRQ
}

// Pending returns true if a transfer is waiting to be performed by Transfer().
func (reu *REU) Pending() bool {
	return reu.pending
}

// PeekRAM returns the value at the REU address. Addresses beyond the size of
// the REU wrap around.
func (reu *REU) PeekRAM(address uint32) uint8 {
	return reu.ram.data[address%uint32(len(reu.ram.data))]
}

// PokeRAM sets the value at the REU address. Addresses beyond the size of the
// REU wrap around.
func (reu *REU) PokeRAM(address uint32, value uint8) {
	reu.ram.data[address%uint32(len(reu.ram.data))] = value
}

// peek returns the value of the register without side-effects.
func (reu *REU) peek(reg addresses.ChipRegister) uint8 {
	switch reg {
	case addresses.STATUS:
		return reu.Status
	case addresses.COMMAND:
		return reu.Command
	case addresses.C64ADDRLO:
		return uint8(reu.C64Addr)
	case addresses.C64ADDRHI:
		return uint8(reu.C64Addr >> 8)
	case addresses.REUADDRLO:
		return uint8(reu.REUAddr)
	case addresses.REUADDRHI:
		return uint8(reu.REUAddr >> 8)
	case addresses.REUBANK:
		return reu.Bank | reu.ram.bankUnused
	case addresses.LENLO:
		return uint8(reu.Length)
	case addresses.LENHI:
		return uint8(reu.Length >> 8)
	case addresses.IRQMASK:
		return reu.IRQMask
	case addresses.ADDRCTRL:
		return reu.AddrControl
	}
	return 0xff
}

// Peek returns the value of a register without side-effects. The address is
// relative to the start of the I/O 2 area.
func (reu *REU) Peek(address uint16) uint8 {
	return reu.peek(addresses.ChipRegister(address % mirror))
}

// Read is an implementation of memory.Chip. Reading the status register
// clears the interrupt and the end of block and verify error bits.
func (reu *REU) Read(address uint16) uint8 {
	if reu.active {
		return 0
	}

	reg := addresses.ChipRegister(address % mirror)
	v := reu.peek(reg)

	switch reg {
	case addresses.STATUS:
		reu.Status &^= statusCleared
	case addresses.REUBANK:
		// the upper bits of a large REU are latched and cannot be read back
		v |= bankReadMask
	}

	return v
}

// Write is an implementation of memory.Chip. Writes are ignored while a
// transfer is in progress.
func (reu *REU) Write(address uint16, data uint8) {
	if reu.active {
		return
	}

	reg := addresses.ChipRegister(address % mirror)

	switch reg {
	case addresses.STATUS:
		// read only
	case addresses.COMMAND:
		reu.Command = data
		if reu.Command&cmdExecute == cmdExecute {
			reu.execute(reu.Command&cmdFF00Disabled == cmdFF00Disabled)
		}
	case addresses.C64ADDRLO:
		reu.C64AddrShadow = reu.C64AddrShadow&0xff00 | uint16(data)
		reu.C64Addr = reu.C64AddrShadow
	case addresses.C64ADDRHI:
		reu.C64AddrShadow = reu.C64AddrShadow&0x00ff | uint16(data)<<8
		reu.C64Addr = reu.C64AddrShadow
	case addresses.REUADDRLO:
		reu.REUAddrShadow = reu.REUAddrShadow&0xff00 | uint16(data)
		reu.REUAddr = reu.REUAddrShadow
	case addresses.REUADDRHI:
		reu.REUAddrShadow = reu.REUAddrShadow&0x00ff | uint16(data)<<8
		reu.REUAddr = reu.REUAddrShadow
	case addresses.REUBANK:
		reu.BankShadow = data &^ reu.ram.bankUnused
		reu.Bank = reu.BankShadow
	case addresses.LENLO:
		reu.LengthShadow = reu.LengthShadow&0xff00 | uint16(data)
		reu.Length = reu.LengthShadow
	case addresses.LENHI:
		reu.LengthShadow = reu.LengthShadow&0x00ff | uint16(data)<<8
		reu.Length = reu.LengthShadow
	case addresses.IRQMASK:
		reu.IRQMask = data | irqUnused

		// an interrupt for an event that has already happened is raised as
		// soon as it is enabled
		if reu.IRQMask&(irqEnabled|irqEOB) == irqEnabled|irqEOB && reu.Status&statusEOB == statusEOB {
			reu.Status |= statusIRQ
		}
		if reu.IRQMask&(irqEnabled|irqVerify) == irqEnabled|irqVerify && reu.Status&statusVerify == statusVerify {
			reu.Status |= statusIRQ
		}
	case addresses.ADDRCTRL:
		reu.AddrControl = data | ctrlUnused
	}
}

// execute the command in the command register. if immediate is false the
// transfer is armed and started by the next write to $FF00.
func (reu *REU) execute(immediate bool) {
	if !immediate {
		reu.armed = true
		return
	}
	reu.armed = false
	reu.start()
}

// WriteFF00 is an implementation of memory.Expansion.
func (reu *REU) WriteFF00() {
	if !reu.armed || reu.active {
		return
	}
	reu.armed = false
	reu.start()
}

// start signals to the CPU that the REU wants the bus.
func (reu *REU) start() {
	reu.pending = true
	reu.ba.Update(bus.BALowDMA, true)
	if reu.arb != nil {
		reu.arb.Reset()
	}
}

func (reu *REU) String() string {
	return fmt.Sprintf("%dK status=%02x cmd=%02x c64=%04x reu=%02x%04x len=%04x irq=%02x ctrl=%02x",
		reu.sizeKB, reu.Status, reu.Command, reu.C64Addr, reu.Bank, reu.REUAddr, reu.Length,
		reu.IRQMask, reu.AddrControl)
}
