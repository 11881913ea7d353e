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
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/logger"
)

// Transfer performs the pending transfer. It should be called by the machine
// instead of the CPU cycle when Pending() returns true. The transfer runs to
// completion, advancing the clock and the VIC-II through the arbiter.
func (reu *REU) Transfer() {
	if !reu.pending {
		return
	}
	reu.pending = false

	c64 := reu.C64Addr
	addr := uint32(reu.REUAddr) | uint32(reu.Bank)<<16
	length := int(reu.Length)
	if length == 0 {
		length = 0x10000
	}

	var c64Step uint16
	if reu.AddrControl&ctrlFixC64 == 0 {
		c64Step = 1
	}
	var reuStep uint32
	if reu.AddrControl&ctrlFixREU == 0 {
		reuStep = 1
	}

	typ := TransferType(reu.Command & cmdTypeMask)
	logger.Logf(reu.env, "reu", "%s: c64 %04x%s reu %06x%s length %04x", typ,
		c64, fixed(c64Step == 0), addr, fixed(reuStep == 0), length)

	reu.active = true

	switch typ {
	case ToREU:
		reu.toREU(c64, addr, c64Step, reuStep, length)
	case FromREU:
		reu.fromREU(c64, addr, c64Step, reuStep, length)
	case Swap:
		reu.swap(c64, addr, c64Step, reuStep, length)
	case Verify:
		reu.verify(c64, addr, c64Step, reuStep, length)
	}

	reu.active = false
	reu.Command = reu.Command&^cmdExecute | cmdFF00Disabled
	reu.ba.Update(bus.BALowDMA, false)
	reu.Transfers++
}

func fixed(f bool) string {
	if f {
		return " (fixed)"
	}
	return ""
}

func (reu *REU) readCycle() {
	if reu.arb != nil {
		reu.arb.ReadCycle()
	}
}

func (reu *REU) writeCycle() {
	if reu.arb != nil {
		reu.arb.WriteCycle()
	}
}

// a transfer that ends with the bus stolen by a write cycle takes another
// cycle.
func (reu *REU) endCycle() {
	if reu.arb != nil && reu.arb.LastCycle() {
		reu.arb.ReadCycle()
	}
}

func (reu *REU) toREU(c64 uint16, addr uint32, c64Step uint16, reuStep uint32, length int) {
	var v uint8
	for length > 0 {
		v = reu.mem.DMARead(c64)
		reu.readCycle()
		reu.ram.write(addr, v)
		reu.Bytes++

		c64 += c64Step
		addr = reu.ram.increment(addr, reuStep)
		length--
	}
	reu.updateRegisters(c64, addr, length+1, statusEOB)

	// the last value written to the REU stays on the bus
	reu.ram.floating = v
}

func (reu *REU) fromREU(c64 uint16, addr uint32, c64Step uint16, reuStep uint32, length int) {
	for length > 0 {
		v := reu.ram.read(addr)
		reu.ram.floating = v
		reu.mem.DMAWrite(c64, v)
		reu.writeCycle()
		reu.Bytes++

		c64 += c64Step
		addr = reu.ram.increment(addr, reuStep)
		length--
	}
	reu.endCycle()
	reu.updateRegisters(c64, addr, length+1, statusEOB)

	// the next value is prefetched and stays on the bus
	reu.ram.floating = reu.ram.read(addr)
}

func (reu *REU) swap(c64 uint16, addr uint32, c64Step uint16, reuStep uint32, length int) {
	for length > 0 {
		fromREU := reu.ram.read(addr)
		fromC64 := reu.mem.DMARead(c64)
		reu.readCycle()
		reu.ram.write(addr, fromC64)
		reu.mem.DMAWrite(c64, fromREU)
		reu.writeCycle()
		reu.Bytes++

		c64 += c64Step
		addr = reu.ram.increment(addr, reuStep)
		length--
	}
	reu.endCycle()
	reu.updateRegisters(c64, addr, length+1, statusEOB)
}

// verify stops on the first byte that differs. a failed compare takes an
// extra cycle unless it was the last byte. the end of block bit is set if
// the failed byte was the last byte, or if it was the next to last byte and
// the last byte is equal.
func (reu *REU) verify(c64 uint16, addr uint32, c64Step uint16, reuStep uint32, length int) {
	var status uint8

	for length > 0 {
		fromREU := reu.ram.read(addr)
		fromC64 := reu.mem.DMARead(c64)
		reu.readCycle()
		reu.Bytes++

		c64 += c64Step
		addr = reu.ram.increment(addr, reuStep)
		length--

		if fromREU != fromC64 {
			status |= statusVerify
			if length >= 1 {
				reu.readCycle()
			}
			break
		}
	}

	switch length {
	case 0:
		length = 1
		status |= statusEOB
	case 1:
		if reu.ram.read(addr) == reu.mem.DMARead(c64) {
			status |= statusEOB
		}
	}

	reu.updateRegisters(c64, addr, length, status)
}

// updateRegisters writes the state of the transfer back to the registers, or
// reloads them from the shadow registers if autoload is set. Interrupts are
// raised for the new status bits if they are enabled.
func (reu *REU) updateRegisters(c64 uint16, addr uint32, length int, status uint8) {
	addr &= reu.ram.storeMask

	reu.Status |= status

	if reu.Command&cmdAutoload == cmdAutoload {
		reu.C64Addr = reu.C64AddrShadow
		reu.REUAddr = reu.REUAddrShadow
		reu.Bank = reu.BankShadow
		reu.Length = reu.LengthShadow
	} else {
		if reu.AddrControl&ctrlFixC64 == 0 {
			reu.C64Addr = c64
		}
		if reu.AddrControl&ctrlFixREU == 0 {
			reu.REUAddr = uint16(addr)
			reu.Bank = uint8(addr >> 16)
		}
		reu.Length = uint16(length)
	}

	if status&statusEOB == statusEOB && reu.IRQMask&(irqEnabled|irqEOB) == irqEnabled|irqEOB {
		reu.Status |= statusIRQ
	}
	if status&statusVerify == statusVerify && reu.IRQMask&(irqEnabled|irqVerify) == irqEnabled|irqVerify {
		reu.Status |= statusIRQ
	}
}
