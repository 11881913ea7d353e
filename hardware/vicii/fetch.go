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

// the address read by idle accesses and by idle graphics accesses
const (
	idleAddress    = uint16(0x3fff)
	idleAddressECM = uint16(0x39ff)
)

// fetchPhi1 performs the phi1 access described by the descriptor. Returns the
// value read.
func (vic *VICII) fetchPhi1(d *cycles.Descriptor) uint8 {
	switch d.Fetch {
	case cycles.FetchGraphics:
		if vic.IdleState {
			return vic.fetchIdleGraphics()
		}
		return vic.fetchGraphics()
	case cycles.FetchSpritePointer:
		return vic.fetchSpritePointer(d.Sprite)
	case cycles.FetchSpriteData:
		if vic.SpriteDMA&(1<<d.Sprite) != 0 {
			return vic.fetchSpriteData(d.Sprite, 1)
		}
	case cycles.FetchRefresh:
		return vic.fetchRefresh()
	}
	return vic.mem.VideoRead(idleAddress)
}

// fetchPhi2 performs the sprite data accesses that happen in phi2 of the cycle
// described by the descriptor.
func (vic *VICII) fetchPhi2(d *cycles.Descriptor) {
	var n int
	switch d.Fetch {
	case cycles.FetchSpritePointer:
		n = 0
	case cycles.FetchSpriteData:
		n = 2
	default:
		return
	}

	if vic.SpriteDMA&(1<<d.Sprite) != 0 {
		vic.LastBusPhi2 = vic.fetchSpriteData(d.Sprite, n)
	}
}

func (vic *VICII) videoMatrix() uint16 {
	return uint16(vic.Registers[addresses.VMCB]&0xf0) << 6
}

func (vic *VICII) fetchGraphics() uint8 {
	var address uint16

	reg := vic.Reg11Delay
	if reg&cr1BMM == cr1BMM {
		address = uint16(vic.Registers[addresses.VMCB]&0x08)<<10 | vic.VC<<3 | uint16(vic.RC)
	} else {
		address = uint16(vic.Registers[addresses.VMCB]&0x0e)<<10 | uint16(vic.VBuf[vic.VMLI%len(vic.VBuf)])<<3 | uint16(vic.RC)
	}

	// extended colour mode forces address lines 9 and 10 low
	if reg&cr1ECM == cr1ECM {
		address &= idleAddressECM
	}

	v := vic.mem.VideoRead(address)

	if vic.VMLI < len(vic.line.Graphics) {
		vic.line.Graphics[vic.VMLI] = v
	}

	vic.VC = (vic.VC + 1) & 0x3ff
	vic.VMLI = (vic.VMLI + 1) & 0x3f

	return v
}

func (vic *VICII) fetchIdleGraphics() uint8 {
	if vic.Reg11Delay&cr1ECM == cr1ECM {
		return vic.mem.VideoRead(idleAddressECM)
	}
	return vic.mem.VideoRead(idleAddress)
}

func (vic *VICII) fetchSpritePointer(s int) uint8 {
	p := vic.mem.VideoRead(vic.videoMatrix() | 0x3f8 | uint16(s))
	vic.Sprites[s].Pointer = p
	return p
}

// fetchSpriteData reads the next byte of sprite data into slot n of the
// sprite data.
func (vic *VICII) fetchSpriteData(s int, n int) uint8 {
	spr := &vic.Sprites[s]
	v := vic.mem.VideoRead(uint16(spr.Pointer)<<6 | uint16(spr.MC))
	spr.Data[n] = v
	spr.MC = (spr.MC + 1) & 0x3f
	return v
}

func (vic *VICII) fetchRefresh() uint8 {
	v := vic.mem.VideoRead(0x3f00 | uint16(vic.RefreshCounter))
	vic.RefreshCounter--
	return v
}

// fetchMatrix reads the video matrix and colour RAM in phi2. for the first
// three cycles after BA goes low the CPU still has the bus and the VIC-II
// sees 0xff.
func (vic *VICII) fetchMatrix() {
	if vic.VMLI >= len(vic.VBuf) {
		return
	}

	if vic.PrefetchCycles > 0 {
		vic.VBuf[vic.VMLI] = 0xff
	} else {
		vic.VBuf[vic.VMLI] = vic.mem.VideoRead(vic.videoMatrix() | vic.VC)
	}
	vic.CBuf[vic.VMLI] = vic.mem.ColorRead(vic.VC) & 0x0f

	vic.line.BadLine = true
	vic.line.Matrix[vic.VMLI] = vic.VBuf[vic.VMLI]
	vic.line.Color[vic.VMLI] = vic.CBuf[vic.VMLI]
}
