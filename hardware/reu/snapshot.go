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

// Snapshot creates a copy of the REU. The copy is not attached to the
// machine and should only be used as an argument to Plumb().
func (reu *REU) Snapshot() *REU {
	n := *reu
	n.ram.data = make([]uint8, len(reu.ram.data))
	copy(n.ram.data, reu.ram.data)
	return &n
}

// Plumb the state of a previously snapshotted REU. The size of the REU must
// be the same.
func (reu *REU) Plumb(state *REU) {
	reu.Registers = state.Registers
	copy(reu.ram.data, state.ram.data)
	reu.ram.floating = state.ram.floating
	reu.armed = state.armed
	reu.pending = state.pending
	reu.active = false
	reu.Transfers = state.Transfers
	reu.Bytes = state.Bytes
}
