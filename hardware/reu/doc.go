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

// Package reu implements the Commodore RAM Expansion Unit. The REU is a DMA
// device on the expansion port that can move data between the C64 address
// space and its own RAM without the involvement of the CPU.
//
// The REU is a peer of the VIC-II on the bus. It is registered with the
// VIC-II with vicii.RegisterDMAPeer() and every byte it moves is paced by the
// vicii.Arbiter it is given. Read accesses give up the bus as soon as the
// VIC-II pulls BA low. Write accesses can continue for a short time after BA
// has been pulled low.
//
// Transfers are started by writing to the command register, either
// immediately or on the next CPU write to address $FF00. The REU then pulls
// its own bit of the shared BA flag low and the transfer is performed by
// Transfer(), which the machine calls in place of the CPU cycle.
package reu
