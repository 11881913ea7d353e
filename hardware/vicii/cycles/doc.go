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

// Package cycles contains the cycle descriptor table for the VIC-II. The
// table maps each cycle in a raster line to the memory access the VIC-II
// performs in the first half of the cycle (phi1) and to the events that the
// chip evaluates in that cycle.
//
// The table is built from a Timeline, which is a declarative description of
// the cycle numbers of each event. Cycle numbers in the Timeline are one
// based, as they are in the data sheets and in most of the documentation for
// the chip. Descriptor indexes are zero based.
//
// Only the PAL models are defined. The NTSC models are known to have
// different timings (65 cycles per line for the 6567R8 and the 8562) but
// there is no verified timeline for them and so they are rejected by
// LookupModel().
package cycles
