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

// Package cpu defines the interface between the machine and the CPU. The
// instruction set of the 6510 is not emulated by this project. Instead, the
// Core interface describes what the rest of the machine needs from a CPU: one
// call per system clock cycle with the state of the BA and IRQ lines.
//
// The Scripted type is a Core implementation that replays a list of timed bus
// accesses. It observes the same bus rules as a real 6510: read cycles are
// stalled while BA is low and write cycles can continue for the first three
// cycles of BA being low.
//
// A script is plain text with one access per line:
//
//	# comment
//	<cycle> w <address> <value>
//	<cycle> r <address>
//	<cycle> pen <0|1>
//
// Numbers can be written in any of the forms accepted by Go (eg. 0xd011) or
// with a leading $ for hexadecimal. The cycle is the earliest value of the
// system clock at which the access will be attempted. Accesses are performed
// in the order they appear and no more than one bus access is performed in a
// single cycle.
package cpu
