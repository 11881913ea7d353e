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

// Package monitor implements an interactive stepper for the C64 emulation. It
// is intended to be driven by a terminal in cbreak mode so that single key
// presses are received immediately.
//
// The key bindings are:
//
//	space	step one cycle
//	l	step to the start of the next raster line
//	f	step to the start of the next frame
//	r	run in real time (or pause if already running)
//	p	toggle the light pen input
//	d	write a graph of the VIC-II state to a dot file
//	x	reset the machine
//	h	print the key bindings
//	q	quit
//
// The status line is printed after every step. While running, it is printed
// once per frame.
package monitor
