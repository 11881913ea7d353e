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

// Package performance measures how fast the emulated C64 runs on the host. It
// backs the PERFORMANCE mode of the front end.
//
// Check() runs a machine for a wall clock duration, eg. "5s", and reports the
// number of frames generated as a frame rate and as a percentage of the frame
// rate of the VIC-II model being emulated. The effective clock speed in MHz is
// also reported. FrameRate() gives the model's frame
// rate from the VIC-II configuration and CalcFPS() does the arithmetic.
//
// Profiles can be taken of the run. ParseProfile() accepts a comma separated
// list of CPU, MEM and TRACE (or ALL and NONE) and RunProfiler() writes one
// file per requested profile, named after the header it is given.
//
// The limiter sub-package holds the emulation to the model frame rate and is
// used by RUN -realtime and by the monitor.
package performance
