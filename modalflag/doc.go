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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TRACE", "MONITOR")
//	_, _ = md.Parse()
//
// The reason for this difference is to allow effective parsing of modes and
// sub-modes. A mode is a special command line argument that puts the program
// into a different mode of operation, each with its own set of flags. The
// first sub-mode in the list is the default and is selected if the first
// argument after the flags is not a listed sub-mode. Sub-mode comparisons are
// case insensitive.
//
// Once the mode is known, NewMode() prepares the Modes instance for the flags
// of that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "TRACE":
//		md.NewMode()
//		cycles := md.AddInt("cycles", 100, "number of cycles to trace")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		trace(*cycles, md.RemainingArgs())
//	}
//
// Modes can be chained as deeply as required. The Path() function returns the
// list of modes encountered, separated by a forward slash.
package modalflag
