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

// Package logger is the central logging facility for the emulator. Entries
// are kept in a bounded list and repeated entries are collapsed into a single
// entry with a repeat count.
//
// The central logger is accessed through the package level functions. A
// separate Logger can be created with NewLogger(), which is useful for
// testing.
//
// Every log request requires a Permission. An emulation instance decides
// whether it is allowed to log: a throwaway instance created for a
// comparison run should not fill the log with duplicate entries, for
// example. The Allow value can be used when the log entry should always be
// made.
//
//	logger.Log(logger.Allow, "vicii", "configured for 6569")
//	logger.Logf(env, "reu", "transfer of %d bytes", n)
package logger
