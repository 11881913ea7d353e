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

// Package assert contains checks for programming errors. The checks are only
// active when the program is compiled with the "assertions" build tag. Without
// the build tag the functions do nothing and the compiler should remove them
// entirely.
//
// The Owner type is used to check that a single-threaded type is only ever
// used from one goroutine.
package assert
