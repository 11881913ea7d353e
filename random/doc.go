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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// The Intn() function returns numbers from a seeded stream. Two Random
// instances created with the same seed, and queried in the same order, return
// the same sequence of numbers. The characteristics of the VSP bug are drawn
// from this stream.
//
// The Rewindable() function returns numbers based on the current value of the
// emulation clock and will always return the same number for the same clock
// value, regardless of how many numbers have been requested before. Rewound()
// returns a whole stream keyed in the same way. The outcome of a VSP bus crash
// is taken from a Rewound() stream so that restoring an earlier VIC-II state
// and clock replays the same corruption.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true before calling Reseed(), or create the instance with an explicit
// seed. This is useful for testing purposes.
package random
