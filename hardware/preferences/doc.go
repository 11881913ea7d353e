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

// Package preferences collates the preference values that affect the
// emulated hardware. Preferences are not saved to disk but values can be
// overridden with the prefs command line stack.
//
// The emulation reads preferences through the Live field. Live values are
// updated automatically when the corresponding preference is set and can be
// read without synchronisation from the emulation goroutine.
package preferences
