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

// Package prefs holds typed preference values. Each value type (Bool, Int and
// String) is safe to read from a goroutine other than the one that sets it.
//
// Callback hooks can be attached to a value. The pre hook is called before a
// new value is stored and can reject the value by returning an error. The post
// hook is called after the value has been stored.
//
// Values can be grouped in a Collection. A Collection has no backing file,
// preferences live for the duration of the program only, but they can be
// overridden from the command line. The command line stack is populated with
// PushCommandLineStack():
//
//	prefs.PushCommandLineStack("vicii.vspbug::true; vicii.seed::1234")
//
// Preferences in a Collection pick up a matching command line value when
// ApplyCommandLine() is called. Each command line value is consumed when it
// is applied. PopCommandLineStack() returns any values that were not used.
package prefs
