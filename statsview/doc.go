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

// Package statsview serves live Go runtime charts while the emulation runs. It
// is requested with the -statsview flag of the RUN mode and is only compiled
// in with the statsview build tag:
//
//	go build -tags statsview
//
// The charts are served by github.com/go-echarts/statsview at
// http://localhost:12640/debug/statsview and the server is stopped when the
// context given to Launch() is cancelled. The standard pprof endpoints are
// found under /debug/pprof/ on the same address.
//
// Without the build tag Launch() writes a one line notice to its output and
// Available() returns false, so the RUN mode can mention whether the flag will
// have any effect in its help text.
package statsview
