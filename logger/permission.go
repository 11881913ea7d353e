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

package logger

// Permission is implemented by anything that makes a log request. An emulation
// environment uses it to keep all but the main emulation out of the log.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the permission for log entries that are not made on behalf of an
// emulation. For example, by the front end.
var Allow Permission = allow{}

// permitted is true if a log entry can be made with the permission. A nil
// permission is never permitted.
func permitted(perm Permission) bool {
	switch perm.(type) {
	case nil:
		return false
	case allow:
		return true
	}
	return perm.AllowLogging()
}
