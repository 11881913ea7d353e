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

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher64/curated"
)

// ScriptError is the pattern for all errors found while parsing a script.
const ScriptError = "cpu: script line %d: %v"

// Access is the type of access performed by an Event.
type Access int

// List of valid Access values.
const (
	Read Access = iota
	Write

	// Pen changes the state of the light pen input. It is not a bus access
	// and so is never stalled and does not prevent a bus access being made in
	// the same cycle
	Pen
)

func (a Access) String() string {
	switch a {
	case Read:
		return "r"
	case Write:
		return "w"
	case Pen:
		return "pen"
	}
	return "?"
}

// Event is a single access in a script.
type Event struct {
	// line number of the event in the script
	Line int

	// the earliest value of the clock at which the event can be performed
	Cycle uint64

	Access  Access
	Address uint16

	// the value to write. for Pen events, a non-zero value means the light
	// pen line is held low
	Value uint8

	// set once the event has been performed
	Done   bool
	DoneAt uint64

	// the value read by a Read event
	Result uint8

	// the number of cycles the event was delayed by BA
	Stalled int
}

func (e Event) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d %s", e.Cycle, e.Access))
	switch e.Access {
	case Read:
		s.WriteString(fmt.Sprintf(" $%04x", e.Address))
		if e.Done {
			s.WriteString(fmt.Sprintf(" = $%02x", e.Result))
		}
	case Write:
		s.WriteString(fmt.Sprintf(" $%04x $%02x", e.Address, e.Value))
	case Pen:
		s.WriteString(fmt.Sprintf(" %d", e.Value))
	}
	if e.Done {
		s.WriteString(fmt.Sprintf(" @ %d", e.DoneAt))
		if e.Stalled > 0 {
			s.WriteString(fmt.Sprintf(" (stalled %d)", e.Stalled))
		}
	}
	return s.String()
}

// ParseScript reads a script. Blank lines and anything following a # are
// ignored. The cycle of each access must not be earlier than the cycle of the
// access before it.
func ParseScript(r io.Reader) ([]Event, error) {
	var events []Event

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++

		l := scanner.Text()
		if i := strings.IndexByte(l, '#'); i >= 0 {
			l = l[:i]
		}

		f := strings.Fields(l)
		if len(f) == 0 {
			continue
		}

		e, err := parseEvent(f)
		if err != nil {
			return nil, curated.Errorf(ScriptError, n, err)
		}
		e.Line = n

		if len(events) > 0 && e.Cycle < events[len(events)-1].Cycle {
			return nil, curated.Errorf(ScriptError, n, "cycle is earlier than the previous access")
		}

		events = append(events, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("cpu: %v", err)
	}

	return events, nil
}

func parseEvent(f []string) (Event, error) {
	var e Event

	cycle, err := parseNumber(f[0], 64)
	if err != nil {
		return e, err
	}
	e.Cycle = cycle

	if len(f) < 2 {
		return e, curated.Errorf("missing access type")
	}

	var args int
	switch strings.ToLower(f[1]) {
	case "r":
		e.Access = Read
		args = 1
	case "w":
		e.Access = Write
		args = 2
	case "pen":
		e.Access = Pen
		args = 1
	default:
		return e, curated.Errorf("unrecognised access type (%s)", f[1])
	}

	if len(f)-2 != args {
		return e, curated.Errorf("%s access requires %d arguments", e.Access, args)
	}

	switch e.Access {
	case Read, Write:
		a, err := parseNumber(f[2], 16)
		if err != nil {
			return e, err
		}
		e.Address = uint16(a)

		if e.Access == Write {
			v, err := parseNumber(f[3], 8)
			if err != nil {
				return e, err
			}
			e.Value = uint8(v)
		}
	case Pen:
		switch f[2] {
		case "0":
		case "1":
			e.Value = 1
		default:
			return e, curated.Errorf("pen state must be 0 or 1 (%s)", f[2])
		}
	}

	return e, nil
}

func parseNumber(s string, bits int) (uint64, error) {
	var v uint64
	var err error
	if strings.HasPrefix(s, "$") {
		v, err = strconv.ParseUint(s[1:], 16, bits)
	} else {
		v, err = strconv.ParseUint(s, 0, bits)
	}
	if err != nil {
		return 0, curated.Errorf("invalid number (%s)", s)
	}
	return v, nil
}
