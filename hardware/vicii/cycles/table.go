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

package cycles

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/curated"
)

// Sentinal error returned by NewTable().
const (
	InvalidTimeline = "vicii: timeline cycle %d outside of line length (%d)"
)

// Table is the precomputed list of cycle descriptors for a line. The table is
// not changed after creation.
type Table struct {
	Model         Model
	CyclesPerLine int

	descriptors []Descriptor
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable(model Model, cyclesPerLine int) (*Table, error) {
	tl := model.Timeline

	t := &Table{
		Model:         model,
		CyclesPerLine: cyclesPerLine,
		descriptors:   make([]Descriptor, cyclesPerLine),
	}

	// index converts a one based cycle number to an index into the
	// descriptors array. cycle numbers outside of the line wrap around
	index := func(cycle int) int {
		return ((cycle-1)%cyclesPerLine + cyclesPerLine) % cyclesPerLine
	}

	// the timeline must fit inside the line
	check := []int{
		tl.Refresh.Last, tl.MatrixBA.Last, tl.MatrixFetch.Last, tl.Graphics.Last, tl.VSPWindow.Last,
		tl.UpdateVC, tl.UpdateRC, tl.UpdateMCBase,
		tl.CheckSpriteExpansion, tl.CheckSpriteDisplay,
		tl.BorderLeft40, tl.BorderLeft38, tl.BorderRight38, tl.BorderRight40,
		tl.LineStart, tl.FrameStart,
	}
	check = append(check, tl.SpritePointer[:]...)
	check = append(check, tl.CheckSpriteDMA...)
	for _, c := range check {
		if c < 1 || c > cyclesPerLine {
			return nil, curated.Errorf(InvalidTimeline, c, cyclesPerLine)
		}
	}

	for i := range t.descriptors {
		t.descriptors[i] = Descriptor{
			Index: i,
			Fetch: FetchIdle,
			XPos:  (tl.XPosStart + i*8) % tl.XPosWrap,
		}
	}

	// fetch assigns the fetch type to the cycle unless the cycle already has
	// a fetch type of higher priority
	fetch := func(cycle int, f Fetch, sprite int) {
		d := &t.descriptors[index(cycle)]
		if f < d.Fetch {
			d.Fetch = f
			d.Sprite = sprite
		}
	}

	span := func(s Span, f func(cycle int)) {
		for c := s.First; c <= s.Last; c++ {
			f(c)
		}
	}

	event := func(cycle int, e Event) {
		t.descriptors[index(cycle)].Events |= e
	}

	span(tl.Graphics, func(c int) { fetch(c, FetchGraphics, 0) })
	span(tl.Refresh, func(c int) { fetch(c, FetchRefresh, 0) })
	span(tl.MatrixBA, func(c int) { event(c, MatrixBA) })
	span(tl.MatrixFetch, func(c int) { event(c, MatrixFetch) })
	span(tl.VSPWindow, func(c int) { event(c, VSPWindow) })

	for s, p := range tl.SpritePointer {
		fetch(p, FetchSpritePointer, s)
		fetch(p+1, FetchSpriteData, s)
		for c := p - tl.SpriteBALead; c <= p+1; c++ {
			t.descriptors[index(c)].SpriteBA |= 1 << s
		}
	}

	event(tl.SpritePointer[0]-tl.SpriteBALead-1, SpriteLateBA)

	event(tl.UpdateVC, UpdateVC)
	event(tl.UpdateRC, UpdateRC)
	event(tl.UpdateMCBase, UpdateMCBase)
	event(tl.UpdateMCBase-1, SpriteCrunch)
	for _, c := range tl.CheckSpriteDMA {
		event(c, CheckSpriteDMA)
	}
	event(tl.CheckSpriteExpansion, CheckSpriteExpansion)
	event(tl.CheckSpriteDisplay, CheckSpriteDisplay)
	event(tl.BorderLeft40, BorderLeft40)
	event(tl.BorderLeft38, BorderLeft38)
	event(tl.BorderRight38, BorderRight38)
	event(tl.BorderRight40, BorderRight40)
	event(tl.LineStart, LineStart)
	event(tl.FrameStart, FrameStart)

	return t, nil
}

// Descriptor returns the descriptor for the zero based cycle index.
func (t *Table) Descriptor(index int) *Descriptor {
	return &t.descriptors[index]
}

// Find returns the index of the first cycle that has all the events set.
// Returns -1 if no cycle has the events.
func (t *Table) Find(e Event) int {
	for i := range t.descriptors {
		if t.descriptors[i].Is(e) {
			return i
		}
	}
	return -1
}

func (t *Table) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s) %d cycles\n", t.Model.ID, t.Model.Standard, t.CyclesPerLine))
	for _, d := range t.descriptors {
		s.WriteString(d.String())
		s.WriteString("\n")
	}
	return s.String()
}
