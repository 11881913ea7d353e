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
	"strings"

	"github.com/jetsetilly/gopher64/curated"
)

// Sentinal errors returned by LookupModel().
const (
	UnknownModel    = "vicii: unknown model (%s)"
	UnverifiedModel = "vicii: no verified timing for model (%s)"
)

// Span is an inclusive range of one based cycle numbers.
type Span struct {
	First int
	Last  int
}

// Timeline lists the cycle numbers of the events in a raster line. All cycle
// numbers are one based.
type Timeline struct {
	// the cycle of the sprite pointer fetch for each sprite. the two sprite
	// data fetches in phi2 and the first data fetch in phi1 of the following
	// cycle follow on from this
	SpritePointer [8]int

	// the number of cycles BA is pulled low before the first sprite data
	// fetch in phi2
	SpriteBALead int

	Refresh     Span
	MatrixBA    Span
	MatrixFetch Span
	Graphics    Span
	VSPWindow   Span

	UpdateVC             int
	UpdateRC             int
	UpdateMCBase         int
	CheckSpriteDMA       []int
	CheckSpriteExpansion int
	CheckSpriteDisplay   int

	BorderLeft40  int
	BorderLeft38  int
	BorderRight38 int
	BorderRight40 int

	LineStart  int
	FrameStart int

	// the X coordinate of the first pixel of the line and the number of
	// pixels before the coordinate wraps
	XPosStart int
	XPosWrap  int
}

// Model describes a VIC-II chip model.
type Model struct {
	ID       string
	Standard string

	// chips with colour latency delay the change of colour registers by a
	// pixel. used when retriggering the light pen
	ColorLatency bool

	CyclesPerLine int
	ScreenHeight  int

	// first and last lines on which bad lines may occur
	FirstDMALine int
	LastDMALine  int

	// top and bottom lines of the display window in the 25 row and 24 row
	// modes. the top line is the first line without the vertical border and
	// the bottom line is the first line with it
	Rows25Top    int
	Rows25Bottom int
	Rows24Top    int
	Rows24Bottom int

	Timeline Timeline
}

// ModelList is the list of models that can be used with LookupModel().
var ModelList = []string{"6569", "8565"}

// models that exist but for which there is no verified timeline. matched
// against the prefix of the ID.
var unverifiedList = []string{"6567", "6572", "6573", "8562", "8564", "8566"}

// timelinePAL is the timeline for the PAL chips. The timeline is identical
// for the 6569 and 8565.
var timelinePAL = Timeline{
	SpritePointer:        [8]int{58, 60, 62, 1, 3, 5, 7, 9},
	SpriteBALead:         3,
	Refresh:              Span{First: 11, Last: 15},
	MatrixBA:             Span{First: 12, Last: 54},
	MatrixFetch:          Span{First: 15, Last: 54},
	Graphics:             Span{First: 16, Last: 55},
	VSPWindow:            Span{First: 16, Last: 54},
	UpdateVC:             14,
	UpdateRC:             58,
	UpdateMCBase:         16,
	CheckSpriteDMA:       []int{55, 56},
	CheckSpriteExpansion: 56,
	CheckSpriteDisplay:   58,
	BorderLeft40:         17,
	BorderLeft38:         18,
	BorderRight38:        56,
	BorderRight40:        57,
	LineStart:            1,
	FrameStart:           2,
	XPosStart:            0x194,
	XPosWrap:             0x1f8,
}

// Model6569 is the PAL NMOS chip.
var Model6569 = Model{
	ID:            "6569",
	Standard:      "PAL",
	ColorLatency:  false,
	CyclesPerLine: 63,
	ScreenHeight:  312,
	FirstDMALine:  0x30,
	LastDMALine:   0xf7,
	Rows25Top:     0x33,
	Rows25Bottom:  0xfb,
	Rows24Top:     0x37,
	Rows24Bottom:  0xf7,
	Timeline:      timelinePAL,
}

// Model8565 is the PAL HMOS chip.
var Model8565 = Model{
	ID:            "8565",
	Standard:      "PAL",
	ColorLatency:  true,
	CyclesPerLine: 63,
	ScreenHeight:  312,
	FirstDMALine:  0x30,
	LastDMALine:   0xf7,
	Rows25Top:     0x33,
	Rows25Bottom:  0xfb,
	Rows24Top:     0x37,
	Rows24Bottom:  0xf7,
	Timeline:      timelinePAL,
}

// LookupModel returns the Model for the ID. The ID is not case sensitive and
// the revision suffix of a PAL chip is ignored. For example, "6569R3" is the
// same as "6569".
func LookupModel(id string) (Model, error) {
	id = strings.ToUpper(strings.TrimSpace(id))

	for _, u := range unverifiedList {
		if strings.HasPrefix(id, u) {
			return Model{}, curated.Errorf(UnverifiedModel, id)
		}
	}

	if strings.HasPrefix(id, "6569") {
		return Model6569, nil
	}
	if strings.HasPrefix(id, "8565") {
		return Model8565, nil
	}

	return Model{}, curated.Errorf(UnknownModel, id)
}
