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

// Package ansi defines the CSI sequences used to colour and position text in
// the monitor.
package ansi

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/curated"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

var colors = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYellow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
)

// UnknownColor is returned by ColorBuild() for an unrecognised pen, paper or
// attribute.
const UnknownColor = "ansi: unknown %s (%s)"

// Pens is the table of colors to be used for text.
var Pens map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

func init() {
	Pens = make(map[string]string)
	for c := range colors {
		if c == "NORMAL" {
			continue
		}
		Pens[strings.ToLower(c)], _ = ColorBuild(c, "", "", true, false)
	}
	Pens["inverse"], _ = ColorBuild("", "", "inverse", false, false)
	Pens["bold"], _ = ColorBuild("", "", "bold", false, false)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	params := make([]string, 0, 3)

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", curated.Errorf(UnknownColor, "pen", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		params = append(params, fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, ok := colors[strings.ToUpper(paper)]
		if !ok {
			return "", curated.Errorf(UnknownColor, "paper", paper)
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		params = append(params, fmt.Sprintf("%d%d", target, c))
	}

	switch strings.ToUpper(attribute) {
	case "BOLD":
		params = append(params, fmt.Sprintf("%d", attrBold))
	case "UNDERLINE":
		params = append(params, fmt.Sprintf("%d", attrUnderline))
	case "INVERSE":
		params = append(params, fmt.Sprintf("%d", attrInverse))
	case "NORMAL", "":
	default:
		return "", curated.Errorf(UnknownColor, "attribute", attribute)
	}

	return fmt.Sprintf("\033[%sm", strings.Join(params, ";")), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CarriageReturn moves the cursor to the start of the current line without
// advancing to the next line.
const CarriageReturn = "\r"
