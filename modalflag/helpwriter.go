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

package modalflag

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// the first line of the flag package's usage message
const usageBanner = "Usage:"

// helpWriter collects the usage message written by the flag package so that
// it can be reformatted with the mode path and the list of sub-modes.
type helpWriter struct {
	bytes.Buffer
}

// Clear contents of output buffer.
func (hw *helpWriter) Clear() {
	hw.Reset()
}

// Help writes the collected usage message to output. The mode is the path of
// the mode being parsed, eg. "RUN" or "PERFORMANCE". It is empty for the top
// level mode.
func (hw *helpWriter) Help(output io.Writer, mode string, subModes []string, additionalHelp string) {
	banner, flags, _ := strings.Cut(hw.String(), "\n")

	if flags == "" && len(subModes) == 0 {
		if mode == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", mode)
		}
		return
	}

	if banner == "" {
		banner = usageBanner
	}
	if mode == "" {
		fmt.Fprintln(output, banner)
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", banner, mode)
	}

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
