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

package monitor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/debugger/easyterm"
	"github.com/jetsetilly/gopher64/debugger/easyterm/ansi"
	"github.com/jetsetilly/gopher64/debugger/govern"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/performance"
	"github.com/jetsetilly/gopher64/performance/limiter"
)

// Monitor drives a C64 from single key presses.
type Monitor struct {
	c64    *hardware.C64
	output io.Writer

	// the state of the monitor. either Paused or Running
	State govern.State

	// use ANSI sequences in the status line
	Color bool

	// directory in which the dot files are created
	DumpDir string

	// the state of the light pen input
	pen bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(c64 *hardware.C64, output io.Writer) *Monitor {
	return &Monitor{
		c64:     c64,
		output:  output,
		State:   govern.Paused,
		DumpDir: ".",
	}
}

const help = `space step cycle  l step line  f step frame  r run/pause
p light pen  d dump VIC-II  g show log  x reset  h help  q quit
`

// the number of log entries shown by the show log key
const logTail = 10

// Handle a single key press. Returns true if the monitor should quit.
func (mon *Monitor) Handle(key byte) (bool, error) {
	switch key {
	case ' ':
		mon.c64.Step()
	case 'l':
		mon.c64.StepLine()
	case 'f':
		mon.c64.StepFrame()
	case 'r':
		if mon.State == govern.Running {
			mon.State = govern.Paused
		} else {
			mon.State = govern.Running
		}
		return false, nil
	case 'p':
		mon.pen = !mon.pen
		mon.c64.VIC.SetLightPenState(mon.pen)
	case 'd':
		fn, err := mon.Dump()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(mon.output, "\nVIC-II state written to %s\n", fn)
		return false, nil
	case 'g':
		io.WriteString(mon.output, "\n")
		logger.Tail(mon.output, logTail)
		return false, nil
	case 'x':
		mon.c64.Reset()
		mon.pen = false
		mon.State = govern.Paused
	case 'h', '?':
		io.WriteString(mon.output, "\n"+help)
		return false, nil
	case 'q', easyterm.KeyInterrupt:
		return true, nil
	case easyterm.KeySuspend:
		easyterm.SuspendProcess()
		return false, nil
	default:
		return false, nil
	}

	mon.printStatus()
	return false, nil
}

// Status returns a single line summary of the machine.
func (mon *Monitor) Status() string {
	vic := mon.c64.VIC

	s := strings.Builder{}
	fmt.Fprintf(&s, "frame %d line %03d cycle %02d", vic.Frame, vic.RasterLine, vic.RasterCycle+1)

	if vic.BA {
		s.WriteString(mon.pen64("red", " BA"))
	} else {
		s.WriteString(" --")
	}
	if vic.BadLine {
		s.WriteString(mon.pen64("yellow", " badline"))
	}
	if vic.IdleState {
		s.WriteString(" idle")
	} else {
		s.WriteString(" display")
	}
	if vic.MainBorder {
		s.WriteString(" border")
	}
	if mon.c64.IRQ() {
		s.WriteString(mon.pen64("magenta", " IRQ"))
	}
	if mon.pen {
		s.WriteString(" pen")
	}
	if mon.c64.REU != nil {
		fmt.Fprintf(&s, " [%s]", mon.c64.REU)
	}

	return s.String()
}

func (mon *Monitor) pen64(pen string, s string) string {
	if !mon.Color {
		return s
	}
	return ansi.Pens[pen] + s + ansi.NormalPen
}

func (mon *Monitor) printStatus() {
	if mon.Color {
		io.WriteString(mon.output, ansi.CarriageReturn+ansi.ClearLine+mon.Status())
		return
	}
	io.WriteString(mon.output, mon.Status()+"\n")
}

// Dump writes a graph of the VIC-II chip state to a dot file in DumpDir.
// Returns the name of the file.
func (mon *Monitor) Dump() (string, error) {
	vic := mon.c64.VIC
	fn := filepath.Join(mon.DumpDir, fmt.Sprintf("vicii_%d_%03d_%02d.dot", vic.Frame, vic.RasterLine, vic.RasterCycle+1))

	f, err := os.Create(fn)
	if err != nil {
		return "", curated.Errorf("monitor: %v", err)
	}
	defer f.Close()

	state := vic.ChipState
	memviz.Map(f, &state)

	logger.Logf(mon.c64.Env, "monitor", "VIC-II state dumped to %s", fn)

	return fn, nil
}

// Run the monitor until the quit key is pressed, the input is exhausted or
// the context is cancelled.
func (mon *Monitor) Run(ctx context.Context, input io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan byte)
	go func() {
		defer close(keys)
		r := bufio.NewReader(input)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case keys <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	lim, err := limiter.NewFPSLimiter(ctx, performance.FrameRate(mon.c64.VIC.Config))
	if err != nil {
		return err
	}

	io.WriteString(mon.output, help)
	mon.printStatus()

	for {
		if mon.State == govern.Running {
			select {
			case <-ctx.Done():
				return nil
			case k, ok := <-keys:
				if !ok {
					return nil
				}
				if quit, err := mon.Handle(k); quit || err != nil {
					return err
				}
			default:
				lim.Wait()
				mon.c64.StepFrame()
				mon.printStatus()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok {
				return nil
			}
			if quit, err := mon.Handle(k); quit || err != nil {
				return err
			}
		}
	}
}
