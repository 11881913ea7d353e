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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/debugger/easyterm"
	"github.com/jetsetilly/gopher64/debugger/govern"
	"github.com/jetsetilly/gopher64/debugger/monitor"
	"github.com/jetsetilly/gopher64/digest"
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/modalflag"
	"github.com/jetsetilly/gopher64/performance"
	"github.com/jetsetilly/gopher64/performance/limiter"
	"github.com/jetsetilly/gopher64/prefs"
	"github.com/jetsetilly/gopher64/statsview"
	"github.com/jetsetilly/gopher64/version"
)

func main() {
	// #ctrlc cancels the context. each mode is expected to return promptly
	// when that happens
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TRACE", "MONITOR", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "TRACE":
		err = trace(md)

	case "MONITOR":
		err = monitorMode(ctx, md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// the flags that decide how the C64 is created. shared by all modes that run
// the emulation
type machineFlags struct {
	model  *string
	vspBug *bool
	seed   *int
	reu    *int
	script *string
	log    *bool
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	return &machineFlags{
		model:  md.AddString("model", preferences.DefaultModel, "VIC-II model"),
		vspBug: md.AddBool("vspbug", preferences.DefaultVSPBug, "emulate the VSP memory corruption"),
		seed:   md.AddInt("seed", 0, "random seed (0 for a time based seed)"),
		reu:    md.AddInt("reu", preferences.DefaultREUSize, "REU size in KB (0 for no REU)"),
		script: md.AddString("script", "", "CPU access script"),
		log:    md.AddBool("log", false, "echo debugging log to output"),
	}
}

// create a new C64 from the machine flags. the machine is reset and, if a
// script is specified, the scripted CPU is attached
func (f *machineFlags) create(output io.Writer) (*hardware.C64, error) {
	if *f.log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs.PushCommandLineStack(fmt.Sprintf("vicii.model::%s; vicii.vspbug::%v; hardware.seed::%d; reu.size::%d",
		*f.model, *f.vspBug, *f.seed, *f.reu))
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	c64, err := hardware.NewC64(environment.MainEmulation, p)
	if err != nil {
		return nil, err
	}
	c64.Reset()

	if *f.script != "" {
		sf, err := os.Open(*f.script)
		if err != nil {
			return nil, curated.Errorf("script: %v", err)
		}
		defer sf.Close()

		events, err := cpu.ParseScript(sf)
		if err != nil {
			return nil, err
		}
		c64.AttachCPU(cpu.NewScripted(c64.Clock, c64.Mem, c64.VIC, events))
	}

	return c64, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	frames := md.AddInt("frames", 1, "number of frames to run")
	realtime := md.AddBool("realtime", false, "limit emulation to the frame rate of the VIC-II model")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available=%v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	c64, err := mf.create(md.Output)
	if err != nil {
		return err
	}

	dig := digest.NewVideo(c64.VIC.Config)
	c64.VIC.SetRenderer(dig)

	if *stats {
		statsview.Launch(ctx, md.Output)
	}

	var lim *limiter.FpsLimiter
	if *realtime {
		lim, err = limiter.NewFPSLimiter(ctx, performance.FrameRate(c64.VIC.Config))
		if err != nil {
			return err
		}
	}

	lastFrame := c64.VIC.Frame
	performanceBrake := 0

	err = c64.RunForFrameCount(*frames, func(frame int) (govern.State, error) {
		if lim != nil && frame != lastFrame {
			lastFrame = frame
			lim.Wait()
		}

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			if ctx.Err() != nil {
				return govern.Ending, nil
			}
		}

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, c64.MachineInfoTerse())

	if s, ok := c64.CPU.(*cpu.Scripted); ok {
		for _, e := range s.Events {
			fmt.Fprintln(md.Output, e.String())
		}
	}

	fmt.Fprintf(md.Output, "%d frames %d cycles\n", dig.Frames, c64.Clock.Now())
	fmt.Fprintln(md.Output, dig.Hash())

	return nil
}

func trace(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	numCycles := md.AddInt("cycles", 63, "number of cycles to trace")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	c64, err := mf.create(md.Output)
	if err != nil {
		return err
	}

	traceCycles(md.Output, c64, *numCycles)

	return nil
}

// traceCycles steps the C64 and writes a single line for every cycle. the
// line is of the form:
//
//	line cycle fetch BA IRQ
func traceCycles(output io.Writer, c64 *hardware.C64, numCycles int) {
	for range numCycles {
		c64.Step()

		ba := 0
		if c64.VIC.BA {
			ba = 1
		}
		irq := 0
		if c64.IRQ() {
			irq = 1
		}

		fmt.Fprintf(output, "%03d %02d %-10s %d %d\n", c64.VIC.RasterLine, c64.VIC.RasterCycle+1,
			c64.VIC.Descriptor().Fetch, ba, irq)
	}
}

func monitorMode(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	color := md.AddBool("color", true, "use color in the status line")
	dumpDir := md.AddString("dump", ".", "directory for VIC-II dot files")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	c64, err := mf.create(md.Output)
	if err != nil {
		return err
	}

	mon := monitor.NewMonitor(c64, md.Output)
	mon.DumpDir = *dumpDir

	if !easyterm.IsTerminal(os.Stdin) {
		return mon.Run(ctx, os.Stdin)
	}

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()

	term.CBreakMode()
	mon.Color = *color

	return mon.Run(ctx, &term)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	c64, err := mf.create(md.Output)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, c64, *duration)
}
