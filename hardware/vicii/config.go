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

package vicii

import (
	"fmt"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/vicii/cycles"
)

// Sentinal errors returned by Configure() and NewVICII().
const (
	InvalidGeometry = "vicii: invalid geometry: %s"
	InvalidWindow   = "vicii: invalid %s window (%d to %d)"
	NoEnvironment   = "vicii: no environment"
)

// Window is a range of raster lines. For the DMA window both lines are
// inclusive. For the display windows the Bottom line is the first line of
// the lower border.
type Window struct {
	Top    int
	Bottom int
}

func (w Window) String() string {
	return fmt.Sprintf("%03x-%03x", w.Top, w.Bottom)
}

// Config is the configuration for the VIC-II. Zero values are replaced by
// the default value for the model.
type Config struct {
	Model         string
	CyclesPerLine int
	ScreenHeight  int

	// the lines on which bad lines may occur
	DMA Window

	// display windows for the 25 row and 24 row modes
	Rows25 Window
	Rows24 Window
}

func (cfg Config) String() string {
	return fmt.Sprintf("%s %dx%d dma=%s rows25=%s rows24=%s", cfg.Model, cfg.CyclesPerLine,
		cfg.ScreenHeight, cfg.DMA, cfg.Rows25, cfg.Rows24)
}

// the maximum height of a screen. the raster line register is nine bits
const maxScreenHeight = 512

// resolve replaces zero values in the configuration with the defaults for the
// model and checks the result for validity.
func (cfg Config) resolve() (Config, cycles.Model, error) {
	model, err := cycles.LookupModel(cfg.Model)
	if err != nil {
		return cfg, model, err
	}

	cfg.Model = model.ID

	if cfg.CyclesPerLine == 0 {
		cfg.CyclesPerLine = model.CyclesPerLine
	}
	if cfg.ScreenHeight == 0 {
		cfg.ScreenHeight = model.ScreenHeight
	}
	if cfg.DMA == (Window{}) {
		cfg.DMA = Window{Top: model.FirstDMALine, Bottom: model.LastDMALine}
	}
	if cfg.Rows25 == (Window{}) {
		cfg.Rows25 = Window{Top: model.Rows25Top, Bottom: model.Rows25Bottom}
	}
	if cfg.Rows24 == (Window{}) {
		cfg.Rows24 = Window{Top: model.Rows24Top, Bottom: model.Rows24Bottom}
	}

	// the timeline for a model is only valid for the line length it was
	// measured for
	if cfg.CyclesPerLine != model.CyclesPerLine {
		return cfg, model, curated.Errorf(InvalidGeometry,
			fmt.Sprintf("%s has %d cycles per line", model.ID, model.CyclesPerLine))
	}

	if cfg.ScreenHeight <= 0 || cfg.ScreenHeight > maxScreenHeight {
		return cfg, model, curated.Errorf(InvalidGeometry,
			fmt.Sprintf("screen height of %d lines", cfg.ScreenHeight))
	}

	if cfg.DMA.Top < 0 || cfg.DMA.Top > cfg.DMA.Bottom || cfg.DMA.Bottom >= cfg.ScreenHeight {
		return cfg, model, curated.Errorf(InvalidWindow, "DMA", cfg.DMA.Top, cfg.DMA.Bottom)
	}

	for _, w := range []struct {
		name string
		win  Window
	}{
		{name: "25 row", win: cfg.Rows25},
		{name: "24 row", win: cfg.Rows24},
	} {
		if w.win.Top <= 0 || w.win.Top >= w.win.Bottom || w.win.Bottom >= cfg.ScreenHeight {
			return cfg, model, curated.Errorf(InvalidWindow, w.name, w.win.Top, w.win.Bottom)
		}
	}

	return cfg, model, nil
}
