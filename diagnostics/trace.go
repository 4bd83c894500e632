// Package diagnostics records and plots the P-H flash driver's outer
// Newton-loop convergence history using gonum/plot: a small config
// struct of optional styling fields, sane defaults, and a single Draw
// call that saves an image file.
package diagnostics

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var validExts = map[string]bool{
	".eps": true, ".jpg": true, ".jpeg": true, ".pdf": true,
	".png": true, ".svg": true, ".tex": true, ".tif": true, ".tiff": true,
}

// Color is an alias for image/color.Color.
type Color = color.Color

// Standard colors provided for convenience, matching the palette used
// elsewhere in this module's plotting code.
var (
	Red   Color = color.RGBA{R: 255, A: 255}
	Blue  Color = color.RGBA{B: 255, A: 255}
	Black Color = color.RGBA{A: 255}
	Grey  Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Length is an alias for vg.Length.
type Length = vg.Length

// Trace accumulates the outer loop's per-iteration history: trial
// temperature and enthalpy residual. It is populated by the flash
// package when Options.Trace is non-nil and is otherwise unused.
type Trace struct {
	Iteration   []int
	Temperature []float64
	DeltaH      []float64
}

// Record appends one outer-iteration's (T, deltaH) to the trace.
func (t *Trace) Record(iter int, temperature, deltaH float64) {
	t.Iteration = append(t.Iteration, iter)
	t.Temperature = append(t.Temperature, temperature)
	t.DeltaH = append(t.DeltaH, deltaH)
}

// TraceConfig customizes the appearance of a convergence-trace plot.
type TraceConfig struct {
	Title           string
	TitleColor      Color
	TemperatureColor Color
	ResidualColor   Color
	Width, Height   Length
}

// DrawConvergence renders the temperature trajectory against outer-loop
// iteration count on a single panel, saved to output. It does not draw
// |ΔH| (DrawResidual does), and cfg.ResidualColor is not used.
func DrawConvergence(cfg *TraceConfig, output string, trace *Trace) error {
	if cfg == nil {
		return errors.New("configuration error: config cannot be nil")
	}
	if trace == nil || len(trace.Iteration) == 0 {
		return errors.New("configuration error: trace has no recorded iterations")
	}
	ext := filepath.Ext(output)
	if !validExts[ext] {
		return fmt.Errorf("invalid file extension: %s", ext)
	}

	tPlot := plot.New()
	if cfg.Title == "" {
		tPlot.Title.Text = "Outer-loop temperature trajectory"
	} else {
		tPlot.Title.Text = cfg.Title
	}
	if cfg.TitleColor != nil {
		tPlot.Title.TextStyle.Color = cfg.TitleColor
	}
	tPlot.X.Label.Text = "outer iteration"
	tPlot.Y.Label.Text = "T (K)"

	tPts := make(plotter.XYs, len(trace.Iteration))
	for i := range trace.Iteration {
		tPts[i] = plotter.XY{X: float64(trace.Iteration[i]), Y: trace.Temperature[i]}
	}
	tLine, err := plotter.NewLine(tPts)
	if err != nil {
		return fmt.Errorf("diagnostics: building temperature trace: %w", err)
	}
	if cfg.TemperatureColor == nil {
		tLine.Color = Blue
	} else {
		tLine.Color = cfg.TemperatureColor
	}
	tPlot.Add(tLine)

	width := cfg.Width
	if width == 0 {
		width = 6 * vg.Inch
	}
	height := cfg.Height
	if height == 0 {
		height = 4 * vg.Inch
	}
	return tPlot.Save(width, height, output)
}

// ResidualConfig customizes the appearance of a residual-only plot, used
// when the caller wants a quick log-scale look at |ΔH| decay.
type ResidualConfig struct {
	Title         string
	ResidualColor Color
	Width, Height Length
}

// DrawResidual renders |ΔH| against outer-loop iteration, saved to
// output.
func DrawResidual(cfg *ResidualConfig, output string, trace *Trace) error {
	if cfg == nil {
		return errors.New("configuration error: config cannot be nil")
	}
	if trace == nil || len(trace.Iteration) == 0 {
		return errors.New("configuration error: trace has no recorded iterations")
	}
	ext := filepath.Ext(output)
	if !validExts[ext] {
		return fmt.Errorf("invalid file extension: %s", ext)
	}

	p := plot.New()
	if cfg.Title == "" {
		p.Title.Text = "Enthalpy residual |H* - H| by iteration"
	} else {
		p.Title.Text = cfg.Title
	}
	p.X.Label.Text = "outer iteration"
	p.Y.Label.Text = "|ΔH| (J/mol)"

	pts := make(plotter.XYs, len(trace.Iteration))
	for i := range trace.Iteration {
		d := trace.DeltaH[i]
		if d < 0 {
			d = -d
		}
		pts[i] = plotter.XY{X: float64(trace.Iteration[i]), Y: d}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("diagnostics: building residual trace: %w", err)
	}
	if cfg.ResidualColor == nil {
		line.Color = Red
	} else {
		line.Color = cfg.ResidualColor
	}
	p.Add(line)

	width := cfg.Width
	if width == 0 {
		width = 6 * vg.Inch
	}
	height := cfg.Height
	if height == 0 {
		height = 4 * vg.Inch
	}
	return p.Save(width, height, output)
}
