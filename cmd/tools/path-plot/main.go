// Package main renders an interpolated camera trajectory to PNG plots for
// quick visual inspection: a top-down XY view of the path plus per-axis
// position series over the frame index.
package main

import (
	"flag"
	"image/color"
	"log"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/campath/internal/camera"
	"github.com/banshee-data/campath/internal/fsutil"
)

type toolConfig struct {
	InputFile string
	OutputDir string
	Stride    int
}

func parseFlags() toolConfig {
	var cfg toolConfig
	flag.StringVar(&cfg.InputFile, "input", "", "Interpolated cameras JSON file to plot (required)")
	flag.StringVar(&cfg.OutputDir, "output", ".", "Directory for the generated PNG files")
	flag.IntVar(&cfg.Stride, "stride", 1, "Plot every Nth frame (1 = all)")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	if cfg.InputFile == "" {
		log.Fatal("Input file is required")
	}
	if cfg.Stride < 1 {
		cfg.Stride = 1
	}

	fsys := fsutil.OSFileSystem{}
	records, err := camera.LoadRecords(fsys, cfg.InputFile)
	if err != nil {
		log.Fatalf("Failed to load camera records: %v", err)
	}
	if len(records) == 0 {
		log.Fatal("No camera records in input file")
	}

	if err := fsys.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	if err := plotPathXY(records, cfg); err != nil {
		log.Fatalf("Failed to plot XY path: %v", err)
	}
	if err := plotAxes(records, cfg); err != nil {
		log.Fatalf("Failed to plot axis series: %v", err)
	}

	log.Printf("[PathPlot] plotted %d frames (stride %d) to %s", len(records), cfg.Stride, cfg.OutputDir)
}

// plotPathXY draws the camera path projected onto the world XY plane.
func plotPathXY(records []camera.Record, cfg toolConfig) error {
	p := plot.New()
	p.Title.Text = "Camera path (top-down XY)"
	p.X.Label.Text = "X (world)"
	p.Y.Label.Text = "Y (world)"

	pts := make(plotter.XYs, 0, len(records)/cfg.Stride+1)
	for i := 0; i < len(records); i += cfg.Stride {
		pos := records[i].Position
		if len(pos) != 3 {
			continue
		}
		pts = append(pts, plotter.XY{X: pos[0], Y: pos[1]})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	line.Color = color.RGBA{R: 50, G: 100, B: 220, A: 255}
	p.Add(line)
	p.Legend.Add("path", line)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 8*vg.Inch, filepath.Join(cfg.OutputDir, "path_xy.png"))
}

// plotAxes draws X, Y and Z position against the frame index on one plot.
func plotAxes(records []camera.Record, cfg toolConfig) error {
	p := plot.New()
	p.Title.Text = "Camera position per axis"
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "position (world)"

	colors := []color.Color{
		color.RGBA{R: 220, G: 60, B: 60, A: 255},
		color.RGBA{R: 60, G: 170, B: 60, A: 255},
		color.RGBA{R: 60, G: 90, B: 220, A: 255},
	}
	labels := []string{"x", "y", "z"}

	for axis := 0; axis < 3; axis++ {
		pts := make(plotter.XYs, 0, len(records)/cfg.Stride+1)
		for i := 0; i < len(records); i += cfg.Stride {
			pos := records[i].Position
			if len(pos) != 3 {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(i), Y: pos[axis]})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Width = vg.Points(1)
		line.Color = colors[axis]
		p.Add(line)
		p.Legend.Add(labels[axis], line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p.Save(14*vg.Inch, 6*vg.Inch, filepath.Join(cfg.OutputDir, "path_axes.png"))
}
