// Package main renders an interpolated camera trajectory into a
// self-contained HTML scatter chart for in-browser inspection.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/campath/internal/camera"
	"github.com/banshee-data/campath/internal/fsutil"
)

type toolConfig struct {
	InputFile  string
	OutputFile string
	MaxPoints  int
}

func parseFlags() toolConfig {
	var cfg toolConfig
	flag.StringVar(&cfg.InputFile, "input", "", "Interpolated cameras JSON file to chart (required)")
	flag.StringVar(&cfg.OutputFile, "output", "path_chart.html", "Output HTML file")
	flag.IntVar(&cfg.MaxPoints, "max-points", 8000, "Maximum points to plot; larger inputs are strided down")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	if cfg.InputFile == "" {
		log.Fatal("Input file is required")
	}
	if cfg.MaxPoints < 100 {
		cfg.MaxPoints = 100
	}

	fsys := fsutil.OSFileSystem{}
	records, err := camera.LoadRecords(fsys, cfg.InputFile)
	if err != nil {
		log.Fatalf("Failed to load camera records: %v", err)
	}
	if len(records) == 0 {
		log.Fatal("No camera records in input file")
	}

	// Downsample by stride to stay within MaxPoints.
	stride := 1
	if len(records) > cfg.MaxPoints {
		stride = int(math.Ceil(float64(len(records)) / float64(cfg.MaxPoints)))
	}

	data := make([]opts.ScatterData, 0, len(records)/stride+1)
	maxAbs := 0.0
	for i := 0; i < len(records); i += stride {
		pos := records[i].Position
		if len(pos) != 3 {
			continue
		}
		if math.Abs(pos[0]) > maxAbs {
			maxAbs = math.Abs(pos[0])
		}
		if math.Abs(pos[1]) > maxAbs {
			maxAbs = math.Abs(pos[1])
		}
		// Third dimension drives the visual map: frame index along the path.
		data = append(data, opts.ScatterData{Value: []interface{}{pos[0], pos[1], i}})
	}

	// Small padding so points at the edges stay visible.
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Camera Path", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Camera Path (XY)", Subtitle: fmt.Sprintf("frames=%d stride=%d", len(records), stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (world)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (world)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(len(records)),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#3e4989", "#26828e", "#35b779", "#b5de2b", "#fde725"}},
		}),
	)

	scatter.AddSeries("path", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}
	if err := fsys.WriteFile(cfg.OutputFile, buf.Bytes(), 0644); err != nil {
		log.Fatalf("Failed to write chart: %v", err)
	}

	log.Printf("[PathChart] wrote %d points to %s", len(data), cfg.OutputFile)
}
