package rl

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// MovingAverage smooths a reward series with a trailing window of the
// given size. Windows at the start of the series shrink to the
// available prefix.
func MovingAverage(series []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(series))
	for i := range series {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		out[i] = stat.Mean(series[lo:i+1], nil)
	}
	return out
}

// PlotRewards draws one smoothed reward curve per experiment on a
// single figure and saves it as a PNG.
func PlotRewards(plotFile string, names []string, series [][]float64) error {
	if len(names) != len(series) {
		return fmt.Errorf("rl: %d names for %d reward series", len(names), len(series))
	}
	if err := os.MkdirAll(filepath.Dir(plotFile), os.ModePerm); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Episode rewards"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Cumulative reward"

	for i, rewards := range series {
		smoothed := MovingAverage(rewards, len(rewards)/20+1)
		points := make(plotter.XYs, len(smoothed))
		for j, v := range smoothed {
			points[j] = plotter.XY{X: float64(j), Y: v}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(names[i], line)
	}

	return p.Save(8*vg.Inch, 8*vg.Inch, plotFile)
}
