package report

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"lindisc/pkg/data"
	"lindisc/pkg/dataprep"
	"lindisc/pkg/model"
)

var classColors = []color.NRGBA{
	{R: 230, G: 60, B: 60, A: 140},
	{R: 60, G: 160, B: 60, A: 140},
	{R: 60, G: 90, B: 230, A: 140},
	{R: 220, G: 160, B: 30, A: 140},
}

// SeriesXYs turns a per-iteration series into plot points (iteration, value).
func SeriesXYs(series []float64) plotter.XYs {
	pts := make(plotter.XYs, len(series))
	for i, v := range series {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}

// PlotSeries draws one line per training run, labelled by its learning rate.
// pick selects the series to draw, e.g. the MSE or the error rate.
func PlotSeries(results []*model.Result, pick func(*model.Result) []float64, ylabel, filename string) error {
	p := plot.New()
	p.Title.Text = ylabel + " per iteration"
	p.X.Label.Text = "Iteration number"
	p.Y.Label.Text = ylabel

	lines := make([]interface{}, 0, 2*len(results))
	for _, r := range results {
		lines = append(lines, "α="+strconv.FormatFloat(r.LearningRate, 'g', -1, 64), SeriesXYs(pick(r)))
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// PlotHistograms writes one histogram per feature into dir, each overlaying
// the measurements of every class. It returns the files written.
func PlotHistograms(ds data.Dataset, featureNames []string, bins int, dir string) ([]string, error) {
	classes := dataprep.NewClassSet(ds.Labels)
	var files []string
	for j, name := range featureNames {
		p := plot.New()
		p.Title.Text = name
		p.X.Label.Text = "Measurement [cm]"
		p.Y.Label.Text = "Number of samples"

		for c, class := range classes.Names() {
			var vals plotter.Values
			for i, l := range ds.Labels {
				if l == class {
					vals = append(vals, ds.Samples[i][j])
				}
			}
			if len(vals) == 0 {
				continue
			}
			h, err := plotter.NewHist(vals, bins)
			if err != nil {
				return files, fmt.Errorf("report: histogram %q/%q: %w", name, class, err)
			}
			h.FillColor = classColors[c%len(classColors)]
			p.Add(h)
			p.Legend.Add(class, h)
		}

		filename := filepath.Join(dir, fmt.Sprintf("histogram_%d.png", j))
		if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
			return files, err
		}
		files = append(files, filename)
	}
	return files, nil
}

// confusionGrid adapts a ConfusionMatrix to plotter.GridXYZ: columns are
// true classes, rows are predicted classes.
type confusionGrid struct{ cm *model.ConfusionMatrix }

func (g confusionGrid) Dims() (c, r int)   { n := g.cm.Classes.Len(); return n, n }
func (g confusionGrid) Z(c, r int) float64 { return float64(g.cm.At(r, c)) }
func (g confusionGrid) X(c int) float64    { return float64(c) }
func (g confusionGrid) Y(r int) float64    { return float64(r) }

// PlotConfusionMatrix renders cm as an annotated heatmap.
func PlotConfusionMatrix(cm *model.ConfusionMatrix, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "True class"
	p.Y.Label.Text = "Predicted class"

	p.Add(plotter.NewHeatMap(confusionGrid{cm}, palette.Heat(12, 1)))

	n := cm.Classes.Len()
	labels := plotter.XYLabels{}
	ticks := make([]plot.Tick, n)
	for i := range n {
		ticks[i] = plot.Tick{Value: float64(i), Label: cm.Classes.Name(i)}
		for j := range n {
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(j), Y: float64(i)})
			labels.Labels = append(labels.Labels, strconv.Itoa(cm.At(i, j)))
		}
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	p.Add(l)
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	return p.Save(6*vg.Inch, 5*vg.Inch, filename)
}
