package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"lindisc/pkg/data"
	"lindisc/pkg/dataprep"
	"lindisc/pkg/model"
	"lindisc/pkg/stats"
)

// WriteConfusionMatrix prints cm as a table: one row per predicted class, one
// column per true class, followed by per-class precision and recall.
func WriteConfusionMatrix(w io.Writer, cm *model.ConfusionMatrix) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	names := cm.Classes.Names()

	fmt.Fprintf(tw, "pred \\ true\t%s\t\n", strings.Join(names, "\t"))
	for p, name := range names {
		fmt.Fprintf(tw, "%s\t", name)
		for t := range names {
			fmt.Fprintf(tw, "%d\t", cm.At(p, t))
		}
		fmt.Fprintln(tw)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "class\tprecision\trecall\t\n")
	for c, name := range names {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t\n", name, cm.Precision(c), cm.Recall(c))
	}
	return tw.Flush()
}

// WriteFeatureSummary prints descriptive statistics of every feature, per class.
func WriteFeatureSummary(w io.Writer, ds data.Dataset, featureNames []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "feature\tclass\tn\tmean\tstd\tmin\tmedian\tmax\t")

	classes := dataprep.NewClassSet(ds.Labels)
	for j, feature := range featureNames {
		for _, class := range classes.Names() {
			var col []float64
			for i, l := range ds.Labels {
				if l == class {
					col = append(col, ds.Samples[i][j])
				}
			}
			s := stats.Describe(col)
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
				feature, class, s.N, s.Mean, s.Std, s.Min, s.Median, s.Max)
		}
	}
	return tw.Flush()
}
