package main

import (
	"flag"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"lindisc/pkg/data"
	"lindisc/pkg/dataprep"
	"lindisc/pkg/loader"
	"lindisc/pkg/model"
	"lindisc/pkg/report"
	"lindisc/pkg/stats"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input       : Path to the Iris CSV (4 measurements + class name per row)
// --split       : Samples per class that go to the training set (rest is test)
// --iters       : Iterations per learning rate in the sweep
// --alphas      : Comma separated learning rates to sweep
// --final-iters : Iterations for the final model (trained and scored on the train set)
// --final-alpha : Learning rate for the final model
// --plots       : Directory for PNG plots. Empty disables plotting
// --standardize : Standardize features with train-set mean/std before training
//
// Example:
//   go run ./cmd/examples/IrisLinearClassifier --input iris_dataset.csv --plots out
//
// ---------------------------------------------------------------------
//

var featureNames = []string{"Sepal length", "Sepal width", "Petal length", "Petal width"}

func parseRates(s string) ([]float64, error) {
	var rates []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad learning rate %q: %w", f, err)
		}
		rates = append(rates, v)
	}
	return rates, nil
}

// sweep trains one independent model per learning rate, each in its own
// goroutine. Results come back in the order of rates.
func sweep(train, eval model.LabeledSet, iterations int, rates []float64) ([]*model.Result, error) {
	results := make([]*model.Result, len(rates))
	errs := make([]error, len(rates))
	var wg sync.WaitGroup
	for i, lr := range rates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := model.Train(train, eval, iterations, lr)
			if err != nil {
				errs[i] = fmt.Errorf("learning rate %g: %w", lr, err)
				return
			}
			results[i] = res
		}()
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

func main() {
	// ---- CLI Flags ----
	inputPath := flag.String("input", "iris_dataset.csv", "Path to input CSV file")
	splitIndex := flag.Int("split", 30, "Training samples per class")
	iters := flag.Int("iters", 1000, "Iterations per learning rate in the sweep")
	alphas := flag.String("alphas", "0.0025,0.005,0.0075,0.01", "Learning rates to sweep")
	finalIters := flag.Int("final-iters", 300, "Iterations for the final model")
	finalAlpha := flag.Float64("final-alpha", 0.005, "Learning rate for the final model")
	plotDir := flag.String("plots", ".", "Directory for plots (empty = no plots)")
	standardize := flag.Bool("standardize", false, "Standardize features using train statistics")
	flag.Parse()

	rates, err := parseRates(*alphas)
	if err != nil {
		log.Fatalf("Error parsing --alphas: %v", err)
	}

	// ---- Load ----
	ds, err := data.LoadCSV(*inputPath)
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}
	fmt.Printf("Loaded %d samples from %s\n", ds.Len(), *inputPath)
	if ds.Len() > 0 && len(ds.Samples[0]) != len(featureNames) {
		log.Fatalf("Expected %d features per sample, got %d", len(featureNames), len(ds.Samples[0]))
	}

	fmt.Println("\nFeature summary:")
	if err := report.WriteFeatureSummary(os.Stdout, ds, featureNames); err != nil {
		log.Fatalf("Error writing summary: %v", err)
	}
	if *plotDir != "" {
		if err := os.MkdirAll(*plotDir, 0o755); err != nil {
			log.Fatalf("Error creating plot directory: %v", err)
		}
		files, err := report.PlotHistograms(ds, featureNames, 10, *plotDir)
		if err != nil {
			log.Fatalf("Error plotting histograms: %v", err)
		}
		fmt.Printf("Saved %d histograms to %s\n", len(files), *plotDir)
	}

	// ---- Split ----
	train, test, err := loader.SplitPerClass(ds, *splitIndex)
	if err != nil {
		log.Fatalf("Error splitting dataset: %v", err)
	}
	fmt.Printf("\nTrain size: %d, Test size: %d\n", train.Len(), test.Len())

	if *standardize {
		scaler := stats.NewStandardScaler()
		if train.Samples, err = scaler.FitTransform(train.Samples); err != nil {
			log.Fatalf("Error standardizing: %v", err)
		}
		test.Samples = scaler.Transform(test.Samples)
		fmt.Println("Standardized features with train mean/std")
	}

	classes := dataprep.NewClassSet(train.Labels)
	fmt.Printf("Classes: %v\n", classes.Names())

	// ---- Final model (train vs train) ----
	clf := model.NewLinearClassifier(classes,
		model.WithLearningRate(*finalAlpha),
		model.WithIterations(*finalIters),
	)
	start := time.Now()
	if _, err := clf.Fit(train, train); err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	fmt.Printf("Trained final model (α=%g, %d iterations) in %v\n", *finalAlpha, *finalIters, time.Since(start))

	// ---- Learning-rate sweep (train vs test) ----
	trainSet, err := clf.Labeled(train)
	if err != nil {
		log.Fatalf("Error encoding train set: %v", err)
	}
	testSet, err := clf.Labeled(test)
	if err != nil {
		log.Fatalf("Error encoding test set: %v", err)
	}
	start = time.Now()
	results, err := sweep(trainSet, testSet, *iters, rates)
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}
	fmt.Printf("Swept %d learning rates in %v\n", len(rates), time.Since(start))
	for _, r := range results {
		if n := len(r.ErrorRate); n > 0 {
			fmt.Printf("  α=%-8g final MSE=%.4f  error rate=%.4f\n", r.LearningRate, r.MSE[n-1], r.ErrorRate[n-1])
		}
	}
	if *plotDir != "" {
		mseFile := filepath.Join(*plotDir, "mse.png")
		if err := report.PlotSeries(results, func(r *model.Result) []float64 { return r.MSE }, "MSE", mseFile); err != nil {
			log.Fatalf("Error plotting MSE: %v", err)
		}
		errFile := filepath.Join(*plotDir, "error_rate.png")
		if err := report.PlotSeries(results, func(r *model.Result) []float64 { return r.ErrorRate }, "Error rate", errFile); err != nil {
			log.Fatalf("Error plotting error rates: %v", err)
		}
		fmt.Printf("Saved %s and %s\n", mseFile, errFile)
	}

	// ---- Final evaluation on the test set ----
	ev, err := clf.Evaluate(test)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}
	color.New(color.FgGreen, color.Bold).Printf("\nError rate: %.4f\n", ev.ErrorRate)
	fmt.Println("Confusion matrix:")
	if err := report.WriteConfusionMatrix(os.Stdout, ev.Confusion); err != nil {
		log.Fatalf("Error writing confusion matrix: %v", err)
	}
	if *plotDir != "" {
		cmFile := filepath.Join(*plotDir, "confusion_matrix.png")
		if err := report.PlotConfusionMatrix(ev.Confusion, "Confusion matrix", cmFile); err != nil {
			log.Fatalf("Error plotting confusion matrix: %v", err)
		}
		fmt.Printf("Saved %s\n", cmFile)
	}
}
