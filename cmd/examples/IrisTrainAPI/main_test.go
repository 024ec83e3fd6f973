package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"lindisc/pkg/core"
	"lindisc/pkg/data"
	"lindisc/pkg/dataprep"
	"lindisc/pkg/loader"
)

// tinyIris has four well separated samples for each of three classes.
func tinyIris() data.Dataset {
	return data.Dataset{
		Samples: [][]float64{
			{5.0, 3.4}, {4.9, 3.1}, {5.1, 3.5}, {4.8, 3.0},
			{6.0, 2.2}, {5.9, 2.3}, {6.1, 2.1}, {5.8, 2.4},
			{7.2, 3.0}, {7.4, 2.9}, {7.1, 3.1}, {7.3, 3.0},
		},
		Labels: []string{
			"setosa", "setosa", "setosa", "setosa",
			"versicolor", "versicolor", "versicolor", "versicolor",
			"virginica", "virginica", "virginica", "virginica",
		},
	}
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(statusFor(err), &fe) {
		t.Fatalf("statusFor(%v) is not a *fiber.Error", err)
	}
	return fe.Code
}

func TestTrain(t *testing.T) {
	for _, standardize := range []bool{false, true} {
		t.Run(fmt.Sprintf("standardize=%v", standardize), func(t *testing.T) {
			resp, err := train(tinyIris(), TrainRequest{SplitIndex: 3, Iterations: 50, LearningRate: 0.05, Standardize: standardize})
			if err != nil {
				t.Fatal(err)
			}
			if resp.RunID == "" {
				t.Error("missing run id")
			}
			if resp.TrainSamples != 9 || resp.TestSamples != 3 {
				t.Errorf("train/test sizes = %d/%d, want 9/3", resp.TrainSamples, resp.TestSamples)
			}
			if len(resp.Classes) != 3 || resp.Classes[0] != "setosa" {
				t.Errorf("Classes = %v", resp.Classes)
			}
			if len(resp.Weights) != 3 || len(resp.Weights[0]) != 3 {
				t.Errorf("Weights shape = %dx%d, want 3x3", len(resp.Weights), len(resp.Weights[0]))
			}
			if len(resp.MSE) != 50 || len(resp.ErrorRates) != 50 {
				t.Errorf("series lengths = %d/%d, want 50", len(resp.MSE), len(resp.ErrorRates))
			}
			total := 0
			for _, row := range resp.Confusion {
				for _, n := range row {
					total += n
				}
			}
			if total != resp.TestSamples {
				t.Errorf("confusion matrix counts %d samples, want %d", total, resp.TestSamples)
			}
		})
	}
}

func TestTrainRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		req  TrainRequest
	}{
		{"zero split", TrainRequest{SplitIndex: 0, Iterations: 10, LearningRate: 0.01}},
		{"zero split standardized", TrainRequest{SplitIndex: 0, Iterations: 10, LearningRate: 0.01, Standardize: true}},
		{"negative split", TrainRequest{SplitIndex: -2, Iterations: 10, LearningRate: 0.01}},
		{"split beyond class size", TrainRequest{SplitIndex: 5, Iterations: 10, LearningRate: 0.01}},
		{"negative iterations", TrainRequest{SplitIndex: 3, Iterations: -1, LearningRate: 0.01}},
		{"too many iterations", TrainRequest{SplitIndex: 3, Iterations: maxIterations + 1, LearningRate: 0.01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := train(tinyIris(), tt.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := statusCode(t, err); code != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (err: %v)", code, err)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"fiber error", fiber.NewError(fiber.StatusTeapot, "tea"), fiber.StatusTeapot},
		{"split index", fmt.Errorf("split: %w", loader.ErrInvalidSplitIndex), fiber.StatusBadRequest},
		{"unknown class", fmt.Errorf("label 3: %w", dataprep.ErrUnknownClass), fiber.StatusBadRequest},
		{"dimension", fmt.Errorf("eval: %w", core.ErrDimensionMismatch), fiber.StatusBadRequest},
		{"other", errors.New("disk on fire"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusCode(t, tt.err); got != tt.want {
				t.Fatalf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	app := newApp(tinyIris())

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if body, _ := io.ReadAll(resp.Body); resp.StatusCode != fiber.StatusOK || string(body) != "ok" {
		t.Fatalf("GET /healthz = %d %q", resp.StatusCode, body)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/classes", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		t.Fatal(err)
	}
	if strings.Join(names, ",") != "setosa,versicolor,virginica" {
		t.Fatalf("GET /classes = %v", names)
	}

	tests := []struct {
		name string
		body string
		want int
	}{
		{"good run", `{"splitIndex":2,"iterations":20,"learningRate":0.05}`, fiber.StatusOK},
		{"good run standardized", `{"splitIndex":2,"iterations":20,"learningRate":0.05,"standardize":true}`, fiber.StatusOK},
		{"zero split", `{"splitIndex":0,"iterations":20}`, fiber.StatusBadRequest},
		{"zero split standardized", `{"splitIndex":0,"iterations":20,"standardize":true}`, fiber.StatusBadRequest},
		{"default split too large", `{}`, fiber.StatusBadRequest},
		{"too many iterations", `{"splitIndex":2,"iterations":1000000}`, fiber.StatusBadRequest},
		{"malformed body", `{"splitIndex":`, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/train", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.want {
				body, _ := io.ReadAll(resp.Body)
				t.Fatalf("POST /train = %d %s, want %d", resp.StatusCode, body, tt.want)
			}
			if tt.want != fiber.StatusOK {
				return
			}
			var out TrainResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatal(err)
			}
			if out.TrainSamples != 6 || out.TestSamples != 6 || len(out.MSE) != 20 {
				t.Fatalf("response = %+v", out)
			}
		})
	}
}
