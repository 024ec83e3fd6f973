package main

import (
	"errors"
	"flag"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"

	"lindisc/pkg/core"
	"lindisc/pkg/data"
	"lindisc/pkg/dataprep"
	"lindisc/pkg/loader"
	"lindisc/pkg/model"
	"lindisc/pkg/stats"
)

type TrainRequest struct {
	SplitIndex   int     `json:"splitIndex"`
	Iterations   int     `json:"iterations"`
	LearningRate float64 `json:"learningRate"`
	Standardize  bool    `json:"standardize"`
}

type TrainResponse struct {
	RunID        string      `json:"runId"`
	Classes      []string    `json:"classes"`
	Weights      [][]float64 `json:"weights"`
	MSE          []float64   `json:"mse"`
	ErrorRates   []float64   `json:"errorRates"`
	TestError    float64     `json:"testErrorRate"`
	Confusion    [][]int     `json:"confusionMatrix"`
	TrainSamples int         `json:"trainSamples"`
	TestSamples  int         `json:"testSamples"`
}

const maxIterations = 100000

// train runs split -> (standardize) -> fit -> evaluate for one request.
func train(ds data.Dataset, req TrainRequest) (*TrainResponse, error) {
	if req.SplitIndex < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "splitIndex must be at least 1")
	}
	if req.Iterations < 0 || req.Iterations > maxIterations {
		return nil, fiber.NewError(fiber.StatusBadRequest, "iterations must be between 0 and 100000")
	}
	trainDS, testDS, err := loader.SplitPerClass(ds, req.SplitIndex)
	if err != nil {
		return nil, err
	}
	if req.Standardize {
		scaler := stats.NewStandardScaler()
		if trainDS.Samples, err = scaler.FitTransform(trainDS.Samples); err != nil {
			return nil, err
		}
		testDS.Samples = scaler.Transform(testDS.Samples)
	}

	classes := dataprep.NewClassSet(trainDS.Labels)
	clf := model.NewLinearClassifier(classes,
		model.WithLearningRate(req.LearningRate),
		model.WithIterations(req.Iterations),
	)
	res, err := clf.Fit(trainDS, testDS)
	if err != nil {
		return nil, err
	}
	ev, err := clf.Evaluate(testDS)
	if err != nil {
		return nil, err
	}

	return &TrainResponse{
		RunID:        uuid.NewString(),
		Classes:      classes.Names(),
		Weights:      core.Rows(res.W),
		MSE:          res.MSE,
		ErrorRates:   res.ErrorRate,
		TestError:    ev.ErrorRate,
		Confusion:    ev.Confusion.Counts,
		TrainSamples: trainDS.Len(),
		TestSamples:  testDS.Len(),
	}, nil
}

// statusFor maps library errors to HTTP errors.
func statusFor(err error) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe
	case errors.Is(err, loader.ErrInvalidSplitIndex),
		errors.Is(err, dataprep.ErrUnknownClass),
		errors.Is(err, core.ErrDimensionMismatch):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

// newApp wires the HTTP routes over an already loaded dataset.
func newApp(ds data.Dataset) *fiber.App {
	classes := dataprep.NewClassSet(ds.Labels)

	app := fiber.New()
	app.Use(logger.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/classes", func(c *fiber.Ctx) error {
		return c.JSON(classes.Names())
	})

	app.Post("/train", func(c *fiber.Ctx) error {
		req := TrainRequest{SplitIndex: 30, Iterations: 1000, LearningRate: 0.01}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		resp, err := train(ds, req)
		if err != nil {
			return statusFor(err)
		}
		return c.JSON(resp)
	})

	return app
}

func main() {
	inputPath := flag.String("input", "iris_dataset.csv", "Path to input CSV file")
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	ds, err := data.LoadCSV(*inputPath)
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}
	log.Printf("Loaded %d samples, classes %v", ds.Len(), dataprep.NewClassSet(ds.Labels).Names())

	log.Fatal(newApp(ds).Listen(*addr))
}
