package usecase

import (
	"context"
	"io"

	"resqcart/internal/pkg/errs"
)

var (
	// ErrSpoilageModelUnavailable means the model service could not be reached or answered with a server error.
	ErrSpoilageModelUnavailable = errs.New("spoilage model service unavailable")
	// ErrSpoilageImageRejected means the model service refused the upload itself (a 4xx answer).
	ErrSpoilageImageRejected = errs.New("spoilage model rejected the image")
)

const (
	SpoilageLabelRotten = "rotten"
	SpoilageLabelFresh  = "fresh"
)

type SpoilagePrediction struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Label      string  `json:"label"`
}

// SpoilagePredictor classifies produce images through the external model service.
type SpoilagePredictor interface {
	Ping(ctx context.Context) error
	Predict(ctx context.Context, filename, contentType string, image io.Reader) (*SpoilagePrediction, error)
	Endpoint() string
}
