package aiml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"resqcart/internal/pkg/config"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const rottenPrediction = "rottenapples"

type Client struct {
	baseURL    string
	http       *http.Client
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

func NewClient(cfg config.AIMLConfig) *Client {
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       httpClient,
		tracer:     otel.Tracer("resqcart/infra/aiml"),
		propagator: otel.GetTextMapPropagator(),
	}
}

func (c *Client) Endpoint() string {
	return c.baseURL
}

// Ping reports whether the model service answers at all. Any non-5xx reply counts.
func (c *Client) Ping(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "aiml.ping", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/openapi.json", nil)
	if err != nil {
		return errs.Wrap(err, "build ping request")
	}
	resp, err := c.do(req, span)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// Predict forwards one image to the model and labels the answer.
func (c *Client) Predict(ctx context.Context, filename, contentType string, image io.Reader) (*usecase.SpoilagePrediction, error) {
	ctx, span := c.tracer.Start(ctx, "aiml.predict", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, errs.Wrap(err, "create multipart part")
	}
	if _, err = io.Copy(part, image); err != nil {
		return nil, errs.Wrap(err, "copy image")
	}
	if err = mw.Close(); err != nil {
		return nil, errs.Wrap(err, "close multipart writer")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, errs.Wrap(err, "build predict request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req, span)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := errs.Newf("model service rejected image: %d %s", resp.StatusCode, strings.TrimSpace(string(msg)))
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, errs.Mark(err, usecase.ErrSpoilageImageRejected)
		}
		return nil, errs.Mark(err, usecase.ErrSpoilageModelUnavailable)
	}

	var raw struct {
		Prediction string  `json:"prediction"`
		Confidence float64 `json:"confidence"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode prediction"), usecase.ErrSpoilageModelUnavailable)
	}

	label := usecase.SpoilageLabelFresh
	if raw.Prediction == rottenPrediction {
		label = usecase.SpoilageLabelRotten
	}
	span.SetAttributes(
		attribute.String("aiml.label", label),
		attribute.Float64("aiml.confidence", raw.Confidence),
	)
	return &usecase.SpoilagePrediction{Prediction: raw.Prediction, Confidence: raw.Confidence, Label: label}, nil
}

// do injects the trace context and folds transport failures and 5xx into ErrSpoilageModelUnavailable.
func (c *Client) do(req *http.Request, span trace.Span) (*http.Response, error) {
	c.propagator.Inject(req.Context(), propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "model service unreachable")
		return nil, errs.Mark(errs.Wrap(err, "call model service"), usecase.ErrSpoilageModelUnavailable)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusInternalServerError {
		_ = resp.Body.Close()
		span.SetStatus(codes.Error, resp.Status)
		return nil, errs.Mark(errs.Newf("model service returned %d", resp.StatusCode), usecase.ErrSpoilageModelUnavailable)
	}
	return resp, nil
}
