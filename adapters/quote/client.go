// Package quote submits per-unit quote payloads to the external CPQ
// service. Transient failures (timeouts, rate limits, 5xx) retry with
// bounded exponential backoff; permanent rejections are recorded per unit
// so a batch never aborts on one bad quote.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"genmaint-cost/internal/config"
	"genmaint-cost/internal/errors"
	"genmaint-cost/internal/logging"
)

// quoteResponse mirrors the CPQ service's success payload. The service has
// returned the quote identifier under different keys across versions.
type quoteResponse struct {
	ZohoQuoteID string `json:"zohoQuoteId"`
	QuoteID     string `json:"quoteId"`
	Quote       struct {
		ID string `json:"id"`
	} `json:"quote"`
}

func (r quoteResponse) id() string {
	switch {
	case r.ZohoQuoteID != "":
		return r.ZohoQuoteID
	case r.QuoteID != "":
		return r.QuoteID
	case r.Quote.ID != "":
		return r.Quote.ID
	default:
		return "N/A"
	}
}

// Client is a resty-backed CPQ client
type Client struct {
	http           *resty.Client
	log            *zap.Logger
	maxAttempts    int
	initialBackoff time.Duration
}

// NewClient builds a quote client from application configuration
func NewClient(cfg config.QuoteConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	initial := time.Duration(cfg.InitialBackoffSeconds) * time.Second
	if initial <= 0 {
		initial = time.Second
	}

	return &Client{
		http:           httpClient,
		log:            logging.Named("quote"),
		maxAttempts:    maxAttempts,
		initialBackoff: initial,
	}
}

// Submit sends one quote payload, retrying transient failures with
// exponential backoff up to the configured attempt budget.
func (c *Client) Submit(ctx context.Context, payload Payload) (Submission, error) {
	var submission Submission

	operation := func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(payload).
			Post("/api/generate-pdf")
		if err != nil {
			return errors.ExternalTransient("quote submission failed", err)
		}

		status := resp.StatusCode()
		switch {
		case status == http.StatusOK:
			// The service has served JSON success bodies without a JSON
			// Content-Type; decode the body regardless of the header.
			var parsed quoteResponse
			if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
				return backoff.Permanent(errors.ExternalPermanent("decoding quote response", err))
			}
			submission = Submission{Unit: payload.unitID(), QuoteID: parsed.id()}
			return nil
		case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
			return errors.ExternalTransient(
				fmt.Sprintf("quote service returned HTTP %d", status), nil)
		default:
			// Other 4xx: the payload itself is rejected; retrying
			// cannot succeed.
			return backoff.Permanent(errors.ExternalPermanent(
				fmt.Sprintf("quote service rejected request: HTTP %d: %.200s", status, resp.String()), nil))
		}
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialBackoff
	policy.MaxInterval = 60 * time.Second

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxAttempts-1)), ctx))
	if err != nil {
		return Submission{}, err
	}
	return submission, nil
}

// SubmitBatch sends every payload, accumulating successes and failures.
// One failed unit never stops the rest of the batch.
func (c *Client) SubmitBatch(ctx context.Context, payloads []Payload) *Report {
	report := &Report{Total: len(payloads)}

	for i, payload := range payloads {
		unit := payload.unitID()
		c.log.Info("submitting quote",
			zap.String("unit", unit),
			zap.Int("index", i+1),
			zap.Int("total", len(payloads)))

		submission, err := c.Submit(ctx, payload)
		if err != nil {
			c.log.Error("quote submission failed",
				zap.String("unit", unit),
				zap.Error(err))
			report.Failed = append(report.Failed, SubmissionFailure{
				Unit:  unit,
				Error: err.Error(),
			})
			continue
		}

		c.log.Info("quote accepted",
			zap.String("unit", unit),
			zap.String("quote_id", submission.QuoteID))
		report.Successful = append(report.Successful, submission)
	}

	return report
}
