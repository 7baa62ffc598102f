package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanbridge/origination-service/internal/domain/service"
	"github.com/loanbridge/origination-service/internal/domain/valueobject"
)

// RiskModelConfig holds configuration for the external risk model adapter.
type RiskModelConfig struct {
	// BaseURL is the base URL of the scoring model service.
	BaseURL string
	// APIKey is the authentication credential for the model API.
	APIKey string
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int
	// MaxRetries is the maximum number of retry attempts on transient failures.
	MaxRetries int
	// RetryBackoffMs is the base backoff duration in milliseconds between retries.
	RetryBackoffMs int
}

// DefaultRiskModelConfig returns sensible defaults for development.
func DefaultRiskModelConfig() RiskModelConfig {
	return RiskModelConfig{
		BaseURL:        "http://localhost:5000",
		TimeoutSeconds: 10,
		MaxRetries:     3,
		RetryBackoffMs: 200,
	}
}

type scoreRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	TermMonths   int             `json:"term_months"`
	Purpose      string          `json:"purpose"`
	CreditScore  int             `json:"credit_score"`
	AnnualIncome decimal.Decimal `json:"annual_income"`
}

type scoreResponse struct {
	RiskScore      int      `json:"risk_score"`
	RiskLevel      string   `json:"risk_level"`
	Recommendation string   `json:"recommendation"`
	Factors        []string `json:"factors"`
}

// RiskModelAdapter implements port.RiskScorer against an HTTP scoring model.
// Transient failures are retried with exponential backoff; callers are
// expected to fall back to the degraded result when the adapter errors.
type RiskModelAdapter struct {
	config RiskModelConfig
	client *http.Client
}

// NewRiskModelAdapter creates a new adapter with the given configuration.
func NewRiskModelAdapter(config RiskModelConfig) *RiskModelAdapter {
	return &RiskModelAdapter{
		config: config,
		client: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}
}

// Score calls POST {BaseURL}/predict and maps the response onto the domain
// result type.
func (a *RiskModelAdapter) Score(ctx context.Context, in service.RiskInput) (service.RiskResult, error) {
	body, err := json.Marshal(scoreRequest{
		Amount:       in.Amount,
		TermMonths:   in.TermMonths,
		Purpose:      in.Purpose,
		CreditScore:  in.CreditScore,
		AnnualIncome: in.AnnualIncome,
	})
	if err != nil {
		return service.RiskResult{}, fmt.Errorf("marshal score request: %w", err)
	}

	resp, err := a.postWithRetry(ctx, a.config.BaseURL+"/predict", body)
	if err != nil {
		return service.RiskResult{}, err
	}

	level, err := valueobject.NewRiskLevel(resp.RiskLevel)
	if err != nil {
		return service.RiskResult{}, fmt.Errorf("model returned %w", err)
	}
	recommendation, err := valueobject.NewRecommendation(resp.Recommendation)
	if err != nil {
		return service.RiskResult{}, fmt.Errorf("model returned %w", err)
	}

	return service.RiskResult{
		RiskScore:      resp.RiskScore,
		RiskLevel:      level,
		Recommendation: recommendation,
		Factors:        resp.Factors,
	}, nil
}

// postWithRetry posts the payload with exponential backoff retry logic.
func (a *RiskModelAdapter) postWithRetry(ctx context.Context, url string, body []byte) (scoreResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter.
			backoff := time.Duration(a.config.RetryBackoffMs) * time.Millisecond * (1 << uint(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(backoff) / 2))
			select {
			case <-ctx.Done():
				return scoreResponse{}, ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		result, err := a.post(ctx, url, body)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}

	return scoreResponse{}, fmt.Errorf("exhausted %d retries: %w", a.config.MaxRetries, lastErr)
}

func (a *RiskModelAdapter) post(ctx context.Context, url string, body []byte) (scoreResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return scoreResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return scoreResponse{}, fmt.Errorf("risk model request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return scoreResponse{}, fmt.Errorf("risk model returned %d: %s", resp.StatusCode, payload)
	}

	var result scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return scoreResponse{}, fmt.Errorf("decode score response: %w", err)
	}
	return result, nil
}
