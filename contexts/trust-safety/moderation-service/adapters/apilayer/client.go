package apilayer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	domainerrors "minerva/contexts/trust-safety/moderation-service/domain/errors"
)

// Client calls the apilayer Bad Words API. Safe for concurrent use; the
// embedded limiter throttles outbound calls because the collaborator itself
// is rate-limited.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	apiURL     string
	apiKey     string
}

type Config struct {
	APIURL string
	APIKey string

	// RequestsPerSecond defaults to 2 with a burst of 2, matching the
	// free-tier quota of the collaborator.
	RequestsPerSecond float64
	Timeout           time.Duration
}

type verdict struct {
	Content         string   `json:"content"`
	BadWordsTotal   int      `json:"bad_words_total"`
	BadWordsList    []string `json:"bad_words_list"`
	CensoredContent string   `json:"censored_content"`
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 2),
		logger:     logger,
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
	}
}

// Classify posts the text and maps the verdict. Transport failures are
// retried once; a violation verdict is terminal and never retried.
func (c *Client) Classify(ctx context.Context, text string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limit wait: %w", domainerrors.ErrServiceUnavailable, err)
	}

	cleaned, err := c.classifyOnce(ctx, text)
	if err == nil || !retryable(err) {
		return cleaned, err
	}

	c.logger.Warn("bad words api call failed, retrying",
		"event", "moderation_api_retry",
		"module", "contexts/trust-safety/moderation-service",
		"layer", "adapters",
		"error", err.Error(),
	)
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limit wait: %w", domainerrors.ErrServiceUnavailable, err)
	}
	return c.classifyOnce(ctx, text)
}

func (c *Client) classifyOnce(ctx context.Context, text string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"?censor_character=*", strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domainerrors.ErrServiceUnavailable, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domainerrors.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: status %d: %s", domainerrors.ErrServiceUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var v verdict
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return "", fmt.Errorf("%w: decode verdict: %v", domainerrors.ErrServiceUnavailable, err)
	}

	if v.BadWordsTotal > 0 {
		return "", fmt.Errorf("%w: %d flagged terms", domainerrors.ErrRejected, v.BadWordsTotal)
	}
	return v.Content, nil
}

// retryable reports whether a failure is transport-level. Policy verdicts and
// context cancellation are terminal.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !errors.Is(err, domainerrors.ErrRejected)
}
