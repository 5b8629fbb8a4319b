package requests

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"leagueprobe/pkg/config"
	"leagueprobe/pkg/logger"
	"leagueprobe/pkg/messages"
	"leagueprobe/pkg/metrics"

	json "github.com/goccy/go-json"
	"github.com/itbasis/go-clock"
)

// Header carrying the Riot token.
const authHeader = "X-Riot-Token"

// RetryPolicy bounds the retries of rate limited and failed requests.
// Retrying forever must be asked for explicitly.
type RetryPolicy struct {
	MaxAttempts int
	Unbounded   bool
}

// Verify if another attempt can follow the given one.
func (p RetryPolicy) allows(attempt int) bool {
	return p.Unbounded || attempt < p.MaxAttempts
}

// Executor does authenticated GET requests to the Riot API.
// Rate limits and network failures are retried here, nowhere else.
type Executor struct {
	apiKey     string
	httpClient *http.Client
	policy     RetryPolicy

	// Waits are counted in time units, seconds outside of tests.
	timeUnit         time.Duration
	rateLimitWait    int
	networkRetryWait int

	limiter    *RateLimiter
	limiterSet bool
	clock      clock.Clock
	logger     logger.Logger
	metrics    metrics.Recorder
}

// Option customizes the executor.
type Option func(*Executor)

func WithHTTPClient(client *http.Client) Option {
	return func(e *Executor) { e.httpClient = client }
}

func WithLogger(l logger.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

func WithMetrics(m metrics.Recorder) Option {
	return func(e *Executor) { e.metrics = m }
}

// WithClock sets the clock every wait runs on, the limiter included.
func WithClock(clk clock.Clock) Option {
	return func(e *Executor) { e.clock = clk }
}

// WithLimiter replaces the limiter built from the config, nil disables it.
func WithLimiter(l *RateLimiter) Option {
	return func(e *Executor) {
		e.limiter = l
		e.limiterSet = true
	}
}

// Create the executor for the given configuration.
func NewExecutor(cfg *config.Config, opts ...Option) *Executor {
	e := &Executor{
		apiKey:     cfg.ApiKey,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		policy: RetryPolicy{
			MaxAttempts: cfg.RetryMaxAttempts,
			Unbounded:   cfg.RetryUnbounded,
		},
		timeUnit:         cfg.TimeUnit,
		rateLimitWait:    cfg.RateLimitWait,
		networkRetryWait: cfg.NetworkRetryWait,
		clock:            clock.New(),
		logger:           discardLogger{},
		metrics:          metrics.Nop{},
	}

	for _, opt := range opts {
		opt(e)
	}

	if !e.limiterSet {
		e.limiter = CreateRateLimiter(cfg, e.clock)
	}

	return e
}

// Condition that must be retried after a wait.
type retryable struct {
	reason string
	wait   time.Duration
	cause  error
}

// Execute does the request until it resolves and return the raw body.
func (e *Executor) Execute(ctx context.Context, rawURL string) (json.RawMessage, error) {
	// Never touch the network without the token.
	if e.apiKey == "" {
		return nil, ErrMissingApiKey
	}

	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		if e.limiter != nil {
			if err := e.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		body, retry, err := e.attempt(ctx, rawURL)
		if retry == nil {
			return body, err
		}

		if !e.policy.allows(attempt) {
			e.logger.Errorf(messages.RetriesExhaustedMsg, rawURL, attempt)
			return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrRetriesExhausted, rawURL, attempt, retry.cause)
		}

		e.metrics.Retried(retry.reason, retry.wait)
		if err := sleepContext(ctx, e.clock, retry.wait); err != nil {
			return nil, err
		}
	}
}

// GetJSON executes the request and decodes the body into dst.
func (e *Executor) GetJSON(ctx context.Context, rawURL string, dst any) error {
	body, err := e.Execute(ctx, rawURL)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w on URL %s: %w", ErrDecodeResponse, rawURL, err)
	}
	return nil
}

// Do a single authenticated request.
// Return the body, or the condition to retry, or the final error.
func (e *Executor) attempt(ctx context.Context, rawURL string) ([]byte, *retryable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	req.Header.Set(authHeader, e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return e.networkFailure(ctx, err)
	}
	defer resp.Body.Close()

	e.metrics.RequestDone(resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return e.networkFailure(ctx, err)
		}
		return body, nil, nil

	case http.StatusTooManyRequests:
		wait := e.units(parseRetryAfter(resp.Header.Get("Retry-After"), e.rateLimitWait))
		e.logger.Warnf(messages.RateLimitedMsg, wait)
		return nil, &retryable{
			reason: metrics.ReasonRateLimit,
			wait:   wait,
			cause:  &StatusError{StatusCode: resp.StatusCode, URL: rawURL},
		}, nil

	default:
		statusErr := &StatusError{StatusCode: resp.StatusCode, URL: rawURL}
		e.logger.Errorf("[Error] %v", statusErr)
		return nil, nil, statusErr
	}
}

// Transport level failure, retried unless the context is done.
func (e *Executor) networkFailure(ctx context.Context, err error) ([]byte, *retryable, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, nil, ctxErr
	}

	e.metrics.RequestFailed()

	wait := e.units(e.networkRetryWait)
	e.logger.Warnf(messages.NetworkRetryMsg, err, wait)
	return nil, &retryable{
		reason: metrics.ReasonNetwork,
		wait:   wait,
		cause:  err,
	}, nil
}

func (e *Executor) units(n int) time.Duration {
	return time.Duration(n) * e.timeUnit
}

// Longest Retry-After honoured, in units.
const maxRetryAfter = 3600

// Retry-After is in whole units, anything else falls back to the default.
func parseRetryAfter(value string, fallback int) int {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds < 0 || seconds > maxRetryAfter {
		return fallback
	}
	return seconds
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if parsed.Scheme != "https" || parsed.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}
	return nil
}

// Used when no logger is given.
type discardLogger struct{}

func (discardLogger) Infof(string, ...any)  {}
func (discardLogger) Warnf(string, ...any)  {}
func (discardLogger) Errorf(string, ...any) {}
