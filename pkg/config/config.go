package config

import (
	"errors"
	"fmt"
	"time"

	"leagueprobe/pkg/regions"
	queuevalues "leagueprobe/pkg/riotvalues/queue"
	tiervalues "leagueprobe/pkg/riotvalues/tier"
)

// ErrMissingApiKey is returned when no Riot token was configured.
var ErrMissingApiKey = errors.New("RIOT_API_KEY is not set")

// Config holds every setting of a probe run.
// It is built once by Load and passed by reference, never read from globals.
type Config struct {
	ApiKey string `koanf:"api_key"`

	// Platform serves the leaderboard, routing serves the matches.
	// Routing is derived from the platform when empty.
	Platform string `koanf:"platform"`
	Routing  string `koanf:"routing"`
	Division string `koanf:"division"`
	Queue    string `koanf:"queue"`

	MatchCount int `koanf:"match_count"`

	// Request and retry behaviour.
	RequestTimeout   time.Duration `koanf:"request_timeout"`
	TimeUnit         time.Duration `koanf:"time_unit"`
	RateLimitWait    int           `koanf:"rate_limit_wait"`
	NetworkRetryWait int           `koanf:"network_retry_wait"`
	RetryMaxAttempts int           `koanf:"retry_max_attempts"`
	RetryUnbounded   bool          `koanf:"retry_unbounded"`

	// Proactive limiter windows, a zero count disables the window.
	LimitShortCount    int           `koanf:"limit_short_count"`
	LimitShortInterval time.Duration `koanf:"limit_short_interval"`
	LimitLongCount     int           `koanf:"limit_long_count"`
	LimitLongInterval  time.Duration `koanf:"limit_long_interval"`

	// Optional run log upload.
	LogBucket          string `koanf:"log_bucket"`
	BucketRegion       string `koanf:"bucket_region"`
	BucketEndpoint     string `koanf:"bucket_endpoint"`
	BucketAccessKey    string `koanf:"bucket_access_key"`
	BucketAccessSecret string `koanf:"bucket_access_secret"`

	MetricsFile string `koanf:"metrics_file"`
}

// New returns the default configuration.
// Limits match the Riot development key.
func New() *Config {
	return &Config{
		Platform:           "JP1",
		Division:           "challengerleagues",
		Queue:              "RANKED_SOLO_5x5",
		MatchCount:         5,
		RequestTimeout:     10 * time.Second,
		TimeUnit:           time.Second,
		RateLimitWait:      10,
		NetworkRetryWait:   5,
		RetryMaxAttempts:   10,
		LimitShortCount:    20,
		LimitShortInterval: time.Second,
		LimitLongCount:     100,
		LimitLongInterval:  2 * time.Minute,
	}
}

// PlatformRegion returns the validated platform.
func (c *Config) PlatformRegion() (regions.SubRegion, error) {
	return regions.ParseSubRegion(c.Platform)
}

// RoutingRegion returns the configured routing, or the parent of the platform.
func (c *Config) RoutingRegion() (regions.MainRegion, error) {
	if c.Routing != "" {
		return regions.ParseMainRegion(c.Routing)
	}

	platform, err := c.PlatformRegion()
	if err != nil {
		return "", err
	}
	return regions.RoutingFor(platform)
}

// UploadsLogs reports if the run log should be sent to the bucket.
func (c *Config) UploadsLogs() bool {
	return c.LogBucket != ""
}

// Validate checks the values that can't be fixed at runtime.
func (c *Config) Validate() error {
	if c.ApiKey == "" {
		return ErrMissingApiKey
	}

	if _, err := c.PlatformRegion(); err != nil {
		return fmt.Errorf("invalid platform: %w", err)
	}

	if _, err := c.RoutingRegion(); err != nil {
		return fmt.Errorf("invalid routing: %w", err)
	}

	if _, ok := tiervalues.ApexTier(c.Division); !ok {
		return fmt.Errorf("invalid division %q: only apex leagues are supported", c.Division)
	}

	if !queuevalues.IsRanked(c.Queue) {
		return fmt.Errorf("invalid queue %q", c.Queue)
	}

	// 100 is the maximum allowed count.
	if c.MatchCount < 1 || c.MatchCount > 100 {
		return fmt.Errorf("match_count must be between 1 and 100, got %d", c.MatchCount)
	}

	if c.TimeUnit <= 0 || c.RequestTimeout <= 0 {
		return errors.New("time_unit and request_timeout must be positive")
	}

	if c.RateLimitWait < 0 || c.NetworkRetryWait < 0 {
		return errors.New("retry waits can't be negative")
	}

	if !c.RetryUnbounded && c.RetryMaxAttempts < 1 {
		return errors.New("retry_max_attempts must be positive unless retry_unbounded is set")
	}

	return nil
}
