package llm

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"strings"
	"time"
)

// ErrorType classifies an error for retry purposes
type ErrorType int

const (
	// ErrorTypeRetryable indicates a transient error
	ErrorTypeRetryable ErrorType = iota
	// ErrorTypeNonRetryable indicates a permanent error
	ErrorTypeNonRetryable
	// ErrorTypeUnknown indicates an unclassified error (not retried)
	ErrorTypeUnknown
)

// RetryConfig holds configuration for retry behavior
type RetryConfig struct {
	Enabled     bool
	MaxAttempts int
	BackoffBase float64 // seconds
	BackoffMax  float64 // seconds
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Enabled:     true,
		MaxAttempts: 3,
		BackoffBase: 1.0,
		BackoffMax:  8.0,
	}
}

// ClassifyError determines whether an error is worth retrying
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrorTypeNonRetryable
	}

	// User interrupted: never retry. Deadline exceeded: transient.
	if errors.Is(err, context.Canceled) {
		return ErrorTypeNonRetryable
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTypeRetryable
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrorTypeRetryable
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrorTypeRetryable
	}

	type statusCoder interface {
		error
		StatusCode() int
	}
	if statusErr, ok := err.(statusCoder); ok {
		return classifyHTTPStatus(statusErr.StatusCode())
	}

	msg := strings.ToLower(err.Error())
	for _, keyword := range []string{"context length", "token limit", "tokens exceeded"} {
		if strings.Contains(msg, keyword) {
			return ErrorTypeNonRetryable
		}
	}
	if strings.Contains(msg, "timeout") {
		return ErrorTypeRetryable
	}

	return ErrorTypeUnknown
}

// classifyHTTPStatus classifies HTTP status codes
func classifyHTTPStatus(statusCode int) ErrorType {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return ErrorTypeRetryable
	case statusCode >= 500:
		return ErrorTypeRetryable
	case statusCode >= 400:
		return ErrorTypeNonRetryable
	default:
		return ErrorTypeUnknown
	}
}

// CalculateBackoff returns min(base * 2^(attempt-1), max) as a duration
func CalculateBackoff(attempt int, base, max float64) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	backoff := base * math.Pow(2, float64(attempt-1))
	if backoff > max {
		backoff = max
	}
	return time.Duration(backoff * float64(time.Second))
}

// WithRetryResult executes fn with exponential backoff on retryable
// errors and returns its result
func WithRetryResult[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var zero T

	if !cfg.Enabled || cfg.MaxAttempts <= 0 {
		return fn()
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts+1; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ClassifyError(err) != ErrorTypeRetryable || attempt > cfg.MaxAttempts {
			return zero, err
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(CalculateBackoff(attempt, cfg.BackoffBase, cfg.BackoffMax)):
		}
	}

	return zero, lastErr
}
