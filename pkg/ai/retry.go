package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// IsTransient reports whether err is a transport-level failure worth retrying.
// Client errors and unusable output are never retried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

// classify wraps err with the model failure class it belongs to
func classify(ctx context.Context, err error) error {
	if errors.Is(err, ErrModelUnavailable) || errors.Is(err, ErrModelBusy) ||
		errors.Is(err, ErrModelTimeout) || errors.Is(err, ErrModelError) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrModelTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrModelTimeout, err)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: credentials rejected: %w", ErrModelUnavailable, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", ErrModelBusy, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrModelError, err)
}
