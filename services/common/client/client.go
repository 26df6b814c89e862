package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"go.uber.org/zap"
)

// DefaultTimeout bounds connect plus read time of one peer call.
const DefaultTimeout = 10 * time.Second

// New returns an HTTP client for peer service calls. The client is stateless
// and safe to share across requests; per-request identity rides on the
// request context, not on the client.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &IdentityTransport{},
	}
}

// RemoteStatus tags the outcome of fetching a peer-owned entity.
type RemoteStatus string

const (
	// StatusFetched means the peer returned the entity.
	StatusFetched RemoteStatus = "fetched"
	// StatusNotFound means the peer answered but knows no such entity.
	StatusNotFound RemoteStatus = "not_found"
	// StatusUnavailable means the peer could not be asked: network error,
	// timeout, non-2xx other than 404, or an undecodable body.
	StatusUnavailable RemoteStatus = "unavailable"
)

// Remote holds the result of a best-effort peer fetch. Value is non-nil
// only when Status is StatusFetched, so an absent remote section is always
// distinguishable from a zero-valued one.
type Remote[T any] struct {
	Value  *T
	Status RemoteStatus
}

// Fetched reports whether the remote entity was obtained.
func (r Remote[T]) Fetched() bool {
	return r.Status == StatusFetched && r.Value != nil
}

// FetchJSON issues one GET against a peer's resource-by-identifier endpoint
// and decodes the JSON body. It never returns an error: every failure mode
// collapses into the tagged outcome, logged here so degradations stay
// observable even though the enclosing request succeeds.
func FetchJSON[T any](ctx context.Context, hc *http.Client, url string) Remote[T] {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Warn(ctx, "peer request build failed", zap.String("url", url), zap.Error(err))
		return Remote[T]{Status: StatusUnavailable}
	}

	resp, err := hc.Do(req)
	if err != nil {
		logger.Warn(ctx, "peer unreachable", zap.String("url", url), zap.Error(err))
		return Remote[T]{Status: StatusUnavailable}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.Warn(ctx, "peer entity not found", zap.String("url", url))
		return Remote[T]{Status: StatusNotFound}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn(ctx, "peer returned error status",
			zap.String("url", url), zap.Int("status", resp.StatusCode))
		return Remote[T]{Status: StatusUnavailable}
	}

	var value T
	if err := json.NewDecoder(resp.Body).Decode(&value); err != nil {
		logger.Warn(ctx, "peer response decode failed", zap.String("url", url), zap.Error(err))
		return Remote[T]{Status: StatusUnavailable}
	}
	return Remote[T]{Value: &value, Status: StatusFetched}
}
