package client

import (
	"net/http"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/auth"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"go.uber.org/zap"
)

// IdentityTransport attaches the caller's Authorization header to every
// outbound request whose context carries one. Requests without a token in
// context go out unauthenticated; the transport never fails a call on its
// own and never retries.
type IdentityTransport struct {
	Base http.RoundTripper
}

func (t *IdentityTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *IdentityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, ok := auth.TokenFromContext(req.Context()); ok {
		// RoundTrippers must not mutate the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", token)
	} else if logger.Log != nil {
		logger.Log.Debug("outbound call without identity token",
			zap.String("url", req.URL.String()))
	}
	return t.base().RoundTrip(req)
}
