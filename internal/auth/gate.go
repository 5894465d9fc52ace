package auth

import (
	"errors"

	"go.uber.org/zap"

	"github.com/TemirB/smm-orders/internal/observability"
)

// Check reports whether access is granted: either the session was already
// authenticated or candidate equals the configured secret.
func Check(candidate, secret string, prior bool) bool {
	return prior || candidate == secret
}

// Gate guards the tool with a static shared secret.
type Gate struct {
	secret  string
	metrics observability.Metrics
	logger  *zap.Logger
}

func NewGate(secret string, metrics observability.Metrics, logger *zap.Logger) (*Gate, error) {
	if secret == "" {
		return nil, errors.New("auth: empty secret")
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Gate{
		secret:  secret,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Authenticate checks candidate for sess. A granted session stays
// authenticated for its whole lifetime.
func (g *Gate) Authenticate(sess *Session, candidate string) bool {
	prior := sess.Authenticated()
	if !Check(candidate, g.secret, prior) {
		g.metrics.IncAuthDenied()
		g.logger.Warn("access denied", zap.String("session", sess.ID))
		return false
	}
	if !prior {
		sess.authenticated.Store(true)
		g.metrics.IncAuthGranted()
		g.logger.Info("access granted", zap.String("session", sess.ID))
	}
	return true
}
