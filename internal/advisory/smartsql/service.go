// Package smartsql proxies natural-language database questions to a SQL
// generation backend. A self-hosted bridge takes strict precedence over the
// hosted fallback API; unlike the other advisory integrations there is no
// local substitute, so failures surface to the caller.
package smartsql

import (
	"context"
	"errors"

	"github.com/smartbizsa/backend/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ErrNotConfigured reports that neither backend has credentials.
var ErrNotConfigured = errors.New("No SmartSQL backend configured. Set RAINDROP_BRIDGE_URL or LIQUIDMETAL_API_KEY.")

// Result is the outcome of one natural-language query.
type Result struct {
	SQL     string `json:"sql"`
	Results any    `json:"results"`
}

type Service interface {
	// Execute resolves a natural-language query against the configured
	// backend. Exactly one remote attempt per call.
	Execute(ctx context.Context, query string) (Result, error)
}

type Params struct {
	fx.In

	Cfg config.Config
	Log *zap.Logger
}

type service struct {
	log      *zap.Logger
	bridge   *bridgeClient
	fallback *fallbackClient
}

func New(p Params) Service {
	return &service{
		log:      p.Log.Named("advisory.smartsql"),
		bridge:   newBridgeClient(p.Cfg.SmartSQL),
		fallback: newFallbackClient(p.Cfg.SmartSQL),
	}
}

func (s *service) Execute(ctx context.Context, query string) (Result, error) {
	switch {
	case s.bridge.configured():
		result, err := s.bridge.execute(ctx, query)
		if err != nil {
			s.log.Warn("bridge query failed", zap.Error(err))
			return Result{}, err
		}
		return result, nil
	case s.fallback.configured():
		result, err := s.fallback.execute(ctx, query)
		if err != nil {
			s.log.Warn("fallback query failed", zap.Error(err))
			return Result{}, err
		}
		return result, nil
	default:
		return Result{}, ErrNotConfigured
	}
}
