// Package chat answers business questions with the Cerebras completion API,
// degrading to canned South African business guidance when the API is
// unavailable.
package chat

import (
	"context"

	"github.com/smartbizsa/backend/internal/advisory/fallback"
	"github.com/smartbizsa/backend/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service interface {
	// Respond returns advisory text for a message. Never fails: remote
	// errors degrade to a canned response.
	Respond(ctx context.Context, message, contextText string) string
}

type Params struct {
	fx.In

	Cfg config.Config
	Log *zap.Logger
}

type service struct {
	log    *zap.Logger
	client *completionClient
}

func New(p Params) Service {
	return &service{
		log:    p.Log.Named("advisory.chat"),
		client: newCompletionClient(p.Cfg.Chat),
	}
}

func (s *service) Respond(ctx context.Context, message, contextText string) string {
	return fallback.Resolve(ctx, s.log, fallback.Capability[string]{
		Name:       "chat_completion",
		Configured: s.client.configured(),
		Remote: func(ctx context.Context) (string, error) {
			return s.client.complete(ctx, message, contextText)
		},
		Local: func() string {
			return cannedResponse(message)
		},
	})
}
