// Package speech turns advisory text into audio with the ElevenLabs API.
// Synthesis has no local substitute; callers surface the failure and fall
// back to text-only responses. The voice catalog degrades to a demo list.
package speech

import (
	"context"
	"errors"
	"strings"

	"github.com/smartbizsa/backend/internal/advisory/fallback"
	"github.com/smartbizsa/backend/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	// ErrNotConfigured reports that no speech credentials are present.
	ErrNotConfigured = errors.New("speech synthesis not configured")
	// ErrEmptyText rejects synthesis of blank input.
	ErrEmptyText = errors.New("no text to synthesize")
)

// Voice is one entry of the selectable voice catalog. The provider's
// voice_id is exposed as id.
type Voice struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PreviewURL *string `json:"preview_url"`
}

type Service interface {
	// Synthesize renders text as MP3 audio. An empty voiceID selects the
	// configured default voice.
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
	// Voices lists the selectable voices. Never fails: remote errors degrade
	// to the demo catalog.
	Voices(ctx context.Context) []Voice
}

type Params struct {
	fx.In

	Cfg config.Config
	Log *zap.Logger
}

type service struct {
	log          *zap.Logger
	client       *speechClient
	defaultVoice string
}

func New(p Params) Service {
	return &service{
		log:          p.Log.Named("advisory.speech"),
		client:       newSpeechClient(p.Cfg.Speech),
		defaultVoice: p.Cfg.Speech.DefaultVoiceID,
	}
}

func (s *service) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if !s.client.configured() {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if voiceID == "" {
		voiceID = s.defaultVoice
	}
	audio, err := s.client.synthesize(ctx, text, voiceID)
	if err != nil {
		s.log.Warn("speech synthesis failed", zap.String("voice_id", voiceID), zap.Error(err))
		return nil, err
	}
	return audio, nil
}

func (s *service) Voices(ctx context.Context) []Voice {
	return fallback.Resolve(ctx, s.log, fallback.Capability[[]Voice]{
		Name:       "voice_catalog",
		Configured: s.client.configured(),
		Remote:     s.client.voices,
		Local:      demoVoices,
	})
}
