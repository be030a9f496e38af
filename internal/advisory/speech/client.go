package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/smartbizsa/backend/internal/config"
)

const synthesisModel = "eleven_monolingual_v1"

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type voicesResponse struct {
	Voices []struct {
		VoiceID    string `json:"voice_id"`
		Name       string `json:"name"`
		PreviewURL string `json:"preview_url"`
	} `json:"voices"`
}

type speechClient struct {
	apiKey  string
	baseURL string
	// synthesis is slower than the catalog lookup, so the two calls carry
	// separate timeouts.
	synthClient   *http.Client
	catalogClient *http.Client
}

func newSpeechClient(cfg config.SpeechConfig) *speechClient {
	return &speechClient{
		apiKey:        strings.TrimSpace(cfg.APIKey),
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		synthClient:   &http.Client{Timeout: 30 * time.Second},
		catalogClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *speechClient) configured() bool {
	return c.apiKey != ""
}

func (c *speechClient) synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	payload, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: synthesisModel,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/text-to-speech/"+voiceID, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.synthClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}
	return io.ReadAll(resp.Body)
}

func (c *speechClient) voices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/voices", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.catalogClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var decoded voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	voices := make([]Voice, 0, len(decoded.Voices))
	for _, v := range decoded.Voices {
		var preview *string
		if v.PreviewURL != "" {
			url := v.PreviewURL
			preview = &url
		}
		voices = append(voices, Voice{
			ID:         v.VoiceID,
			Name:       v.Name,
			PreviewURL: preview,
		})
	}
	return voices, nil
}

// decodeAPIError extracts the provider's error detail when the body carries
// one, otherwise reports the status code.
func decodeAPIError(resp *http.Response) error {
	var body struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if len(body.Detail) > 0 {
			var detail string
			if json.Unmarshal(body.Detail, &detail) == nil && detail != "" {
				return fmt.Errorf("%s", detail)
			}
			return fmt.Errorf("%s", string(body.Detail))
		}
		if body.Message != "" {
			return fmt.Errorf("%s", body.Message)
		}
	}
	return fmt.Errorf("speech API returned status %d", resp.StatusCode)
}
