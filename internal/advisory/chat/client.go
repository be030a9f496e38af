package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/smartbizsa/backend/internal/config"
)

const (
	completionModel = "llama-3.1-8b"

	systemPrompt = `You are SmartBiz SA, an AI-powered business assistant
specifically designed for South African entrepreneurs and small business owners.

Your expertise includes:
- South African tax regulations (SARS compliance, VAT at 15%)
- BBBEE (Broad-Based Black Economic Empowerment) requirements
- Local business registration and compliance
- South African labor laws and employment regulations
- Financial management for South African businesses
- Local market insights and business opportunities

Always provide advice relevant to the South African business context. When discussing
taxes, use the South African VAT rate of 15%. Reference SARS (South African Revenue
Service) guidelines when applicable. Be helpful, professional, and supportive of
entrepreneurs building businesses in South Africa.`
)

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type completionClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func newCompletionClient(cfg config.ChatConfig) *completionClient {
	return &completionClient{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *completionClient) configured() bool {
	return c.apiKey != ""
}

func (c *completionClient) complete(ctx context.Context, message, contextText string) (string, error) {
	messages := []completionMessage{
		{Role: "system", Content: systemPrompt},
	}
	if contextText != "" {
		messages = append(messages, completionMessage{
			Role:    "system",
			Content: "Additional context: " + contextText,
		})
	}
	messages = append(messages, completionMessage{Role: "user", Content: message})

	payload, err := json.Marshal(completionRequest{
		Model:       completionModel,
		Messages:    messages,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}

	var decoded completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("completion API returned no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}
