package smartsql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/smartbizsa/backend/internal/config"
)

const databaseContext = "SmartBiz SA business database with users, businesses, invoices, and chat history"

type queryResponse struct {
	Success *bool           `json:"success"`
	Error   string          `json:"error"`
	SQL     string          `json:"sql"`
	Results json.RawMessage `json:"results"`
	Data    json.RawMessage `json:"data"`
}

// resolveResults prefers the results field, falling back to data.
func (r queryResponse) resolveResults() any {
	raw := r.Results
	if len(raw) == 0 || string(raw) == "null" {
		raw = r.Data
	}
	if len(raw) == 0 || string(raw) == "null" {
		return []any{}
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return []any{}
	}
	return decoded
}

// bridgeClient talks to a self-hosted Raindrop bridge.
type bridgeClient struct {
	url    string
	apiKey string
	client *http.Client
}

func newBridgeClient(cfg config.SmartSQLConfig) *bridgeClient {
	return &bridgeClient{
		url:    strings.TrimSpace(cfg.BridgeURL),
		apiKey: cfg.BridgeAPIKey,
		client: &http.Client{Timeout: cfg.BridgeTimeout},
	}
}

func (c *bridgeClient) configured() bool {
	return c.url != ""
}

func (c *bridgeClient) execute(ctx context.Context, query string) (Result, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("SmartSQL bridge unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("SmartSQL bridge returned status %d", resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("SmartSQL bridge returned invalid response: %w", err)
	}
	if decoded.Success != nil && !*decoded.Success {
		if decoded.Error != "" {
			return Result{}, fmt.Errorf("%s", decoded.Error)
		}
		return Result{}, fmt.Errorf("SmartSQL bridge reported failure")
	}

	return Result{SQL: decoded.SQL, Results: decoded.resolveResults()}, nil
}

// fallbackClient talks to the hosted LiquidMetal API.
type fallbackClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func newFallbackClient(cfg config.SmartSQLConfig) *fallbackClient {
	return &fallbackClient{
		apiKey:  strings.TrimSpace(cfg.FallbackAPIKey),
		baseURL: strings.TrimRight(cfg.FallbackBaseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *fallbackClient) configured() bool {
	return c.apiKey != ""
}

func (c *fallbackClient) execute(ctx context.Context, query string) (Result, error) {
	payload, err := json.Marshal(map[string]string{
		"query":   query,
		"context": databaseContext,
	})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/smartsql", bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("SmartSQL API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("SmartSQL API returned status %d", resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("SmartSQL API returned invalid response: %w", err)
	}
	if decoded.Success != nil && !*decoded.Success {
		if decoded.Error != "" {
			return Result{}, fmt.Errorf("%s", decoded.Error)
		}
		return Result{}, fmt.Errorf("SmartSQL API reported failure")
	}

	return Result{SQL: decoded.SQL, Results: decoded.resolveResults()}, nil
}
