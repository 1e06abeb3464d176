package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"health-assistant/internal/prediction"
)

// Client talks to the disease-prediction model service over plain HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type predictReq struct {
	Text string `json:"text"`
}

// Predict sends the symptom text to the model service. Any transport
// error, non-2xx status or undecodable body is returned as an error for
// the caller's fallback policy.
func (c *Client) Predict(ctx context.Context, text string) (*prediction.Result, error) {
	jsonBody, err := json.Marshal(predictReq{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling model service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var bodyBytes []byte
		if resp.Body != nil {
			bodyBytes, _ = io.ReadAll(resp.Body)
		}
		return nil, fmt.Errorf("model service returned status: %s, body: %s", resp.Status, string(bodyBytes))
	}

	var result prediction.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}
	return &result, nil
}
