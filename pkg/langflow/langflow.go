package langflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func (l *langflowImpl) Configured() bool {
	return l.apiKey != "" && l.url != ""
}

// Run posts the input as a chat message to the flow.
func (l *langflowImpl) Run(ctx context.Context, input string) (*RunResult, error) {
	if !l.Configured() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(runRequest{
		InputValue: input,
		OutputType: outputTypeChat,
		InputType:  inputTypeChat,
	})
	if err != nil {
		return nil, fmt.Errorf("langflow: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("langflow: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+l.apiKey)

	resp, err := l.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("langflow: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("langflow: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if !json.Valid(respBody) {
		return nil, ErrInvalidResponse
	}

	// The typed view stays empty when the payload has an unexpected shape.
	result := &RunResult{Raw: json.RawMessage(respBody)}
	var typed RunResponse
	if err := json.Unmarshal(respBody, &typed); err == nil {
		result.Response = typed
	}

	return result, nil
}
