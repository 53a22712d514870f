package langflow

import (
	"encoding/json"
	"net/http"
	"time"
)

// Config holds LangFlow client configuration
type Config struct {
	APIKey     string
	URL        string // full run URL, e.g. https://host/lf/<project>/api/v1/run/<flow>
	Timeout    time.Duration
	HTTPClient *http.Client
}

type langflowImpl struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

type runRequest struct {
	InputValue string `json:"input_value"`
	OutputType string `json:"output_type"`
	InputType  string `json:"input_type"`
}

// RunResult carries the raw payload and its typed view.
type RunResult struct {
	Raw      json.RawMessage
	Response RunResponse
}

// RunResponse is the subset of the run API response the service reads.
type RunResponse struct {
	SessionID string      `json:"session_id"`
	Outputs   []RunOutput `json:"outputs"`
}

// RunOutput is one top-level output of a flow run.
type RunOutput struct {
	Inputs  map[string]any    `json:"inputs"`
	Outputs []ComponentOutput `json:"outputs"`
}

// ComponentOutput is the output of a single flow component.
type ComponentOutput struct {
	Outputs ComponentOutputs `json:"outputs"`
}

// ComponentOutputs keeps the message undecoded since its shape differs
// between LangFlow versions.
type ComponentOutputs struct {
	Message json.RawMessage `json:"message,omitempty"`
}

// ChatMessage is a chat output component's message.
type ChatMessage struct {
	Message string `json:"message"`
	Sender  string `json:"sender,omitempty"`
}

// Message returns outputs[0].outputs[0].outputs.message.message, or "" when
// any step of that path is missing or is not of the expected type.
func (r RunResponse) Message() string {
	if len(r.Outputs) == 0 || len(r.Outputs[0].Outputs) == 0 {
		return ""
	}
	raw := r.Outputs[0].Outputs[0].Outputs.Message
	if len(raw) == 0 {
		return ""
	}

	var msg struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil || len(msg.Message) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(msg.Message, &text); err != nil {
		return ""
	}
	return text
}
