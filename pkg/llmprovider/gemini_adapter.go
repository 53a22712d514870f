package llmprovider

import (
	"context"

	"taskmint/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.GenerateRequest{
		Contents: make([]gemini.Content, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.SystemInstruction.Text()}},
		}
	}
	for _, m := range req.Messages {
		geminiReq.Contents = append(geminiReq.Contents, gemini.Content{
			Role:  geminiRole(m.Role),
			Parts: []gemini.Part{{Text: m.Text()}},
		})
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	content := Message{Role: "assistant"}
	if text := resp.Text(); text != "" {
		content.Parts = []Part{{Text: text}}
	}

	return &Response{
		Content:      content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// geminiRole maps chat roles onto the two roles Gemini accepts.
func geminiRole(role string) string {
	if role == "assistant" || role == "model" {
		return "model"
	}
	return "user"
}
