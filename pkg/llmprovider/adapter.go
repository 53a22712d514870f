package llmprovider

import (
	"context"

	"taskmint/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. The same adapter
// serves every OpenAI-compatible endpoint; name tells them apart in logs.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter for an OpenAI-compatible client
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openai.ChatRequest{
		Messages:    convertToOpenAIMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, err
	}

	content := Message{Role: "assistant"}
	if len(resp.Choices) > 0 {
		content.Role = resp.Choices[0].Message.Role
		content.Parts = []Part{{Text: resp.Content()}}
	}

	return &Response{
		Content:      content,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIMessages(req *Request) []openai.Message {
	msgs := make([]openai.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.Message{Role: "system", Content: req.SystemInstruction.Text()})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, openai.Message{Role: m.Role, Content: m.Text()})
	}
	return msgs
}
