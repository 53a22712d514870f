package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"taskmint/internal/model"
	"taskmint/internal/task"
	"taskmint/pkg/llmprovider"
)

// voicePayload is the upstream payload echoed back to the caller.
type voicePayload struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Content  string `json:"content"`
}

// ParseVoice splits a spoken transcript into tasks with one model call and
// stores each of them for the owner.
func (uc *implUseCase) ParseVoice(ctx context.Context, input task.ParseVoiceInput) (task.ExtractionOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return task.ExtractionOutput{}, task.ErrTranscriptRequired
	}
	if !input.Owner.Valid() {
		return task.ExtractionOutput{}, task.ErrOwnerRequired
	}
	if !uc.llm.Configured() {
		return task.ExtractionOutput{}, task.ErrLLMNotConfigured
	}

	today := uc.now().In(uc.dateMath.Location())
	if input.Today != nil {
		today = input.Today.In(uc.dateMath.Location())
	}

	uc.l.Infof(ctx, "ParseVoice: user=%s/%s transcript_length=%d", input.Owner.UserType, input.Owner.UserID, len(transcript))

	req := llmprovider.UserText(uc.buildVoicePrompt(transcript, today), uc.cfg.Temperature, uc.cfg.MaxTokens)
	req.SystemInstruction = &llmprovider.Message{
		Role:  "system",
		Parts: []llmprovider.Part{{Text: voiceSystemInstruction}},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			return task.ExtractionOutput{}, task.ErrLLMNotConfigured
		}
		uc.l.Errorf(ctx, "uc.ParseVoice GenerateContent: %v", err)
		return task.ExtractionOutput{}, upstreamError(task.ServiceLLM, err)
	}

	content := resp.Content.Text()
	raw, err := json.Marshal(voicePayload{Provider: resp.ProviderName, Model: resp.ModelName, Content: content})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ParseVoice marshal payload: %v", err)
		return task.ExtractionOutput{}, err
	}

	out := task.ExtractionOutput{
		Raw:      raw,
		Tasks:    []model.Task{},
		Failures: []task.ElementFailure{},
	}

	elems, warning := parseElements(content)
	if warning != "" {
		uc.l.Warnf(ctx, "uc.ParseVoice: %s. Raw=%q", warning, content)
		out.Warning = warning
		return out, nil
	}

	out.Tasks, out.Failures = uc.persistElements(ctx, elems, input.Owner, today, transcript)
	uc.l.Infof(ctx, "ParseVoice: created=%d failed=%d", len(out.Tasks), len(out.Failures))
	return out, nil
}
