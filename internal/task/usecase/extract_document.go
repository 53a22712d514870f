package usecase

import (
	"context"
	"errors"
	"strings"

	"taskmint/internal/model"
	"taskmint/internal/task"
	"taskmint/pkg/langflow"
)

// ExtractFromDocument forwards already extracted text to the LangFlow flow
// and stores the tasks found in its chat output.
func (uc *implUseCase) ExtractFromDocument(ctx context.Context, input task.ExtractDocumentInput) (task.ExtractionOutput, error) {
	text := strings.TrimSpace(input.ExtractedText)
	if text == "" {
		return task.ExtractionOutput{}, task.ErrExtractedTextRequired
	}
	if !input.Owner.Valid() {
		return task.ExtractionOutput{}, task.ErrOwnerRequired
	}
	if uc.langflow == nil || !uc.langflow.Configured() {
		return task.ExtractionOutput{}, task.ErrLangFlowNotConfigured
	}

	uc.l.Infof(ctx, "ExtractFromDocument: user=%s/%s text_length=%d", input.Owner.UserType, input.Owner.UserID, len(text))

	result, err := uc.langflow.Run(ctx, input.ExtractedText)
	if err != nil {
		if errors.Is(err, langflow.ErrNotConfigured) {
			return task.ExtractionOutput{}, task.ErrLangFlowNotConfigured
		}
		uc.l.Errorf(ctx, "uc.ExtractFromDocument Run: %v", err)
		return task.ExtractionOutput{}, upstreamError(task.ServiceLangFlow, err)
	}

	out := task.ExtractionOutput{
		Raw:      result.Raw,
		Tasks:    []model.Task{},
		Failures: []task.ElementFailure{},
	}

	message := result.Response.Message()
	elems, warning := parseElements(message)
	if warning != "" {
		uc.l.Warnf(ctx, "uc.ExtractFromDocument: %s. Message=%q", warning, message)
		out.Warning = warning
		return out, nil
	}

	out.Tasks, out.Failures = uc.persistElements(ctx, elems, input.Owner, uc.now().In(uc.dateMath.Location()), "")
	uc.l.Infof(ctx, "ExtractFromDocument: created=%d failed=%d", len(out.Tasks), len(out.Failures))
	return out, nil
}
