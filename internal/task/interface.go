package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error

	// Analytics computes the completion report for one owner.
	Analytics(ctx context.Context, input AnalyticsInput) (AnalyticsOutput, error)

	// Extraction pipeline
	ParseVoice(ctx context.Context, input ParseVoiceInput) (ExtractionOutput, error)
	ExtractFromDocument(ctx context.Context, input ExtractDocumentInput) (ExtractionOutput, error)
}
