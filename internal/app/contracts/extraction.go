package contracts

import (
	"context"
	"revolucare-service/internal/app/models"
)

// ExtractionInput carries everything a capability needs to run against one
// document. Content is the raw bytes already pulled from blob storage.
type ExtractionInput struct {
	Document *models.Document
	Content  []byte
	Options  map[string]string
}

// ExtractionOutput is the capability's structured result plus the raw
// per-field signals feeding the confidence model.
type ExtractionOutput struct {
	Results           models.AnalysisResults
	ConfidenceSignals []float64
	ProcessingTimeMs  int64
}

// ExtractionCapability converts unstructured document content into structured
// facts. Implementations may fail with transient or permanent provider errors;
// the orchestrator records those as failed analyses.
type ExtractionCapability interface {
	AnalysisType() models.AnalysisType
	Extract(ctx context.Context, input *ExtractionInput) (*ExtractionOutput, error)
}

// PlanComposer produces one candidate care plan option from merged client
// facts. Implementations must be deterministic per strategy name for
// identical input.
type PlanComposer interface {
	Strategy() string
	Compose(ctx context.Context, facts *models.MedicalExtractionResult, additionalContext string) (*models.CarePlanOption, []float64, error)
}
