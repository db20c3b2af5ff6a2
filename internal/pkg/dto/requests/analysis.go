package requests

type AnalyzeDocument struct {
	DocumentID   string            `json:"documentId" validate:"required"`
	AnalysisType string            `json:"analysisType" validate:"required,analysis_type"`
	Priority     string            `json:"priority" validate:"omitempty,oneof=normal high"`
	Options      map[string]string `json:"options,omitempty"`
}
