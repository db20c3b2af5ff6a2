package responses

import (
	"time"

	"revolucare-service/internal/app/models"
)

type DocumentAnalysis struct {
	ID               string                  `json:"id"`
	DocumentID       string                  `json:"documentId"`
	AnalysisType     models.AnalysisType     `json:"analysisType"`
	Status           models.AnalysisStatus   `json:"status"`
	Priority         models.AnalysisPriority `json:"priority"`
	Results          models.AnalysisResults  `json:"results"`
	Confidence       *models.ConfidenceScore `json:"confidence,omitempty"`
	ProcessingTimeMs int64                   `json:"processingTimeMs"`
	CreatedAt        time.Time               `json:"createdAt"`
	CompletedAt      *time.Time              `json:"completedAt,omitempty"`
}
