package responses

import "revolucare-service/internal/app/models"

type CarePlanOptionsResponse struct {
	ClientID         string                  `json:"clientId"`
	Options          []models.CarePlanOption `json:"options"`
	AnalysisMetadata AnalysisMetadata        `json:"analysisMetadata"`
}

// AnalysisMetadata records which documents contributed to the option set and
// why any were excluded.
type AnalysisMetadata struct {
	DocumentsUsed     []string          `json:"documentsUsed"`
	DocumentsExcluded map[string]string `json:"documentsExcluded,omitempty"`
	Strategies        []string          `json:"strategies"`
	ProcessingTimeMs  int64             `json:"processingTimeMs"`
}
