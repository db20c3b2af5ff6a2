package utils

import (
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/dto/responses"
)

func MapCarePlanToResponse(plan *models.CarePlan) *responses.CarePlan {
	return &responses.CarePlan{
		ID:                plan.ID,
		ClientID:          plan.ClientID,
		CreatedByID:       plan.CreatedByID,
		Title:             plan.Title,
		Description:       plan.Description,
		Status:            plan.Status,
		ConfidenceScore:   plan.ConfidenceScore,
		Version:           plan.Version,
		PreviousVersionID: plan.PreviousVersionID,
		ApprovedByID:      plan.ApprovedByID,
		ApprovedAt:        plan.ApprovedAt,
		ApprovalNotes:     plan.ApprovalNotes,
		Goals:             plan.Goals,
		Interventions:     plan.Interventions,
		CreatedAt:         plan.CreatedAt,
		UpdatedAt:         plan.UpdatedAt,
	}
}

func MapCarePlansToResponses(plans []models.CarePlan) []responses.CarePlan {
	result := make([]responses.CarePlan, 0, len(plans))
	for i := range plans {
		result = append(result, *MapCarePlanToResponse(&plans[i]))
	}
	return result
}

func MapDocumentToResponse(document *models.Document) *responses.Document {
	return &responses.Document{
		ID:        document.ID,
		OwnerID:   document.OwnerID,
		Type:      document.Type,
		Name:      document.Name,
		MimeType:  document.MimeType,
		SizeBytes: document.SizeBytes,
		Status:    document.Status,
		Metadata:  document.Metadata,
		CreatedAt: document.CreatedAt,
		UpdatedAt: document.UpdatedAt,
	}
}

func MapDocumentsToResponses(documents []models.Document) []responses.Document {
	result := make([]responses.Document, 0, len(documents))
	for i := range documents {
		result = append(result, *MapDocumentToResponse(&documents[i]))
	}
	return result
}

func MapAnalysisToResponse(analysis *models.DocumentAnalysis) *responses.DocumentAnalysis {
	return &responses.DocumentAnalysis{
		ID:               analysis.ID,
		DocumentID:       analysis.DocumentID,
		AnalysisType:     analysis.AnalysisType,
		Status:           analysis.Status,
		Priority:         analysis.Priority,
		Results:          analysis.Results,
		Confidence:       analysis.Confidence,
		ProcessingTimeMs: analysis.ProcessingTimeMs,
		CreatedAt:        analysis.CreatedAt,
		CompletedAt:      analysis.CompletedAt,
	}
}
