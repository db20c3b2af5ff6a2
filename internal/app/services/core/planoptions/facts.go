package planoptions

import (
	"strings"

	"revolucare-service/internal/app/models"
)

// mergeMedicalFacts folds the extraction results of several documents into one
// fact set. Facts are deduplicated per category by normalized name; when the
// same fact appears in more than one document the highest-confidence mention
// wins. Merge order follows the input, so callers passing documents in a
// stable order get a stable merge.
func mergeMedicalFacts(results []*models.MedicalExtractionResult) *models.MedicalExtractionResult {
	merged := &models.MedicalExtractionResult{}
	for _, result := range results {
		if result == nil {
			continue
		}
		merged.Diagnoses = mergeFacts(merged.Diagnoses, result.Diagnoses)
		merged.Medications = mergeFacts(merged.Medications, result.Medications)
		merged.Allergies = mergeFacts(merged.Allergies, result.Allergies)
		merged.FunctionalStatus = mergeFacts(merged.FunctionalStatus, result.FunctionalStatus)
		merged.Preferences = mergeFacts(merged.Preferences, result.Preferences)
	}
	return merged
}

func mergeFacts(existing, incoming []models.ExtractedFact) []models.ExtractedFact {
	index := make(map[string]int, len(existing))
	for i, fact := range existing {
		index[normalizeFactName(fact.Name)] = i
	}

	for _, fact := range incoming {
		key := normalizeFactName(fact.Name)
		if key == "" {
			continue
		}
		if i, seen := index[key]; seen {
			if fact.Confidence > existing[i].Confidence {
				existing[i] = fact
			}
			continue
		}
		index[key] = len(existing)
		existing = append(existing, fact)
	}
	return existing
}

func normalizeFactName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
