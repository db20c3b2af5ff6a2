package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/models"

	"github.com/goccy/go-json"
)

// medicalExtractionCapability drives the chat model to pull structured
// medical facts out of a document.
type medicalExtractionCapability struct {
	ai *OpenAIClient
}

func NewMedicalExtractionCapability(ai *OpenAIClient) contracts.ExtractionCapability {
	return &medicalExtractionCapability{ai: ai}
}

func (c *medicalExtractionCapability) AnalysisType() models.AnalysisType {
	return models.AnalysisTypeMedicalExtraction
}

func (c *medicalExtractionCapability) Extract(ctx context.Context, input *contracts.ExtractionInput) (*contracts.ExtractionOutput, error) {
	started := time.Now()

	text, _, err := documentText(input.Content, input.Document.MimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to read document text: %w", err)
	}

	raw, err := c.ai.CompleteJSON(ctx, medicalExtractionSystemPrompt, extractionUserPrompt(input.Document.Name, text))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		models.MedicalExtractionResult
		OverallConfidence float64 `json:"overallConfidence"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("malformed extraction response: %w", err)
	}

	signals := []float64{parsed.OverallConfidence}
	for _, facts := range [][]models.ExtractedFact{
		parsed.Diagnoses, parsed.Medications, parsed.Allergies,
		parsed.FunctionalStatus, parsed.Preferences,
	} {
		for _, fact := range facts {
			signals = append(signals, fact.Confidence)
		}
	}

	return &contracts.ExtractionOutput{
		Results:           models.AnalysisResults{MedicalExtraction: &parsed.MedicalExtractionResult},
		ConfidenceSignals: signals,
		ProcessingTimeMs:  time.Since(started).Milliseconds(),
	}, nil
}

// textExtractionCapability is fully local: PDF content is parsed with the pdf
// library, anything else is treated as plain text. No AI round trip.
type textExtractionCapability struct{}

func NewTextExtractionCapability() contracts.ExtractionCapability {
	return &textExtractionCapability{}
}

func (c *textExtractionCapability) AnalysisType() models.AnalysisType {
	return models.AnalysisTypeTextExtraction
}

func (c *textExtractionCapability) Extract(ctx context.Context, input *contracts.ExtractionInput) (*contracts.ExtractionOutput, error) {
	started := time.Now()

	text, pageCount, err := documentText(input.Content, input.Document.MimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	words := len(strings.Fields(text))
	signal := 0.95
	if words == 0 {
		signal = 0.10
	}

	return &contracts.ExtractionOutput{
		Results: models.AnalysisResults{
			TextExtraction: &models.TextExtractionResult{
				Text:      text,
				PageCount: pageCount,
				WordCount: words,
			},
		},
		ConfidenceSignals: []float64{signal},
		ProcessingTimeMs:  time.Since(started).Milliseconds(),
	}, nil
}

type formRecognitionCapability struct {
	ai *OpenAIClient
}

func NewFormRecognitionCapability(ai *OpenAIClient) contracts.ExtractionCapability {
	return &formRecognitionCapability{ai: ai}
}

func (c *formRecognitionCapability) AnalysisType() models.AnalysisType {
	return models.AnalysisTypeFormRecognition
}

func (c *formRecognitionCapability) Extract(ctx context.Context, input *contracts.ExtractionInput) (*contracts.ExtractionOutput, error) {
	started := time.Now()

	text, _, err := documentText(input.Content, input.Document.MimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to read document text: %w", err)
	}

	raw, err := c.ai.CompleteJSON(ctx, formRecognitionSystemPrompt, extractionUserPrompt(input.Document.Name, text))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		models.FormRecognitionResult
		OverallConfidence float64 `json:"overallConfidence"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("malformed form recognition response: %w", err)
	}

	return &contracts.ExtractionOutput{
		Results:           models.AnalysisResults{FormRecognition: &parsed.FormRecognitionResult},
		ConfidenceSignals: []float64{parsed.OverallConfidence},
		ProcessingTimeMs:  time.Since(started).Milliseconds(),
	}, nil
}

type identityVerificationCapability struct {
	ai *OpenAIClient
}

func NewIdentityVerificationCapability(ai *OpenAIClient) contracts.ExtractionCapability {
	return &identityVerificationCapability{ai: ai}
}

func (c *identityVerificationCapability) AnalysisType() models.AnalysisType {
	return models.AnalysisTypeIdentityVerification
}

func (c *identityVerificationCapability) Extract(ctx context.Context, input *contracts.ExtractionInput) (*contracts.ExtractionOutput, error) {
	started := time.Now()

	text, _, err := documentText(input.Content, input.Document.MimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to read document text: %w", err)
	}

	raw, err := c.ai.CompleteJSON(ctx, identityVerificationSystemPrompt, extractionUserPrompt(input.Document.Name, text))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		models.IdentityVerificationResult
		OverallConfidence float64 `json:"overallConfidence"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("malformed identity verification response: %w", err)
	}

	return &contracts.ExtractionOutput{
		Results:           models.AnalysisResults{IdentityVerification: &parsed.IdentityVerificationResult},
		ConfidenceSignals: []float64{parsed.OverallConfidence},
		ProcessingTimeMs:  time.Since(started).Milliseconds(),
	}, nil
}
