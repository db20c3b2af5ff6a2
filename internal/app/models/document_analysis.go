package models

import "time"

type AnalysisType string

const (
	AnalysisTypeMedicalExtraction    AnalysisType = "medical_extraction"
	AnalysisTypeTextExtraction       AnalysisType = "text_extraction"
	AnalysisTypeFormRecognition      AnalysisType = "form_recognition"
	AnalysisTypeIdentityVerification AnalysisType = "identity_verification"
)

func (t AnalysisType) IsValid() bool {
	switch t {
	case AnalysisTypeMedicalExtraction, AnalysisTypeTextExtraction,
		AnalysisTypeFormRecognition, AnalysisTypeIdentityVerification:
		return true
	}
	return false
}

type AnalysisStatus string

const (
	AnalysisStatusPending    AnalysisStatus = "pending"
	AnalysisStatusProcessing AnalysisStatus = "processing"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)

func (s AnalysisStatus) IsTerminal() bool {
	return s == AnalysisStatusCompleted || s == AnalysisStatusFailed
}

type AnalysisPriority string

const (
	AnalysisPriorityNormal AnalysisPriority = "normal"
	AnalysisPriorityHigh   AnalysisPriority = "high"
)

// DocumentAnalysis is one execution of an extraction capability against one
// document. At most one non-terminal record may exist per (document, type),
// enforced with a partial unique index. Terminal state is written exactly once.
type DocumentAnalysis struct {
	ID               string           `json:"id" bson:"_id,omitempty"`
	DocumentID       string           `json:"documentId" bson:"documentId"`
	AnalysisType     AnalysisType     `json:"analysisType" bson:"analysisType"`
	Status           AnalysisStatus   `json:"status" bson:"status"`
	Priority         AnalysisPriority `json:"priority" bson:"priority"`
	Results          AnalysisResults  `json:"results" bson:"results"`
	Confidence       *ConfidenceScore `json:"confidence,omitempty" bson:"confidence,omitempty"`
	ProcessingTimeMs int64            `json:"processingTimeMs" bson:"processingTimeMs"`
	CreatedAt        time.Time        `json:"createdAt" bson:"createdAt"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// AnalysisResults is a tagged union keyed by the analysis type; exactly one
// variant is set on a completed record, Failure on a failed one. Extra keeps
// provider fields that have no typed home yet.
type AnalysisResults struct {
	MedicalExtraction    *MedicalExtractionResult    `json:"medicalExtraction,omitempty" bson:"medicalExtraction,omitempty"`
	TextExtraction       *TextExtractionResult       `json:"textExtraction,omitempty" bson:"textExtraction,omitempty"`
	FormRecognition      *FormRecognitionResult      `json:"formRecognition,omitempty" bson:"formRecognition,omitempty"`
	IdentityVerification *IdentityVerificationResult `json:"identityVerification,omitempty" bson:"identityVerification,omitempty"`
	Failure              *AnalysisFailure            `json:"failure,omitempty" bson:"failure,omitempty"`
	Extra                map[string]interface{}      `json:"extra,omitempty" bson:"extra,omitempty"`
}

// ExtractedFact is a single structured fact with its raw per-field signal in
// the 0..1 range as reported by the capability.
type ExtractedFact struct {
	Name       string  `json:"name" bson:"name"`
	Detail     string  `json:"detail,omitempty" bson:"detail,omitempty"`
	Confidence float64 `json:"confidence" bson:"confidence"`
}

type MedicalExtractionResult struct {
	Diagnoses        []ExtractedFact `json:"diagnoses" bson:"diagnoses"`
	Medications      []ExtractedFact `json:"medications" bson:"medications"`
	Allergies        []ExtractedFact `json:"allergies" bson:"allergies"`
	FunctionalStatus []ExtractedFact `json:"functionalStatus" bson:"functionalStatus"`
	Preferences      []ExtractedFact `json:"preferences" bson:"preferences"`
}

func (r *MedicalExtractionResult) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.Diagnoses) == 0 && len(r.Medications) == 0 && len(r.Allergies) == 0 &&
		len(r.FunctionalStatus) == 0 && len(r.Preferences) == 0
}

type TextExtractionResult struct {
	Text      string `json:"text" bson:"text"`
	PageCount int    `json:"pageCount" bson:"pageCount"`
	WordCount int    `json:"wordCount" bson:"wordCount"`
}

type FormRecognitionResult struct {
	FormType string            `json:"formType" bson:"formType"`
	Fields   map[string]string `json:"fields" bson:"fields"`
}

type IdentityVerificationResult struct {
	Verified      bool   `json:"verified" bson:"verified"`
	FullName      string `json:"fullName,omitempty" bson:"fullName,omitempty"`
	DocumentClass string `json:"documentClass,omitempty" bson:"documentClass,omitempty"`
}

type AnalysisFailure struct {
	Code    string `json:"code" bson:"code"`
	Message string `json:"message" bson:"message"`
}
