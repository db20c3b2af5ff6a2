package models

import "time"

type DocumentType string

const (
	DocumentTypeMedicalRecord      DocumentType = "medical_record"
	DocumentTypeAssessment         DocumentType = "assessment"
	DocumentTypeCarePlan           DocumentType = "care_plan"
	DocumentTypeServicesPlan       DocumentType = "services_plan"
	DocumentTypePrescription       DocumentType = "prescription"
	DocumentTypeInsurance          DocumentType = "insurance"
	DocumentTypeConsentForm        DocumentType = "consent_form"
	DocumentTypeIdentification     DocumentType = "identification"
	DocumentTypeProviderCredential DocumentType = "provider_credential"
	DocumentTypeOther              DocumentType = "other"
)

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeMedicalRecord, DocumentTypeAssessment, DocumentTypeCarePlan,
		DocumentTypeServicesPlan, DocumentTypePrescription, DocumentTypeInsurance,
		DocumentTypeConsentForm, DocumentTypeIdentification, DocumentTypeProviderCredential,
		DocumentTypeOther:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentStatusUploading  DocumentStatus = "uploading"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusAvailable  DocumentStatus = "available"
	DocumentStatusError      DocumentStatus = "error"
)

// Document is an immutable content reference. After the status reaches
// available only metadata may change.
type Document struct {
	ID         string            `json:"id" bson:"_id,omitempty"`
	OwnerID    string            `json:"ownerId" bson:"ownerId"`
	Type       DocumentType      `json:"type" bson:"type"`
	Name       string            `json:"name" bson:"name"`
	MimeType   string            `json:"mimeType" bson:"mimeType"`
	SizeBytes  int64             `json:"sizeBytes" bson:"sizeBytes"`
	StorageRef string            `json:"storageRef" bson:"storageRef"`
	Status     DocumentStatus    `json:"status" bson:"status"`
	Metadata   map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt" bson:"updatedAt"`
}

func (d *Document) IsAvailable() bool {
	return d.Status == DocumentStatusAvailable
}
