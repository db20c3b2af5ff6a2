package utils

import (
	"testing"

	"revolucare-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestValidateStructDocumentTypeTag(t *testing.T) {
	testCases := []struct {
		name    string
		request requests.UploadDocument
		wantErr bool
	}{
		{
			name: "valid medical record",
			request: requests.UploadDocument{
				OwnerID:  "client-1",
				Type:     "medical_record",
				Name:     "intake.pdf",
				MimeType: "application/pdf",
			},
		},
		{
			name: "unknown document type",
			request: requests.UploadDocument{
				OwnerID:  "client-1",
				Type:     "grocery_list",
				Name:     "intake.pdf",
				MimeType: "application/pdf",
			},
			wantErr: true,
		},
		{
			name: "missing owner",
			request: requests.UploadDocument{
				Type:     "medical_record",
				Name:     "intake.pdf",
				MimeType: "application/pdf",
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&tc.request)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStructAnalysisTypeTag(t *testing.T) {
	testCases := []struct {
		name    string
		request requests.AnalyzeDocument
		wantErr bool
	}{
		{
			name:    "valid medical extraction",
			request: requests.AnalyzeDocument{DocumentID: "doc-1", AnalysisType: "medical_extraction"},
		},
		{
			name:    "valid with priority",
			request: requests.AnalyzeDocument{DocumentID: "doc-1", AnalysisType: "text_extraction", Priority: "high"},
		},
		{
			name:    "unknown analysis type",
			request: requests.AnalyzeDocument{DocumentID: "doc-1", AnalysisType: "palm_reading"},
			wantErr: true,
		},
		{
			name:    "invalid priority",
			request: requests.AnalyzeDocument{DocumentID: "doc-1", AnalysisType: "text_extraction", Priority: "urgent"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&tc.request)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDocumentMimeType(t *testing.T) {
	assert.NoError(t, ValidateDocumentMimeType("application/pdf"))
	assert.NoError(t, ValidateDocumentMimeType("Text/Plain; charset=utf-8"))
	assert.Error(t, ValidateDocumentMimeType("video/mp4"))
}
