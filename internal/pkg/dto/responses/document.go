package responses

import (
	"time"

	"revolucare-service/internal/app/models"
)

type Document struct {
	ID        string                `json:"id"`
	OwnerID   string                `json:"ownerId"`
	Type      models.DocumentType   `json:"type"`
	Name      string                `json:"name"`
	MimeType  string                `json:"mimeType"`
	SizeBytes int64                 `json:"sizeBytes"`
	Status    models.DocumentStatus `json:"status"`
	Metadata  map[string]string     `json:"metadata,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type DocumentDownload struct {
	DocumentID string    `json:"documentId"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
