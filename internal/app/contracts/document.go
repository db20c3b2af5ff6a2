package contracts

import (
	"context"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/dto/responses"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *models.Document) (string, error)
	FindByID(ctx context.Context, documentID string) (*models.Document, error)
	FindByIDs(ctx context.Context, documentIDs []string) ([]models.Document, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]models.Document, error)
	UpdateStatus(ctx context.Context, documentID string, status models.DocumentStatus) error
	UpdateMetadata(ctx context.Context, documentID string, metadata map[string]string) error
	Delete(ctx context.Context, documentID string) error
}

type DocumentUsecase interface {
	UploadDocument(ctx context.Context, request *requests.UploadDocument) (*responses.Document, error)
	FindDocumentByID(ctx context.Context, documentID string) (*responses.Document, error)
	FindDocumentsByOwnerID(ctx context.Context, ownerID string) ([]responses.Document, error)
	GetDownloadURL(ctx context.Context, documentID string) (*responses.DocumentDownload, error)
	DeleteDocument(ctx context.Context, documentID string) error
}
