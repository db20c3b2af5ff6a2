package documents

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/dto/responses"
	"revolucare-service/internal/pkg/exceptions"
	"revolucare-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const downloadURLTTL = 15 * time.Minute

type documentUsecase struct {
	DocumentRepository contracts.DocumentRepository
	AnalysisRepository contracts.DocumentAnalysisRepository
	Storage            contracts.Storage
	Log                *zap.Logger
}

func NewDocumentUsecase(
	documentRepository contracts.DocumentRepository,
	analysisRepository contracts.DocumentAnalysisRepository,
	storage contracts.Storage,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	return &documentUsecase{
		DocumentRepository: documentRepository,
		AnalysisRepository: analysisRepository,
		Storage:            storage,
		Log:                logger,
	}
}

func (uc *documentUsecase) UploadDocument(ctx context.Context, request *requests.UploadDocument) (*responses.Document, error) {
	now := time.Now().UTC()
	storageKey := fmt.Sprintf("%s/%s", request.OwnerID, uuid.NewString())

	document := &models.Document{
		OwnerID:    request.OwnerID,
		Type:       models.DocumentType(request.Type),
		Name:       request.Name,
		MimeType:   request.MimeType,
		SizeBytes:  int64(len(request.Content)),
		StorageRef: storageKey,
		Status:     models.DocumentStatusUploading,
		Metadata:   request.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	documentID, err := uc.DocumentRepository.Create(ctx, document)
	if err != nil {
		return nil, err
	}
	document.ID = documentID

	_, err = uc.Storage.Upload(ctx, bytes.NewReader(request.Content), storageKey, document.SizeBytes, request.MimeType)
	if err != nil {
		uc.Log.Error("documentUsecase.UploadDocument storage upload failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingDocumentIDKey, documentID),
			zap.Error(err),
		)
		if statusErr := uc.DocumentRepository.UpdateStatus(ctx, documentID, models.DocumentStatusError); statusErr != nil {
			uc.Log.Error("documentUsecase.UploadDocument failed to mark document errored",
				zap.String(constvars.LoggingDocumentIDKey, documentID),
				zap.Error(statusErr),
			)
		}
		return nil, err
	}

	if err := uc.DocumentRepository.UpdateStatus(ctx, documentID, models.DocumentStatusAvailable); err != nil {
		return nil, err
	}
	document.Status = models.DocumentStatusAvailable

	uc.Log.Info("documentUsecase.UploadDocument stored document",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
		zap.String(constvars.LoggingStorageKeyKey, storageKey),
	)
	return utils.MapDocumentToResponse(document), nil
}

func (uc *documentUsecase) FindDocumentByID(ctx context.Context, documentID string) (*responses.Document, error) {
	document, err := uc.DocumentRepository.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, exceptions.ErrDocumentNotFound(nil)
	}
	return utils.MapDocumentToResponse(document), nil
}

func (uc *documentUsecase) FindDocumentsByOwnerID(ctx context.Context, ownerID string) ([]responses.Document, error) {
	documents, err := uc.DocumentRepository.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return utils.MapDocumentsToResponses(documents), nil
}

func (uc *documentUsecase) GetDownloadURL(ctx context.Context, documentID string) (*responses.DocumentDownload, error) {
	document, err := uc.DocumentRepository.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, exceptions.ErrDocumentNotFound(nil)
	}
	if !document.IsAvailable() {
		return nil, exceptions.ErrDocumentNotAvailable(nil)
	}

	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, document.StorageRef, downloadURLTTL)
	if err != nil {
		return nil, err
	}

	return &responses.DocumentDownload{
		DocumentID: documentID,
		URL:        url,
		ExpiresAt:  time.Now().UTC().Add(downloadURLTTL),
	}, nil
}

func (uc *documentUsecase) DeleteDocument(ctx context.Context, documentID string) error {
	document, err := uc.DocumentRepository.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document == nil {
		return exceptions.ErrDocumentNotFound(nil)
	}

	if err := uc.Storage.Delete(ctx, document.StorageRef); err != nil {
		uc.Log.Error("documentUsecase.DeleteDocument storage delete failed",
			zap.String(constvars.LoggingDocumentIDKey, documentID),
			zap.Error(err),
		)
		return err
	}

	if err := uc.AnalysisRepository.DeleteByDocumentID(ctx, documentID); err != nil {
		return err
	}

	return uc.DocumentRepository.Delete(ctx, documentID)
}
