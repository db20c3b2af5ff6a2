package contracts

import (
	"context"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/dto/responses"
)

type DocumentAnalysisRepository interface {
	// CreateIfNoneInFlight inserts a pending analysis record. The insert is
	// atomic against concurrent calls for the same (document, type): a
	// partial unique index rejects a second non-terminal record and the
	// repository reports that as a conflict.
	CreateIfNoneInFlight(ctx context.Context, analysis *models.DocumentAnalysis) (string, error)
	FindByID(ctx context.Context, analysisID string) (*models.DocumentAnalysis, error)
	FindInFlight(ctx context.Context, documentID string, analysisType models.AnalysisType) (*models.DocumentAnalysis, error)
	FindLatestCompleted(ctx context.Context, documentID string, analysisType models.AnalysisType) (*models.DocumentAnalysis, error)
	MarkProcessing(ctx context.Context, analysisID string) error
	// Complete transitions a non-terminal record to completed or failed.
	// Terminal records are never rewritten.
	Complete(ctx context.Context, analysisID string, update *models.DocumentAnalysis) error
	DeleteByDocumentID(ctx context.Context, documentID string) error
}

type DocumentAnalysisUsecase interface {
	Analyze(ctx context.Context, request *requests.AnalyzeDocument) (*responses.DocumentAnalysis, error)
	// AnalyzeAndWait runs the analysis synchronously and returns the terminal
	// record. Used by option generation, bounded by the caller's deadline.
	AnalyzeAndWait(ctx context.Context, request *requests.AnalyzeDocument) (*models.DocumentAnalysis, error)
	GetAnalysis(ctx context.Context, analysisID string) (*responses.DocumentAnalysis, error)
}
