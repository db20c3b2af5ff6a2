package analyses

import (
	"context"
	"fmt"
	"time"

	"revolucare-service/internal/app/config"
	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/app/services/shared/cache"
	"revolucare-service/internal/app/services/shared/confidence"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/dto/responses"
	"revolucare-service/internal/pkg/exceptions"
	"revolucare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// inFlightPollInterval paces the wait loop in AnalyzeAndWait when another
// caller already owns the in-flight record.
const inFlightPollInterval = 500 * time.Millisecond

type analysisUsecase struct {
	AnalysisRepository contracts.DocumentAnalysisRepository
	DocumentRepository contracts.DocumentRepository
	Storage            contracts.Storage
	Capabilities       map[models.AnalysisType]contracts.ExtractionCapability
	Cache              *cache.Keyed[models.DocumentAnalysis]
	Log                *zap.Logger
	ExtractionTimeout  time.Duration
}

func NewAnalysisUsecase(
	analysisRepository contracts.DocumentAnalysisRepository,
	documentRepository contracts.DocumentRepository,
	storage contracts.Storage,
	capabilities []contracts.ExtractionCapability,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DocumentAnalysisUsecase {
	byType := make(map[models.AnalysisType]contracts.ExtractionCapability, len(capabilities))
	for _, capability := range capabilities {
		byType[capability.AnalysisType()] = capability
	}

	return &analysisUsecase{
		AnalysisRepository: analysisRepository,
		DocumentRepository: documentRepository,
		Storage:            storage,
		Capabilities:       byType,
		Cache:              cache.NewKeyed[models.DocumentAnalysis](redisRepository, logger, constvars.CacheTTLAnalysis),
		Log:                logger,
		ExtractionTimeout:  time.Duration(internalConfig.Analysis.ExtractionTimeoutInSecond) * time.Second,
	}
}

func (uc *analysisUsecase) Analyze(ctx context.Context, request *requests.AnalyzeDocument) (*responses.DocumentAnalysis, error) {
	document, capability, err := uc.prepare(ctx, request)
	if err != nil {
		return nil, err
	}

	analysis := newPendingAnalysis(request)
	analysisID, err := uc.AnalysisRepository.CreateIfNoneInFlight(ctx, analysis)
	if err != nil {
		return nil, err
	}
	analysis.ID = analysisID

	uc.Log.Info("analysisUsecase.Analyze accepted analysis request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingDocumentIDKey, request.DocumentID),
		zap.String(constvars.LoggingAnalysisIDKey, analysisID),
		zap.String(constvars.LoggingAnalysisTypeKey, request.AnalysisType),
	)

	// The caller gets the pending record back immediately; extraction runs
	// detached from the request context, bounded by the extraction timeout.
	runCtx := utils.WithRequestID(context.Background(), utils.GetRequestID(ctx))
	go func() {
		runCtx, cancel := context.WithTimeout(runCtx, uc.ExtractionTimeout)
		defer cancel()
		uc.execute(runCtx, analysis, document, capability)
	}()

	return utils.MapAnalysisToResponse(analysis), nil
}

func (uc *analysisUsecase) AnalyzeAndWait(ctx context.Context, request *requests.AnalyzeDocument) (*models.DocumentAnalysis, error) {
	document, capability, err := uc.prepare(ctx, request)
	if err != nil {
		return nil, err
	}

	// A recently completed analysis of the same kind is reused instead of
	// paying for another extraction run.
	completed, err := uc.AnalysisRepository.FindLatestCompleted(ctx, request.DocumentID, models.AnalysisType(request.AnalysisType))
	if err != nil {
		return nil, err
	}
	if completed != nil {
		return completed, nil
	}

	analysis := newPendingAnalysis(request)
	analysisID, err := uc.AnalysisRepository.CreateIfNoneInFlight(ctx, analysis)
	if err != nil {
		if exceptions.IsConflict(err) {
			return uc.awaitInFlight(ctx, request)
		}
		return nil, err
	}
	analysis.ID = analysisID

	return uc.execute(ctx, analysis, document, capability), nil
}

func (uc *analysisUsecase) GetAnalysis(ctx context.Context, analysisID string) (*responses.DocumentAnalysis, error) {
	cacheKey := fmt.Sprintf(constvars.CacheKeyAnalysisFormat, analysisID)

	analysis, err := uc.Cache.GetOrLoad(ctx, cacheKey, func(ctx context.Context) (*models.DocumentAnalysis, error) {
		record, err := uc.AnalysisRepository.FindByID(ctx, analysisID)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, exceptions.ErrAnalysisNotFound(nil)
		}
		return record, nil
	})
	if err != nil {
		return nil, err
	}

	// Only terminal records may stay cached; a pending or processing status
	// read through the cache would otherwise never advance.
	if !analysis.Status.IsTerminal() {
		uc.Cache.Invalidate(ctx, cacheKey)
	}

	return utils.MapAnalysisToResponse(analysis), nil
}

// prepare validates the target document and resolves the capability for the
// requested analysis type.
func (uc *analysisUsecase) prepare(ctx context.Context, request *requests.AnalyzeDocument) (*models.Document, contracts.ExtractionCapability, error) {
	document, err := uc.DocumentRepository.FindByID(ctx, request.DocumentID)
	if err != nil {
		return nil, nil, err
	}
	if document == nil {
		return nil, nil, exceptions.ErrDocumentNotFound(nil)
	}
	if !document.IsAvailable() {
		return nil, nil, exceptions.ErrDocumentNotAvailable(nil)
	}

	capability, ok := uc.Capabilities[models.AnalysisType(request.AnalysisType)]
	if !ok {
		return nil, nil, exceptions.ErrUnknownAnalysisType(nil)
	}
	return document, capability, nil
}

// execute runs one extraction to its terminal state and returns the terminal
// record. Capability failures become failed records, never lost goroutine
// errors.
func (uc *analysisUsecase) execute(
	ctx context.Context,
	analysis *models.DocumentAnalysis,
	document *models.Document,
	capability contracts.ExtractionCapability,
) *models.DocumentAnalysis {
	startedAt := time.Now()

	if err := uc.AnalysisRepository.MarkProcessing(ctx, analysis.ID); err != nil {
		uc.Log.Error("analysisUsecase.execute failed to mark analysis processing",
			zap.String(constvars.LoggingAnalysisIDKey, analysis.ID),
			zap.Error(err),
		)
	}
	analysis.Status = models.AnalysisStatusProcessing

	content, err := uc.Storage.Download(ctx, document.StorageRef)
	if err != nil {
		return uc.fail(ctx, analysis, startedAt, err)
	}

	output, err := capability.Extract(ctx, &contracts.ExtractionInput{
		Document: document,
		Content:  content,
		Options:  analysisOptions(analysis),
	})
	if err != nil {
		return uc.fail(ctx, analysis, startedAt, err)
	}

	score := confidence.FromValues(output.ConfidenceSignals)
	now := time.Now().UTC()
	analysis.Status = models.AnalysisStatusCompleted
	analysis.Results = output.Results
	analysis.Confidence = &score
	analysis.ProcessingTimeMs = time.Since(startedAt).Milliseconds()
	analysis.CompletedAt = &now

	return uc.finish(ctx, analysis)
}

func (uc *analysisUsecase) fail(ctx context.Context, analysis *models.DocumentAnalysis, startedAt time.Time, cause error) *models.DocumentAnalysis {
	uc.Log.Error("analysisUsecase.execute extraction failed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingDocumentIDKey, analysis.DocumentID),
		zap.String(constvars.LoggingAnalysisIDKey, analysis.ID),
		zap.Error(cause),
	)

	now := time.Now().UTC()
	analysis.Status = models.AnalysisStatusFailed
	analysis.Results = models.AnalysisResults{Failure: failureFromError(cause)}
	analysis.Confidence = nil
	analysis.ProcessingTimeMs = time.Since(startedAt).Milliseconds()
	analysis.CompletedAt = &now

	return uc.finish(ctx, analysis)
}

// finish persists the terminal record and caches it.
func (uc *analysisUsecase) finish(ctx context.Context, analysis *models.DocumentAnalysis) *models.DocumentAnalysis {
	if err := uc.AnalysisRepository.Complete(ctx, analysis.ID, analysis); err != nil {
		uc.Log.Error("analysisUsecase.finish failed to persist terminal analysis",
			zap.String(constvars.LoggingAnalysisIDKey, analysis.ID),
			zap.Error(err),
		)
		return analysis
	}

	uc.Cache.Set(ctx, fmt.Sprintf(constvars.CacheKeyAnalysisFormat, analysis.ID), analysis)

	uc.Log.Info("analysisUsecase.finish analysis reached terminal state",
		zap.String(constvars.LoggingAnalysisIDKey, analysis.ID),
		zap.String(constvars.LoggingAnalysisTypeKey, string(analysis.AnalysisType)),
		zap.String(constvars.LoggingAnalysisStatusKey, string(analysis.Status)),
		zap.Int64(constvars.LoggingDurationMsKey, analysis.ProcessingTimeMs),
	)
	return analysis
}

// awaitInFlight polls until the record owned by a concurrent caller reaches a
// terminal state or the caller's deadline expires.
func (uc *analysisUsecase) awaitInFlight(ctx context.Context, request *requests.AnalyzeDocument) (*models.DocumentAnalysis, error) {
	analysisType := models.AnalysisType(request.AnalysisType)

	inFlight, err := uc.AnalysisRepository.FindInFlight(ctx, request.DocumentID, analysisType)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(inFlightPollInterval)
	defer ticker.Stop()

	for {
		if inFlight == nil {
			// The owner finished between our insert attempt and this read.
			completed, err := uc.AnalysisRepository.FindLatestCompleted(ctx, request.DocumentID, analysisType)
			if err != nil {
				return nil, err
			}
			if completed != nil {
				return completed, nil
			}
			return nil, exceptions.ErrAnalysisNotFound(nil)
		}

		select {
		case <-ctx.Done():
			return nil, exceptions.ErrServerDeadlineExceeded(ctx.Err())
		case <-ticker.C:
		}

		record, err := uc.AnalysisRepository.FindByID(ctx, inFlight.ID)
		if err != nil {
			return nil, err
		}
		if record != nil && record.Status.IsTerminal() {
			return record, nil
		}
		inFlight = record
	}
}

func newPendingAnalysis(request *requests.AnalyzeDocument) *models.DocumentAnalysis {
	priority := models.AnalysisPriority(request.Priority)
	if priority == "" {
		priority = models.AnalysisPriorityNormal
	}

	extra := make(map[string]interface{}, len(request.Options))
	for key, value := range request.Options {
		extra[key] = value
	}
	if len(extra) == 0 {
		extra = nil
	}

	return &models.DocumentAnalysis{
		DocumentID:   request.DocumentID,
		AnalysisType: models.AnalysisType(request.AnalysisType),
		Status:       models.AnalysisStatusPending,
		Priority:     priority,
		Results:      models.AnalysisResults{Extra: extra},
		CreatedAt:    time.Now().UTC(),
	}
}

func analysisOptions(analysis *models.DocumentAnalysis) map[string]string {
	if len(analysis.Results.Extra) == 0 {
		return nil
	}
	options := make(map[string]string, len(analysis.Results.Extra))
	for key, value := range analysis.Results.Extra {
		if text, ok := value.(string); ok {
			options[key] = text
		}
	}
	return options
}

func failureFromError(err error) *models.AnalysisFailure {
	if customErr, ok := err.(*exceptions.CustomError); ok {
		return &models.AnalysisFailure{
			Code:    customErr.Condition,
			Message: customErr.ClientMessage,
		}
	}
	return &models.AnalysisFailure{
		Code:    exceptions.ConditionUpstreamService,
		Message: err.Error(),
	}
}
