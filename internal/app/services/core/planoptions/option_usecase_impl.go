package planoptions

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
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

type carePlanOptionUsecase struct {
	DocumentRepository contracts.DocumentRepository
	Analyses           contracts.DocumentAnalysisUsecase
	Composers          []contracts.PlanComposer
	Locker             contracts.LockerService
	OptionCache        *cache.Keyed[responses.CarePlanOptionsResponse]
	Log                *zap.Logger
	Deadline           time.Duration
	PerDocumentWait    time.Duration
	OptionCount        int
}

func NewCarePlanOptionUsecase(
	documentRepository contracts.DocumentRepository,
	analyses contracts.DocumentAnalysisUsecase,
	composers []contracts.PlanComposer,
	locker contracts.LockerService,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CarePlanOptionUsecase {
	return &carePlanOptionUsecase{
		DocumentRepository: documentRepository,
		Analyses:           analyses,
		Composers:          composers,
		Locker:             locker,
		OptionCache:        cache.NewKeyed[responses.CarePlanOptionsResponse](redisRepository, logger, constvars.CacheTTLOptionSet),
		Log:                logger,
		Deadline:           time.Duration(internalConfig.Generation.DeadlineInSecond) * time.Second,
		PerDocumentWait:    time.Duration(internalConfig.Analysis.PerDocumentWaitInSecond) * time.Second,
		OptionCount:        internalConfig.Generation.OptionCount,
	}
}

func (uc *carePlanOptionUsecase) GenerateOptions(ctx context.Context, request *requests.GenerateCarePlanOptions) (*responses.CarePlanOptionsResponse, error) {
	documentIDs := dedupeSorted(request.DocumentIDs)
	cacheKey := fmt.Sprintf(constvars.CacheKeyOptionSetFormat, request.ClientID, requestFingerprint(documentIDs, request.AdditionalContext))

	return uc.OptionCache.GetOrLoad(ctx, cacheKey, func(ctx context.Context) (*responses.CarePlanOptionsResponse, error) {
		return uc.generate(ctx, request, documentIDs)
	})
}

func (uc *carePlanOptionUsecase) generate(ctx context.Context, request *requests.GenerateCarePlanOptions, documentIDs []string) (*responses.CarePlanOptionsResponse, error) {
	lockKey := fmt.Sprintf(constvars.LockKeyOptionGenerationFormat, request.ClientID)
	locked, lockValue, err := uc.Locker.TryLock(ctx, lockKey, constvars.LockOptionGenerationTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, exceptions.ErrGenerationLocked(nil)
	}
	defer func() {
		if err := uc.Locker.Unlock(context.Background(), lockKey, lockValue); err != nil {
			uc.Log.Warn("carePlanOptionUsecase.generate failed to release lock",
				zap.String(constvars.LoggingLockKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, uc.Deadline)
	defer cancel()
	startedAt := time.Now()

	if err := uc.checkDocuments(ctx, documentIDs); err != nil {
		return nil, err
	}

	used, excluded, facts := uc.collectFacts(ctx, documentIDs)
	merged := mergeMedicalFacts(facts)
	if len(used) == 0 || merged.IsEmpty() {
		return nil, exceptions.ErrInsufficientData(fmt.Errorf("no usable medical facts across %d documents", len(documentIDs)))
	}
	coverage := float64(len(used)) / float64(len(documentIDs))

	options, strategies := uc.compose(ctx, merged, request.AdditionalContext, coverage)
	if len(options) == 0 {
		return nil, exceptions.ErrExtractionUpstream(fmt.Errorf("every plan composition strategy failed"))
	}

	uc.Log.Info("carePlanOptionUsecase.generate produced option set",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClientIDKey, request.ClientID),
		zap.Int("option_count", len(options)),
		zap.Int("documents_used", len(used)),
		zap.Int64(constvars.LoggingDurationMsKey, time.Since(startedAt).Milliseconds()),
	)

	return &responses.CarePlanOptionsResponse{
		ClientID: request.ClientID,
		Options:  options,
		AnalysisMetadata: responses.AnalysisMetadata{
			DocumentsUsed:     used,
			DocumentsExcluded: excluded,
			Strategies:        strategies,
			ProcessingTimeMs:  time.Since(startedAt).Milliseconds(),
		},
	}, nil
}

// checkDocuments fails fast when any referenced document is missing or not
// yet available; partial generation over a wrong document set helps no one.
func (uc *carePlanOptionUsecase) checkDocuments(ctx context.Context, documentIDs []string) error {
	documents, err := uc.DocumentRepository.FindByIDs(ctx, documentIDs)
	if err != nil {
		return err
	}

	byID := make(map[string]models.Document, len(documents))
	for _, document := range documents {
		byID[document.ID] = document
	}

	var bad []string
	for _, documentID := range documentIDs {
		document, found := byID[documentID]
		if !found || !document.IsAvailable() {
			bad = append(bad, documentID)
		}
	}
	if len(bad) > 0 {
		return exceptions.ErrInputValidation(fmt.Errorf("documents not available: %s", strings.Join(bad, ", ")))
	}
	return nil
}

// collectFacts runs (or reuses) one medical extraction per document. A
// document whose extraction fails or times out is excluded with a reason
// instead of sinking the whole generation.
func (uc *carePlanOptionUsecase) collectFacts(ctx context.Context, documentIDs []string) ([]string, map[string]string, []*models.MedicalExtractionResult) {
	used := make([]string, 0, len(documentIDs))
	excluded := make(map[string]string)
	facts := make([]*models.MedicalExtractionResult, 0, len(documentIDs))

	for _, documentID := range documentIDs {
		analysis, err := uc.analyzeDocument(ctx, documentID)
		if err != nil {
			uc.Log.Warn("carePlanOptionUsecase.collectFacts extraction unavailable",
				zap.String(constvars.LoggingDocumentIDKey, documentID),
				zap.Error(err),
			)
			excluded[documentID] = exclusionReason(err)
			continue
		}
		if analysis.Status == models.AnalysisStatusFailed {
			reason := "extraction failed"
			if analysis.Results.Failure != nil {
				reason = analysis.Results.Failure.Message
			}
			excluded[documentID] = reason
			continue
		}

		used = append(used, documentID)
		facts = append(facts, analysis.Results.MedicalExtraction)
	}

	if len(excluded) == 0 {
		excluded = nil
	}
	return used, excluded, facts
}

func (uc *carePlanOptionUsecase) analyzeDocument(ctx context.Context, documentID string) (*models.DocumentAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.PerDocumentWait)
	defer cancel()

	return uc.Analyses.AnalyzeAndWait(ctx, &requests.AnalyzeDocument{
		DocumentID:   documentID,
		AnalysisType: string(models.AnalysisTypeMedicalExtraction),
		Priority:     string(models.AnalysisPriorityHigh),
	})
}

// compose runs every strategy, scores each produced option, and orders the
// set by score descending. Strategy order breaks ties so the output is stable
// for identical input.
func (uc *carePlanOptionUsecase) compose(ctx context.Context, facts *models.MedicalExtractionResult, additionalContext string, coverage float64) ([]models.CarePlanOption, []string) {
	options := make([]models.CarePlanOption, 0, len(uc.Composers))
	strategies := make([]string, 0, len(uc.Composers))

	for _, composer := range uc.Composers {
		option, signals, err := composer.Compose(ctx, facts, additionalContext)
		if err != nil {
			uc.Log.Warn("carePlanOptionUsecase.compose strategy failed",
				zap.String(constvars.LoggingStrategyKey, composer.Strategy()),
				zap.Error(err),
			)
			continue
		}

		scored := make([]confidence.Signal, 0, len(signals)+1)
		for _, value := range signals {
			scored = append(scored, confidence.Signal{Name: "model self-assessment", Value: value})
		}
		scored = append(scored, confidence.Signal{Name: "document coverage", Value: coverage})
		option.ConfidenceScore = confidence.Score(scored)

		options = append(options, *option)
		strategies = append(strategies, composer.Strategy())
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].ConfidenceScore.Score > options[j].ConfidenceScore.Score
	})
	if uc.OptionCount > 0 && len(options) > uc.OptionCount {
		options = options[:uc.OptionCount]
	}
	return options, strategies
}

func exclusionReason(err error) string {
	if customErr, ok := err.(*exceptions.CustomError); ok {
		return customErr.ClientMessage
	}
	return err.Error()
}

func dedupeSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// requestFingerprint keys the option set cache by the exact generation input.
func requestFingerprint(documentIDs []string, additionalContext string) string {
	sum := sha256.Sum256([]byte(strings.Join(documentIDs, ",") + "|" + additionalContext))
	return hex.EncodeToString(sum[:8])
}
