package planoptions

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"revolucare-service/internal/app/config"
	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/dto/responses"
	"revolucare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDocumentRepository struct {
	documents map[string]*models.Document
}

func (r *fakeDocumentRepository) Create(_ context.Context, _ *models.Document) (string, error) {
	return "", nil
}

func (r *fakeDocumentRepository) FindByID(_ context.Context, documentID string) (*models.Document, error) {
	document, ok := r.documents[documentID]
	if !ok {
		return nil, nil
	}
	return document, nil
}

func (r *fakeDocumentRepository) FindByIDs(_ context.Context, documentIDs []string) ([]models.Document, error) {
	var found []models.Document
	for _, id := range documentIDs {
		if document, ok := r.documents[id]; ok {
			found = append(found, *document)
		}
	}
	return found, nil
}

func (r *fakeDocumentRepository) FindByOwnerID(_ context.Context, _ string) ([]models.Document, error) {
	return nil, nil
}

func (r *fakeDocumentRepository) UpdateStatus(_ context.Context, _ string, _ models.DocumentStatus) error {
	return nil
}

func (r *fakeDocumentRepository) UpdateMetadata(_ context.Context, _ string, _ map[string]string) error {
	return nil
}

func (r *fakeDocumentRepository) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeAnalysisUsecase struct {
	mu      sync.Mutex
	results map[string]*models.DocumentAnalysis
	errs    map[string]error
	calls   map[string]int
}

func (u *fakeAnalysisUsecase) Analyze(_ context.Context, _ *requests.AnalyzeDocument) (*responses.DocumentAnalysis, error) {
	return nil, nil
}

func (u *fakeAnalysisUsecase) AnalyzeAndWait(_ context.Context, request *requests.AnalyzeDocument) (*models.DocumentAnalysis, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.calls == nil {
		u.calls = make(map[string]int)
	}
	u.calls[request.DocumentID]++
	if err, ok := u.errs[request.DocumentID]; ok {
		return nil, err
	}
	return u.results[request.DocumentID], nil
}

func (u *fakeAnalysisUsecase) GetAnalysis(_ context.Context, _ string) (*responses.DocumentAnalysis, error) {
	return nil, nil
}

type fakeComposer struct {
	strategy string
	signal   float64
	err      error
	calls    int
}

func (c *fakeComposer) Strategy() string {
	return c.strategy
}

func (c *fakeComposer) Compose(_ context.Context, facts *models.MedicalExtractionResult, _ string) (*models.CarePlanOption, []float64, error) {
	c.calls++
	if c.err != nil {
		return nil, nil, c.err
	}
	return &models.CarePlanOption{
		Strategy:    c.strategy,
		Title:       c.strategy + " plan",
		Description: fmt.Sprintf("plan built from %d diagnoses", len(facts.Diagnoses)),
		Goals:       []models.CarePlanGoal{{ID: "goal-1", Description: "improve mobility", Status: models.GoalStatusPending}},
		Interventions: []models.CarePlanIntervention{{
			ID: "iv-1", Description: "therapy", Frequency: "weekly", Duration: "6 weeks",
			ResponsibleParty: "therapist", Status: models.InterventionStatusPending,
		}},
	}, []float64{c.signal}, nil
}

type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	denyAll  bool
	unlocked []string
}

func (l *fakeLocker) TryLock(_ context.Context, key string, _ time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.denyAll {
		return false, "", nil
	}
	if l.held == nil {
		l.held = make(map[string]bool)
	}
	if l.held[key] {
		return false, "", nil
	}
	l.held[key] = true
	return true, "lock-value", nil
}

func (l *fakeLocker) Unlock(_ context.Context, key, _ string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	l.unlocked = append(l.unlocked, key)
	return nil
}

type fakeRedisRepository struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{entries: make(map[string]string)}
}

func (r *fakeRedisRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

func (r *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = string(encoded)
	return nil
}

func (r *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[key], nil
}

func (r *fakeRedisRepository) Keys(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (r *fakeRedisRepository) TrySetNX(_ context.Context, key string, _ interface{}, _ time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists {
		return false, nil
	}
	r.entries[key] = "1"
	return true, nil
}

func completedExtraction(documentID string, facts *models.MedicalExtractionResult) *models.DocumentAnalysis {
	now := time.Now().UTC()
	return &models.DocumentAnalysis{
		ID:           "analysis-" + documentID,
		DocumentID:   documentID,
		AnalysisType: models.AnalysisTypeMedicalExtraction,
		Status:       models.AnalysisStatusCompleted,
		Results:      models.AnalysisResults{MedicalExtraction: facts},
		CompletedAt:  &now,
	}
}

type optionFixture struct {
	usecase   contracts.CarePlanOptionUsecase
	analyses  *fakeAnalysisUsecase
	composers []*fakeComposer
	locker    *fakeLocker
}

func newOptionFixture(t *testing.T, analyses *fakeAnalysisUsecase, composers []*fakeComposer, locker *fakeLocker) *optionFixture {
	t.Helper()

	documents := &fakeDocumentRepository{documents: map[string]*models.Document{
		"doc-1": {ID: "doc-1", OwnerID: "client-1", Status: models.DocumentStatusAvailable},
		"doc-2": {ID: "doc-2", OwnerID: "client-1", Status: models.DocumentStatusAvailable},
		"doc-stale": {ID: "doc-stale", OwnerID: "client-1", Status: models.DocumentStatusProcessing},
	}}

	planComposers := make([]contracts.PlanComposer, 0, len(composers))
	for _, composer := range composers {
		planComposers = append(planComposers, composer)
	}

	usecase := NewCarePlanOptionUsecase(
		documents,
		analyses,
		planComposers,
		locker,
		newFakeRedisRepository(),
		&config.InternalConfig{
			Analysis:   config.Analysis{ExtractionTimeoutInSecond: 5, PerDocumentWaitInSecond: 5},
			Generation: config.Generation{DeadlineInSecond: 10, OptionCount: 3},
		},
		zap.NewNop(),
	)

	return &optionFixture{usecase: usecase, analyses: analyses, composers: composers, locker: locker}
}

func defaultComposers() []*fakeComposer {
	return []*fakeComposer{
		{strategy: "comprehensive", signal: 0.7},
		{strategy: "focused-rehabilitation", signal: 0.95},
		{strategy: "holistic-wellness", signal: 0.8},
	}
}

func richFacts() *models.MedicalExtractionResult {
	return &models.MedicalExtractionResult{
		Diagnoses:   []models.ExtractedFact{{Name: "hip osteoarthritis", Confidence: 0.9}},
		Medications: []models.ExtractedFact{{Name: "naproxen", Confidence: 0.85}},
	}
}

func TestGenerateOptionsReturnsSortedScoredOptions(t *testing.T) {
	analyses := &fakeAnalysisUsecase{results: map[string]*models.DocumentAnalysis{
		"doc-1": completedExtraction("doc-1", richFacts()),
		"doc-2": completedExtraction("doc-2", &models.MedicalExtractionResult{
			FunctionalStatus: []models.ExtractedFact{{Name: "limited ambulation", Confidence: 0.8}},
		}),
	}}
	fixture := newOptionFixture(t, analyses, defaultComposers(), &fakeLocker{})

	result, err := fixture.usecase.GenerateOptions(context.Background(), &requests.GenerateCarePlanOptions{
		ClientID:    "client-1",
		DocumentIDs: []string{"doc-2", "doc-1"},
	})

	require.NoError(t, err)
	require.Len(t, result.Options, 3)
	for i, option := range result.Options {
		assert.GreaterOrEqual(t, option.ConfidenceScore.Score, 0)
		assert.LessOrEqual(t, option.ConfidenceScore.Score, 100)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Options[i-1].ConfidenceScore.Score, option.ConfidenceScore.Score,
				"options must be ordered by score descending")
		}
	}
	assert.Equal(t, "focused-rehabilitation", result.Options[0].Strategy)
	assert.Equal(t, []string{"doc-1", "doc-2"}, result.AnalysisMetadata.DocumentsUsed)
	assert.Empty(t, result.AnalysisMetadata.DocumentsExcluded)
	assert.Len(t, result.AnalysisMetadata.Strategies, 3)
	assert.Equal(t, []string{"lock:careplan-options:client-1"}, fixture.locker.unlocked, "lock must be released")
}

func TestGenerateOptionsInsufficientData(t *testing.T) {
	analyses := &fakeAnalysisUsecase{results: map[string]*models.DocumentAnalysis{
		"doc-1": completedExtraction("doc-1", &models.MedicalExtractionResult{}),
	}}
	fixture := newOptionFixture(t, analyses, defaultComposers(), &fakeLocker{})

	result, err := fixture.usecase.GenerateOptions(context.Background(), &requests.GenerateCarePlanOptions{
		ClientID:    "client-1",
		DocumentIDs: []string{"doc-1"},
	})

	require.Error(t, err)
	assert.True(t, exceptions.IsInsufficientData(err))
	assert.Nil(t, result)
	for _, composer := range fixture.composers {
		assert.Zero(t, composer.calls, "no strategy should run without facts")
	}
}

func TestGenerateOptionsValidatesDocumentAvailability(t *testing.T) {
	analyses := &fakeAnalysisUsecase{results: map[string]*models.DocumentAnalysis{}}

	testCases := []struct {
		name        string
		documentIDs []string
	}{
		{name: "unknown document", documentIDs: []string{"doc-1", "doc-missing"}},
		{name: "document not yet available", documentIDs: []string{"doc-1", "doc-stale"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := newOptionFixture(t, analyses, defaultComposers(), &fakeLocker{})

			_, err := fixture.usecase.GenerateOptions(context.Background(), &requests.GenerateCarePlanOptions{
				ClientID:    "client-1",
				DocumentIDs: tc.documentIDs,
			})

			require.Error(t, err)
			assert.True(t, exceptions.IsValidation(err))
		})
	}
}

func TestGenerateOptionsExcludesFailedExtractions(t *testing.T) {
	analyses := &fakeAnalysisUsecase{
		results: map[string]*models.DocumentAnalysis{
			"doc-1": completedExtraction("doc-1", richFacts()),
		},
		errs: map[string]error{
			"doc-2": exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded),
		},
	}
	fixture := newOptionFixture(t, analyses, defaultComposers(), &fakeLocker{})

	result, err := fixture.usecase.GenerateOptions(context.Background(), &requests.GenerateCarePlanOptions{
		ClientID:    "client-1",
		DocumentIDs: []string{"doc-1", "doc-2"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1"}, result.AnalysisMetadata.DocumentsUsed)
	require.Contains(t, result.AnalysisMetadata.DocumentsExcluded, "doc-2")
	assert.NotEmpty(t, result.AnalysisMetadata.DocumentsExcluded["doc-2"])
	require.Len(t, result.Options, 3)
}

func TestGenerateOptionsWhileLockedConflicts(t *testing.T) {
	analyses := &fakeAnalysisUsecase{results: map[string]*models.DocumentAnalysis{
		"doc-1": completedExtraction("doc-1", richFacts()),
	}}
	fixture := newOptionFixture(t, analyses, defaultComposers(), &fakeLocker{denyAll: true})

	_, err := fixture.usecase.GenerateOptions(context.Background(), &requests.GenerateCarePlanOptions{
		ClientID:    "client-1",
		DocumentIDs: []string{"doc-1"},
	})

	require.Error(t, err)
	assert.True(t, exceptions.IsConflict(err))
}

func TestGenerateOptionsServesRepeatRequestFromCache(t *testing.T) {
	analyses := &fakeAnalysisUsecase{results: map[string]*models.DocumentAnalysis{
		"doc-1": completedExtraction("doc-1", richFacts()),
	}}
	fixture := newOptionFixture(t, analyses, defaultComposers(), &fakeLocker{})
	request := &requests.GenerateCarePlanOptions{ClientID: "client-1", DocumentIDs: []string{"doc-1"}}

	first, err := fixture.usecase.GenerateOptions(context.Background(), request)
	require.NoError(t, err)
	second, err := fixture.usecase.GenerateOptions(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, first.Options, second.Options)
	for _, composer := range fixture.composers {
		assert.Equal(t, 1, composer.calls, "repeat request must not re-run strategies")
	}
	assert.Equal(t, 1, fixture.analyses.calls["doc-1"])
}

func TestMergeMedicalFactsDedupesByNormalizedName(t *testing.T) {
	merged := mergeMedicalFacts([]*models.MedicalExtractionResult{
		{
			Diagnoses:   []models.ExtractedFact{{Name: "Hip Osteoarthritis", Detail: "left hip", Confidence: 0.6}},
			Medications: []models.ExtractedFact{{Name: "naproxen", Confidence: 0.9}},
		},
		nil,
		{
			Diagnoses: []models.ExtractedFact{
				{Name: "hip osteoarthritis", Detail: "left hip, radiograph confirmed", Confidence: 0.9},
				{Name: "hypertension", Confidence: 0.8},
			},
			Medications: []models.ExtractedFact{{Name: "Naproxen", Confidence: 0.5}},
		},
	})

	require.Len(t, merged.Diagnoses, 2)
	assert.Equal(t, 0.9, merged.Diagnoses[0].Confidence, "highest-confidence mention wins")
	assert.Equal(t, "left hip, radiograph confirmed", merged.Diagnoses[0].Detail)
	assert.Equal(t, "hypertension", merged.Diagnoses[1].Name)
	require.Len(t, merged.Medications, 1)
	assert.Equal(t, 0.9, merged.Medications[0].Confidence)
	assert.Empty(t, merged.Allergies)
	assert.False(t, merged.IsEmpty())
}
