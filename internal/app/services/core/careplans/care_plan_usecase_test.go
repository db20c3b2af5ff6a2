package careplans

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCarePlanRepository struct {
	mu           sync.Mutex
	nextID       int
	plans        map[string]*models.CarePlan
	versions     []models.CarePlanVersion
	versionRowID int
}

func newFakeCarePlanRepository() *fakeCarePlanRepository {
	return &fakeCarePlanRepository{plans: make(map[string]*models.CarePlan)}
}

func (r *fakeCarePlanRepository) Create(_ context.Context, plan *models.CarePlan) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := fmt.Sprintf("plan-%d", r.nextID)
	stored := clonePlan(plan)
	stored.ID = id
	r.plans[id] = stored
	return id, nil
}

func (r *fakeCarePlanRepository) FindByID(_ context.Context, carePlanID string) (*models.CarePlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan, ok := r.plans[carePlanID]
	if !ok {
		return nil, nil
	}
	return clonePlan(plan), nil
}

func (r *fakeCarePlanRepository) FindByClientID(_ context.Context, clientID string) ([]models.CarePlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found []models.CarePlan
	for _, plan := range r.plans {
		if plan.ClientID == clientID {
			found = append(found, *clonePlan(plan))
		}
	}
	return found, nil
}

func (r *fakeCarePlanRepository) UpdateWithVersionCheck(_ context.Context, plan *models.CarePlan, expectedVersion int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.plans[plan.ID]
	if !ok || stored.Version != expectedVersion {
		return false, nil
	}
	r.plans[plan.ID] = clonePlan(plan)
	return true, nil
}

func (r *fakeCarePlanRepository) CreateVersion(_ context.Context, version *models.CarePlanVersion) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versionRowID++
	stored := *version
	stored.ID = fmt.Sprintf("version-%d", r.versionRowID)
	r.versions = append(r.versions, stored)
	return stored.ID, nil
}

func (r *fakeCarePlanRepository) GetVersionHistory(_ context.Context, carePlanID string) ([]models.CarePlanVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var history []models.CarePlanVersion
	for _, version := range r.versions {
		if version.CarePlanID == carePlanID {
			history = append(history, version)
		}
	}
	return history, nil
}

func (r *fakeCarePlanRepository) Delete(_ context.Context, carePlanID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, carePlanID)
	return nil
}

func (r *fakeCarePlanRepository) DeleteVersions(_ context.Context, carePlanID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.versions[:0]
	for _, version := range r.versions {
		if version.CarePlanID != carePlanID {
			kept = append(kept, version)
		}
	}
	r.versions = kept
	return nil
}

func clonePlan(plan *models.CarePlan) *models.CarePlan {
	copied := *plan
	copied.Goals = append([]models.CarePlanGoal(nil), plan.Goals...)
	copied.Interventions = append([]models.CarePlanIntervention(nil), plan.Interventions...)
	return &copied
}

type fakeAssignments struct {
	assigned map[string]bool
}

func (a *fakeAssignments) IsAssigned(_ context.Context, caseManagerID, clientID string) (bool, error) {
	return a.assigned[caseManagerID+"/"+clientID], nil
}

type recordedEvent struct {
	EventType string
	Payload   interface{}
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *fakeEventPublisher) Publish(_ context.Context, eventType string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{EventType: eventType, Payload: payload})
	return nil
}

func (p *fakeEventPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.EventType)
	}
	return types
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

func (r *fakeRedisRepository) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists {
		return false, nil
	}
	r.entries[key] = "1"
	return true, nil
}

type carePlanFixture struct {
	usecase     contracts.CarePlanUsecase
	repo        *fakeCarePlanRepository
	assignments *fakeAssignments
	events      *fakeEventPublisher
	redis       *fakeRedisRepository
}

func newCarePlanFixture(t *testing.T) *carePlanFixture {
	t.Helper()

	repo := newFakeCarePlanRepository()
	assignments := &fakeAssignments{assigned: map[string]bool{"cm-1/client-1": true}}
	events := &fakeEventPublisher{}
	redis := newFakeRedisRepository()

	return &carePlanFixture{
		usecase:     NewCarePlanUsecase(repo, assignments, events, redis, zap.NewNop()),
		repo:        repo,
		assignments: assignments,
		events:      events,
		redis:       redis,
	}
}

var (
	adminActor       = &models.Actor{ID: "admin-1", Role: models.RoleAdministrator}
	clientActor      = &models.Actor{ID: "client-1", Role: models.RoleClient}
	providerActor    = &models.Actor{ID: "provider-1", Role: models.RoleProvider}
	caseManagerActor = &models.Actor{ID: "cm-1", Role: models.RoleCaseManager}
	strangerActor    = &models.Actor{ID: "client-9", Role: models.RoleClient}
)

func mobilityPlanRequest() *requests.CreateCarePlan {
	return &requests.CreateCarePlan{
		ClientID:    "client-1",
		Title:       "Mobility Plan",
		Description: "Restore independent ambulation after hip replacement.",
		Goals: []requests.CarePlanGoalInput{
			{Description: "Walk 100m unassisted", Measures: []string{"distance walked per session"}},
		},
		Interventions: []requests.CarePlanInterventionInput{
			{Description: "Physical therapy session", Frequency: "3x weekly", Duration: "6 weeks", ResponsibleParty: "physical therapist"},
		},
	}
}

func TestCreateCarePlanDefaults(t *testing.T) {
	fixture := newCarePlanFixture(t)

	plan, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())

	require.NoError(t, err)
	assert.Equal(t, models.CarePlanStatusDraft, plan.Status)
	assert.Equal(t, 1, plan.Version)
	assert.Equal(t, "provider-1", plan.CreatedByID)
	assert.Empty(t, plan.ApprovedByID)
	require.Len(t, plan.Goals, 1)
	assert.NotEmpty(t, plan.Goals[0].ID)
	assert.Equal(t, models.GoalStatusPending, plan.Goals[0].Status)
	require.Len(t, plan.Interventions, 1)
	assert.NotEmpty(t, plan.Interventions[0].ID)
	assert.Equal(t, models.InterventionStatusPending, plan.Interventions[0].Status)
	assert.Equal(t, []string{"CARE_PLAN_CREATED"}, fixture.events.types())
}

func TestUpdateCarePlanBumpsVersionAndRecordsHistory(t *testing.T) {
	fixture := newCarePlanFixture(t)
	created, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
	require.NoError(t, err)

	titles := []string{"Mobility Plan v2", "Mobility Plan v3", "Mobility Plan v4"}
	for _, title := range titles {
		patch := title
		_, err := fixture.usecase.UpdateCarePlan(context.Background(), providerActor, created.ID, &requests.UpdateCarePlan{Title: &patch})
		require.NoError(t, err)
	}

	current, err := fixture.usecase.FindCarePlanByID(context.Background(), providerActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1+len(titles), current.Version)
	assert.Equal(t, "Mobility Plan v4", current.Title)

	history, err := fixture.usecase.GetCarePlanHistory(context.Background(), providerActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, current.Version, history.CurrentVersion)
	require.Len(t, history.Versions, len(titles))
	for i, version := range history.Versions {
		assert.Equal(t, i+2, version.Version)
		assert.Contains(t, version.Changes, "title")
	}
}

func TestUpdateCarePlanNoContentChangeKeepsVersion(t *testing.T) {
	fixture := newCarePlanFixture(t)
	created, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
	require.NoError(t, err)

	sameTitle := created.Title
	updated, err := fixture.usecase.UpdateCarePlan(context.Background(), providerActor, created.ID, &requests.UpdateCarePlan{Title: &sameTitle})

	require.NoError(t, err)
	assert.Equal(t, 1, updated.Version)
	assert.Empty(t, fixture.repo.versions)
}

func TestUpdateCarePlanEmptyPatchRejected(t *testing.T) {
	fixture := newCarePlanFixture(t)
	created, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
	require.NoError(t, err)

	_, err = fixture.usecase.UpdateCarePlan(context.Background(), providerActor, created.ID, &requests.UpdateCarePlan{})

	require.Error(t, err)
	assert.True(t, exceptions.IsValidation(err))
}

func TestUpdateCarePlanStaleVersionConflicts(t *testing.T) {
	fixture := newCarePlanFixture(t)
	created, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
	require.NoError(t, err)

	// Move the stored plan ahead of what the next writer will read.
	fixture.repo.mu.Lock()
	fixture.repo.plans[created.ID].Version = 5
	fixture.repo.mu.Unlock()

	stored, err := fixture.repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	stored.Title = "Racing writer"
	stored.Version = 3

	ok, err := fixture.repo.UpdateWithVersionCheck(context.Background(), stored, 2)
	require.NoError(t, err)
	assert.False(t, ok, "write against a superseded version must not match")
}

func TestConcurrentUpdatesAllApplySerially(t *testing.T) {
	fixture := newCarePlanFixture(t)
	created, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	conflicts := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			title := fmt.Sprintf("Mobility Plan rev %d", i)
			_, err := fixture.usecase.UpdateCarePlan(context.Background(), providerActor, created.ID, &requests.UpdateCarePlan{Title: &title})
			if err != nil {
				conflicts <- err
			}
		}(i)
	}
	wg.Wait()
	close(conflicts)

	conflictCount := 0
	for err := range conflicts {
		assert.True(t, exceptions.IsConflict(err))
		conflictCount++
	}

	current, err := fixture.repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	applied := writers - conflictCount
	assert.Equal(t, 1+applied, current.Version, "every applied update bumps the version exactly once")
	assert.Len(t, fixture.repo.versions, applied)
}

func TestApproveCarePlanGuards(t *testing.T) {
	testCases := []struct {
		name     string
		status   models.CarePlanStatus
		wantErr  func(error) bool
		approves bool
	}{
		{name: "draft approves", status: models.CarePlanStatusDraft, approves: true},
		{name: "in review approves", status: models.CarePlanStatusInReview, approves: true},
		{name: "approved rejects", status: models.CarePlanStatusApproved, wantErr: exceptions.IsInvalidState},
		{name: "active rejects", status: models.CarePlanStatusActive, wantErr: exceptions.IsInvalidState},
		{name: "completed rejects", status: models.CarePlanStatusCompleted, wantErr: exceptions.IsInvalidState},
		{name: "rejected rejects", status: models.CarePlanStatusRejected, wantErr: exceptions.IsInvalidState},
		{name: "discontinued rejects", status: models.CarePlanStatusDiscontinued, wantErr: exceptions.IsInvalidState},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := newCarePlanFixture(t)
			created, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
			require.NoError(t, err)

			fixture.repo.mu.Lock()
			fixture.repo.plans[created.ID].Status = tc.status
			fixture.repo.mu.Unlock()

			approved, err := fixture.usecase.ApproveCarePlan(context.Background(), adminActor, created.ID, &requests.ApproveCarePlan{ApprovalNotes: "reviewed"})

			if tc.approves {
				require.NoError(t, err)
				assert.Equal(t, models.CarePlanStatusApproved, approved.Status)
				assert.Equal(t, "admin-1", approved.ApprovedByID)
				require.NotNil(t, approved.ApprovedAt)
				assert.Equal(t, "reviewed", approved.ApprovalNotes)
				assert.Equal(t, 2, approved.Version)
			} else {
				require.Error(t, err)
				assert.True(t, tc.wantErr(err))
			}
		})
	}
}

func TestUpdateCarePlanStatusTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    models.CarePlanStatus
		to      string
		wantErr func(error) bool
	}{
		{name: "draft to in review", from: models.CarePlanStatusDraft, to: "IN_REVIEW"},
		{name: "in review back to draft", from: models.CarePlanStatusInReview, to: "DRAFT"},
		{name: "in review to rejected", from: models.CarePlanStatusInReview, to: "REJECTED"},
		{name: "approved to active", from: models.CarePlanStatusApproved, to: "ACTIVE"},
		{name: "active to completed", from: models.CarePlanStatusActive, to: "COMPLETED"},
		{name: "active to discontinued", from: models.CarePlanStatusActive, to: "DISCONTINUED"},
		{name: "draft to active skips approval", from: models.CarePlanStatusDraft, to: "ACTIVE", wantErr: exceptions.IsInvalidState},
		{name: "approved back to draft", from: models.CarePlanStatusApproved, to: "DRAFT", wantErr: exceptions.IsInvalidState},
		{name: "completed is terminal", from: models.CarePlanStatusCompleted, to: "ACTIVE", wantErr: exceptions.IsInvalidState},
		{name: "rejected is terminal", from: models.CarePlanStatusRejected, to: "DRAFT", wantErr: exceptions.IsInvalidState},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := newCarePlanFixture(t)
			created, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
			require.NoError(t, err)

			fixture.repo.mu.Lock()
			fixture.repo.plans[created.ID].Status = tc.from
			fixture.repo.mu.Unlock()

			updated, err := fixture.usecase.UpdateCarePlanStatus(context.Background(), adminActor, created.ID, &requests.UpdateCarePlanStatus{Status: tc.to})

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.CarePlanStatus(tc.to), updated.Status)
			assert.Equal(t, 2, updated.Version)
		})
	}
}

func TestCarePlanAccessRule(t *testing.T) {
	testCases := []struct {
		name    string
		actor   *models.Actor
		allowed bool
	}{
		{name: "administrator", actor: adminActor, allowed: true},
		{name: "plan client", actor: clientActor, allowed: true},
		{name: "plan creator", actor: providerActor, allowed: true},
		{name: "assigned case manager", actor: caseManagerActor, allowed: true},
		{name: "unassigned case manager", actor: &models.Actor{ID: "cm-9", Role: models.RoleCaseManager}, allowed: false},
		{name: "unrelated client", actor: strangerActor, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := newCarePlanFixture(t)
			created, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
			require.NoError(t, err)

			found, err := fixture.usecase.FindCarePlanByID(context.Background(), tc.actor, created.ID)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, created.ID, found.ID)
			} else {
				require.Error(t, err)
				assert.True(t, exceptions.IsUnauthorized(err))
			}
		})
	}
}

func TestDeleteCarePlanCascades(t *testing.T) {
	fixture := newCarePlanFixture(t)
	created, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
	require.NoError(t, err)

	newTitle := "Mobility Plan revised"
	_, err = fixture.usecase.UpdateCarePlan(context.Background(), providerActor, created.ID, &requests.UpdateCarePlan{Title: &newTitle})
	require.NoError(t, err)
	require.NotEmpty(t, fixture.repo.versions)

	err = fixture.usecase.DeleteCarePlan(context.Background(), adminActor, created.ID)
	require.NoError(t, err)

	stored, err := fixture.repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Empty(t, fixture.repo.versions)

	cached, err := fixture.redis.Get(context.Background(), fmt.Sprintf("careplan:%s", created.ID))
	require.NoError(t, err)
	assert.Empty(t, cached)

	_, err = fixture.usecase.FindCarePlanByID(context.Background(), adminActor, created.ID)
	require.Error(t, err)
	assert.True(t, exceptions.IsNotFound(err))

	assert.Contains(t, fixture.events.types(), "CARE_PLAN_DELETED")
}

func TestFindCarePlansByClientIDFiltersForUnrelatedActor(t *testing.T) {
	fixture := newCarePlanFixture(t)
	_, err := fixture.usecase.CreateCarePlan(context.Background(), providerActor, mobilityPlanRequest())
	require.NoError(t, err)

	otherProvider := &models.Actor{ID: "provider-2", Role: models.RoleProvider}
	visible, err := fixture.usecase.FindCarePlansByClientID(context.Background(), otherProvider, "client-1")
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := fixture.usecase.FindCarePlansByClientID(context.Background(), clientActor, "client-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
