package careplans

import (
	"context"
	"fmt"
	"time"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/app/services/shared/cache"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/dto/responses"
	"revolucare-service/internal/pkg/exceptions"
	"revolucare-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type carePlanUsecase struct {
	CarePlanRepository contracts.CarePlanRepository
	Assignments        contracts.AssignmentAuthorizer
	Events             contracts.EventPublisher
	PlanCache          *cache.Keyed[models.CarePlan]
	ListCache          *cache.Keyed[[]models.CarePlan]
	Log                *zap.Logger
}

func NewCarePlanUsecase(
	carePlanRepository contracts.CarePlanRepository,
	assignments contracts.AssignmentAuthorizer,
	events contracts.EventPublisher,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.CarePlanUsecase {
	return &carePlanUsecase{
		CarePlanRepository: carePlanRepository,
		Assignments:        assignments,
		Events:             events,
		PlanCache:          cache.NewKeyed[models.CarePlan](redisRepository, logger, constvars.CacheTTLCarePlan),
		ListCache:          cache.NewKeyed[[]models.CarePlan](redisRepository, logger, constvars.CacheTTLCarePlanList),
		Log:                logger,
	}
}

func (uc *carePlanUsecase) CreateCarePlan(ctx context.Context, actor *models.Actor, request *requests.CreateCarePlan) (*responses.CarePlan, error) {
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}

	now := time.Now().UTC()
	plan := &models.CarePlan{
		ClientID:      request.ClientID,
		CreatedByID:   actor.ID,
		Title:         request.Title,
		Description:   request.Description,
		Status:        models.CarePlanStatusDraft,
		Version:       1,
		Goals:         buildGoals(request.Goals),
		Interventions: buildInterventions(request.Interventions),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if request.ConfidenceScore != nil {
		plan.ConfidenceScore = &models.ConfidenceScore{
			Score:   request.ConfidenceScore.Score,
			Level:   models.ConfidenceLevelForScore(request.ConfidenceScore.Score),
			Factors: request.ConfidenceScore.Factors,
		}
	}

	carePlanID, err := uc.CarePlanRepository.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = carePlanID

	uc.invalidate(ctx, plan)
	uc.publish(ctx, constvars.EventCarePlanCreated, plan, actor)

	uc.Log.Info("carePlanUsecase.CreateCarePlan created care plan",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCarePlanIDKey, carePlanID),
		zap.String(constvars.LoggingClientIDKey, plan.ClientID),
	)
	return utils.MapCarePlanToResponse(plan), nil
}

func (uc *carePlanUsecase) FindCarePlanByID(ctx context.Context, actor *models.Actor, carePlanID string) (*responses.CarePlan, error) {
	plan, err := uc.loadPlan(ctx, carePlanID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(ctx, actor, plan); err != nil {
		return nil, err
	}
	return utils.MapCarePlanToResponse(plan), nil
}

func (uc *carePlanUsecase) FindCarePlansByClientID(ctx context.Context, actor *models.Actor, clientID string) ([]responses.CarePlan, error) {
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}

	cacheKey := fmt.Sprintf(constvars.CacheKeyCarePlanListFormat, clientID)
	plans, err := uc.ListCache.GetOrLoad(ctx, cacheKey, func(ctx context.Context) (*[]models.CarePlan, error) {
		found, err := uc.CarePlanRepository.FindByClientID(ctx, clientID)
		if err != nil {
			return nil, err
		}
		return &found, nil
	})
	if err != nil {
		return nil, err
	}

	visible, err := uc.filterAccessible(ctx, actor, clientID, *plans)
	if err != nil {
		return nil, err
	}
	return utils.MapCarePlansToResponses(visible), nil
}

func (uc *carePlanUsecase) UpdateCarePlan(ctx context.Context, actor *models.Actor, carePlanID string, request *requests.UpdateCarePlan) (*responses.CarePlan, error) {
	if request.IsEmpty() {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("update request carries no fields"))
	}

	plan, err := uc.CarePlanRepository.FindByID(ctx, carePlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, exceptions.ErrCarePlanNotFound(nil)
	}
	if err := uc.authorize(ctx, actor, plan); err != nil {
		return nil, err
	}
	if plan.Status.IsTerminal() {
		return nil, exceptions.ErrCarePlanTerminalState(nil)
	}

	updated := *plan
	if request.Title != nil {
		updated.Title = *request.Title
	}
	if request.Description != nil {
		updated.Description = *request.Description
	}
	if request.Goals != nil {
		updated.Goals = buildGoals(request.Goals)
	}
	if request.Interventions != nil {
		updated.Interventions = buildInterventions(request.Interventions)
	}

	changes := utils.ComputeCarePlanDiff(plan, &updated)
	if len(changes) == 0 {
		return utils.MapCarePlanToResponse(plan), nil
	}

	updated.Version = plan.Version + 1
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.commit(ctx, actor, &updated, plan.Version, changes); err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventCarePlanUpdated, &updated, actor)
	return utils.MapCarePlanToResponse(&updated), nil
}

func (uc *carePlanUsecase) ApproveCarePlan(ctx context.Context, actor *models.Actor, carePlanID string, request *requests.ApproveCarePlan) (*responses.CarePlan, error) {
	plan, err := uc.CarePlanRepository.FindByID(ctx, carePlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, exceptions.ErrCarePlanNotFound(nil)
	}
	if err := uc.authorize(ctx, actor, plan); err != nil {
		return nil, err
	}
	if plan.Status.IsTerminal() {
		return nil, exceptions.ErrCarePlanTerminalState(nil)
	}
	if !plan.Status.IsApprovable() {
		return nil, exceptions.ErrCarePlanInvalidTransition(fmt.Errorf("cannot approve plan in status %s", plan.Status))
	}

	now := time.Now().UTC()
	updated := *plan
	updated.Status = models.CarePlanStatusApproved
	updated.ApprovedByID = actor.ID
	updated.ApprovedAt = &now
	updated.ApprovalNotes = request.ApprovalNotes
	updated.Version = plan.Version + 1
	updated.UpdatedAt = now

	changes := utils.ComputeCarePlanDiff(plan, &updated)
	if err := uc.commit(ctx, actor, &updated, plan.Version, changes); err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventCarePlanApproved, &updated, actor)
	return utils.MapCarePlanToResponse(&updated), nil
}

func (uc *carePlanUsecase) UpdateCarePlanStatus(ctx context.Context, actor *models.Actor, carePlanID string, request *requests.UpdateCarePlanStatus) (*responses.CarePlan, error) {
	target := models.CarePlanStatus(request.Status)

	plan, err := uc.CarePlanRepository.FindByID(ctx, carePlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, exceptions.ErrCarePlanNotFound(nil)
	}
	if err := uc.authorize(ctx, actor, plan); err != nil {
		return nil, err
	}
	if plan.Status.IsTerminal() {
		return nil, exceptions.ErrCarePlanTerminalState(nil)
	}
	if !plan.Status.CanTransitionTo(target) {
		return nil, exceptions.ErrCarePlanInvalidTransition(fmt.Errorf("transition %s -> %s is not allowed", plan.Status, target))
	}

	now := time.Now().UTC()
	updated := *plan
	updated.Status = target
	updated.Version = plan.Version + 1
	updated.UpdatedAt = now
	if target == models.CarePlanStatusApproved {
		updated.ApprovedByID = actor.ID
		updated.ApprovedAt = &now
	}

	changes := utils.ComputeCarePlanDiff(plan, &updated)
	if err := uc.commit(ctx, actor, &updated, plan.Version, changes); err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventCarePlanStatusChanged, &updated, actor)
	return utils.MapCarePlanToResponse(&updated), nil
}

func (uc *carePlanUsecase) DeleteCarePlan(ctx context.Context, actor *models.Actor, carePlanID string) error {
	plan, err := uc.CarePlanRepository.FindByID(ctx, carePlanID)
	if err != nil {
		return err
	}
	if plan == nil {
		return exceptions.ErrCarePlanNotFound(nil)
	}
	if err := uc.authorize(ctx, actor, plan); err != nil {
		return err
	}

	if err := uc.CarePlanRepository.Delete(ctx, carePlanID); err != nil {
		return err
	}
	if err := uc.CarePlanRepository.DeleteVersions(ctx, carePlanID); err != nil {
		return err
	}

	uc.invalidate(ctx, plan)
	uc.publish(ctx, constvars.EventCarePlanDeleted, plan, actor)

	uc.Log.Info("carePlanUsecase.DeleteCarePlan deleted care plan",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCarePlanIDKey, carePlanID),
	)
	return nil
}

func (uc *carePlanUsecase) GetCarePlanHistory(ctx context.Context, actor *models.Actor, carePlanID string) (*responses.CarePlanHistory, error) {
	plan, err := uc.loadPlan(ctx, carePlanID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(ctx, actor, plan); err != nil {
		return nil, err
	}

	versions, err := uc.CarePlanRepository.GetVersionHistory(ctx, carePlanID)
	if err != nil {
		return nil, err
	}

	return &responses.CarePlanHistory{
		CarePlanID:     carePlanID,
		CurrentVersion: plan.Version,
		Versions:       versions,
	}, nil
}

// loadPlan reads a plan through the cache.
func (uc *carePlanUsecase) loadPlan(ctx context.Context, carePlanID string) (*models.CarePlan, error) {
	cacheKey := fmt.Sprintf(constvars.CacheKeyCarePlanFormat, carePlanID)
	return uc.PlanCache.GetOrLoad(ctx, cacheKey, func(ctx context.Context) (*models.CarePlan, error) {
		plan, err := uc.CarePlanRepository.FindByID(ctx, carePlanID)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, exceptions.ErrCarePlanNotFound(nil)
		}
		return plan, nil
	})
}

// commit performs the conditional write, records the version row, and drops
// the stale cache entries. A false precondition surfaces as a conflict the
// caller retries with fresh state.
func (uc *carePlanUsecase) commit(ctx context.Context, actor *models.Actor, updated *models.CarePlan, expectedVersion int, changes map[string]interface{}) error {
	ok, err := uc.CarePlanRepository.UpdateWithVersionCheck(ctx, updated, expectedVersion)
	if err != nil {
		return err
	}
	if !ok {
		return exceptions.ErrCarePlanVersionConflict(fmt.Errorf("care plan %s no longer at version %d", updated.ID, expectedVersion))
	}

	version := &models.CarePlanVersion{
		CarePlanID:  updated.ID,
		Version:     updated.Version,
		Changes:     changes,
		CreatedByID: actor.ID,
		CreatedAt:   updated.UpdatedAt,
	}
	if _, err := uc.CarePlanRepository.CreateVersion(ctx, version); err != nil {
		uc.Log.Error("carePlanUsecase.commit failed to record version row",
			zap.String(constvars.LoggingCarePlanIDKey, updated.ID),
			zap.Int(constvars.LoggingCarePlanVersionKey, updated.Version),
			zap.Error(err),
		)
		return err
	}

	uc.invalidate(ctx, updated)

	uc.Log.Info("carePlanUsecase.commit persisted care plan revision",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCarePlanIDKey, updated.ID),
		zap.Int(constvars.LoggingCarePlanVersionKey, updated.Version),
	)
	return nil
}

// authorize applies the care plan access rule, delegating the case manager
// assignment lookup to the authorization collaborator.
func (uc *carePlanUsecase) authorize(ctx context.Context, actor *models.Actor, plan *models.CarePlan) error {
	if actor == nil {
		return exceptions.ErrMissingActor(nil)
	}
	if actor.CanAccessCarePlan(plan) {
		return nil
	}
	if actor.IsCaseManager() && uc.Assignments != nil {
		assigned, err := uc.Assignments.IsAssigned(ctx, actor.ID, plan.ClientID)
		if err != nil {
			return err
		}
		if assigned {
			return nil
		}
	}
	return exceptions.ErrCarePlanAccessDenied(nil)
}

// filterAccessible narrows a client's plan list to the plans the actor may
// see. Administrators, the client, and an assigned case manager see all of
// them; anyone else only sees plans they created.
func (uc *carePlanUsecase) filterAccessible(ctx context.Context, actor *models.Actor, clientID string, plans []models.CarePlan) ([]models.CarePlan, error) {
	if actor.IsAdministrator() || actor.ID == clientID {
		return plans, nil
	}
	if actor.IsCaseManager() && uc.Assignments != nil {
		assigned, err := uc.Assignments.IsAssigned(ctx, actor.ID, clientID)
		if err != nil {
			return nil, err
		}
		if assigned {
			return plans, nil
		}
	}

	visible := make([]models.CarePlan, 0, len(plans))
	for _, plan := range plans {
		if plan.CreatedByID == actor.ID {
			visible = append(visible, plan)
		}
	}
	return visible, nil
}

func (uc *carePlanUsecase) invalidate(ctx context.Context, plan *models.CarePlan) {
	uc.PlanCache.Invalidate(ctx, fmt.Sprintf(constvars.CacheKeyCarePlanFormat, plan.ID))
	uc.ListCache.Invalidate(ctx, fmt.Sprintf(constvars.CacheKeyCarePlanListFormat, plan.ClientID))
}

func (uc *carePlanUsecase) publish(ctx context.Context, eventType string, plan *models.CarePlan, actor *models.Actor) {
	payload := map[string]interface{}{
		"carePlanId": plan.ID,
		"clientId":   plan.ClientID,
		"status":     plan.Status,
		"version":    plan.Version,
		"actorId":    actor.ID,
	}
	if err := uc.Events.Publish(ctx, eventType, payload); err != nil {
		uc.Log.Warn("carePlanUsecase.publish event publish failed",
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String(constvars.LoggingCarePlanIDKey, plan.ID),
			zap.Error(err),
		)
	}
}

func buildGoals(inputs []requests.CarePlanGoalInput) []models.CarePlanGoal {
	goals := make([]models.CarePlanGoal, 0, len(inputs))
	for _, input := range inputs {
		goals = append(goals, models.CarePlanGoal{
			ID:          uuid.NewString(),
			Description: input.Description,
			TargetDate:  input.TargetDate,
			Measures:    input.Measures,
			Status:      models.GoalStatusPending,
		})
	}
	return goals
}

func buildInterventions(inputs []requests.CarePlanInterventionInput) []models.CarePlanIntervention {
	interventions := make([]models.CarePlanIntervention, 0, len(inputs))
	for _, input := range inputs {
		interventions = append(interventions, models.CarePlanIntervention{
			ID:               uuid.NewString(),
			Description:      input.Description,
			Frequency:        input.Frequency,
			Duration:         input.Duration,
			ResponsibleParty: input.ResponsibleParty,
			Status:           models.InterventionStatusPending,
		})
	}
	return interventions
}
