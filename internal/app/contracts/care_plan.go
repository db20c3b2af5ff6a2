package contracts

import (
	"context"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/dto/responses"
)

type CarePlanRepository interface {
	Create(ctx context.Context, plan *models.CarePlan) (string, error)
	FindByID(ctx context.Context, carePlanID string) (*models.CarePlan, error)
	FindByClientID(ctx context.Context, clientID string) ([]models.CarePlan, error)
	// UpdateWithVersionCheck persists the plan only when the stored version
	// still equals expectedVersion. It returns false without error when the
	// precondition no longer holds.
	UpdateWithVersionCheck(ctx context.Context, plan *models.CarePlan, expectedVersion int) (bool, error)
	CreateVersion(ctx context.Context, version *models.CarePlanVersion) (string, error)
	GetVersionHistory(ctx context.Context, carePlanID string) ([]models.CarePlanVersion, error)
	Delete(ctx context.Context, carePlanID string) error
	DeleteVersions(ctx context.Context, carePlanID string) error
}

type CarePlanUsecase interface {
	CreateCarePlan(ctx context.Context, actor *models.Actor, request *requests.CreateCarePlan) (*responses.CarePlan, error)
	FindCarePlanByID(ctx context.Context, actor *models.Actor, carePlanID string) (*responses.CarePlan, error)
	FindCarePlansByClientID(ctx context.Context, actor *models.Actor, clientID string) ([]responses.CarePlan, error)
	UpdateCarePlan(ctx context.Context, actor *models.Actor, carePlanID string, request *requests.UpdateCarePlan) (*responses.CarePlan, error)
	ApproveCarePlan(ctx context.Context, actor *models.Actor, carePlanID string, request *requests.ApproveCarePlan) (*responses.CarePlan, error)
	UpdateCarePlanStatus(ctx context.Context, actor *models.Actor, carePlanID string, request *requests.UpdateCarePlanStatus) (*responses.CarePlan, error)
	DeleteCarePlan(ctx context.Context, actor *models.Actor, carePlanID string) error
	GetCarePlanHistory(ctx context.Context, actor *models.Actor, carePlanID string) (*responses.CarePlanHistory, error)
}

// AssignmentAuthorizer answers whether a case manager is assigned to a client.
// The assignment source of truth lives outside this service.
type AssignmentAuthorizer interface {
	IsAssigned(ctx context.Context, caseManagerID, clientID string) (bool, error)
}
