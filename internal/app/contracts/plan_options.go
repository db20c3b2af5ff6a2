package contracts

import (
	"context"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/dto/responses"
)

type CarePlanOptionUsecase interface {
	GenerateOptions(ctx context.Context, request *requests.GenerateCarePlanOptions) (*responses.CarePlanOptionsResponse, error)
}
