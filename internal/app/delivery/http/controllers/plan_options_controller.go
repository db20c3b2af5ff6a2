package controllers

import (
	"context"
	"net/http"
	"time"

	"revolucare-service/internal/app/config"
	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/exceptions"
	"revolucare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PlanOptionsController struct {
	Log           *zap.Logger
	OptionUsecase contracts.CarePlanOptionUsecase
	// requestTimeout exceeds the generation deadline so the usecase, not the
	// transport, decides when generation has taken too long.
	requestTimeout time.Duration
}

func NewPlanOptionsController(
	logger *zap.Logger,
	optionUsecase contracts.CarePlanOptionUsecase,
	internalConfig *config.InternalConfig,
) *PlanOptionsController {
	return &PlanOptionsController{
		Log:            logger,
		OptionUsecase:  optionUsecase,
		requestTimeout: time.Duration(internalConfig.Generation.DeadlineInSecond+10) * time.Second,
	}
}

func (ctrl *PlanOptionsController) GenerateOptions(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}

	request := new(requests.GenerateCarePlanOptions)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout)
	defer cancel()

	response, err := ctrl.OptionUsecase.GenerateOptions(ctx, request)
	if err != nil {
		ctrl.Log.Error("PlanOptionsController.GenerateOptions error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, request.ClientID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateCarePlanOptionsSuccess, response)
}
