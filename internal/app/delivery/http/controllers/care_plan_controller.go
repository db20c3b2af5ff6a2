package controllers

import (
	"context"
	"net/http"
	"time"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/exceptions"
	"revolucare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const carePlanRequestTimeout = 10 * time.Second

type CarePlanController struct {
	Log             *zap.Logger
	CarePlanUsecase contracts.CarePlanUsecase
}

func NewCarePlanController(logger *zap.Logger, carePlanUsecase contracts.CarePlanUsecase) *CarePlanController {
	return &CarePlanController{
		Log:             logger,
		CarePlanUsecase: carePlanUsecase,
	}
}

func (ctrl *CarePlanController) CreateCarePlan(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}

	request := new(requests.CreateCarePlan)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), carePlanRequestTimeout)
	defer cancel()

	response, err := ctrl.CarePlanUsecase.CreateCarePlan(ctx, actor, request)
	if err != nil {
		ctrl.Log.Error("CarePlanController.CreateCarePlan error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCarePlanSuccessMessage, response)
}

func (ctrl *CarePlanController) FindCarePlanByID(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}
	carePlanID := chi.URLParam(r, "carePlanID")

	ctx, cancel := context.WithTimeout(r.Context(), carePlanRequestTimeout)
	defer cancel()

	response, err := ctrl.CarePlanUsecase.FindCarePlanByID(ctx, actor, carePlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCarePlanSuccessMessage, response)
}

func (ctrl *CarePlanController) FindCarePlansByClientID(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}
	clientID := chi.URLParam(r, "clientID")
	if clientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "clientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), carePlanRequestTimeout)
	defer cancel()

	response, err := ctrl.CarePlanUsecase.FindCarePlansByClientID(ctx, actor, clientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCarePlansSuccessMessage, response)
}

func (ctrl *CarePlanController) UpdateCarePlan(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}
	carePlanID := chi.URLParam(r, "carePlanID")

	request := new(requests.UpdateCarePlan)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), carePlanRequestTimeout)
	defer cancel()

	response, err := ctrl.CarePlanUsecase.UpdateCarePlan(ctx, actor, carePlanID, request)
	if err != nil {
		ctrl.Log.Error("CarePlanController.UpdateCarePlan error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCarePlanIDKey, carePlanID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCarePlanSuccessMessage, response)
}

func (ctrl *CarePlanController) ApproveCarePlan(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}
	carePlanID := chi.URLParam(r, "carePlanID")

	request := new(requests.ApproveCarePlan)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), carePlanRequestTimeout)
	defer cancel()

	response, err := ctrl.CarePlanUsecase.ApproveCarePlan(ctx, actor, carePlanID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ApproveCarePlanSuccessMessage, response)
}

func (ctrl *CarePlanController) UpdateCarePlanStatus(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}
	carePlanID := chi.URLParam(r, "carePlanID")

	request := new(requests.UpdateCarePlanStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), carePlanRequestTimeout)
	defer cancel()

	response, err := ctrl.CarePlanUsecase.UpdateCarePlanStatus(ctx, actor, carePlanID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCarePlanStatusSuccessMessage, response)
}

func (ctrl *CarePlanController) DeleteCarePlan(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}
	carePlanID := chi.URLParam(r, "carePlanID")

	ctx, cancel := context.WithTimeout(r.Context(), carePlanRequestTimeout)
	defer cancel()

	if err := ctrl.CarePlanUsecase.DeleteCarePlan(ctx, actor, carePlanID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCarePlanSuccessMessage, nil)
}

func (ctrl *CarePlanController) GetCarePlanHistory(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}
	carePlanID := chi.URLParam(r, "carePlanID")

	ctx, cancel := context.WithTimeout(r.Context(), carePlanRequestTimeout)
	defer cancel()

	response, err := ctrl.CarePlanUsecase.GetCarePlanHistory(ctx, actor, carePlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCarePlanHistorySuccessMessage, response)
}
