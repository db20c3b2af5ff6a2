package controllers

import (
	"context"
	"io"
	"net/http"
	"time"

	"revolucare-service/internal/app/config"
	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/dto/requests"
	"revolucare-service/internal/pkg/exceptions"
	"revolucare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	documentRequestTimeout = 10 * time.Second
	uploadRequestTimeout   = 30 * time.Second
	uploadFileFieldName    = "file"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
	AnalysisUsecase contracts.DocumentAnalysisUsecase
	InternalConfig  *config.InternalConfig
}

func NewDocumentController(
	logger *zap.Logger,
	documentUsecase contracts.DocumentUsecase,
	analysisUsecase contracts.DocumentAnalysisUsecase,
	internalConfig *config.InternalConfig,
) *DocumentController {
	return &DocumentController{
		Log:             logger,
		DocumentUsecase: documentUsecase,
		AnalysisUsecase: analysisUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *DocumentController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	actor := utils.GetActor(r.Context())
	if actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingActor(nil))
		return
	}

	maxBytes := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	file, header, err := r.FormFile(uploadFileFieldName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	defer file.Close()

	if err := utils.ValidateUploadFile(header, int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}
	mimeType := header.Header.Get(constvars.HeaderContentType)
	if mimeType == "" {
		mimeType = constvars.MIMEOctetStream
	}
	if err := utils.ValidateDocumentMimeType(mimeType); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	ownerID := r.FormValue("ownerId")
	if ownerID == "" {
		ownerID = actor.ID
	}

	request := &requests.UploadDocument{
		OwnerID:  ownerID,
		Type:     r.FormValue("type"),
		Name:     name,
		MimeType: mimeType,
		Content:  content,
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), uploadRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.UploadDocument(ctx, request)
	if err != nil {
		ctrl.Log.Error("DocumentController.UploadDocument error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadDocumentSuccessMessage, response)
}

func (ctrl *DocumentController) FindDocumentByID(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	ctx, cancel := context.WithTimeout(r.Context(), documentRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.FindDocumentByID(ctx, documentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentSuccessMessage, response)
}

func (ctrl *DocumentController) FindDocumentsByOwnerID(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	if ownerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "ownerID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), documentRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.FindDocumentsByOwnerID(ctx, ownerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentsSuccessMessage, response)
}

func (ctrl *DocumentController) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	ctx, cancel := context.WithTimeout(r.Context(), documentRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.GetDownloadURL(ctx, documentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentDownloadSuccessMessage, response)
}

func (ctrl *DocumentController) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	documentID := chi.URLParam(r, "documentID")

	ctx, cancel := context.WithTimeout(r.Context(), documentRequestTimeout)
	defer cancel()

	if err := ctrl.DocumentUsecase.DeleteDocument(ctx, documentID); err != nil {
		ctrl.Log.Error("DocumentController.DeleteDocument error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentIDKey, documentID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDocumentSuccessMessage, nil)
}

func (ctrl *DocumentController) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.AnalyzeDocument)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), documentRequestTimeout)
	defer cancel()

	response, err := ctrl.AnalysisUsecase.Analyze(ctx, request)
	if err != nil {
		ctrl.Log.Error("DocumentController.AnalyzeDocument error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentIDKey, request.DocumentID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.AnalyzeDocumentSuccessMessage, response)
}

func (ctrl *DocumentController) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysisID := chi.URLParam(r, "analysisID")

	ctx, cancel := context.WithTimeout(r.Context(), documentRequestTimeout)
	defer cancel()

	response, err := ctrl.AnalysisUsecase.GetAnalysis(ctx, analysisID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAnalysisSuccessMessage, response)
}
