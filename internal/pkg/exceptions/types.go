package exceptions

import (
	"fmt"
	"revolucare-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ConditionValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ConditionValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ConditionValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, ConditionUpstreamService, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrMissingActor = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, ConditionUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevMissingActor)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, ConditionUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, ConditionUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	// Care plan lifecycle
	ErrCarePlanNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, ConditionNotFound, constvars.ErrClientCarePlanNotFound, constvars.ErrDevCarePlanNotFound)
	}
	ErrCarePlanTerminalState = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, ConditionInvalidState, constvars.ErrClientCarePlanStateInvalid, constvars.ErrDevCarePlanTerminalState)
	}
	ErrCarePlanInvalidTransition = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, ConditionInvalidState, constvars.ErrClientCarePlanStateInvalid, constvars.ErrDevCarePlanInvalidTransition)
	}
	ErrCarePlanVersionConflict = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, ConditionConflict, constvars.ErrClientCarePlanConflict, constvars.ErrDevCarePlanVersionConflict)
	}
	ErrCarePlanAccessDenied = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, ConditionUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAccessDenied)
	}

	// Documents and analyses
	ErrDocumentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, ConditionNotFound, constvars.ErrClientDocumentNotFound, constvars.ErrDevDocumentNotFound)
	}
	ErrDocumentNotAvailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, ConditionInvalidState, constvars.ErrClientDocumentNotAvailable, constvars.ErrDevDocumentNotAvailable)
	}
	ErrAnalysisNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, ConditionNotFound, constvars.ErrClientAnalysisNotFound, constvars.ErrDevAnalysisNotFound)
	}
	ErrAnalysisDuplicateInFlight = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, ConditionConflict, constvars.ErrClientAnalysisInFlight, constvars.ErrDevAnalysisDuplicateInFlight)
	}
	ErrAnalysisTerminalState = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, ConditionInvalidState, constvars.ErrClientCannotProcessRequest, constvars.ErrDevAnalysisTerminalState)
	}
	ErrUnknownAnalysisType = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ConditionValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevUnknownAnalysisType)
	}

	// Option generation
	ErrInsufficientData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, ConditionInsufficientData, constvars.ErrClientInsufficientData, constvars.ErrDevInsufficientData)
	}
	ErrGenerationLocked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, ConditionConflict, constvars.ErrClientGenerationBusy, constvars.ErrDevGenerationLocked)
	}
	ErrExtractionUpstream = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, ConditionUpstreamService, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevExtractionFailed)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, ConditionValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToSet)
	}
	ErrRedisGetNoData = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisFailedToGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToDelete)
	}
	ErrRedisScanKeys = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToScanKeys)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToDelete)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionUpstreamService, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioGetObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionUpstreamService, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObject, bucketName))
	}
	ErrMinioRemoveObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionUpstreamService, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToRemoveObject, bucketName))
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionUpstreamService, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPresignObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, ConditionUpstreamService, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQFailedToPublish)
	}
)
