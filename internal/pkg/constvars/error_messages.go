package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"oneof":         "must be one of: %s",
	"uuid":          "must be a valid UUID",
	"gt":            "must be greater than %s",
	"document_type": "must be a valid document type",
	"analysis_type": "must be a valid analysis type",
}

// Client-facing messages. Never include internal identifiers the caller did
// not already supply.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Unable to process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientCarePlanNotFound              = "Care plan not found"
	ErrClientCarePlanStateInvalid          = "The care plan is not in a state that allows this operation"
	ErrClientCarePlanConflict              = "The care plan was modified by another request, please retry with fresh data"
	ErrClientDocumentNotFound              = "Document not found"
	ErrClientDocumentNotAvailable          = "One or more documents are not available for analysis"
	ErrClientAnalysisNotFound              = "Document analysis not found"
	ErrClientAnalysisInFlight              = "An analysis of this type is already in progress for this document"
	ErrClientInsufficientData              = "No usable data could be extracted from the provided documents"
	ErrClientUpstreamUnavailable           = "An upstream service is temporarily unavailable, please try again later"
	ErrClientGenerationBusy                = "Care plan options are already being generated for this client"
	ErrClientServerLongRespond             = "Server takes too long to respond"
)

// Developer-facing messages, logged only.
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevCannotParseJSON            = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON          = "Failed to marshal value to JSON"
	ErrDevURLParamIDValidationFailed = "Failed to validate URL param: %s"
	ErrDevCarePlanNotFound           = "Care plan does not exist"
	ErrDevCarePlanTerminalState      = "Care plan lifecycle state is terminal"
	ErrDevCarePlanInvalidTransition  = "Care plan status transition is not allowed"
	ErrDevCarePlanVersionConflict    = "Conditional write failed: care plan version precondition no longer holds"
	ErrDevAccessDenied               = "Actor does not satisfy the care plan access rule"
	ErrDevDocumentNotFound           = "Document does not exist"
	ErrDevDocumentNotAvailable       = "Document is not in available status"
	ErrDevAnalysisNotFound           = "Document analysis does not exist"
	ErrDevAnalysisDuplicateInFlight  = "Non-terminal analysis already exists for (document, type)"
	ErrDevAnalysisTerminalState      = "Analysis record is already terminal"
	ErrDevInsufficientData           = "Zero documents produced usable extraction data"
	ErrDevExtractionFailed           = "Extraction capability call failed"
	ErrDevUnknownAnalysisType        = "No extraction capability registered for analysis type"
	ErrDevGenerationLocked           = "Option generation lock is held for this client"
	ErrDevDBFailedToFindDocument     = "Failed to find document(s) on database"
	ErrDevDBFailedToInsertDocument   = "Failed to insert document on database"
	ErrDevDBFailedToUpdateDocument   = "Failed to update document on database"
	ErrDevDBFailedToDeleteDocument   = "Failed to delete document on database"
	ErrDevDBFailedToIterateDocuments = "Failed to iterate documents on database"
	ErrDevDBStringNotObjectID        = "Provided string is not a valid ObjectID"
	ErrDevRedisFailedToSet           = "Failed to set key on redis"
	ErrDevRedisFailedToGet           = "Failed to get key %s on redis"
	ErrDevRedisFailedToDelete        = "Failed to delete key on redis"
	ErrDevRedisFailedToScanKeys      = "Failed to scan keys on redis"
	ErrDevMinioFailedToCreateObject  = "Failed to create object on bucket %s"
	ErrDevMinioFailedToGetObject     = "Failed to get object from bucket %s"
	ErrDevMinioFailedToRemoveObject  = "Failed to remove object from bucket %s"
	ErrDevMinioFailedToPresignObject = "Failed to presign object URL on bucket %s"
	ErrDevRabbitMQFailedToPublish    = "Failed to publish message to rabbitMQ"
	ErrDevServerDeadlineExceeded     = "Request deadline exceeded"
	ErrDevMissingRequestID           = "Request ID is missing from context"
	ErrDevMissingActor               = "Actor identity is missing from context"
	ErrDevAuthTokenMissing           = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired  = "Authorization token is invalid or expired"
)

const ResponseUnknown = "unknown"
