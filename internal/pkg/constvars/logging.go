package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingActorIDKey         = "actor_id"
	LoggingClientIDKey        = "client_id"
	LoggingCarePlanIDKey      = "care_plan_id"
	LoggingCarePlanVersionKey = "care_plan_version"
	LoggingDocumentIDKey      = "document_id"
	LoggingAnalysisIDKey      = "analysis_id"
	LoggingAnalysisTypeKey    = "analysis_type"
	LoggingAnalysisStatusKey  = "analysis_status"
	LoggingStrategyKey        = "strategy"
	LoggingCacheKey           = "cache_key"
	LoggingEventTypeKey       = "event_type"
	LoggingStorageKeyKey      = "storage_key"
	LoggingDurationMsKey      = "duration_ms"
	LoggingLockKey            = "lock_key"
	LoggingLockValueKey       = "lock_value"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
)
