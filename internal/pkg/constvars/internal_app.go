package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_ACTOR_KEY      ContextKey = "actor"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	MongoCollectionDocuments        = "documents"
	MongoCollectionDocumentAnalyses = "document_analyses"
	MongoCollectionCarePlans        = "care_plans"
	MongoCollectionCarePlanVersions = "care_plan_versions"
	MongoCollectionCareAssignments  = "care_team_assignments"
)

// Care plan domain event types published on the notification queue.
const (
	EventCarePlanCreated       = "CARE_PLAN_CREATED"
	EventCarePlanUpdated       = "CARE_PLAN_UPDATED"
	EventCarePlanApproved      = "CARE_PLAN_APPROVED"
	EventCarePlanStatusChanged = "CARE_PLAN_STATUS_CHANGED"
	EventCarePlanDeleted       = "CARE_PLAN_DELETED"
)

const (
	NotificationQueueName           = "revolucare_notification_queue"
	NotificationDeadLetterQueueName = "revolucare_notification_dlq"
)
