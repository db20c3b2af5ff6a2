package constvars

import "time"

// Cache key formats. Every mutating operation on an entity deletes the
// matching keys instead of rewriting them.
const (
	CacheKeyCarePlanFormat     = "careplan:%s"
	CacheKeyCarePlanListFormat = "careplans:client:%s"
	CacheKeyAnalysisFormat     = "analysis:%s"
	CacheKeyOptionSetFormat    = "careplan-options:%s:%s"

	CacheKeyCarePlanPatternFormat = "careplan*%s*"
	CacheKeyOptionSetPattern      = "careplan-options:%s:*"
)

const (
	CacheTTLCarePlan     = time.Hour
	CacheTTLCarePlanList = time.Hour
	CacheTTLOptionSet    = time.Hour
	// Analyses live as long as their owning document is operationally hot.
	CacheTTLAnalysis = 24 * time.Hour
)

const (
	LockKeyOptionGenerationFormat = "lock:careplan-options:%s"
	LockOptionGenerationTTL       = 2 * time.Minute
)
