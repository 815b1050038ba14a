package constants

// Storage drivers selectable through storage.driver.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
	StorageDriverMemory   = "memory"
)

// Event publisher providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Chat message roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// EventTypeLessonCompleted tags events emitted the first time a lesson is completed.
const EventTypeLessonCompleted = "lesson.completed"

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// MilestonePercentages are the completion thresholds announced by the event worker.
var MilestonePercentages = []int{25, 50, 75, 100}
