package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SESSION_ID_KEY ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "INTAKE_SVC_"
)

const (
	EnvironmentLocal       = "local"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	ResourceQuestions      = "questions"
	ResourceIntakeSessions = "intake-sessions"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

const (
	RedisIntakeSessionKeyPrefix     = "intake_session:"
	RedisIntakeSessionLockKeyPrefix = "intake_session_lock:"
	JWTClaimSessionID               = "session_id"
)

const (
	EnrichmentMessageTypeHeader = "message_type"
	EnrichmentSessionIDHeader   = "session_id"
	EnrichmentMessageTypeJSON   = "JSON"
	EnrichmentEventFinished     = "intake_session.finished"
)

const IntakeSessionLockExpiration = 10 * time.Second
