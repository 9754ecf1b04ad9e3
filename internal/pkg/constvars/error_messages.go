package constvars

const ValidationTagAnswerShape = "answer_shape"

// Client messages per validation tag used by the request DTOs. A %s is
// replaced with the tag parameter.
var CustomValidationErrorMessages = map[string]string{
	"required":               "is required",
	"max":                    "maximum at %s characters long",
	ValidationTagAnswerShape: "answer needs either text or selected, not both",
}

const ValidationDefaultMessage = "is invalid"

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientSessionEnded                  = "your intake session ended, please start a new one"
	ErrClientIntakeSessionNotFound         = "intake session not found"
	ErrClientQuestionNotFound              = "question not found"
	ErrClientInvalidAnswer                 = "your answer could not be saved"
	ErrClientNotANumber                    = "please enter a number"
	ErrClientUnknownOption                 = "please choose from the listed options"
	ErrClientIntakeSessionCompleted        = "this intake session is already completed"
	ErrClientIntakeSessionNotCompleted     = "this intake session is not completed yet"
	ErrClientQuestionHasNoOtherOption      = "this question has no 'other' option"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientIntakeSessionBusy             = "this intake session is being updated, please retry"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevValidationFailed         = "validation failed"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSessionMismatch       = "token was issued for another intake session"

	// Intake messages
	ErrDevIntakeSessionNotFound     = "intake session %s not found in session store"
	ErrDevIntakeUnknownQuestion     = "question is not part of the catalog"
	ErrDevIntakeInvalidAnswer       = "answer rejected by question normalization"
	ErrDevIntakeSessionCompleted    = "intake session already finalized"
	ErrDevIntakeSessionNotCompleted = "intake session not finalized yet"
	ErrDevIntakeNoOtherOption       = "question has no other option to annotate"
	ErrDevIntakeSessionLocked       = "intake session %s is locked by another request"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue %s"
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitmq channel"
	ErrDevRabbitMQDeclareQueue   = "failed to declare rabbitmq queue %s"

	// Server messages
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerNotFound         = "resource not found"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanicRecovered   = "panic recovered while handling request"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)
