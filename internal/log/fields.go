package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserID     = "user_id"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldTransactionID   = "transaction_id"
	FieldTransactionType = "transaction_type"
	FieldItem            = "item"
	FieldAmount          = "amount"
	FieldCurrency        = "currency"
	FieldAction          = "action"
)

// Components defines standard component names
const (
	ComponentApp         = "app"
	ComponentHTTP        = "http"
	ComponentTransaction = "transaction"
	ComponentStorage     = "storage"
	ComponentAMQP        = "amqp"
	ComponentWorker      = "worker"
	ComponentAI          = "ai"
	ComponentVoice       = "voice"
	ComponentAuth        = "auth"
	ComponentRateLimit   = "rate_limit"
)
