package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyCallSID contextKey = "call_sid"
	ContextKeyCaller  contextKey = "caller"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID          = "id"
	RequestParamStep        = "step"
	RequestParamWeekID      = "week_id"
	RequestParamApartmentID = "apartment_id"
	RequestParamQueueID     = "queue_id"
	RequestParamMenu        = "menu"
	RequestParamBox         = "box"
)

// Form fields posted by the telephony provider on every webhook.
const (
	FormFieldDigits            = "Digits"
	FormFieldFrom              = "From"
	FormFieldTo                = "To"
	FormFieldCallSID           = "CallSid"
	FormFieldCallStatus        = "CallStatus"
	FormFieldRecordingURL      = "RecordingUrl"
	FormFieldRecordingDuration = "RecordingDuration"
)

// Terminal call statuses reported by the provider's status callback.
const (
	CallStatusCompleted = "completed"
	CallStatusBusy      = "busy"
	CallStatusNoAnswer  = "no-answer"
	CallStatusFailed    = "failed"
	CallStatusCanceled  = "canceled"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
	DateOnly   = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
	ContentTypeXML            = "text/xml"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
