package webhook

import "fmt"

// ErrorCode classifies a webhook processing failure. All codes surface as a
// server error at the HTTP boundary so Stripe's redelivery retries the event.
type ErrorCode string

const (
	// CodeMissingBuyer: the session metadata carries no usable user id.
	CodeMissingBuyer ErrorCode = "missing_buyer"
	// CodeUnknownBuyer: the user id resolves to no platform user.
	CodeUnknownBuyer ErrorCode = "unknown_buyer"
	// CodeEmptyOrder: the expanded session has zero line items.
	CodeEmptyOrder ErrorCode = "empty_order"
	// CodeUnlinkedTenant: no tenant record matches the connected account.
	CodeUnlinkedTenant ErrorCode = "unlinked_tenant"
	// CodeUpstreamUnavailable: a provider or persistence call failed.
	CodeUpstreamUnavailable ErrorCode = "upstream_unavailable"
	// CodeUnsupportedEventType: an allow-listed type has no registered
	// handler. This is a defect, distinct from ignoring unlisted types.
	CodeUnsupportedEventType ErrorCode = "unsupported_event_type"
)

// ProcessingError is a classified pipeline failure tied to the provider
// event that triggered it.
type ProcessingError struct {
	Code    ErrorCode
	EventID string
	Err     error
}

func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (event %s): %v", e.Code, e.EventID, e.Err)
	}
	return fmt.Sprintf("%s (event %s)", e.Code, e.EventID)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

func processingErr(code ErrorCode, eventID string, err error) *ProcessingError {
	return &ProcessingError{Code: code, EventID: eventID, Err: err}
}
