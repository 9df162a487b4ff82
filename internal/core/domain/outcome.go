package domain

import "net/http"

// OutcomeCategory classifies the result of one remote operation.
type OutcomeCategory string

// Categories derived from HTTP status codes.
const (
	CategorySuccess200         OutcomeCategory = "success_200"
	CategorySuccess204         OutcomeCategory = "success_204"
	CategoryBadRequest400      OutcomeCategory = "bad_request_400"
	CategoryUnauthorized401    OutcomeCategory = "unauthorized_401"
	CategoryForbidden403       OutcomeCategory = "forbidden_403"
	CategoryValidationError422 OutcomeCategory = "validation_error_422"
	CategoryServerError500     OutcomeCategory = "server_error_500"
	CategoryUnknown            OutcomeCategory = "unknown"
)

// Categories for failures that never produced a usable HTTP status.
// Classify never returns these.
const (
	// CategoryTransportFailure means the request did not reach a status line.
	CategoryTransportFailure OutcomeCategory = "transport_failure"

	// CategoryParseFailure means a 200 response body could not be decoded.
	CategoryParseFailure OutcomeCategory = "parse_failure"

	// CategoryConfigFailure means credentials for the scope could not be resolved.
	CategoryConfigFailure OutcomeCategory = "config_failure"
)

type classification struct {
	category OutcomeCategory
	message  string
}

var statusTable = map[int]classification{
	http.StatusOK: {
		CategorySuccess200, "The request has succeeded.",
	},
	http.StatusNoContent: {
		CategorySuccess204, "The request has been successfully processed, but there is no additional content.",
	},
	http.StatusBadRequest: {
		CategoryBadRequest400, "A problem has occurred reading or understanding the request.",
	},
	http.StatusUnauthorized: {
		CategoryUnauthorized401, "Authentication required. Check the details are correct.",
	},
	http.StatusForbidden: {
		CategoryForbidden403, "Insufficient permissions to process the request.",
	},
	http.StatusUnprocessableEntity: {
		CategoryValidationError422, "A request validation error.",
	},
	http.StatusInternalServerError: {
		CategoryServerError500, "The server could not process the request.",
	},
}

const unknownMessage = "Uh oh, speak to a developer."

// Classify maps an HTTP status code to its category and message.
// Codes outside the known table map to CategoryUnknown.
func Classify(statusCode int) (OutcomeCategory, string) {
	if c, ok := statusTable[statusCode]; ok {
		return c.category, c.message
	}
	return CategoryUnknown, unknownMessage
}

// IsSuccess returns true for the 2xx categories.
func (c OutcomeCategory) IsSuccess() bool {
	return c == CategorySuccess200 || c == CategorySuccess204
}

// HasStatus returns true if the category was derived from an HTTP status code.
func (c OutcomeCategory) HasStatus() bool {
	switch c {
	case CategoryTransportFailure, CategoryParseFailure, CategoryConfigFailure:
		return false
	default:
		return true
	}
}

// String returns the string representation.
func (c OutcomeCategory) String() string {
	return string(c)
}

// Operation names the remote call an outcome describes.
type Operation string

// Remote operations.
const (
	OperationList   Operation = "list"
	OperationAdd    Operation = "add"
	OperationRemove Operation = "remove"
)

// Outcome is the classified result of one remote operation.
type Outcome struct {
	Operation  Operation
	StatusCode int
	Category   OutcomeCategory
	Message    string

	// Subject is the origin URL the operation targeted. Empty for list.
	Subject string

	// StoreID is the scope the operation ran under. Empty for the default scope.
	StoreID string

	// Err carries the underlying failure for the non-HTTP categories.
	Err error
}

// NewStatusOutcome classifies an HTTP status code.
func NewStatusOutcome(op Operation, statusCode int, subject, storeID string) Outcome {
	category, message := Classify(statusCode)
	return Outcome{
		Operation:  op,
		StatusCode: statusCode,
		Category:   category,
		Message:    message,
		Subject:    subject,
		StoreID:    storeID,
	}
}

// NewFailureOutcome records a failure that has no HTTP status.
func NewFailureOutcome(op Operation, category OutcomeCategory, err error, subject, storeID string) Outcome {
	return Outcome{
		Operation: op,
		Category:  category,
		Message:   failureMessage(category),
		Subject:   subject,
		StoreID:   storeID,
		Err:       err,
	}
}

func failureMessage(c OutcomeCategory) string {
	switch c {
	case CategoryTransportFailure:
		return "The request could not be sent to Adyen."
	case CategoryParseFailure:
		return "The response from Adyen could not be read."
	case CategoryConfigFailure:
		return "Adyen credentials could not be resolved."
	default:
		return unknownMessage
	}
}

// Succeeded returns true if the operation succeeded.
func (o Outcome) Succeeded() bool {
	return o.Category.IsSuccess()
}
