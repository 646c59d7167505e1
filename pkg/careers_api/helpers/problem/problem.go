package problem

import "net/http"

type InvalidParam struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// APIError implements error and is rendered verbatim as the error response
// body. Success is always false so every failure carries the flag clients
// check on the submission path.
type APIError struct {
	Status  int            `json:"-"`
	Success bool           `json:"success"`
	Detail  string         `json:"error"`
	Hint    string         `json:"suggestion,omitempty"`
	Params  []InvalidParam `json:"details,omitempty"`
}

func (e APIError) Error() string { return e.Detail }

func NewBadRequest(detail string, params ...InvalidParam) APIError {
	return APIError{Status: http.StatusBadRequest, Detail: detail, Params: params}
}

func NewNotFound(detail string) APIError {
	return APIError{Status: http.StatusNotFound, Detail: detail}
}

func NewUnauthorized(detail string) APIError {
	return APIError{Status: http.StatusUnauthorized, Detail: detail}
}

func NewPayloadTooLarge(detail string) APIError {
	return APIError{Status: http.StatusRequestEntityTooLarge, Detail: detail}
}

// NewSchemaError carries a remediation hint so the client knows the schema was
// the problem, not the payload.
func NewSchemaError(detail, hint string) APIError {
	return APIError{Status: http.StatusInternalServerError, Detail: detail, Hint: hint}
}

func NewInternalServerError(detail string) APIError {
	return APIError{Status: http.StatusInternalServerError, Detail: detail}
}
