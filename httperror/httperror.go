package httperror

import "net/http"

// Kind names the failure category independently of the HTTP status,
// since several kinds share a status code.
type Kind string

const (
	KindNotFound                 Kind = "not_found"
	KindUnauthorized             Kind = "unauthorized"
	KindValidationFailed         Kind = "validation_failed"
	KindAuthenticationFailed     Kind = "authentication_failed"
	KindStoreError               Kind = "store_error"
	KindRelationshipUpdateFailed Kind = "relationship_update_failed"
	KindGeocodingFailed          Kind = "geocoding_failed"
)

// Error is a domain error carrying the HTTP status the boundary should
// answer with. Message is safe to return to clients; Err is not.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: message}
}

func ValidationFailed(message string) *Error {
	return &Error{Kind: KindValidationFailed, Status: http.StatusUnprocessableEntity, Message: message}
}

func AuthenticationFailed(message string) *Error {
	return &Error{Kind: KindAuthenticationFailed, Status: http.StatusForbidden, Message: message}
}

func StoreError(message string, err error) *Error {
	return &Error{Kind: KindStoreError, Status: http.StatusInternalServerError, Message: message, Err: err}
}

func RelationshipUpdateFailed(message string, err error) *Error {
	return &Error{Kind: KindRelationshipUpdateFailed, Status: http.StatusInternalServerError, Message: message, Err: err}
}

func GeocodingFailed(message string) *Error {
	return &Error{Kind: KindGeocodingFailed, Status: http.StatusUnprocessableEntity, Message: message}
}
