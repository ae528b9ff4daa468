package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_CONFIG         = "config"
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_THROTTLE       = "throttle"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN            = "unknown"
	TYPE_MISSING_USER_AGENT = "missing-user-agent"
	TYPE_MISSING_BACKEND    = "missing-backend"
	TYPE_REQUEST_BUILD      = "request-build"
	TYPE_REQUEST_CONSUMED   = "request-consumed"
	TYPE_CANCELLED          = "cancelled"
	TYPE_IO                 = "io"
	TYPE_BODY_CONSUMED      = "body-consumed"
	TYPE_XML_PARSE          = "xml"
	TYPE_HTTP_STATUS        = "not-ok-http-status"
)

// ApiError is the only error type returned by this module. Stage tells
// where in the request's life it failed and Type what went wrong:
//   - config:         the client could not be created (fatal, never retry)
//   - before-request: the backend rejected the request while building it;
//     nothing was sent and no rate limit permit was used
//   - throttle:       the context ended while waiting for a permit
//   - request:        the request could not be exchanged with the server;
//     retrying is up to the caller and costs another permit
//   - after-request:  the response body could not be read or decoded,
//     or (api package only) the server answered with a non-200 status
//
// A non-200 status is never an error of the client package itself;
// the response is returned and the caller inspects its status.
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int
}

var _ error = &ApiError{}

// Sentinels to match with errors.Is. An empty Stage or Type matches any.
var (
	ErrConfiguration    = &ApiError{Stage: STAGE_CONFIG}
	ErrMissingUserAgent = &ApiError{Stage: STAGE_CONFIG, Type: TYPE_MISSING_USER_AGENT}
	ErrBuild            = &ApiError{Stage: STAGE_BEFORE_REQUEST, Type: TYPE_REQUEST_BUILD}
	ErrRequestConsumed  = &ApiError{Stage: STAGE_BEFORE_REQUEST, Type: TYPE_REQUEST_CONSUMED}
	ErrThrottle         = &ApiError{Stage: STAGE_THROTTLE}
	ErrSend             = &ApiError{Stage: STAGE_REQUEST}
	ErrBodyRead         = &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_IO}
	ErrBodyConsumed     = &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_BODY_CONSUMED}
	ErrXmlParse         = &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_XML_PARSE}
	ErrHttpStatus       = &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_HTTP_STATUS}
	ErrNotFound         = &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_HTTP_STATUS, HttpStatusCode: 404}
)

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to NationStates failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// Is method is required by errors.Is() to match an error against the
// sentinels above by its Stage, Type and status instead of by pointer.
// Without it, errors.Is(err, ErrSend) would only be true for ErrSend itself.
func (e *ApiError) Is(other error) bool {
	var target *ApiError
	if !errors.As(other, &target) || target == nil {
		return false
	}
	return (target.Stage == "" || target.Stage == e.Stage) &&
		(target.Type == "" || target.Type == e.Type) &&
		(target.HttpStatusCode == 0 || target.HttpStatusCode == e.HttpStatusCode)
}

// Retriable reports whether trying again could succeed. Only transport
// failures and server side statuses qualify; each new try uses a permit.
func Retriable(err error) bool {
	var apiErr *ApiError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Stage {
	case STAGE_REQUEST:
		return true
	case STAGE_AFTER_REQUEST:
		return apiErr.Type == TYPE_HTTP_STATUS &&
			(apiErr.HttpStatusCode == 429 || apiErr.HttpStatusCode >= 500)
	}
	return false
}
