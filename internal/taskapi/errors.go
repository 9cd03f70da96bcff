package taskapi

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call for the coordinator's user-facing message.
type Kind string

const (
	KindAuthMissing      Kind = "auth_missing"
	KindNetworkFailure   Kind = "network_failure"
	KindValidation       Kind = "validation"
	KindNotFound         Kind = "not_found"
	KindPermissionDenied Kind = "permission_denied"
	KindServerError      Kind = "server_error"
	KindUnknown          Kind = "unknown"
)

// Error is the typed failure returned by every client method.
type Error struct {
	Kind       Kind
	StatusCode int    // 0 when no HTTP response was received
	Message    string // raw error text or response body excerpt
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("taskapi: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("taskapi: %s: %s", e.Kind, e.Message)
}

// kindForStatus maps an HTTP status to an error kind.
func kindForStatus(status int) Kind {
	switch {
	case status == 401:
		return KindAuthMissing
	case status == 403:
		return KindPermissionDenied
	case status == 404:
		return KindNotFound
	case status == 422:
		return KindValidation
	case status >= 500:
		return KindServerError
	default:
		return KindUnknown
	}
}

// UserMessage derives the user-visible failure text from an error: a fixed
// phrase when the HTTP status identifies the problem, else the raw error
// text, else a generic fallback.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case KindAuthMissing:
			return "not signed in"
		case KindValidation:
			return "invalid request format"
		case KindNotFound:
			return "item not found, may have been deleted"
		case KindPermissionDenied:
			return "no permission"
		case KindServerError:
			return "server error, try later"
		case KindNetworkFailure:
			return "network error, check connection"
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "something went wrong"
}
