package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// Sentinel errors matched by *ResponseError through errors.Is.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrThrottled          = errors.New("throttled")
	ErrServerError        = errors.New("server error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrNotModified        = errors.New("not modified")
	ErrUnexpectedStatus   = errors.New("unexpected status")
)

var (
	// ErrInvalidEndpoint is returned by New for an endpoint that is not an
	// absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("pipeline: invalid endpoint")

	// ErrNoCredential is returned by New when no credential is given.
	ErrNoCredential = errors.New("pipeline: credential is required")

	// ErrNoMorePages is returned by Pager.NextPage once paging is done.
	ErrNoMorePages = errors.New("pipeline: no more pages")
)

// ResponseError is returned when a service answers with a status the
// operation does not document.
type ResponseError struct {
	// Operation is the name of the failed operation ("get_key_value").
	Operation string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// ErrorCode is the service error code: the ARM error.code, the problem
	// type of App Configuration, or the x-ms-error-code header.
	ErrorCode string

	// Message is the human readable service message, falling back to the
	// HTTP status text.
	Message string

	// RawResponse is the response as received.
	RawResponse *http.Response

	sentinel error
	azErr    error
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d %s", e.Operation, e.StatusCode, http.StatusText(e.StatusCode))
	if e.ErrorCode != "" {
		fmt.Fprintf(&b, " (%s)", e.ErrorCode)
	}
	if e.Message != "" && e.Message != http.StatusText(e.StatusCode) {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap exposes both the sentinel for the status class and the underlying
// *azcore.ResponseError.
func (e *ResponseError) Unwrap() []error {
	var errs []error
	if e.sentinel != nil {
		errs = append(errs, e.sentinel)
	}
	if e.azErr != nil {
		errs = append(errs, e.azErr)
	}
	return errs
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

// armError is the ARM error envelope.
type armError struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// problemDetails is the RFC 7807 body App Configuration returns.
type problemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

func newResponseError(operation string, resp *http.Response) *ResponseError {
	re := &ResponseError{
		Operation:   operation,
		StatusCode:  resp.StatusCode,
		RawResponse: resp,
		sentinel:    sentinelFor(resp.StatusCode),
	}

	azErr := runtime.NewResponseError(resp)
	re.azErr = azErr
	var az *azcore.ResponseError
	if errors.As(azErr, &az) {
		re.ErrorCode = az.ErrorCode
	}

	if body, err := runtime.Payload(resp); err == nil && len(body) > 0 {
		decodeErrorBody(body, re)
	}

	if re.Message == "" {
		re.Message = http.StatusText(resp.StatusCode)
	}
	return re
}

func decodeErrorBody(body []byte, re *ResponseError) {
	var arm armError
	if err := json.Unmarshal(body, &arm); err == nil && arm.Error != nil {
		if arm.Error.Code != "" {
			re.ErrorCode = arm.Error.Code
		}
		re.Message = arm.Error.Message
		return
	}

	var pd problemDetails
	if err := json.Unmarshal(body, &pd); err == nil && (pd.Type != "" || pd.Title != "") {
		if re.ErrorCode == "" {
			re.ErrorCode = problemCode(pd.Type)
		}
		re.Message = pd.Detail
		if re.Message == "" {
			re.Message = pd.Title
		}
	}
}

// problemCode turns "https://azconfig.io/errors/key-locked" into "key-locked".
func problemCode(problemType string) string {
	problemType = strings.TrimRight(problemType, "/")
	if i := strings.LastIndex(problemType, "/"); i >= 0 {
		return problemType[i+1:]
	}
	return problemType
}

func sentinelFor(status int) error {
	switch {
	case status == http.StatusNotModified:
		return ErrNotModified
	case status == http.StatusBadRequest:
		return ErrBadRequest
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status == http.StatusPreconditionFailed:
		return ErrPreconditionFailed
	case status == http.StatusTooManyRequests:
		return ErrThrottled
	case status == http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case status >= 500:
		return ErrServerError
	default:
		return ErrUnexpectedStatus
	}
}
