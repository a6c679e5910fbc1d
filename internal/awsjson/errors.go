package awsjson

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/smithy-go"
)

// APIError is a modeled service error decoded from the JSON 1.1 error
// envelope. It implements smithy.APIError so generic SDK error handling
// (errors.As on smithy.APIError, retryable-code checks) works unchanged.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

func (e *APIError) ErrorCode() string    { return e.Code }
func (e *APIError) ErrorMessage() string { return e.Message }

func (e *APIError) ErrorFault() smithy.ErrorFault {
	if e.StatusCode >= 500 {
		return smithy.FaultServer
	}
	if e.StatusCode >= 400 {
		return smithy.FaultClient
	}
	return smithy.FaultUnknown
}

// HTTPStatusCode exposes the response status for status-based retry checks.
func (e *APIError) HTTPStatusCode() int { return e.StatusCode }

// Retryable reports whether the error is a throttle or server fault.
func (e *APIError) Retryable() bool {
	switch e.Code {
	case "ThrottlingException", "TooManyRequestsException",
		"ProvisionedThroughputExceededException", "RequestLimitExceeded",
		"ServiceUnavailable", "InternalErrorException":
		return true
	}
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// transportError marks connection-level failures as retryable without
// conflating them with modeled service errors.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

type errorEnvelope struct {
	Type     string `json:"__type"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	MessageU string `json:"Message"`
}

// decodeError resolves the wire error code and message from a non-2xx
// response. The code comes from the X-Amzn-Errortype header when present,
// otherwise from the body's __type or code field; either form may carry
// namespace and URI decorations that must be stripped.
func decodeError(resp *http.Response, body []byte) *APIError {
	ae := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Amzn-Requestid"),
	}

	var env errorEnvelope
	// A non-JSON body still yields a usable error with the HTTP status.
	_ = json.Unmarshal(body, &env)

	code := resp.Header.Get("X-Amzn-Errortype")
	if code == "" {
		code = env.Type
	}
	if code == "" {
		code = env.Code
	}
	ae.Code = sanitizeErrorCode(code)
	if ae.Code == "" {
		ae.Code = http.StatusText(resp.StatusCode)
	}

	ae.Message = env.Message
	if ae.Message == "" {
		ae.Message = env.MessageU
	}
	return ae
}

// sanitizeErrorCode strips the decorations services attach to error codes:
// anything after a ":" (a URI suffix) and anything up to and including a
// "#" (a Smithy namespace prefix).
func sanitizeErrorCode(code string) string {
	if i := strings.Index(code, ":"); i >= 0 {
		code = code[:i]
	}
	if i := strings.Index(code, "#"); i >= 0 {
		code = code[i+1:]
	}
	return strings.TrimSpace(code)
}
