package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHTTP indicates a non-2xx status from the service
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed or incomplete response body
	ErrTypeParse
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates nothing is listening at the service address
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the service hostname could not be resolved
	ErrTypeDNS
	// ErrTypeCanceled indicates the caller canceled the request
	ErrTypeCanceled
	// ErrTypeUnknown indicates an unknown or unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeCanceled:
		return "Canceled"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ServiceError represents a failed exchange with the recommendation service
type ServiceError struct {
	Type          ErrorType // Category of error
	Message       string    // Human-readable error message
	StatusCode    int       // HTTP status code (if applicable)
	ServerMessage string    // "error" field of the failure body (if any)
	Endpoint      string    // Path of the endpoint that failed
	Err           error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.ServerMessage != "" {
		msg += fmt.Sprintf(" (server: %s)", e.ServerMessage)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a more specific error type
func ClassifyNetworkError(err error) *ServiceError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return &ServiceError{Type: ErrTypeTimeout, Message: "Request timed out", Err: err}
	}

	if errors.Is(err, context.Canceled) {
		return &ServiceError{Type: ErrTypeCanceled, Message: "Request canceled", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &ServiceError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &ServiceError{Type: ErrTypeConnectionRefused, Message: "Service refused connection", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		return ClassifyNetworkError(urlErr.Err)
	}

	return &ServiceError{Type: ErrTypeNetwork, Message: "Network error occurred", Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *ServiceError {
	classified := ClassifyNetworkError(err)
	if classified == nil {
		return &ServiceError{Type: ErrTypeNetwork, Message: message}
	}
	classified.Message = message
	return classified
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message, serverMessage string) *ServiceError {
	return &ServiceError{
		Type:          ErrTypeHTTP,
		Message:       message,
		StatusCode:    statusCode,
		ServerMessage: serverMessage,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *ServiceError {
	return &ServiceError{Type: ErrTypeParse, Message: message, Err: err}
}

func asServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	if svcErr, ok := asServiceError(err); ok {
		return svcErr.Type == ErrTypeNetwork ||
			svcErr.Type == ErrTypeTimeout ||
			svcErr.Type == ErrTypeConnectionRefused ||
			svcErr.Type == ErrTypeDNS
	}
	return false
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	if svcErr, ok := asServiceError(err); ok {
		return svcErr.Type == ErrTypeHTTP
	}
	return false
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	if svcErr, ok := asServiceError(err); ok {
		return svcErr.Type == ErrTypeParse
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	if svcErr, ok := asServiceError(err); ok {
		return svcErr.StatusCode
	}
	return 0
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	svcErr, ok := asServiceError(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch svcErr.Type {
	case ErrTypeTimeout:
		return strings.Join([]string{
			"The recommendation service did not respond in time.",
			"Troubleshooting:",
			"  • Check that the service is running",
			"  • Try increasing the timeout with --timeout",
		}, "\n")

	case ErrTypeConnectionRefused:
		return strings.Join([]string{
			"Nothing is listening at the service address.",
			"Troubleshooting:",
			"  • Start the recommendation service",
			"  • Check the address passed with --url (default " + DefaultBaseURL + ")",
		}, "\n")

	case ErrTypeDNS:
		return strings.Join([]string{
			"Could not resolve the service hostname.",
			"Troubleshooting:",
			"  • Use an IP address instead of a hostname",
			"  • Check your network DNS settings",
		}, "\n")

	case ErrTypeNetwork:
		return strings.Join([]string{
			"Network communication failed.",
			"Troubleshooting:",
			"  • Check your network connection",
			"  • Verify the service address",
		}, "\n")

	case ErrTypeHTTP:
		if svcErr.StatusCode >= 500 {
			hint := []string{fmt.Sprintf("The service returned an error (HTTP %d).", svcErr.StatusCode)}
			if svcErr.ServerMessage != "" {
				hint = append(hint, "Server said: "+svcErr.ServerMessage)
			}
			hint = append(hint,
				"Troubleshooting:",
				"  • The selected manufacturer/model may be unknown to the service",
				"  • Check the service logs",
			)
			return strings.Join(hint, "\n")
		}
		return fmt.Sprintf("The service returned HTTP error %d. Check the request parameters.", svcErr.StatusCode)

	case ErrTypeParse:
		return strings.Join([]string{
			"Failed to parse the service response.",
			"The service may be running an incompatible version.",
		}, "\n")

	case ErrTypeCanceled:
		return "The request was canceled."

	default:
		return "An error occurred. Please check the error message for details."
	}
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	svcErr, ok := asServiceError(err)
	if !ok {
		return err.Error()
	}

	switch svcErr.Type {
	case ErrTypeTimeout:
		return "Service not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Service refused connection - is it running?"
	case ErrTypeDNS:
		return "Cannot resolve service hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		if svcErr.ServerMessage != "" {
			return fmt.Sprintf("Service error (HTTP %d): %s", svcErr.StatusCode, svcErr.ServerMessage)
		}
		return fmt.Sprintf("Service error (HTTP %d)", svcErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse service response"
	case ErrTypeCanceled:
		return "Request canceled"
	default:
		return svcErr.Message
	}
}
