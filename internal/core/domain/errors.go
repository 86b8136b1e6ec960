package domain

import "errors"

// Sentinel errors for the closed failure taxonomy. Every boundary maps these
// to a fixed status/code pair; anything else collapses to an internal error.
var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidToken            = errors.New("invalid token")
	ErrForbidden               = errors.New("access forbidden")
	ErrNotFound                = errors.New("resource not found")
	ErrInvalidStatusTransition = errors.New("illegal order status transition")
)

// Wire-level error codes shared by all services and gateways.
const (
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeInvalidToken            = "INVALID_TOKEN"
	CodeForbidden               = "FORBIDDEN"
	CodeNotFound                = "RESOURCE_NOT_FOUND"
	CodeInvalidStatusTransition = "INVALID_ORDER_STATUS_TRANSITION"
	CodeInternal                = "INTERNAL_SERVER_ERROR"
)

// ErrorCode resolves err to its wire code. Unrecognized errors report
// CodeInternal so internals never leak to clients.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidStatusTransition):
		return CodeInvalidStatusTransition
	default:
		return CodeInternal
	}
}
