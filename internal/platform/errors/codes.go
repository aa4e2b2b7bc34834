// Package errors provides structured error handling for authgate services.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Token errors
	CodeTokenInvalid Code = "TOKEN_INVALID"

	// Provider errors
	CodeProviderFailure Code = "PROVIDER_FAILURE"

	// Store errors
	CodeStoreFailure Code = "STORE_FAILURE"

	// Configuration errors
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// GRPCCode maps a domain code to its transport status code.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeTokenInvalid:
		return codes.Unauthenticated
	case CodeProviderFailure, CodeStoreFailure:
		return codes.Internal
	case CodeConfigInvalid:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}
