package http

import (
	"fmt"

	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"
)

const (
	codeInvalidDimension = "API_1000"

	codeInternalCacheReadFailed   = "API_9000"
	codeInternalCacheDecodeFailed = "API_9001"
)

// errInvalidDimension returns an error for an unknown grouping dimension in the URL.
func errInvalidDimension(raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDimension, fmt.Sprintf("unknown dimension: %q", raw), cause)
}

// errInternalCacheReadFailed returns an error when the stats cache is unreachable.
func errInternalCacheReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCacheReadFailed, fmt.Errorf("statsCacheReadFailed: %w", cause))
}

// errInternalCacheDecodeFailed returns an error when a cached blob does not decode.
func errInternalCacheDecodeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCacheDecodeFailed, fmt.Errorf("statsCacheDecodeFailed: %w", cause))
}
