package ingestors

import (
	"fmt"

	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "ING_1000"

	codeInternalEventStoreFailed = "ING_9000"
	codeInternalStateStoreFailed = "ING_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalEventStoreFailed returns an error when an event append fails.
func errInternalEventStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventStoreFailed, fmt.Errorf("eventStoreFailed: %w", cause))
}

// errInternalStateStoreFailed returns an error when the inline latest-state upsert fails.
func errInternalStateStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStateStoreFailed, fmt.Errorf("deviceStateStoreFailed: %w", cause))
}

func svcErrorOf(err error) (*svcerrors.ServiceError, bool) {
	return svcerrors.AsServiceError(err)
}
