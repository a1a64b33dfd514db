package aggregators

import (
	"fmt"

	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"
)

const (
	codeNoMatchingDevices = "AGG_1000"

	codeInternalStateStoreFailed = "AGG_9000"
)

// errNoMatchingDevices returns an error when a rollup finds zero devices for
// the requested filter. Distinct from a legitimate zero count: the cache
// publisher skips the key, other callers may surface 404.
func errNoMatchingDevices(dimension, value string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoMatchingDevices,
		fmt.Sprintf("no devices for %s=%s in window", dimension, value), nil)
}

// errInternalStateStoreFailed returns an error when the device state store fails.
func errInternalStateStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStateStoreFailed, fmt.Errorf("deviceStateStoreFailed: %w", cause))
}

func svcErrorOf(err error) (*svcerrors.ServiceError, bool) {
	return svcerrors.AsServiceError(err)
}
