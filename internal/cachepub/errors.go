package cachepub

import (
	"fmt"

	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"
)

const (
	codeRebuildInProgress = "PUB_1001"

	codeInternalCacheStoreFailed = "PUB_9000"
)

// errRebuildInProgress returns an error when a rebuild is requested while
// another one is still running.
func errRebuildInProgress() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeRebuildInProgress, "cache rebuild already in progress", nil)
}

// errInternalCacheStoreFailed returns an error when a cache write fails.
func errInternalCacheStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCacheStoreFailed, fmt.Errorf("statsCacheFailed: %w", cause))
}
