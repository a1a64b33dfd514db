package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	ingestormocks "github.com/CarbonROM/tribble-tracker/internal/ingestors/mocks"
	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubmitStatsHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewSubmitStatsHandler(mockIngestionService)

	body := []byte(`{"device_hash":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stats", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	mockIngestionService.EXPECT().
		SubmitStats(gomock.Any(), gomock.Any()).
		Return(nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSubmitStatsHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewSubmitStatsHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stats", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("ING_1000", "missing required field: DeviceID", nil)
	mockIngestionService.EXPECT().
		SubmitStats(gomock.Any(), gomock.Any()).
		Return(expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
}
