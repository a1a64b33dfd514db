package ingestors_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/ingestors"
	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"
	storemocks "github.com/CarbonROM/tribble-tracker/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validSubmission = `{
	"device_hash": "8a6edb6e94c9a1",
	"device_name": "hammerhead",
	"device_version": "13.0-20230401-NIGHTLY-hammerhead",
	"device_country": "in",
	"device_carrier": "Android",
	"device_carrier_id": "0"
}`

func TestSubmitStats_ErrValidationFailed_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventStore := storemocks.NewMockEventStore(ctrl)
	stateStore := storemocks.NewMockDeviceStateStore(ctrl)
	service := ingestors.NewIngestionService(eventStore, stateStore)

	ctx := context.Background()
	err := service.SubmitStats(ctx, bytes.NewReader([]byte(`{not json`)))

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
}

func TestSubmitStats_ErrValidationFailed_MissingFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventStore := storemocks.NewMockEventStore(ctrl)
	stateStore := storemocks.NewMockDeviceStateStore(ctrl)
	service := ingestors.NewIngestionService(eventStore, stateStore)

	tests := []struct {
		name string
		json string
	}{
		{
			name: "empty object",
			json: `{}`,
		},
		{
			name: "missing device_hash",
			json: `{"device_name":"hammerhead","device_version":"13.0","device_country":"in","device_carrier":"Android","device_carrier_id":"0"}`,
		},
		{
			name: "missing device_name",
			json: `{"device_hash":"abc","device_version":"13.0","device_country":"in","device_carrier":"Android","device_carrier_id":"0"}`,
		},
		{
			name: "missing device_version",
			json: `{"device_hash":"abc","device_name":"hammerhead","device_country":"in","device_carrier":"Android","device_carrier_id":"0"}`,
		},
		{
			name: "missing device_country",
			json: `{"device_hash":"abc","device_name":"hammerhead","device_version":"13.0","device_carrier":"Android","device_carrier_id":"0"}`,
		},
		{
			name: "missing device_carrier",
			json: `{"device_hash":"abc","device_name":"hammerhead","device_version":"13.0","device_country":"in","device_carrier_id":"0"}`,
		},
		{
			name: "missing device_carrier_id",
			json: `{"device_hash":"abc","device_name":"hammerhead","device_version":"13.0","device_country":"in","device_carrier":"Android"}`,
		},
		{
			name: "whitespace only field",
			json: `{"device_hash":"   ","device_name":"hammerhead","device_version":"13.0","device_country":"in","device_carrier":"Android","device_carrier_id":"0"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.SubmitStats(context.Background(), bytes.NewReader([]byte(tt.json)))

			require.Error(t, err, "expected error")
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, "ING_1000", svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
		})
	}
}

func TestSubmitStats_ErrEventStoreFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventStore := storemocks.NewMockEventStore(ctrl)
	stateStore := storemocks.NewMockDeviceStateStore(ctrl)

	eventStore.EXPECT().Append(gomock.Any(), gomock.Any()).Return(assert.AnError)

	service := ingestors.NewIngestionService(eventStore, stateStore)
	err := service.SubmitStats(context.Background(), bytes.NewReader([]byte(validSubmission)))

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_9000", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
}

func TestSubmitStats_ErrStateStoreFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventStore := storemocks.NewMockEventStore(ctrl)
	stateStore := storemocks.NewMockDeviceStateStore(ctrl)

	eventStore.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	stateStore.EXPECT().UpsertLatest(gomock.Any(), gomock.Any()).Return(assert.AnError)

	service := ingestors.NewIngestionService(eventStore, stateStore)
	err := service.SubmitStats(context.Background(), bytes.NewReader([]byte(validSubmission)))

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_9001", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
}

func TestSubmitStats_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventStore := storemocks.NewMockEventStore(ctrl)
	stateStore := storemocks.NewMockDeviceStateStore(ctrl)

	var appended, upserted *models.Event
	eventStore.EXPECT().Append(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, event *models.Event) {
			appended = event
		}).
		Return(nil)
	stateStore.EXPECT().UpsertLatest(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, event *models.Event) {
			upserted = event
		}).
		Return(nil)

	service := ingestors.NewIngestionService(eventStore, stateStore)

	before := time.Now().UTC()
	submission := `{
		"device_hash": "  abc123  ",
		"device_name": "hammerhead",
		"device_version": "13.0-20230401-NIGHTLY-hammerhead",
		"device_country": "in",
		"device_carrier": "Android",
		"device_carrier_id": "0"
	}`
	err := service.SubmitStats(context.Background(), bytes.NewReader([]byte(submission)))
	require.NoError(t, err, "unexpected error")

	require.NotNil(t, appended)
	assert.Equal(t, "abc123", appended.DeviceID, "fields are trimmed before storage")
	assert.Equal(t, "hammerhead", appended.Model)
	assert.Equal(t, "13.0-20230401-NIGHTLY-hammerhead", appended.Version)
	assert.Equal(t, "in", appended.Country)
	assert.Equal(t, "Android", appended.Carrier)
	assert.Equal(t, "0", appended.CarrierID)
	assert.False(t, appended.ObservedAt.Before(before), "timestamp assigned server side")

	// The state upsert reconciles the exact event just appended.
	assert.Same(t, appended, upserted)
}
