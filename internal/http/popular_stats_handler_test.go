package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CarbonROM/tribble-tracker/internal/cachepub"
	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/shared/svcerrors"
	"github.com/CarbonROM/tribble-tracker/internal/stores"
	storemocks "github.com/CarbonROM/tribble-tracker/internal/stores/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newGetRequest builds a request with chi URL params attached, the way the
// router would present them to the handler.
func newGetRequest(t *testing.T, path string, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPopularStatsHandler_Handle_Hit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rollup := models.RollupResult{{Value: "hammerhead", Total: 3}}
	blob, err := models.EncodeCacheValue(models.CacheKindRollup, rollup)
	require.NoError(t, err)

	cache := storemocks.NewMockStatsCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), cachepub.KeyPopular(models.DimensionModel)).Return(blob, nil)

	handler := NewPopularStatsHandler(cache)
	req := newGetRequest(t, "/api/v1/popular/model", map[string]string{"dimension": "model"})
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body struct {
		Result models.RollupResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, rollup, body.Result)
}

func TestPopularStatsHandler_Handle_MissReturnsEmptyObject(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := storemocks.NewMockStatsCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "popular/country").Return(nil, stores.ErrCacheMiss)

	handler := NewPopularStatsHandler(cache)
	req := newGetRequest(t, "/api/v1/popular/country", map[string]string{"dimension": "country"})
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}

func TestPopularStatsHandler_Handle_DeviceIDRefused(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Never touches the cache.
	cache := storemocks.NewMockStatsCache(ctrl)

	handler := NewPopularStatsHandler(cache)
	req := newGetRequest(t, "/api/v1/popular/device_id", map[string]string{"dimension": "device_id"})
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"result":"No!"}`, rr.Body.String())
}

func TestPopularStatsHandler_Handle_UnknownDimension(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := storemocks.NewMockStatsCache(ctrl)

	handler := NewPopularStatsHandler(cache)
	req := newGetRequest(t, "/api/v1/popular/bogus", map[string]string{"dimension": "bogus"})
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "API_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
}

func TestPopularStatsHandler_Handle_CacheUnavailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := storemocks.NewMockStatsCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	handler := NewPopularStatsHandler(cache)
	req := newGetRequest(t, "/api/v1/popular/model", map[string]string{"dimension": "model"})
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "API_9000", svcErr.Code)
}

func TestPopularStatsHandler_Handle_CorruptEnvelope(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := storemocks.NewMockStatsCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte(`not json`), nil)

	handler := NewPopularStatsHandler(cache)
	req := newGetRequest(t, "/api/v1/popular/model", map[string]string{"dimension": "model"})
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "API_9001", svcErr.Code)
}
