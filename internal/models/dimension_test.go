package models_test

import (
	"testing"

	"github.com/CarbonROM/tribble-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimension_Valid(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"model", "carrier", "version", "country"} {
		dimension, err := models.ParseDimension(name)
		require.NoError(t, err, "expected %q to parse", name)
		assert.Equal(t, name, dimension.String())
	}
}

func TestParseDimension_Invalid(t *testing.T) {
	t.Parallel()

	tests := []string{"", "device_id", "Model", "models", "carrier_id", "MODEL"}
	for _, name := range tests {
		_, err := models.ParseDimension(name)
		assert.Error(t, err, "expected %q to be rejected", name)
	}
}

func TestDimension_ValueOf(t *testing.T) {
	t.Parallel()

	state := &models.DeviceState{
		DeviceID:  "abc123",
		Model:     "hammerhead",
		Version:   "13.0-20230401-NIGHTLY-hammerhead",
		Country:   "in",
		Carrier:   "Android",
		CarrierID: "0",
	}

	assert.Equal(t, "hammerhead", models.DimensionModel.ValueOf(state))
	assert.Equal(t, "Android", models.DimensionCarrier.ValueOf(state))
	assert.Equal(t, "13.0-20230401-NIGHTLY-hammerhead", models.DimensionVersion.ValueOf(state))
	assert.Equal(t, "in", models.DimensionCountry.ValueOf(state))
}

func TestDimension_ValueOf_UnknownPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		models.Dimension("bogus").ValueOf(&models.DeviceState{})
	})
}

func TestAllDimensions_CoversSealedSet(t *testing.T) {
	t.Parallel()

	dimensions := models.AllDimensions()
	require.Len(t, dimensions, 4)
	assert.Equal(t, models.DimensionModel, dimensions[0])

	// Every listed dimension must round-trip through the parser.
	for _, dimension := range dimensions {
		parsed, err := models.ParseDimension(dimension.String())
		require.NoError(t, err)
		assert.Equal(t, dimension, parsed)
	}
}
