package models

import "fmt"

// Dimension is one of the categorical device attributes statistics are
// grouped by. The set is sealed: anything else is rejected at parse time,
// so rollup and cache code never deals with an unknown dimension.
type Dimension string

const (
	DimensionModel   Dimension = "model"
	DimensionCarrier Dimension = "carrier"
	DimensionVersion Dimension = "version"
	DimensionCountry Dimension = "country"
)

// AllDimensions returns the dimensions in cache publishing order.
func AllDimensions() []Dimension {
	return []Dimension{DimensionModel, DimensionCarrier, DimensionVersion, DimensionCountry}
}

// ParseDimension validates s against the sealed dimension set.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case DimensionModel, DimensionCarrier, DimensionVersion, DimensionCountry:
		return Dimension(s), nil
	}
	return "", fmt.Errorf("unknown dimension: %q", s)
}

// ValueOf extracts this dimension's value from a device state row.
func (d Dimension) ValueOf(state *DeviceState) string {
	switch d {
	case DimensionModel:
		return state.Model
	case DimensionCarrier:
		return state.Carrier
	case DimensionVersion:
		return state.Version
	case DimensionCountry:
		return state.Country
	default:
		panic(fmt.Sprintf("invalid Dimension: %q", string(d)))
	}
}

func (d Dimension) String() string {
	return string(d)
}
