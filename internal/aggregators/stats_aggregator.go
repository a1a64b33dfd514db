package aggregators

import (
	"context"
	"regexp"
	"sort"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/shared/metrics"
	"github.com/CarbonROM/tribble-tracker/internal/stores"
)

// DefaultWindowDays is the trailing window applied when a caller passes a
// non-positive day count.
const DefaultWindowDays = 90

// officialBuildPattern matches the nightly build naming convention: two
// digits, a dot, one digit, a dash, an eight digit date, the NIGHTLY token
// and a lowercase device codename, e.g. "12.3-20230401-NIGHTLY-abc".
var officialBuildPattern = regexp.MustCompile(`\d{2}\.\d-\d{8}-NIGHTLY-[a-z]+`)

// IsOfficialBuild reports whether version follows the nightly naming scheme.
func IsOfficialBuild(version string) bool {
	return officialBuildPattern.MatchString(version)
}

// StatsAggregator computes popularity rollups over the device state table
// restricted to a trailing time window. All counts are distinct-device
// counts; results are derived state, recomputed on every call and persisted
// only by the cache publisher.
//
//go:generate mockgen -source=stats_aggregator.go -destination=./mocks/stats_aggregator_mock.go -package=mocks
type StatsAggregator interface {
	// Popularity groups in-window devices by the dimension's value and
	// returns distinct-device counts sorted by count descending.
	Popularity(ctx context.Context, dimension models.Dimension, days int) (models.RollupResult, error)
	// DistinctValues returns every value the dimension takes across
	// in-window devices, sorted ascending.
	DistinctValues(ctx context.Context, dimension models.Dimension, days int) ([]string, error)
	// Count returns the number of distinct in-window devices.
	Count(ctx context.Context, days int) (int64, error)
	// OfficialCount counts in-window devices matching dimension==value whose
	// version follows the official nightly naming scheme.
	OfficialCount(ctx context.Context, dimension models.Dimension, value string, days int) (int64, error)
	// Breakdown returns the full statistics block for devices matching
	// dimension==value. Empty filter sets yield a not_found service error.
	Breakdown(ctx context.Context, dimension models.Dimension, value string, days int) (*models.DeviceBreakdown, error)
}

type statsAggregator struct {
	stateStore stores.DeviceStateStore
}

// NewStatsAggregator creates a StatsAggregator over the given state store.
func NewStatsAggregator(stateStore stores.DeviceStateStore) StatsAggregator {
	return &statsAggregator{stateStore: stateStore}
}

func windowCutoff(days int) time.Time {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return time.Now().Add(-time.Duration(days) * 24 * time.Hour)
}

// statesInWindow lists in-window device states deduplicated by device ID.
//
// The state store holds one row per device, so duplicates should not occur;
// the dedup guards against exact ObservedAt collisions in scans over
// repaired or partially migrated tables. keepLast selects which duplicate
// survives: the first scanned row (popularity) or the newest by ObservedAt
// (breakdown). The two call sites intentionally differ; see DESIGN.md.
func (a *statsAggregator) statesInWindow(ctx context.Context, days int, keepLast bool) ([]*models.DeviceState, error) {
	rows, err := a.stateStore.ListSince(ctx, windowCutoff(days))
	if err != nil {
		return nil, errInternalStateStoreFailed(err)
	}

	byDevice := make(map[string]*models.DeviceState, len(rows))
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		current, seen := byDevice[row.DeviceID]
		if !seen {
			byDevice[row.DeviceID] = row
			order = append(order, row.DeviceID)
			continue
		}
		if keepLast && !row.ObservedAt.Before(current.ObservedAt) {
			byDevice[row.DeviceID] = row
		}
	}

	result := make([]*models.DeviceState, 0, len(order))
	for _, id := range order {
		result = append(result, byDevice[id])
	}
	return result, nil
}

// rollupByDimension counts distinct devices per dimension value and sorts
// the result by count descending, value ascending.
func rollupByDimension(states []*models.DeviceState, dimension models.Dimension) models.RollupResult {
	counts := make(map[string]int64)
	for _, state := range states {
		value := dimension.ValueOf(state)
		if value == "" {
			continue
		}
		counts[value]++
	}

	result := make(models.RollupResult, 0, len(counts))
	for value, total := range counts {
		result = append(result, models.RollupEntry{Value: value, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Value < result[j].Value
	})
	return result
}

func filterByDimension(states []*models.DeviceState, dimension models.Dimension, value string) []*models.DeviceState {
	var matched []*models.DeviceState
	for _, state := range states {
		if dimension.ValueOf(state) == value {
			matched = append(matched, state)
		}
	}
	return matched
}

func (a *statsAggregator) Popularity(ctx context.Context, dimension models.Dimension, days int) (models.RollupResult, error) {
	states, err := a.statesInWindow(ctx, days, false)
	if err != nil {
		return nil, a.observe("popularity", err)
	}
	return rollupByDimension(states, dimension), a.observe("popularity", nil)
}

func (a *statsAggregator) DistinctValues(ctx context.Context, dimension models.Dimension, days int) ([]string, error) {
	states, err := a.statesInWindow(ctx, days, false)
	if err != nil {
		return nil, a.observe("distinct_values", err)
	}

	seen := make(map[string]struct{})
	var values []string
	for _, state := range states {
		value := dimension.ValueOf(state)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; !ok {
			seen[value] = struct{}{}
			values = append(values, value)
		}
	}
	sort.Strings(values)
	return values, a.observe("distinct_values", nil)
}

func (a *statsAggregator) Count(ctx context.Context, days int) (int64, error) {
	states, err := a.statesInWindow(ctx, days, false)
	if err != nil {
		return 0, a.observe("count", err)
	}
	return int64(len(states)), a.observe("count", nil)
}

func (a *statsAggregator) OfficialCount(ctx context.Context, dimension models.Dimension, value string, days int) (int64, error) {
	states, err := a.statesInWindow(ctx, days, false)
	if err != nil {
		return 0, a.observe("official_count", err)
	}

	var total int64
	for _, state := range filterByDimension(states, dimension, value) {
		if IsOfficialBuild(state.Version) {
			total++
		}
	}
	return total, a.observe("official_count", nil)
}

func (a *statsAggregator) Breakdown(ctx context.Context, dimension models.Dimension, value string, days int) (*models.DeviceBreakdown, error) {
	// Breakdown historically resolves duplicate devices to the last
	// observed row where popularity keeps the first; preserved as-is.
	states, err := a.statesInWindow(ctx, days, true)
	if err != nil {
		return nil, a.observe("breakdown", err)
	}

	matched := filterByDimension(states, dimension, value)
	if len(matched) == 0 {
		return nil, a.observe("breakdown", errNoMatchingDevices(dimension.String(), value))
	}

	var official int64
	for _, state := range matched {
		if IsOfficialBuild(state.Version) {
			official++
		}
	}

	breakdown := &models.DeviceBreakdown{
		Model:    rollupByDimension(matched, models.DimensionModel),
		Version:  rollupByDimension(matched, models.DimensionVersion),
		Country:  rollupByDimension(matched, models.DimensionCountry),
		Carrier:  rollupByDimension(matched, models.DimensionCarrier),
		Total:    int64(len(matched)),
		Official: official,
	}
	return breakdown, a.observe("breakdown", nil)
}

// observe records the operation outcome and passes the error through.
func (a *statsAggregator) observe(operation string, err error) error {
	errorCode := metrics.ValueNoError
	if err != nil {
		if svcErr, ok := svcErrorOf(err); ok {
			errorCode = svcErr.Code
		}
	}
	metricRollupComputedTotal.WithLabelValues(operation, errorCode).Inc()
	return err
}
