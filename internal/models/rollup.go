package models

// RollupEntry is one dimension value with its distinct-device count.
type RollupEntry struct {
	Value string `json:"value"`
	Total int64  `json:"total"`
}

// RollupResult is a popularity ranking: entries sorted by Total descending,
// with Value ascending as the deterministic tiebreak.
type RollupResult []RollupEntry

// DeviceBreakdown is the full statistics block for the devices matching one
// dimension value: an independent rollup per dimension, the distinct device
// count, and how many of those run an official build.
type DeviceBreakdown struct {
	Model    RollupResult `json:"model"`
	Version  RollupResult `json:"version"`
	Country  RollupResult `json:"country"`
	Carrier  RollupResult `json:"carrier"`
	Total    int64        `json:"total"`
	Official int64        `json:"official"`
}
