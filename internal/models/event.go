package models

import "time"

// Event is a single raw telemetry submission from a device. Events are
// append-only: once stored they are never mutated or deleted by this service.
type Event struct {
	DeviceID   string    `json:"deviceId"`
	Model      string    `json:"model"`
	Version    string    `json:"version"`
	Country    string    `json:"country"`
	Carrier    string    `json:"carrier"`
	CarrierID  string    `json:"carrierId"`
	ObservedAt time.Time `json:"observedAt"`
}

// DeviceState is the most recently observed attribute set for one device.
// There is exactly one row per DeviceID; ObservedAt is the maximum event
// time reconciled so far for that device.
type DeviceState struct {
	DeviceID   string    `json:"deviceId"`
	Model      string    `json:"model"`
	Version    string    `json:"version"`
	Country    string    `json:"country"`
	Carrier    string    `json:"carrier"`
	CarrierID  string    `json:"carrierId"`
	ObservedAt time.Time `json:"observedAt"`
}

// StateFromEvent builds the device state a single event implies.
func StateFromEvent(e *Event) *DeviceState {
	return &DeviceState{
		DeviceID:   e.DeviceID,
		Model:      e.Model,
		Version:    e.Version,
		Country:    e.Country,
		Carrier:    e.Carrier,
		CarrierID:  e.CarrierID,
		ObservedAt: e.ObservedAt,
	}
}
