// Package directory builds an in-memory transit directory from a one-shot
// configuration and answers bus, stop, and point-to-point route queries
// against it. The directory is immutable once built.
package directory

// StopId and BusId are dense ids assigned in order of first mention.
type StopId = uint16
type BusId = uint16

// RoutingSettings are the global parameters shared by every bus.
type RoutingSettings struct {
	// WaitTime is the platform wait, in minutes, charged before every
	// bus leg of an itinerary and at every transfer.
	WaitTime float64
	// Velocity is in meters per minute.
	Velocity float64
}

//*******************************************
// build-time configuration
//*******************************************

// ConfigItem is either a StopConfig or a BusConfig.
type ConfigItem interface {
	isConfigItem()
}

// StopConfig describes one Stop item of the one-shot configuration.
type StopConfig struct {
	Name      string
	Latitude  float64
	Longitude float64
	// RoadDistances maps a neighbour stop name to the road distance, in
	// meters, declared from this stop towards it.
	RoadDistances map[string]float64
}

func (StopConfig) isConfigItem() {}

// BusConfig describes one Bus item of the one-shot configuration. Stops
// is the route already expanded to its full traversal: the caller
// (the JSON config reader) is responsible for palindromizing a
// non-roundtrip route before it reaches the builder.
type BusConfig struct {
	Name        string
	Stops       []string
	IsRoundtrip bool
}

func (BusConfig) isConfigItem() {}

// Config is the parsed, one-shot description of a bus network.
type Config struct {
	Items    []ConfigItem
	Settings RoutingSettings
}

//*******************************************
// query results
//*******************************************

// BusInfo summarizes one bus's route.
type BusInfo struct {
	StopsCount       int
	UniqueStopsCount int
	RoadRouteLength  float64
	GeoRouteLength   float64
}

// Curvature is road length over geo length. When the geo length is zero
// the plain division gives +Inf, or NaN if the road length is zero too.
func (self BusInfo) Curvature() float64 {
	return self.RoadRouteLength / self.GeoRouteLength
}

// StopInfo lists the buses serving a stop, sorted lexicographically.
type StopInfo struct {
	Buses []string
}

// LegKind distinguishes the two kinds of itinerary legs.
type LegKind uint8

const (
	LegWait LegKind = iota
	LegBus
)

// RouteLeg is one element of a reconstructed itinerary: either a Wait at
// a stop or a ride on a bus over some number of spans.
type RouteLeg struct {
	Kind LegKind

	// Wait leg fields.
	StopName string
	WaitTime float64

	// Bus leg fields.
	BusName    string
	SpansCount int
	RideTime   float64
}

// RouteInfo is a reconstructed itinerary: alternating Wait and Bus legs
// in time-forward order, plus their total duration.
type RouteInfo struct {
	Items     []RouteLeg
	TotalTime float64
}
