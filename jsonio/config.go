// Package jsonio decodes the one-shot JSON configuration document into a
// directory.Config and leaves the stat_requests array for the dispatch
// package to decode request-by-request.
package jsonio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ddvamp/transport-directory/directory"
)

// Input is the fully-decoded top-level JSON document, split into the
// directory's build Config and the still-raw query requests.
type Input struct {
	Config       directory.Config
	StatRequests []json.RawMessage
}

type wireDocument struct {
	BaseRequests    []wireItem          `json:"base_requests"`
	RoutingSettings wireRoutingSettings `json:"routing_settings"`
	StatRequests    []json.RawMessage   `json:"stat_requests"`
}

type wireRoutingSettings struct {
	BusWaitTime float64 `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

// wireItem is the union of Stop and Bus base_requests entries; Type
// discriminates which fields are meaningful.
type wireItem struct {
	Type string `json:"type"`

	Name string `json:"name"`

	// Stop fields.
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	RoadDistances map[string]float64 `json:"road_distances"`

	// Bus fields.
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// ReadInput decodes the one JSON document read from r. Malformed JSON
// and a base_requests entry of unknown type are returned as errors,
// which the caller reports as fatal. Absent fields are not reported:
// they decode to their zero values.
func ReadInput(r io.Reader) (Input, error) {
	var doc wireDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Input{}, fmt.Errorf("decode config document: %w", err)
	}

	items := make([]directory.ConfigItem, 0, len(doc.BaseRequests))
	for i, item := range doc.BaseRequests {
		switch item.Type {
		case "Stop":
			items = append(items, directory.StopConfig{
				Name:          item.Name,
				Latitude:      item.Latitude,
				Longitude:     item.Longitude,
				RoadDistances: item.RoadDistances,
			})
		case "Bus":
			items = append(items, directory.BusConfig{
				Name:        item.Name,
				Stops:       expandRoute(item.Stops, item.IsRoundtrip),
				IsRoundtrip: item.IsRoundtrip,
			})
		default:
			return Input{}, fmt.Errorf("base_requests[%d]: unknown type %q", i, item.Type)
		}
	}

	return Input{
		Config: directory.Config{
			Items: items,
			Settings: directory.RoutingSettings{
				WaitTime: doc.RoutingSettings.BusWaitTime,
				// km/h -> m/min, converted once here and nowhere else.
				Velocity: doc.RoutingSettings.BusVelocity * 1000 / 60,
			},
		},
		StatRequests: doc.StatRequests,
	}, nil
}

// expandRoute palindromizes a one-way route into its round-trip
// traversal: A,B,C -> A,B,C,B,A. Roundtrip routes pass through unchanged.
func expandRoute(stops []string, isRoundtrip bool) []string {
	if isRoundtrip || len(stops) == 0 {
		return stops
	}
	expanded := make([]string, 0, 2*len(stops)-1)
	expanded = append(expanded, stops...)
	for i := len(stops) - 2; i >= 0; i-- {
		expanded = append(expanded, stops[i])
	}
	return expanded
}
