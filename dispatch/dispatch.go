// Package dispatch decodes stat_requests variants, runs them against a
// built directory, and encodes the JSON replies.
package dispatch

import (
	"encoding/json"
	"fmt"

	"github.com/ddvamp/transport-directory/directory"
)

// wireRequest is the union of Bus/Stop/Route stat_requests entries.
type wireRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// ProcessAll decodes every raw stat_requests entry, dispatches it against
// dir, and returns the JSON array of replies in request order.
func ProcessAll(dir *directory.Directory, rawRequests []json.RawMessage) ([]json.RawMessage, error) {
	responses := make([]json.RawMessage, 0, len(rawRequests))
	for i, raw := range rawRequests {
		var req wireRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("stat_requests[%d]: %w", i, err)
		}

		resp, err := process(dir, req)
		if err != nil {
			return nil, fmt.Errorf("stat_requests[%d]: %w", i, err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func process(dir *directory.Directory, req wireRequest) (json.RawMessage, error) {
	switch req.Type {
	case "Bus":
		return marshal(busResponse(dir, req))
	case "Stop":
		return marshal(stopResponse(dir, req))
	case "Route":
		return marshal(routeResponse(dir, req))
	default:
		return nil, fmt.Errorf("unknown request type %q", req.Type)
	}
}

func marshal(v any) (json.RawMessage, error) {
	return json.Marshal(v)
}

//*******************************************
// response shapes
//*******************************************

type notFoundResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

func newNotFound(id int) notFoundResponse {
	return notFoundResponse{RequestID: id, ErrorMessage: "not found"}
}

type busResponseBody struct {
	RequestID        int     `json:"request_id"`
	StopsCount       int     `json:"stop_count"`
	UniqueStopsCount int     `json:"unique_stop_count"`
	RouteLength      int64   `json:"route_length"`
	Curvature        float64 `json:"curvature"`
}

func busResponse(dir *directory.Directory, req wireRequest) any {
	info, ok := dir.Bus(req.Name)
	if !ok {
		return newNotFound(req.ID)
	}
	return busResponseBody{
		RequestID:        req.ID,
		StopsCount:       info.StopsCount,
		UniqueStopsCount: info.UniqueStopsCount,
		RouteLength:      int64(info.RoadRouteLength),
		Curvature:        info.Curvature(),
	}
}

type stopResponseBody struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

func stopResponse(dir *directory.Directory, req wireRequest) any {
	info, ok := dir.Stop(req.Name)
	if !ok {
		return newNotFound(req.ID)
	}
	return stopResponseBody{RequestID: req.ID, Buses: info.Buses}
}

type routeResponseBody struct {
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
	Items     []routeItem `json:"items"`
}

type routeItem struct {
	Type string `json:"type"`

	// Wait fields.
	StopName string `json:"stop_name,omitempty"`

	// Bus fields.
	Bus       string `json:"bus,omitempty"`
	SpanCount int    `json:"span_count,omitempty"`

	// Time is the wait duration for a Wait leg and the ride duration for
	// a Bus leg.
	Time float64 `json:"time"`
}

func routeResponse(dir *directory.Directory, req wireRequest) any {
	info, ok := dir.Route(req.From, req.To)
	if !ok {
		return newNotFound(req.ID)
	}

	items := make([]routeItem, 0, len(info.Items))
	for _, leg := range info.Items {
		switch leg.Kind {
		case directory.LegWait:
			items = append(items, routeItem{
				Type:     "Wait",
				StopName: leg.StopName,
				Time:     leg.WaitTime,
			})
		case directory.LegBus:
			items = append(items, routeItem{
				Type:      "Bus",
				Bus:       leg.BusName,
				SpanCount: leg.SpansCount,
				Time:      leg.RideTime,
			})
		}
	}

	return routeResponseBody{
		RequestID: req.ID,
		TotalTime: info.TotalTime,
		Items:     items,
	}
}
