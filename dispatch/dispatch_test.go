package dispatch

import (
	"encoding/json"
	"testing"

	"github.com/ddvamp/transport-directory/directory"
)

func buildTransferDirectory() *directory.Directory {
	return directory.NewDirectory(directory.Config{
		Settings: directory.RoutingSettings{WaitTime: 6, Velocity: 30 * 1000 / 60},
		Items: []directory.ConfigItem{
			directory.StopConfig{Name: "A", RoadDistances: map[string]float64{"B": 1000}},
			directory.StopConfig{Name: "B", RoadDistances: map[string]float64{"C": 1000}},
			directory.StopConfig{Name: "C"},
			directory.StopConfig{Name: "Z"},
			directory.BusConfig{Name: "1", Stops: []string{"A", "B"}, IsRoundtrip: true},
			directory.BusConfig{Name: "2", Stops: []string{"B", "C"}, IsRoundtrip: true},
		},
	})
}

func rawRequest(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return data
}

func TestProcessAllRouteWithTransfer(t *testing.T) {
	dir := buildTransferDirectory()
	requests := []json.RawMessage{
		rawRequest(t, map[string]any{"id": 1, "type": "Route", "from": "A", "to": "C"}),
	}

	responses, err := ProcessAll(dir, requests)
	if err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}

	var body routeResponseBody
	if err := json.Unmarshal(responses[0], &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.RequestID != 1 {
		t.Errorf("RequestID = %v, want 1", body.RequestID)
	}
	if body.TotalTime != 16 {
		t.Errorf("TotalTime = %v, want 16", body.TotalTime)
	}
	if len(body.Items) != 4 {
		t.Fatalf("len(Items) = %v, want 4", len(body.Items))
	}
	if body.Items[0].Type != "Wait" || body.Items[1].Type != "Bus" {
		t.Errorf("Items = %+v, want Wait,Bus,Wait,Bus", body.Items)
	}
}

func TestProcessAllNotFound(t *testing.T) {
	dir := buildTransferDirectory()
	requests := []json.RawMessage{
		rawRequest(t, map[string]any{"id": 2, "type": "Route", "from": "A", "to": "Z"}),
		rawRequest(t, map[string]any{"id": 3, "type": "Bus", "name": "nope"}),
		rawRequest(t, map[string]any{"id": 4, "type": "Stop", "name": "nope"}),
	}

	responses, err := ProcessAll(dir, requests)
	if err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}
	for i, resp := range responses {
		var body notFoundResponse
		if err := json.Unmarshal(resp, &body); err != nil {
			t.Fatalf("response %d: %v", i, err)
		}
		if body.ErrorMessage != "not found" {
			t.Errorf("response %d: ErrorMessage = %v, want \"not found\"", i, body.ErrorMessage)
		}
	}
}

func TestProcessAllUnknownRequestType(t *testing.T) {
	dir := buildTransferDirectory()
	requests := []json.RawMessage{
		rawRequest(t, map[string]any{"id": 1, "type": "Train", "name": "x"}),
	}
	if _, err := ProcessAll(dir, requests); err == nil {
		t.Error("expected error for unknown request type")
	}
}
