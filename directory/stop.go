package directory

import "github.com/ddvamp/transport-directory/geo"

//*******************************************
// stop entity and registry
//*******************************************

// stop is the internal entity for one transit node.
type stop struct {
	id       StopId
	name     string
	coords   geo.Point
	adjacent map[StopId]struct{}
	buses    map[BusId]struct{}
}

// stopRegistry interns stop names to dense ids. register is idempotent,
// and the id assigned on first mention is final.
type stopRegistry struct {
	byName map[string]StopId
	stops  []*stop
}

func newStopRegistry() *stopRegistry {
	return &stopRegistry{
		byName: make(map[string]StopId),
	}
}

// register returns the id for name, assigning a fresh one (and a default
// stop entity) the first time name is seen.
func (self *stopRegistry) register(name string) StopId {
	if id, ok := self.byName[name]; ok {
		return id
	}
	id := StopId(len(self.stops))
	self.byName[name] = id
	self.stops = append(self.stops, &stop{
		id:       id,
		name:     name,
		adjacent: make(map[StopId]struct{}),
		buses:    make(map[BusId]struct{}),
	})
	return id
}

func (self *stopRegistry) lookup(name string) (StopId, bool) {
	id, ok := self.byName[name]
	return id, ok
}

func (self *stopRegistry) get(id StopId) *stop {
	return self.stops[id]
}

func (self *stopRegistry) size() int {
	return len(self.stops)
}

func geoPoint(latitude, longitude float64) geo.Point {
	return geo.NewPoint(latitude, longitude)
}

func geoDistance(a, b geo.Point) float64 {
	return geo.DistancePoints(a, b)
}
