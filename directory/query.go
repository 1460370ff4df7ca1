package directory

import "math"

//*******************************************
// query surface
//*******************************************

// Bus returns the route summary for the named bus, or false if name is
// unknown.
func (self *Directory) Bus(name string) (BusInfo, bool) {
	id, ok := self.busReg.lookup(name)
	if !ok {
		return BusInfo{}, false
	}
	return self.makeBusInfo(self.busReg.get(id)), true
}

// Stop returns the sorted list of buses serving the named stop, or false
// if name is unknown.
func (self *Directory) Stop(name string) (StopInfo, bool) {
	id, ok := self.stopReg.lookup(name)
	if !ok {
		return StopInfo{}, false
	}
	return self.makeStopInfo(self.stopReg.get(id)), true
}

// Route reconstructs the shortest-time itinerary between two stops. It
// returns false if either name is unknown or the pair is unreachable; an
// empty itinerary (TotalTime 0, no items) is returned when from == to.
func (self *Directory) Route(from, to string) (RouteInfo, bool) {
	fromId, ok := self.stopReg.lookup(from)
	if !ok {
		return RouteInfo{}, false
	}
	toId, ok := self.stopReg.lookup(to)
	if !ok {
		return RouteInfo{}, false
	}
	if fromId == toId {
		return RouteInfo{}, true
	}
	record := self.routes.At(fromId, toId)
	if math.IsInf(record.Time, 1) {
		return RouteInfo{}, false
	}
	return self.makeRouteInfo(record), true
}

func (self *Directory) makeBusInfo(b *bus) BusInfo {
	seen := make(map[StopId]struct{}, len(b.route))
	for _, id := range b.route {
		seen[id] = struct{}{}
	}

	var roadLength, geoLength float64
	for i := 1; i < len(b.route); i++ {
		roadLength += self.dist.At(b.route[i-1], b.route[i])
		geoLength += self.geoDist.At(b.route[i-1], b.route[i])
	}

	return BusInfo{
		StopsCount:       len(b.route),
		UniqueStopsCount: len(seen),
		RoadRouteLength:  roadLength,
		GeoRouteLength:   geoLength,
	}
}

func (self *Directory) makeStopInfo(s *stop) StopInfo {
	buses := make([]string, 0, len(s.buses))
	for id := range s.buses {
		buses = append(buses, self.busReg.get(id).name)
	}
	sortStrings(buses)
	return StopInfo{Buses: buses}
}

// makeRouteInfo performs an iterative in-order traversal: an explicit
// stack of pending "right subtree" records stands in for the implicit
// binary tree of Transfer compositions, avoiding unbounded recursion on
// deep transfer chains.
func (self *Directory) makeRouteInfo(root routeRecord) RouteInfo {
	var response RouteInfo
	var stack []routeRecord

	current := root
	for {
		if current.Item.Kind == itemTransfer {
			t := current.Item
			stack = append(stack, self.routes.At(t.TransferMiddle, t.TransferTo))
			current = self.routes.At(t.TransferFrom, t.TransferMiddle)
			continue
		}

		span := current.Item
		response.TotalTime += self.settings.WaitTime + current.Time
		response.Items = append(response.Items,
			RouteLeg{
				Kind:     LegWait,
				StopName: self.stopReg.get(span.SpanFrom).name,
				WaitTime: self.settings.WaitTime,
			},
			RouteLeg{
				Kind:       LegBus,
				BusName:    self.busReg.get(span.SpanBus).name,
				SpansCount: int(span.SpanSpansCount),
				RideTime:   current.Time,
			},
		)

		if len(stack) == 0 {
			break
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}

	return response
}
