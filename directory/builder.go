package directory

//*******************************************
// directory (query surface + storage)
//*******************************************

// Directory is the built, read-only transit directory. It is safe for
// concurrent read-only access once NewDirectory has returned.
type Directory struct {
	settings RoutingSettings

	stopReg *stopRegistry
	busReg  *busRegistry

	dist    *distanceMatrix // road distances
	geoDist *distanceMatrix // great-circle distances
	routes  *routeMatrix    // best-time journeys
}

// ensureCapacity grows the distance matrix when the stop registry has
// outgrown it. This only triggers when a Bus or a Stop's road_distances
// reference a stop name absent from every Stop item; see DESIGN.md for
// the Open Question decision behind permissive registration.
func (self *Directory) ensureCapacity() {
	n := self.stopReg.size()
	if n <= self.dist.n {
		return
	}
	self.dist = growDistanceMatrix(self.dist, n)
}

func growDistanceMatrix(old *distanceMatrix, n int) *distanceMatrix {
	grown := newInfDistanceMatrix(n)
	for i := 0; i < old.n; i++ {
		for j := 0; j < old.n; j++ {
			grown.Set(StopId(i), StopId(j), old.At(StopId(i), StopId(j)))
		}
	}
	return grown
}

// StopCount returns the number of distinct stops registered in the
// directory.
func (self *Directory) StopCount() int {
	return self.stopReg.size()
}

// BusCount returns the number of distinct buses registered in the
// directory.
func (self *Directory) BusCount() int {
	return self.busReg.size()
}

//*******************************************
// builder
//*******************************************

// NewDirectory builds a Directory from a one-shot Config. It partitions
// items so every Stop is added before any Bus, fills direct-bus route
// records, and closes them over transfers.
func NewDirectory(cfg Config) *Directory {
	var stopItems []StopConfig
	var busItems []BusConfig
	for _, item := range cfg.Items {
		switch v := item.(type) {
		case StopConfig:
			stopItems = append(stopItems, v)
		case BusConfig:
			busItems = append(busItems, v)
		}
	}

	self := &Directory{
		settings: cfg.Settings,
		stopReg:  newStopRegistry(),
		busReg:   newBusRegistry(),
		dist:     newInfDistanceMatrix(len(stopItems)),
	}

	for _, item := range stopItems {
		self.addStop(item)
	}
	for _, item := range busItems {
		self.addBus(item)
	}

	self.computeGeoDistances()
	self.computeRoutes()

	return self
}

func (self *Directory) addStop(cfg StopConfig) {
	id := self.stopReg.register(cfg.Name)
	self.ensureCapacity()

	s := self.stopReg.get(id)
	s.coords = geoPoint(cfg.Latitude, cfg.Longitude)

	for name, distance := range cfg.RoadDistances {
		adjacentId := self.stopReg.register(name)
		self.ensureCapacity()

		s.adjacent[adjacentId] = struct{}{}
		self.dist.Set(id, adjacentId, distance)

		adjacent := self.stopReg.get(adjacentId)
		if _, already := adjacent.adjacent[id]; !already {
			adjacent.adjacent[id] = struct{}{}
			self.dist.Set(adjacentId, id, distance)
		}
	}
}

func (self *Directory) addBus(cfg BusConfig) {
	id := self.busReg.register(cfg.Name)
	b := self.busReg.get(id)
	b.isRoundtrip = cfg.IsRoundtrip
	b.route = make([]StopId, len(cfg.Stops))
	for i, name := range cfg.Stops {
		stopId := self.stopReg.register(name)
		self.ensureCapacity()
		b.route[i] = stopId
		self.stopReg.get(stopId).buses[id] = struct{}{}
	}
}

func (self *Directory) computeGeoDistances() {
	n := self.stopReg.size()
	self.geoDist = newDistanceMatrix(n, 0)
	for from := 0; from < n; from++ {
		for to := from; to < n; to++ {
			d := geoDistance(self.stopReg.get(StopId(from)).coords, self.stopReg.get(StopId(to)).coords)
			self.geoDist.Set(StopId(from), StopId(to), d)
			self.geoDist.Set(StopId(to), StopId(from), d)
		}
	}
}

func (self *Directory) computeRoutes() {
	n := self.stopReg.size()
	self.routes = newRouteMatrix(n)
	self.fillSpans()
	self.closeTransfers()
}
