package directory

import "math"

//*******************************************
// tagged route record
//*******************************************

// itemKind tags a routeItem as the sentinel, a direct single-bus ride, or
// the composition of two sub-journeys at a shared middle stop.
type itemKind uint8

const (
	itemNone itemKind = iota
	itemSpan
	itemTransfer
)

// routeItem is a Span/Transfer/None tagged union. Only the fields
// relevant to Kind are meaningful.
type routeItem struct {
	Kind itemKind

	// itemSpan fields.
	SpanFrom       StopId
	SpanBus        BusId
	SpanSpansCount uint16

	// itemTransfer fields.
	TransferFrom   StopId
	TransferMiddle StopId
	TransferTo     StopId
}

// routeRecord is one cell of the route matrix: the best known time plus
// the provenance needed to reconstruct the itinerary.
type routeRecord struct {
	Time float64
	Item routeItem
}

var noRouteRecord = routeRecord{Time: math.Inf(1), Item: routeItem{Kind: itemNone}}

//*******************************************
// dense route matrix
//*******************************************

// routeMatrix is a dense N×N table of routeRecord, initialized to
// (+Inf, None). After build, R[i][j].Time is the minimum total ride time
// (excluding the leading wait at i) from stop i to stop j.
type routeMatrix struct {
	n    int
	data []routeRecord
}

func newRouteMatrix(n int) *routeMatrix {
	data := make([]routeRecord, n*n)
	for i := range data {
		data[i] = noRouteRecord
	}
	return &routeMatrix{n: n, data: data}
}

func (self *routeMatrix) index(from, to StopId) int {
	return int(from)*self.n + int(to)
}

func (self *routeMatrix) At(from, to StopId) routeRecord {
	return self.data[self.index(from, to)]
}

func (self *routeMatrix) Set(from, to StopId, record routeRecord) {
	self.data[self.index(from, to)] = record
}
