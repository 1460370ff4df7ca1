package directory

//*******************************************
// span filler
//*******************************************

// fillSpans performs the first relaxation pass: for every bus, the best
// direct single-bus time between any two stops on its route.
func (self *Directory) fillSpans() {
	for busId := BusId(0); int(busId) < self.busReg.size(); busId++ {
		b := self.busReg.get(busId)
		route := b.route
		m := len(route)
		if m == 0 {
			continue
		}

		spanTime := make([]float64, m)
		for i := 1; i < m; i++ {
			dt := self.dist.At(route[i-1], route[i]) / self.settings.Velocity

			for j := i - 1; j >= 0; j-- {
				spanTime[j] += dt
				from, to := route[j], route[i]
				candidate := spanTime[j]
				if candidate < self.routes.At(from, to).Time {
					self.routes.Set(from, to, routeRecord{
						Time: candidate,
						Item: routeItem{
							Kind:           itemSpan,
							SpanFrom:       from,
							SpanBus:        busId,
							SpanSpansCount: uint16(i - j),
						},
					})
				}
			}
		}
	}
}

//*******************************************
// transitive closer
//*******************************************

// closeTransfers is the second relaxation pass: a Floyd-Warshall variant
// over the route matrix with a wait penalty charged at every composition.
func (self *Directory) closeTransfers() {
	n := self.stopReg.size()
	waitTime := self.settings.WaitTime

	for middle := StopId(0); int(middle) < n; middle++ {
		for from := StopId(0); int(from) < n; from++ {
			fromMiddle := self.routes.At(from, middle).Time
			for to := StopId(0); int(to) < n; to++ {
				candidate := fromMiddle + waitTime + self.routes.At(middle, to).Time
				if candidate < self.routes.At(from, to).Time {
					self.routes.Set(from, to, routeRecord{
						Time: candidate,
						Item: routeItem{
							Kind:           itemTransfer,
							TransferFrom:   from,
							TransferMiddle: middle,
							TransferTo:     to,
						},
					})
				}
			}
		}
	}
}
