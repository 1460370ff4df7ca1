package directory

import "math"

//*******************************************
// dense distance matrix
//*******************************************

// distanceMatrix is a dense N×N row-major table of doubles, used both for
// the road distance matrix and the great-circle distance matrix.
type distanceMatrix struct {
	n    int
	data []float64
}

// newDistanceMatrix allocates an N×N matrix with every cell set to fill.
func newDistanceMatrix(n int, fill float64) *distanceMatrix {
	data := make([]float64, n*n)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}
	return &distanceMatrix{n: n, data: data}
}

func (self *distanceMatrix) index(from, to StopId) int {
	return int(from)*self.n + int(to)
}

func (self *distanceMatrix) At(from, to StopId) float64 {
	return self.data[self.index(from, to)]
}

func (self *distanceMatrix) Set(from, to StopId, value float64) {
	self.data[self.index(from, to)] = value
}

func newInfDistanceMatrix(n int) *distanceMatrix {
	return newDistanceMatrix(n, math.Inf(1))
}
