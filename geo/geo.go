// Package geo carries the coordinate type shared by the transport
// directory and computes the great-circle distance between two points.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadius is the radius, in meters, used for great-circle distances.
const EarthRadius = 6_371_000.0

// Point is a (longitude, latitude) pair in degrees, stored as an orb.Point
// so the coordinate carried by a Stop can interoperate with the rest of
// the orb ecosystem. Distance below does not use orb's own geometry
// algorithms: it implements the exact formula this directory is built
// against.
type Point = orb.Point

// NewPoint builds a Point from a (latitude, longitude) pair in degrees.
func NewPoint(latitude, longitude float64) Point {
	return Point{longitude, latitude}
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// Distance returns the great-circle distance, in meters, between two
// points given as (latitude, longitude) pairs.
func Distance(aLat, aLon, bLat, bLon float64) float64 {
	aLatR, aLonR := toRadians(aLat), toRadians(aLon)
	bLatR, bLonR := toRadians(bLat), toRadians(bLon)

	a := math.Cos(aLatR + bLatR)
	b := math.Cos(aLatR - bLatR)
	c := math.Cos(aLonR - bLonR)

	return math.Acos((a+b)*(1+c)/2-a) * EarthRadius
}

// DistancePoints returns the great-circle distance, in meters, between
// two Points (latitude/longitude in degrees).
func DistancePoints(a, b Point) float64 {
	return Distance(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// Lat returns the latitude, in degrees, stored in a Point.
func Lat(p Point) float64 {
	return p.Lat()
}

// Lon returns the longitude, in degrees, stored in a Point.
func Lon(p Point) float64 {
	return p.Lon()
}
