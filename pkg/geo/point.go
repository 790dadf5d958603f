package geo

import "math"

// EarthRadiusKM is the mean Earth radius used for great-circle distances.
const EarthRadiusKM = 6371.0

// Point is a WGS84 position in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Pt is a shorthand constructor for Point.
func Pt(lat, lon float64) Point {
	return Point{Lat: lat, Lon: lon}
}

// Valid reports whether p lies within the latitude and longitude ranges.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Distance returns the great-circle distance from p to q in kilometres.
func (p Point) Distance(q Point) float64 {
	lat1, lat2 := radians(p.Lat), radians(q.Lat)
	dLat := lat2 - lat1
	dLon := radians(q.Lon - p.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Bearing returns the initial compass bearing from p to q in degrees, 0 to 360.
func (p Point) Bearing(q Point) float64 {
	lat1, lat2 := radians(p.Lat), radians(q.Lat)
	dLon := radians(q.Lon - p.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// MidPoint returns the midpoint between p and q in degree space.
// Good enough at city scale.
func MidPoint(p, q Point) Point {
	return Point{Lat: (p.Lat + q.Lat) / 2, Lon: (p.Lon + q.Lon) / 2}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
