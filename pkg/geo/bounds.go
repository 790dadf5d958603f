package geo

// Bounds is a latitude/longitude bounding box.
type Bounds struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// BoundingBox returns the smallest box containing every point.
// The second result is false when pts is empty.
func BoundingBox(pts []Point) (Bounds, bool) {
	if len(pts) == 0 {
		return Bounds{}, false
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.Lat = min(b.Min.Lat, p.Lat)
		b.Min.Lon = min(b.Min.Lon, p.Lon)
		b.Max.Lat = max(b.Max.Lat, p.Lat)
		b.Max.Lon = max(b.Max.Lon, p.Lon)
	}
	return b, true
}

// Center returns the middle of the box.
func (b Bounds) Center() Point {
	return MidPoint(b.Min, b.Max)
}

// Contains reports whether p lies inside the box, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.Min.Lat && p.Lat <= b.Max.Lat &&
		p.Lon >= b.Min.Lon && p.Lon <= b.Max.Lon
}

// Diagonal returns the corner-to-corner distance in kilometres.
func (b Bounds) Diagonal() float64 {
	return b.Min.Distance(b.Max)
}
