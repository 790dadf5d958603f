package analytics

import (
	"math"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/geo"
)

// MapView is the initial camera of the hotspot map.
type MapView struct {
	Center geo.Point `json:"center"`
	Zoom   float64   `json:"zoom"`
	Pitch  float64   `json:"pitch"`
}

// CorridorView frames the HITEC City corridor.
var CorridorView = MapView{Center: geo.Pt(17.444, 78.382), Zoom: 13, Pitch: 45}

// HotspotPin is a hotspot placed relative to the map center.
type HotspotPin struct {
	dataset.Hotspot
	DistanceKM float64 `json:"distance_from_center_km"`
	BearingDeg float64 `json:"bearing_deg"`
}

// HotspotMap is everything the map tab needs to draw the hotspots.
type HotspotMap struct {
	View     MapView      `json:"view"`
	Bounds   *geo.Bounds  `json:"bounds"`
	Hotspots []HotspotPin `json:"hotspots"`
}

// MapHotspots positions each hotspot against the corridor view. Input order is kept.
func MapHotspots(hotspots []dataset.Hotspot) HotspotMap {
	m := HotspotMap{View: CorridorView, Hotspots: make([]HotspotPin, len(hotspots))}

	pts := make([]geo.Point, len(hotspots))
	for i, h := range hotspots {
		pts[i] = h.Point()
		m.Hotspots[i] = HotspotPin{
			Hotspot:    h,
			DistanceKM: math.Round(m.View.Center.Distance(pts[i])*100) / 100,
			BearingDeg: round1(m.View.Center.Bearing(pts[i])),
		}
	}
	if b, ok := geo.BoundingBox(pts); ok {
		m.Bounds = &b
	}
	return m
}
