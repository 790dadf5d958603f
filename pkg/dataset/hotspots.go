package dataset

import "github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/geo"

// Hotspot is a recurring congestion bottleneck in the HITEC City corridor.
type Hotspot struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

var hotspots = []Hotspot{
	{Name: "HITEC City MMTS Underpass", Lat: 17.4425, Lon: 78.3828},
	{Name: "Gachibowli Flyover / Cyber Towers", Lat: 17.4379, Lon: 78.3678},
	{Name: "Mindspace–Yashoda Road", Lat: 17.4436, Lon: 78.3795},
	{Name: "Cyber Towers – Mindspace Rotary", Lat: 17.4446, Lon: 78.3803},
	{Name: "U-turn Bottleneck (Dairy Farm)", Lat: 17.4800, Lon: 78.4480},
}

// Hotspots returns the fixed list of pilot hotspots.
func Hotspots() []Hotspot {
	out := make([]Hotspot, len(hotspots))
	copy(out, hotspots)
	return out
}

// Point returns the hotspot position.
func (h Hotspot) Point() geo.Point {
	return geo.Pt(h.Lat, h.Lon)
}
