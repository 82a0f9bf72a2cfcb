package domain

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Return coordinates as [lat, lon], the order drivers and map widgets expect.
func (c Coordinates) LatLon() []float64 { return []float64{c.Lat, c.Lon} }

// Build Coordinates from an ORS [lon, lat] pair.
func CoordinatesFromList(pair []float64) (Coordinates, bool) {
	if len(pair) < 2 {
		return Coordinates{}, false
	}
	return Coordinates{Lon: pair[0], Lat: pair[1]}, true
}
