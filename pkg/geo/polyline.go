package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes an ordered coordinate sequence as a Google
// encoded polyline (precision 5), the shape map clients expect.
func PolylineFromCoords(coords []Coordinate) string {
	latLngs := make([][]float64, len(coords))
	for i, c := range coords {
		latLngs[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(latLngs))
}
