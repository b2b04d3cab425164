package utils

import (
	"encoding/json"
	"fmt"

	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the cell size used for stored GPS points.
// Precision 7 is roughly a 150m x 150m cell.
const GeohashPrecision = 7

// GeoPoint represents a geographical point with latitude and longitude.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a coordinate pair to its geohash cell.
func EncodeLocation(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, GeohashPrecision)
}

// ParsePolygon decodes a geofence coordinate string, a JSON array of
// [latitude, longitude] pairs.
func ParsePolygon(coordinates string) ([]GeoPoint, error) {
	var raw [][]float64
	if err := json.Unmarshal([]byte(coordinates), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse polygon coordinates: %w", err)
	}
	if len(raw) < 3 {
		return nil, fmt.Errorf("polygon requires at least 3 points, got %d", len(raw))
	}

	points := make([]GeoPoint, 0, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("polygon point %d is not a [lat, lng] pair", i)
		}
		points = append(points, GeoPoint{Latitude: pair[0], Longitude: pair[1]})
	}
	return points, nil
}

// PointInPolygon reports whether p lies inside the polygon using the
// ray-casting rule. Points on an edge may fall on either side.
func PointInPolygon(p GeoPoint, polygon []GeoPoint) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Longitude > p.Longitude) != (pj.Longitude > p.Longitude) {
			cross := (pj.Latitude-pi.Latitude)*(p.Longitude-pi.Longitude)/(pj.Longitude-pi.Longitude) + pi.Latitude
			if p.Latitude < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
