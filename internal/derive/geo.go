package derive

import (
	"math"
	"regexp"
	"strings"

	"github.com/hda-infdl/partner-scout/internal/model"
)

const earthRadiusKm = 6371

var (
	leadingZip  = regexp.MustCompile(`^\d{5}\s+`)
	trailingZip = regexp.MustCompile(`\s+\d{5}$`)
)

// normalizeCity lowercases, trims, and strips a leading or trailing
// 5-digit postal code token ("64293 Darmstadt" -> "darmstadt").
func normalizeCity(city string) string {
	city = strings.TrimSpace(strings.ToLower(city))
	city = leadingZip.ReplaceAllString(city, "")
	city = trailingZip.ReplaceAllString(city, "")
	return city
}

// LookupCity resolves a free-text city name to a gazetteer coordinate.
// Match order: exact key, then the first key contained in the input
// ("darmstadt, germany" contains "darmstadt"), then the first key
// containing the input ("frankfurt" inside "frankfurt am main").
// First match in gazetteer declaration order wins at each stage.
func LookupCity(city string) (model.Coordinate, bool) {
	city = normalizeCity(city)
	if city == "" {
		return model.Coordinate{}, false
	}

	if c, ok := gazetteerIndex[city]; ok {
		return c, true
	}

	for _, e := range gazetteer {
		if strings.Contains(city, e.name) {
			return e.coord, true
		}
	}

	for _, e := range gazetteer {
		if strings.Contains(e.name, city) {
			return e.coord, true
		}
	}

	return model.Coordinate{}, false
}

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(a, b model.Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLon := deg2rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// DistanceFrom estimates the distance from the company's effective
// city to ref, rounded to whole kilometers. Returns nil when the city
// is absent or not in the gazetteer; that is a common outcome for
// small or foreign towns, not an error.
func DistanceFrom(r model.RawCompany, ref model.Coordinate) *int {
	city := City(r)
	if city == "" {
		return nil
	}
	coord, ok := LookupCity(city)
	if !ok {
		return nil
	}
	km := int(math.Round(Haversine(ref, coord)))
	return &km
}

// DistanceToReference estimates the distance to the fixed reference
// coordinate.
func DistanceToReference(r model.RawCompany) *int {
	return DistanceFrom(r, ReferenceCoordinate)
}
