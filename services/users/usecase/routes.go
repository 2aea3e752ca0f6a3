package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/mmcloughlin/geohash"
	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

const routeSteps = 8

// SafeRoutes synthesizes route suggestions between two points. Results are
// deterministic for a given start/end pair so repeated calls from the same
// client render stable maps.
func (u *UserUC) SafeRoutes(ctx context.Context, userID string, req *models.SafeRoutesRequest) ([]models.SafeRoute, error) {
	start, end := req.StartLocation, req.EndLocation
	if start.Latitude == 0 && start.Longitude == 0 {
		return nil, apperrors.BadRequest("Start location is required")
	}
	if end.Latitude == 0 && end.Longitude == 0 {
		return nil, apperrors.BadRequest("End location is required")
	}

	if _, err := u.loadUser(ctx, userID); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(routeSeed(start, end)))
	distKm := haversineKm(start, end)

	routes := []models.SafeRoute{
		buildRoute(rng, "route-1", "Premium Safe Route", 92, start, end, distKm, 1.18,
			[]string{"Well-lit streets", "CCTV coverage", "Police patrol route", "Busy area"},
			nil),
		buildRoute(rng, "route-2", "Balanced Route", 78, start, end, distKm, 1.05,
			[]string{"Moderate lighting", "Some CCTV coverage"},
			[]string{"Quieter section after dark"}),
	}

	return routes, nil
}

// routeSeed derives a stable seed from the geohash cells of both endpoints.
func routeSeed(start, end models.Coordinate) int64 {
	h := fnv.New64a()
	h.Write([]byte(geohash.EncodeWithPrecision(start.Latitude, start.Longitude, 8)))
	h.Write([]byte(geohash.EncodeWithPrecision(end.Latitude, end.Longitude, 8)))
	return int64(h.Sum64())
}

func buildRoute(rng *rand.Rand, id, name string, safetyScore int, start, end models.Coordinate, distKm, detour float64, features, warnings []string) models.SafeRoute {
	coords := make([]models.Coordinate, 0, routeSteps+1)
	for i := 0; i <= routeSteps; i++ {
		t := float64(i) / routeSteps
		jitter := 0.0
		if i > 0 && i < routeSteps {
			jitter = (rng.Float64() - 0.5) * 0.004 * detour
		}
		coords = append(coords, models.Coordinate{
			Latitude:  start.Latitude + (end.Latitude-start.Latitude)*t + jitter,
			Longitude: start.Longitude + (end.Longitude-start.Longitude)*t + jitter,
		})
	}

	routeKm := distKm * detour
	walkMins := int(math.Max(1, math.Round(routeKm/4.8*60)))

	return models.SafeRoute{
		ID:            id,
		Name:          name,
		Coordinates:   coords,
		Duration:      fmt.Sprintf("%d mins", walkMins),
		Distance:      fmt.Sprintf("%.1f km", routeKm),
		SafetyScore:   safetyScore,
		Features:      features,
		Warnings:      warnings,
		SafeZones:     buildSafeZones(rng, coords),
		CrimeHotspots: buildHotspots(rng, coords, safetyScore),
	}
}

func buildSafeZones(rng *rand.Rand, coords []models.Coordinate) []models.SafeZone {
	kinds := []struct{ zoneType, name, contact string }{
		{"police", "Police Station", "100"},
		{"hospital", "City Hospital", "108"},
		{"public", "24h Convenience Store", ""},
	}
	zones := make([]models.SafeZone, 0, len(kinds))
	for i, k := range kinds {
		anchor := coords[(i+1)*len(coords)/(len(kinds)+1)]
		zones = append(zones, models.SafeZone{
			ID:        fmt.Sprintf("zone-%d", i+1),
			Latitude:  anchor.Latitude + (rng.Float64()-0.5)*0.002,
			Longitude: anchor.Longitude + (rng.Float64()-0.5)*0.002,
			Type:      k.zoneType,
			Name:      k.name,
			Radius:    150 + rng.Float64()*100,
			Contact:   k.contact,
			Area:      "En route",
		})
	}
	return zones
}

func buildHotspots(rng *rand.Rand, coords []models.Coordinate, safetyScore int) []models.CrimeHotspot {
	// Safer routes report fewer hotspots.
	n := 2
	if safetyScore >= 90 {
		n = 1
	}
	crimeTypes := []string{"theft", "harassment"}
	risks := []string{"medium", "low"}
	spots := make([]models.CrimeHotspot, 0, n)
	for i := 0; i < n; i++ {
		anchor := coords[(i+1)*len(coords)/(n+2)]
		spots = append(spots, models.CrimeHotspot{
			ID:           fmt.Sprintf("hotspot-%d", i+1),
			Latitude:     anchor.Latitude + (rng.Float64()-0.5)*0.003,
			Longitude:    anchor.Longitude + (rng.Float64()-0.5)*0.003,
			CrimeType:    crimeTypes[i%len(crimeTypes)],
			RiskLevel:    risks[i%len(risks)],
			Radius:       100 + rng.Float64()*150,
			ReportedDate: fmt.Sprintf("%d days ago", 7+rng.Intn(21)),
			Description:  "Reported incidents in this area",
			Frequency:    1 + rng.Intn(5),
			Area:         "En route",
		})
	}
	return spots
}

// haversineKm returns the great-circle distance between two coordinates.
func haversineKm(a, b models.Coordinate) float64 {
	const earthRadiusKm = 6371.0
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
