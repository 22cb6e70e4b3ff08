package timezone

import (
	"context"
	"log/slog"
	"time"

	"github.com/workpulse/attendance-backend-go/internal/domain/location"
)

// Resolver maps a clock-in request to an IANA zone. It never fails closed:
// every step of the chain that cannot resolve is logged and skipped, down to
// the fixed system default.
type Resolver interface {
	Resolve(ctx context.Context, employeeID string, clientZone *string, lat, lng *float64) *time.Location
}

type chainResolver struct {
	locationRepo location.LocationRepository
	table        []zoneEntry
	fallback     *time.Location
}

// NewResolver builds the production chain: client hint, coordinate table,
// employee's location default, system default. A bad defaultZone string
// degrades to UTC rather than erroring.
func NewResolver(locationRepo location.LocationRepository, defaultZone string) Resolver {
	fallback, err := time.LoadLocation(defaultZone)
	if err != nil {
		slog.Warn("Invalid default timezone, falling back to UTC", "zone", defaultZone, "error", err)
		fallback = time.UTC
	}
	return &chainResolver{
		locationRepo: locationRepo,
		table:        coordinateTable,
		fallback:     fallback,
	}
}

func (r *chainResolver) Resolve(ctx context.Context, employeeID string, clientZone *string, lat, lng *float64) *time.Location {
	// (a) client-supplied IANA zone
	if clientZone != nil && *clientZone != "" {
		if loc, err := time.LoadLocation(*clientZone); err == nil {
			return loc
		}
		slog.Warn("Unrecognized client timezone, trying coordinates",
			"employee_id", employeeID, "zone", *clientZone)
	}

	// (b) coordinate lookup
	if lat != nil && lng != nil {
		name := nearestZone(r.table, *lat, *lng)
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
		slog.Warn("Coordinate table produced unloadable zone",
			"employee_id", employeeID, "zone", name)
	}

	// (c) location default
	zone, err := r.locationRepo.GetTimezoneByEmployeeID(ctx, employeeID)
	if err == nil {
		if loc, lerr := time.LoadLocation(zone); lerr == nil {
			return loc
		}
		slog.Warn("Location default timezone is invalid",
			"employee_id", employeeID, "zone", zone)
	} else {
		slog.Debug("No location timezone for employee, using system default",
			"employee_id", employeeID, "error", err)
	}

	// (d) system default
	return r.fallback
}

type zoneEntry struct {
	lat  float64
	lng  float64
	zone string
}

// nearestZone picks the table entry closest to the coordinates by squared
// degree distance. The table holds one reference point per major region;
// accuracy beyond zone granularity is not a goal here.
func nearestZone(table []zoneEntry, lat, lng float64) string {
	best := table[0].zone
	bestDist := sqDist(lat, lng, table[0].lat, table[0].lng)
	for _, e := range table[1:] {
		if d := sqDist(lat, lng, e.lat, e.lng); d < bestDist {
			bestDist = d
			best = e.zone
		}
	}
	return best
}

func sqDist(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat1 - lat2
	dLng := lng1 - lng2
	return dLat*dLat + dLng*dLng
}
