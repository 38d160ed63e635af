// Package timezone maps geographic coordinates to IANA timezones using an
// embedded polygon index, so a batch run needs no network access to localize
// timestamps. A coordinate in open ocean may not fall inside any zone; that
// is an error the caller must treat as fatal for the spot, because every
// local-time field downstream depends on the zone.
package timezone

import (
	"fmt"
	"time"

	"github.com/ringsaturn/tzf"
)

// Resolver answers which timezone covers a coordinate.
type Resolver struct {
	finder tzf.F
}

// NewResolver builds a Resolver from tzf's default embedded data. The index
// is expensive to construct; build one per process and share it.
func NewResolver() (*Resolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("building timezone index: %w", err)
	}
	return &Resolver{finder: finder}, nil
}

// Resolve returns the IANA zone covering (lat, lon), both as a loaded
// Location and by name. An uncovered coordinate is an error.
func (r *Resolver) Resolve(lat, lon float64) (*time.Location, string, error) {
	name := r.finder.GetTimezoneName(lon, lat)
	if name == "" {
		return nil, "", fmt.Errorf("no timezone covers %.4f,%.4f", lat, lon)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, "", fmt.Errorf("loading zone %q: %w", name, err)
	}
	return loc, name, nil
}
