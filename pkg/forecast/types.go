// Package forecast turns the four raw Surfline forecast streams into one
// aligned table per spot. Each kind has a pure normalizer from response to
// flat rows, and Join merges the four row sets on the shared interval key,
// reconciling the hourly tide series with the 3-hour grid the other kinds
// share. Nothing here touches the network or a database.
package forecast

import (
	"strconv"
	"time"
)

// Key identifies one forecast interval for one spot: "<spot_id>-<unix>".
// It is the join key across all four kinds.
type Key string

// NewKey builds the interval key for a spot and timestamp.
func NewKey(spotID string, unix int64) Key {
	return Key(spotID + "-" + strconv.FormatInt(unix, 10))
}

// NumSwells is the number of swell component slots the provider reports per
// wave sample.
const NumSwells = 6

// SwellHeights holds the six ordered swell slots. A nil entry means the
// provider reported no swell in that slot (height zero or negative counts
// as no swell).
type SwellHeights [NumSwells]*float64

// WaveRow is one normalized wave interval. The wave response also carries
// the spot's coordinates, so this kind owns the resolved timezone and the
// spot-level localized time.
type WaveRow struct {
	Key           Key
	SpotID        string
	SpotName      string
	Timezone      string
	LocalTime     string
	MaxHeight     float64
	MinHeight     float64
	HumanRelation string
	Swells        SwellHeights
}

// WindRow is one normalized wind interval, a direct passthrough.
type WindRow struct {
	Key           Key
	Speed         float64
	DirectionType string
}

// TideRow is one normalized tide interval. LocalHour drives the sampling
// filter; the tide station's own coordinates resolve the zone, which may
// differ from the wave response's.
type TideRow struct {
	Key       Key
	SpotID    string
	SpotName  string
	LocalTime string
	LocalHour int
	Height    float64
	Type      string
}

// WeatherRow is one normalized weather interval with the four sunlight
// events of its local calendar day, localized by the sample's own UTC
// offset.
type WeatherRow struct {
	Key         Key
	Temperature float64
	FirstLight  string
	Sunrise     string
	Sunset      string
	LastLight   string
}

// JoinedRow is one output row: a surviving tide sample with the wave,
// weather, and wind fields of the same interval attached when present.
// Pointer fields are nil when the left join found no match; that happens
// for every high/low tide event that falls off the 3-hour grid.
type JoinedRow struct {
	TideLocalTime     string
	TideHeight        float64
	TideType          string
	SpotID            string
	SpotName          string
	SpotTimezone      *string
	SpotLocalTime     *string
	WaveMaxHeight     *float64
	WaveMinHeight     *float64
	HumanRelation     *string
	Swells            SwellHeights
	Temperature       *float64
	FirstLight        *string
	Sunrise           *string
	Sunset            *string
	LastLight         *string
	WindSpeed         *float64
	WindDirectionType *string
	Subregion         string
	Region            string
}

// ZoneResolver maps a coordinate to its timezone. Satisfied by
// timezone.Resolver; tests substitute a fixed-zone fake.
type ZoneResolver interface {
	Resolve(lat, lon float64) (*time.Location, string, error)
}
