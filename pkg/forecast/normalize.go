package forecast

import (
	"fmt"

	"github.com/tidegrid/surfcast/pkg/spots"
	"github.com/tidegrid/surfcast/pkg/surfline"
	"github.com/tidegrid/surfcast/pkg/timetricks"
)

// NormalizeWave flattens a wave response into one row per interval. The
// timezone is resolved once from the response's location block and stamped
// on every row.
func NormalizeWave(spot spots.Spot, resp *surfline.WaveResponse, zones ZoneResolver) ([]WaveRow, error) {
	loc := resp.Associated.Location
	zone, zoneName, err := zones.Resolve(loc.Lat, loc.Lon)
	if err != nil {
		return nil, fmt.Errorf("resolving zone for %s: %w", spot.ID, err)
	}

	rows := make([]WaveRow, 0, len(resp.Data.Wave))
	for _, sample := range resp.Data.Wave {
		row := WaveRow{
			Key:           NewKey(spot.ID, sample.Timestamp),
			SpotID:        spot.ID,
			SpotName:      spot.Name,
			Timezone:      zoneName,
			LocalTime:     timetricks.FormatLocal(sample.Timestamp, zone),
			MaxHeight:     sample.Surf.Raw.Max,
			MinHeight:     sample.Surf.Raw.Min,
			HumanRelation: sample.Surf.HumanRelation,
		}
		// Six fixed slots; slots beyond what the provider sent stay nil,
		// as does any slot with a non-positive height.
		for i := 0; i < NumSwells && i < len(sample.Swells); i++ {
			if h := sample.Swells[i].Height; h > 0 {
				row.Swells[i] = &h
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// NormalizeWind flattens a wind response. No derived fields.
func NormalizeWind(spot spots.Spot, resp *surfline.WindResponse) []WindRow {
	rows := make([]WindRow, 0, len(resp.Data.Wind))
	for _, sample := range resp.Data.Wind {
		rows = append(rows, WindRow{
			Key:           NewKey(spot.ID, sample.Timestamp),
			Speed:         sample.Speed,
			DirectionType: sample.DirectionType,
		})
	}
	return rows
}

// NormalizeTides flattens a tide response. The zone comes from the tide
// station's coordinates, not the spot's; stations can sit across a zone
// boundary from the break they serve.
func NormalizeTides(spot spots.Spot, resp *surfline.TideResponse, zones ZoneResolver) ([]TideRow, error) {
	station := resp.Associated.TideLocation
	zone, _, err := zones.Resolve(station.Lat, station.Lon)
	if err != nil {
		return nil, fmt.Errorf("resolving zone for tide station %q: %w", station.Name, err)
	}

	rows := make([]TideRow, 0, len(resp.Data.Tides))
	for _, sample := range resp.Data.Tides {
		rows = append(rows, TideRow{
			Key:       NewKey(spot.ID, sample.Timestamp),
			SpotID:    spot.ID,
			SpotName:  spot.Name,
			LocalTime: timetricks.FormatLocal(sample.Timestamp, zone),
			LocalHour: timetricks.LocalHour(sample.Timestamp, zone),
			Height:    sample.Height,
			Type:      sample.Type,
		})
	}
	return rows, nil
}

// NormalizeWeather flattens a weather response, attaching each interval's
// four sunlight events. Events are matched positionally: sample i belongs
// to sunlight day i / samplesPerDay, clamped to the last day the provider
// sent, which absorbs a partial trailing day beyond the declared span. All
// localization uses the sample's own UTC offset; weather is the one kind
// that reports offsets per record instead of a zone.
func NormalizeWeather(spot spots.Spot, resp *surfline.WeatherResponse) ([]WeatherRow, error) {
	days := resp.Data.SunlightTimes
	if len(days) == 0 {
		return nil, &surfline.ContractError{Kind: surfline.KindWeather, Field: "data.sunlightTimes missing"}
	}
	samplesPerDay := 24 / surfline.GridIntervalHours

	rows := make([]WeatherRow, 0, len(resp.Data.Weather))
	for i, sample := range resp.Data.Weather {
		dayIdx := i / samplesPerDay
		if dayIdx >= len(days) {
			dayIdx = len(days) - 1
		}
		day := days[dayIdx]
		zone := timetricks.FixedZone(sample.UTCOffset)

		rows = append(rows, WeatherRow{
			Key:         NewKey(spot.ID, sample.Timestamp),
			Temperature: sample.Temperature,
			FirstLight:  timetricks.FormatLocal(day.Dawn, zone),
			Sunrise:     timetricks.FormatLocal(day.Sunrise, zone),
			Sunset:      timetricks.FormatLocal(day.Sunset, zone),
			LastLight:   timetricks.FormatLocal(day.Dusk, zone),
		})
	}
	return rows, nil
}
