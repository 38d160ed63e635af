package forecast

import (
	"github.com/tidegrid/surfcast/pkg/spots"
	"github.com/tidegrid/surfcast/pkg/surfline"
)

// FilterTides reduces the hourly tide series to the rows worth keeping
// against the 3-hour grid: every sample whose local hour is a multiple of
// three, plus every high/low event wherever it falls. Extrema are never
// discarded for being off grid.
func FilterTides(rows []TideRow) []TideRow {
	kept := make([]TideRow, 0, len(rows))
	for _, row := range rows {
		if row.LocalHour%3 == 0 || row.Type != surfline.TideTypeNormal {
			kept = append(kept, row)
		}
	}
	return kept
}

// gridRow is the wave-driven merge of wave, weather, and wind for one
// interval. Weather and wind attach to their wave row by key; an interval
// with no wave sample contributes nothing, matching a left join with wave
// on the left.
type gridRow struct {
	wave    WaveRow
	weather *WeatherRow
	wind    *WindRow
}

// Join produces the output table for one spot: one row per filtered tide
// sample, with the grid fields of the same interval left-joined on. The
// grid match additionally requires the wave row's spot id and name to equal
// the tide row's, guarding against a cross-spot join if keys were ever
// reused. Region and subregion come from the static mapping entry.
//
// The caller is expected to pass the unfiltered tide rows; Join applies
// FilterTides itself so the filter cannot be skipped.
func Join(spot spots.Spot, waves []WaveRow, weather []WeatherRow, winds []WindRow, tides []TideRow) []JoinedRow {
	weatherByKey := make(map[Key]WeatherRow, len(weather))
	for _, w := range weather {
		weatherByKey[w.Key] = w
	}
	windByKey := make(map[Key]WindRow, len(winds))
	for _, w := range winds {
		windByKey[w.Key] = w
	}

	grid := make(map[Key]gridRow, len(waves))
	for _, wave := range waves {
		g := gridRow{wave: wave}
		if w, ok := weatherByKey[wave.Key]; ok {
			g.weather = &w
		}
		if w, ok := windByKey[wave.Key]; ok {
			g.wind = &w
		}
		grid[wave.Key] = g
	}

	filtered := FilterTides(tides)
	out := make([]JoinedRow, 0, len(filtered))
	for _, tide := range filtered {
		row := JoinedRow{
			TideLocalTime: tide.LocalTime,
			TideHeight:    tide.Height,
			TideType:      tide.Type,
			SpotID:        tide.SpotID,
			SpotName:      tide.SpotName,
			Subregion:     spot.Subregion,
			Region:        spot.Region,
		}

		if g, ok := grid[tide.Key]; ok && g.wave.SpotID == tide.SpotID && g.wave.SpotName == tide.SpotName {
			row.SpotTimezone = &g.wave.Timezone
			row.SpotLocalTime = &g.wave.LocalTime
			row.WaveMaxHeight = &g.wave.MaxHeight
			row.WaveMinHeight = &g.wave.MinHeight
			row.HumanRelation = &g.wave.HumanRelation
			row.Swells = g.wave.Swells
			if g.weather != nil {
				row.Temperature = &g.weather.Temperature
				row.FirstLight = &g.weather.FirstLight
				row.Sunrise = &g.weather.Sunrise
				row.Sunset = &g.weather.Sunset
				row.LastLight = &g.weather.LastLight
			}
			if g.wind != nil {
				row.WindSpeed = &g.wind.Speed
				row.WindDirectionType = &g.wind.DirectionType
			}
		}

		out = append(out, row)
	}
	return out
}
