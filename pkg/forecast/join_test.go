package forecast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterTides(t *testing.T) {
	// A full local day sampled hourly, all NORMAL except a HIGH at hour 5.
	var rows []TideRow
	for h := 0; h < 24; h++ {
		typ := "NORMAL"
		if h == 5 {
			typ = "HIGH"
		}
		rows = append(rows, TideRow{LocalHour: h, Type: typ})
	}

	var gotHours []int
	for _, row := range FilterTides(rows) {
		gotHours = append(gotHours, row.LocalHour)
	}

	want := []int{0, 3, 5, 6, 9, 12, 15, 18, 21}
	if diff := cmp.Diff(gotHours, want); diff != "" {
		t.Errorf("incorrect filtered hours (-got,+want): %s", diff)
	}
}

func TestFilterTidesProperty(t *testing.T) {
	// Every kept row is on-grid or an extremum, and every on-grid or
	// extremum row is kept.
	var rows []TideRow
	for h := 0; h < 24; h++ {
		for _, typ := range []string{"NORMAL", "HIGH", "LOW"} {
			rows = append(rows, TideRow{LocalHour: h, Type: typ})
		}
	}

	kept := make(map[TideRow]bool)
	for _, row := range FilterTides(rows) {
		kept[row] = true
	}

	for _, row := range rows {
		want := row.LocalHour%3 == 0 || row.Type != "NORMAL"
		if kept[row] != want {
			t.Errorf("row hour=%d type=%s: kept=%v, want %v", row.LocalHour, row.Type, kept[row], want)
		}
	}
}

func TestJoinAttachesGridFields(t *testing.T) {
	waves := []WaveRow{{
		Key:           "abc123-100",
		SpotID:        "abc123",
		SpotName:      "Steamer Lane",
		Timezone:      "America/Los_Angeles",
		LocalTime:     "2022-08-14 06:00:00",
		MaxHeight:     3.6,
		MinHeight:     2.1,
		HumanRelation: "Waist to chest",
		Swells:        SwellHeights{f(2.1), nil, nil, f(1.5), nil, f(0.3)},
	}}
	weather := []WeatherRow{{
		Key:         "abc123-100",
		Temperature: 57.9,
		FirstLight:  "2022-08-14 05:52:00",
		Sunrise:     "2022-08-14 06:18:00",
		Sunset:      "2022-08-14 20:02:00",
		LastLight:   "2022-08-14 20:31:00",
	}}
	winds := []WindRow{{Key: "abc123-100", Speed: 4.4, DirectionType: "Offshore"}}
	tides := []TideRow{{
		Key:       "abc123-100",
		SpotID:    "abc123",
		SpotName:  "Steamer Lane",
		LocalTime: "2022-08-14 06:00:00",
		LocalHour: 6,
		Height:    2.62,
		Type:      "NORMAL",
	}}

	got := Join(testSpot, waves, weather, winds, tides)
	require.Len(t, got, 1)

	row := got[0]
	assert.Equal(t, "abc123", row.SpotID)
	assert.Equal(t, 2.62, row.TideHeight)
	require.NotNil(t, row.SpotTimezone)
	assert.Equal(t, "America/Los_Angeles", *row.SpotTimezone)
	require.NotNil(t, row.WaveMaxHeight)
	assert.Equal(t, 3.6, *row.WaveMaxHeight)
	require.NotNil(t, row.Temperature)
	assert.Equal(t, 57.9, *row.Temperature)
	require.NotNil(t, row.WindSpeed)
	assert.Equal(t, 4.4, *row.WindSpeed)
	assert.Equal(t, SwellHeights{f(2.1), nil, nil, f(1.5), nil, f(0.3)}, row.Swells)
	assert.Equal(t, "Santa Cruz", row.Region)
	assert.Equal(t, "Santa Cruz North", row.Subregion)
}

func TestJoinOffGridExtremumHasNilGridFields(t *testing.T) {
	// A HIGH at local hour 5 has no 3-hour sample to pair with; it
	// survives the filter but carries only tide and mapping fields.
	waves := []WaveRow{{Key: "abc123-0", SpotID: "abc123", SpotName: "Steamer Lane"}}
	tides := []TideRow{{
		Key:       "abc123-18000",
		SpotID:    "abc123",
		SpotName:  "Steamer Lane",
		LocalHour: 5,
		Height:    4.3,
		Type:      "HIGH",
	}}

	got := Join(testSpot, waves, nil, nil, tides)
	require.Len(t, got, 1)

	row := got[0]
	assert.Equal(t, "HIGH", row.TideType)
	assert.Nil(t, row.SpotTimezone)
	assert.Nil(t, row.SpotLocalTime)
	assert.Nil(t, row.WaveMaxHeight)
	assert.Nil(t, row.Temperature)
	assert.Nil(t, row.WindSpeed)
	assert.Equal(t, SwellHeights{}, row.Swells)
	assert.Equal(t, "Santa Cruz", row.Region)
}

func TestJoinGuardsSpotIdentity(t *testing.T) {
	// Same interval key but a different spot name on the wave side must
	// not attach; the key guard is exact on id and name.
	waves := []WaveRow{{
		Key:      "abc123-100",
		SpotID:   "abc123",
		SpotName: "Somewhere Else",
		Timezone: "America/Los_Angeles",
	}}
	tides := []TideRow{{
		Key:       "abc123-100",
		SpotID:    "abc123",
		SpotName:  "Steamer Lane",
		LocalHour: 0,
		Type:      "NORMAL",
	}}

	got := Join(testSpot, waves, nil, nil, tides)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].SpotTimezone)
}

func TestJoinFiltersUnfilteredInput(t *testing.T) {
	// Join applies the tide filter itself: hour 1 NORMAL must not appear.
	tides := []TideRow{
		{Key: "abc123-0", SpotID: "abc123", SpotName: "Steamer Lane", LocalHour: 0, Height: 1.0, Type: "NORMAL"},
		{Key: "abc123-3600", SpotID: "abc123", SpotName: "Steamer Lane", LocalHour: 1, Height: 9.9, Type: "NORMAL"},
	}

	got := Join(testSpot, nil, nil, nil, tides)
	require.Len(t, got, 1)
	// The surviving row is the on-grid hour 0 sample.
	assert.Equal(t, 1.0, got[0].TideHeight)
}
