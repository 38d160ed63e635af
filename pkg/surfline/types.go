package surfline

// Kind selects one of the provider's four forecast streams.
type Kind string

const (
	KindWave    Kind = "wave"
	KindWind    Kind = "wind"
	KindTides   Kind = "tides"
	KindWeather Kind = "weather"
)

const (
	// ForecastDays is the span of every request. Responses may carry one
	// partial trailing day beyond it.
	ForecastDays = 17

	// GridIntervalHours is the sampling interval shared by wave, wind, and
	// weather.
	GridIntervalHours = 3

	// TideIntervalHours is the finer tide sampling interval, needed so the
	// provider's high/low markers appear between grid points.
	TideIntervalHours = 1
)

// IntervalHours returns the sampling interval for a kind.
func (k Kind) IntervalHours() int {
	if k == KindTides {
		return TideIntervalHours
	}
	return GridIntervalHours
}

// Coordinates is a provider-reported point on the Earth.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Swell is one component of a composite wave forecast. The provider always
// reports six slots; a non-positive height means the slot is empty.
type Swell struct {
	Height    float64 `json:"height"`
	Period    float64 `json:"period"`
	Direction float64 `json:"direction"`
}

// Surf is the provider's surf height summary for one sample.
type Surf struct {
	HumanRelation string `json:"humanRelation"`
	Raw           struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"raw"`
}

// WaveSample is one wave forecast interval.
type WaveSample struct {
	Timestamp int64   `json:"timestamp"`
	Surf      Surf    `json:"surf"`
	Swells    []Swell `json:"swells"`
}

// WaveResponse is the wave forecast for one spot.
type WaveResponse struct {
	Associated struct {
		Location Coordinates `json:"location"`
	} `json:"associated"`
	Data struct {
		Wave []WaveSample `json:"wave"`
	} `json:"data"`
}

// WindSample is one wind forecast interval.
type WindSample struct {
	Timestamp     int64   `json:"timestamp"`
	Speed         float64 `json:"speed"`
	Direction     float64 `json:"direction"`
	DirectionType string  `json:"directionType"`
}

// WindResponse is the wind forecast for one spot.
type WindResponse struct {
	Data struct {
		Wind []WindSample `json:"wind"`
	} `json:"data"`
}

// TideTypeNormal marks a plain hourly tide sample, as opposed to a detected
// HIGH or LOW extremum.
const TideTypeNormal = "NORMAL"

// TideSample is one hourly tide interval or a high/low event.
type TideSample struct {
	Timestamp int64   `json:"timestamp"`
	Type      string  `json:"type"`
	Height    float64 `json:"height"`
}

// TideStation is the named station whose curve the tide forecast follows.
// It can sit away from the spot itself, so it carries its own coordinates.
type TideStation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// TideResponse is the tide forecast for one spot.
type TideResponse struct {
	Associated struct {
		TideLocation TideStation `json:"tideLocation"`
	} `json:"associated"`
	Data struct {
		Tides []TideSample `json:"tides"`
	} `json:"data"`
}

// WeatherSample is one weather forecast interval. Weather is the only kind
// that reports a per-record UTC offset instead of relying on zone lookup.
type WeatherSample struct {
	Timestamp   int64   `json:"timestamp"`
	UTCOffset   float64 `json:"utcOffset"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

// SunlightDay is one calendar day's sunlight events, in UTC seconds.
type SunlightDay struct {
	Midnight int64 `json:"midnight"`
	Dawn     int64 `json:"dawn"`
	Sunrise  int64 `json:"sunrise"`
	Sunset   int64 `json:"sunset"`
	Dusk     int64 `json:"dusk"`
}

// WeatherResponse is the weather forecast for one spot, with the per-day
// sunlight events list alongside the interval samples.
type WeatherResponse struct {
	Associated struct {
		Location Coordinates `json:"location"`
	} `json:"associated"`
	Data struct {
		SunlightTimes []SunlightDay   `json:"sunlightTimes"`
		Weather       []WeatherSample `json:"weather"`
	} `json:"data"`
}
