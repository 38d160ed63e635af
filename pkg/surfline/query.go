package surfline

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production forecast endpoint. Each kind is a path
// segment under it.
const DefaultBaseURL = "https://services.surfline.com/kbyg/spots/forecasts"

// Client fetches spot forecasts. The zero value is not usable; use New.
type Client struct {
	baseURL string
	client  *http.Client
	cache   *responseCache
}

// New returns a Client against baseURL (use DefaultBaseURL in production).
// Responses are cached in memory for ttl so that running the table and
// spreadsheet stages in one process does not refetch; a ttl of zero disables
// the cache.
func New(baseURL string, ttl time.Duration) *Client {
	var rc *responseCache
	if ttl > 0 {
		rc = newResponseCache(ttl)
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		cache:   rc,
	}
}

// Query names one (spot, kind) forecast request.
type Query struct {
	SpotID        string
	Kind          Kind
	Days          int
	IntervalHours int
}

// NewQuery builds the standard 17-day query for a kind, with the kind's
// native sampling interval.
func NewQuery(spotID string, kind Kind) Query {
	return Query{
		SpotID:        spotID,
		Kind:          kind,
		Days:          ForecastDays,
		IntervalHours: kind.IntervalHours(),
	}
}

func (q Query) url(base string) (*url.URL, error) {
	addr, err := url.Parse(fmt.Sprintf("%s/%s", base, q.Kind))
	if err != nil {
		return nil, err
	}
	vals := make(url.Values)
	vals.Add("spotId", q.SpotID)
	vals.Add("days", strconv.Itoa(q.Days))
	vals.Add("intervalHours", strconv.Itoa(q.IntervalHours))
	vals.Add("sds", "true")
	addr.RawQuery = vals.Encode()
	return addr, nil
}

// get fetches the raw response body for a query, consulting the cache
// first.
func (c *Client) get(q Query) ([]byte, error) {
	addr, err := q.url(c.baseURL)
	if err != nil {
		return nil, err
	}
	key := addr.String()

	if c.cache != nil {
		if body, ok := c.cache.get(key); ok {
			return body, nil
		}
	}

	resp, err := c.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("fetching %s forecast for %s: %w", q.Kind, q.SpotID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s forecast for %s: status %s", q.Kind, q.SpotID, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s forecast for %s: %w", q.Kind, q.SpotID, err)
	}

	if c.cache != nil {
		c.cache.put(key, body)
	}
	return body, nil
}

// Wave fetches and decodes the wave forecast for a spot.
func (c *Client) Wave(spotID string) (*WaveResponse, error) {
	body, err := c.get(NewQuery(spotID, KindWave))
	if err != nil {
		return nil, err
	}
	var result WaveResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ContractError{Kind: KindWave, Field: "body", Err: err}
	}
	if len(result.Data.Wave) == 0 {
		return nil, fmt.Errorf("wave forecast for %s: %w", spotID, ErrNoData)
	}
	if result.Associated.Location == (Coordinates{}) {
		return nil, &ContractError{Kind: KindWave, Field: "associated.location missing"}
	}
	return &result, nil
}

// Wind fetches and decodes the wind forecast for a spot.
func (c *Client) Wind(spotID string) (*WindResponse, error) {
	body, err := c.get(NewQuery(spotID, KindWind))
	if err != nil {
		return nil, err
	}
	var result WindResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ContractError{Kind: KindWind, Field: "body", Err: err}
	}
	if len(result.Data.Wind) == 0 {
		return nil, fmt.Errorf("wind forecast for %s: %w", spotID, ErrNoData)
	}
	return &result, nil
}

// Tides fetches and decodes the tide forecast for a spot.
func (c *Client) Tides(spotID string) (*TideResponse, error) {
	body, err := c.get(NewQuery(spotID, KindTides))
	if err != nil {
		return nil, err
	}
	var result TideResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ContractError{Kind: KindTides, Field: "body", Err: err}
	}
	if len(result.Data.Tides) == 0 {
		return nil, fmt.Errorf("tide forecast for %s: %w", spotID, ErrNoData)
	}
	if result.Associated.TideLocation.Lat == 0 && result.Associated.TideLocation.Lon == 0 {
		return nil, &ContractError{Kind: KindTides, Field: "associated.tideLocation missing"}
	}
	return &result, nil
}

// Weather fetches and decodes the weather forecast for a spot.
func (c *Client) Weather(spotID string) (*WeatherResponse, error) {
	body, err := c.get(NewQuery(spotID, KindWeather))
	if err != nil {
		return nil, err
	}
	var result WeatherResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ContractError{Kind: KindWeather, Field: "body", Err: err}
	}
	if len(result.Data.Weather) == 0 {
		return nil, fmt.Errorf("weather forecast for %s: %w", spotID, ErrNoData)
	}
	if len(result.Data.SunlightTimes) == 0 {
		return nil, &ContractError{Kind: KindWeather, Field: "data.sunlightTimes missing"}
	}
	return &result, nil
}
