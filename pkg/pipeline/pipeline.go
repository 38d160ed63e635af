// Package pipeline drives a refresh run: for each mapped spot it fetches
// the four forecast kinds, normalizes and joins them, and appends the
// result to the destination table; a second stage mirrors the table into a
// spreadsheet. Spots are processed one at a time — a spot that fails any of
// its four kinds contributes nothing to the run, and its failure does not
// stop the spots after it.
package pipeline

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/tidegrid/surfcast/pkg/data"
	"github.com/tidegrid/surfcast/pkg/forecast"
	"github.com/tidegrid/surfcast/pkg/metrics"
	"github.com/tidegrid/surfcast/pkg/spots"
	"github.com/tidegrid/surfcast/pkg/surfline"
)

// Fetcher issues the per-kind forecast requests. Satisfied by
// *surfline.Client.
type Fetcher interface {
	Wave(spotID string) (*surfline.WaveResponse, error)
	Wind(spotID string) (*surfline.WindResponse, error)
	Tides(spotID string) (*surfline.TideResponse, error)
	Weather(spotID string) (*surfline.WeatherResponse, error)
}

// Store is the destination table. Satisfied by *data.Store.
type Store interface {
	Truncate() error
	Append(rows []data.Row) error
	All() ([]data.Row, error)
}

// Mirror is the spreadsheet destination. Satisfied by *gsheet.Mirror.
type Mirror interface {
	Clear() error
	Write(rows []data.Row) error
}

// Pipeline holds the collaborators for one run.
type Pipeline struct {
	runID   string
	fetcher Fetcher
	zones   forecast.ZoneResolver
	store   Store
	spots   []spots.Spot
}

// New assembles a Pipeline and assigns it a run id for log correlation.
func New(fetcher Fetcher, zones forecast.ZoneResolver, store Store, spotList []spots.Spot) *Pipeline {
	return &Pipeline{
		runID:   uuid.NewString(),
		fetcher: fetcher,
		zones:   zones,
		store:   store,
		spots:   spotList,
	}
}

// RunID identifies this pipeline's log lines.
func (p *Pipeline) RunID() string {
	return p.runID
}

// RefreshTable truncates the destination table and reloads it from the
// provider, spot by spot. It returns an error when the truncate fails, when
// a destination write fails, or when not a single spot loaded; per-spot
// fetch and normalize failures only skip that spot.
func (p *Pipeline) RefreshTable() error {
	log.Printf("run %s: refreshing %s for %d spots", p.runID, data.TableName, len(p.spots))

	if err := p.store.Truncate(); err != nil {
		return fmt.Errorf("run %s: %w", p.runID, err)
	}

	var skipErrs *multierror.Error
	var destErrs *multierror.Error
	loaded := 0
	for _, spot := range p.spots {
		rows, err := p.buildSpot(spot)
		if err != nil {
			metrics.SpotSkipped()
			skipErrs = multierror.Append(skipErrs, err)
			if surfline.IsContractError(err) {
				log.Printf("run %s: skipping %s (%s): provider contract violated: %v", p.runID, spot.Name, spot.ID, err)
			} else if errors.Is(err, surfline.ErrNoData) {
				log.Printf("run %s: skipping %s (%s): no data today: %v", p.runID, spot.Name, spot.ID, err)
			} else {
				log.Printf("run %s: skipping %s (%s): %v", p.runID, spot.Name, spot.ID, err)
			}
			continue
		}

		if err := p.store.Append(rows); err != nil {
			destErrs = multierror.Append(destErrs, err)
			log.Printf("run %s: failed to load %s (%s): %v", p.runID, spot.Name, spot.ID, err)
			continue
		}
		metrics.SpotLoaded(len(rows))
		loaded++
		log.Printf("run %s: loaded %d rows for %s (%s)", p.runID, len(rows), spot.Name, spot.ID)
	}

	if loaded == 0 {
		if all := multierror.Append(skipErrs, destErrs.ErrorOrNil()).ErrorOrNil(); all != nil {
			return fmt.Errorf("run %s: no spot loaded: %w", p.runID, all)
		}
		return fmt.Errorf("run %s: no spot loaded", p.runID)
	}
	if err := destErrs.ErrorOrNil(); err != nil {
		return fmt.Errorf("run %s: destination writes failed: %w", p.runID, err)
	}
	return nil
}

// buildSpot produces the full joined row set for one spot, or an error if
// any of the four kinds could not be fetched and normalized. No partial
// result is ever returned.
func (p *Pipeline) buildSpot(spot spots.Spot) ([]data.Row, error) {
	start := time.Now()
	waveResp, err := p.fetcher.Wave(spot.ID)
	metrics.ObserveFetch(string(surfline.KindWave), start)
	if err != nil {
		return nil, err
	}
	waves, err := forecast.NormalizeWave(spot, waveResp, p.zones)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	weatherResp, err := p.fetcher.Weather(spot.ID)
	metrics.ObserveFetch(string(surfline.KindWeather), start)
	if err != nil {
		return nil, err
	}
	weather, err := forecast.NormalizeWeather(spot, weatherResp)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	windResp, err := p.fetcher.Wind(spot.ID)
	metrics.ObserveFetch(string(surfline.KindWind), start)
	if err != nil {
		return nil, err
	}
	winds := forecast.NormalizeWind(spot, windResp)

	start = time.Now()
	tideResp, err := p.fetcher.Tides(spot.ID)
	metrics.ObserveFetch(string(surfline.KindTides), start)
	if err != nil {
		return nil, err
	}
	tides, err := forecast.NormalizeTides(spot, tideResp, p.zones)
	if err != nil {
		return nil, err
	}

	joined := forecast.Join(spot, waves, weather, winds, tides)
	rows := make([]data.Row, 0, len(joined))
	for _, j := range joined {
		rows = append(rows, data.FromJoined(j))
	}
	return rows, nil
}

// RefreshSheet overwrites the spreadsheet mirror with the current contents
// of the destination table. Run it after RefreshTable.
func (p *Pipeline) RefreshSheet(m Mirror) error {
	rows, err := p.store.All()
	if err != nil {
		return fmt.Errorf("run %s: %w", p.runID, err)
	}
	if err := m.Clear(); err != nil {
		return fmt.Errorf("run %s: %w", p.runID, err)
	}
	if err := m.Write(rows); err != nil {
		return fmt.Errorf("run %s: %w", p.runID, err)
	}
	log.Printf("run %s: mirrored %d rows to spreadsheet", p.runID, len(rows))
	return nil
}
