// printrun fetches, normalizes, and joins one spot's forecast and prints
// the resulting rows, without touching the database or spreadsheet. Handy
// for eyeballing what a run would load for a spot.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tidegrid/surfcast/pkg/forecast"
	"github.com/tidegrid/surfcast/pkg/spots"
	"github.com/tidegrid/surfcast/pkg/surfline"
	"github.com/tidegrid/surfcast/pkg/timezone"
)

func main() {
	spotID := flag.String("spot", "", "Surfline spot id")
	name := flag.String("name", "(unnamed)", "spot display name")
	flag.Parse()

	if *spotID == "" {
		fmt.Fprintln(os.Stderr, "usage: printrun -spot <id> [-name <name>]")
		os.Exit(2)
	}
	spot := spots.Spot{ID: *spotID, Name: *name}

	zones, err := timezone.NewResolver()
	if err != nil {
		fmt.Printf("failed to build timezone index: %v\n", err)
		return
	}
	client := surfline.New(surfline.DefaultBaseURL, 0)

	waveResp, err := client.Wave(spot.ID)
	if err != nil {
		fmt.Printf("failed to fetch wave: %v\n", err)
		return
	}
	waves, err := forecast.NormalizeWave(spot, waveResp, zones)
	if err != nil {
		fmt.Printf("failed to normalize wave: %v\n", err)
		return
	}

	weatherResp, err := client.Weather(spot.ID)
	if err != nil {
		fmt.Printf("failed to fetch weather: %v\n", err)
		return
	}
	weather, err := forecast.NormalizeWeather(spot, weatherResp)
	if err != nil {
		fmt.Printf("failed to normalize weather: %v\n", err)
		return
	}

	windResp, err := client.Wind(spot.ID)
	if err != nil {
		fmt.Printf("failed to fetch wind: %v\n", err)
		return
	}
	winds := forecast.NormalizeWind(spot, windResp)

	tideResp, err := client.Tides(spot.ID)
	if err != nil {
		fmt.Printf("failed to fetch tides: %v\n", err)
		return
	}
	tides, err := forecast.NormalizeTides(spot, tideResp, zones)
	if err != nil {
		fmt.Printf("failed to normalize tides: %v\n", err)
		return
	}

	for _, row := range forecast.Join(spot, waves, weather, winds, tides) {
		fmt.Printf("%s %-6s %5.2fft", row.TideLocalTime, row.TideType, row.TideHeight)
		if row.WaveMaxHeight != nil {
			fmt.Printf("  surf %.1f-%.1fft", *row.WaveMinHeight, *row.WaveMaxHeight)
		}
		if row.WindSpeed != nil {
			fmt.Printf("  wind %.0fkts %s", *row.WindSpeed, *row.WindDirectionType)
		}
		if row.Temperature != nil {
			fmt.Printf("  %.0fF", *row.Temperature)
		}
		fmt.Println()
	}
}
