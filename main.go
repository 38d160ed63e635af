package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/tidegrid/surfcast/pkg/data"
	"github.com/tidegrid/surfcast/pkg/forecast"
	"github.com/tidegrid/surfcast/pkg/gsheet"
	"github.com/tidegrid/surfcast/pkg/metrics"
	"github.com/tidegrid/surfcast/pkg/pipeline"
	"github.com/tidegrid/surfcast/pkg/spots"
	"github.com/tidegrid/surfcast/pkg/surfline"
	"github.com/tidegrid/surfcast/pkg/timezone"
)

type Config struct {
	SpotsFile     string        `split_words:"true" default:"spots.yaml"`
	ForecastURL   string        `split_words:"true" default:"https://services.surfline.com/kbyg/spots/forecasts"`
	FetchCacheTTL time.Duration `split_words:"true" default:"15m"`

	PGHost     string `envconfig:"PGHOST" default:"localhost"`
	PGPort     string `envconfig:"PGPORT" default:"5432"`
	PGUser     string `envconfig:"PGUSER" default:"postgres"`
	PGPassword string `envconfig:"PGPASSWORD"`
	PGDatabase string `envconfig:"PGDATABASE" default:"surfcast"`

	GoogleCredentials string `split_words:"true" default:"credentials.json"`
	SpreadsheetID     string `split_words:"true"`
	SheetName         string `split_words:"true" default:"GSheet_Wave_Weather_Wind_Tides"`

	PushgatewayURL string `split_words:"true"`
}

func main() {
	stage := flag.String("stage", "all", "stage to run: db, sheet, or all")
	flag.Parse()

	// A .env file is a convenience for local runs; the scheduler provides
	// real environments.
	_ = godotenv.Load()

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}

	spotList, err := spots.Load(env.SpotsFile)
	if err != nil {
		log.Fatal(err)
	}

	store, err := data.Open(data.Config{
		Host:     env.PGHost,
		Port:     env.PGPort,
		User:     env.PGUser,
		Password: env.PGPassword,
		DBName:   env.PGDatabase,
	})
	if err != nil {
		log.Fatal(err)
	}

	// The fetch side is only needed when the table is being refreshed.
	var fetcher pipeline.Fetcher
	var zones forecast.ZoneResolver
	if *stage != "sheet" {
		fetcher = surfline.New(env.ForecastURL, env.FetchCacheTTL)
		resolver, err := timezone.NewResolver()
		if err != nil {
			log.Fatal(err)
		}
		zones = resolver
	}

	p := pipeline.New(fetcher, zones, store, spotList)

	var runErr error
	switch *stage {
	case "db":
		runErr = p.RefreshTable()
	case "sheet":
		runErr = refreshSheet(p, env)
	case "all":
		if runErr = p.RefreshTable(); runErr == nil {
			runErr = refreshSheet(p, env)
		}
	default:
		log.Fatalf("unknown stage %q", *stage)
	}

	if env.PushgatewayURL != "" {
		if err := metrics.Push(env.PushgatewayURL); err != nil {
			log.Printf("run %s: failed to push metrics: %v", p.RunID(), err)
		}
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}

func refreshSheet(p *pipeline.Pipeline, env Config) error {
	mirror, err := gsheet.New(context.Background(), env.GoogleCredentials, env.SpreadsheetID, env.SheetName)
	if err != nil {
		return err
	}
	return p.RefreshSheet(mirror)
}
