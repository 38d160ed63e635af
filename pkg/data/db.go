// Package data persists joined forecast rows in Postgres. The destination
// table is refreshed wholesale: truncated once at the start of a run, then
// appended to per spot. Column order matters because the spreadsheet mirror
// copies rows out positionally.
package data

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tidegrid/surfcast/pkg/forecast"
)

// TableName is the destination table.
const TableName = "wave_weather_wind_tides"

// Row is one destination table row. Pointer fields are nullable columns:
// a high/low tide event off the 3-hour grid has no wave, weather, or wind
// values for its interval.
type Row struct {
	TideLocalTime     string   `gorm:"column:tide_local_time"`
	TideHeight        float64  `gorm:"column:tide_height"`
	TideType          string   `gorm:"column:tide_type"`
	SpotID            string   `gorm:"column:spot_id"`
	SpotName          string   `gorm:"column:spot_name"`
	SpotTimezone      *string  `gorm:"column:spot_timezone"`
	SpotLocalTime     *string  `gorm:"column:spot_local_time"`
	WaveMaxHeight     *float64 `gorm:"column:wave_max_height"`
	WaveMinHeight     *float64 `gorm:"column:wave_min_height"`
	HumanRelation     *string  `gorm:"column:human_relation"`
	SwellHeight1      *float64 `gorm:"column:swell_height_1"`
	SwellHeight2      *float64 `gorm:"column:swell_height_2"`
	SwellHeight3      *float64 `gorm:"column:swell_height_3"`
	SwellHeight4      *float64 `gorm:"column:swell_height_4"`
	SwellHeight5      *float64 `gorm:"column:swell_height_5"`
	SwellHeight6      *float64 `gorm:"column:swell_height_6"`
	Temperature       *float64 `gorm:"column:temperature"`
	FirstLight        *string  `gorm:"column:first_light"`
	Sunrise           *string  `gorm:"column:sunrise"`
	Sunset            *string  `gorm:"column:sunset"`
	LastLight         *string  `gorm:"column:last_light"`
	WindSpeed         *float64 `gorm:"column:wind_speed"`
	WindDirectionType *string  `gorm:"column:wind_direction_type"`
	Subregion         string   `gorm:"column:subregion"`
	Region            string   `gorm:"column:region"`
}

func (Row) TableName() string {
	return TableName
}

// Columns is the destination column order, shared with the spreadsheet
// mirror's header.
func Columns() []string {
	return []string{
		"tide_local_time", "tide_height", "tide_type",
		"spot_id", "spot_name", "spot_timezone", "spot_local_time",
		"wave_max_height", "wave_min_height", "human_relation",
		"swell_height_1", "swell_height_2", "swell_height_3",
		"swell_height_4", "swell_height_5", "swell_height_6",
		"temperature", "first_light", "sunrise", "sunset", "last_light",
		"wind_speed", "wind_direction_type", "subregion", "region",
	}
}

// FromJoined converts a joined forecast row to its table shape.
func FromJoined(j forecast.JoinedRow) Row {
	return Row{
		TideLocalTime:     j.TideLocalTime,
		TideHeight:        j.TideHeight,
		TideType:          j.TideType,
		SpotID:            j.SpotID,
		SpotName:          j.SpotName,
		SpotTimezone:      j.SpotTimezone,
		SpotLocalTime:     j.SpotLocalTime,
		WaveMaxHeight:     j.WaveMaxHeight,
		WaveMinHeight:     j.WaveMinHeight,
		HumanRelation:     j.HumanRelation,
		SwellHeight1:      j.Swells[0],
		SwellHeight2:      j.Swells[1],
		SwellHeight3:      j.Swells[2],
		SwellHeight4:      j.Swells[3],
		SwellHeight5:      j.Swells[4],
		SwellHeight6:      j.Swells[5],
		Temperature:       j.Temperature,
		FirstLight:        j.FirstLight,
		Sunrise:           j.Sunrise,
		Sunset:            j.Sunset,
		LastLight:         j.LastLight,
		WindSpeed:         j.WindSpeed,
		WindDirectionType: j.WindDirectionType,
		Subregion:         j.Subregion,
		Region:            j.Region,
	}
}

// Config holds Postgres connection parameters.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// Store wraps the destination table.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres and ensures the destination table exists.
func Open(cfg Config) (*Store, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := db.AutoMigrate(&Row{}); err != nil {
		return nil, fmt.Errorf("migrating %s: %w", TableName, err)
	}
	return &Store{db: db}, nil
}

// Truncate destroys all rows. Run once at the start of a refresh; there is
// no merge path.
func (s *Store) Truncate() error {
	if err := s.db.Exec("TRUNCATE TABLE " + TableName).Error; err != nil {
		return fmt.Errorf("truncating %s: %w", TableName, err)
	}
	return nil
}

// Append inserts one spot's rows.
func (s *Store) Append(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.Create(&rows).Error; err != nil {
		return fmt.Errorf("inserting into %s: %w", TableName, err)
	}
	return nil
}

// DeleteSpot removes all rows for one spot, for when a spot leaves the
// mapping between full refreshes.
func (s *Store) DeleteSpot(spotID string) error {
	if err := s.db.Where("spot_id = ?", spotID).Delete(&Row{}).Error; err != nil {
		return fmt.Errorf("deleting %s from %s: %w", spotID, TableName, err)
	}
	return nil
}

// All reads the full table back in a stable order for the mirror.
func (s *Store) All() ([]Row, error) {
	var rows []Row
	err := s.db.Order("spot_id, tide_local_time, tide_type").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", TableName, err)
	}
	return rows, nil
}
